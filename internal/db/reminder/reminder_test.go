package dbreminder

import (
	"context"
	"testing"

	"assistant/internal/core/domain/reminder"
	"assistant/internal/db"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	store *SqliteStore
}

func (s *testSuite) SetupTest() {
	s.store = NewSqliteStore(db.CreateTestDB(s.T()))
}

func TestSqliteStore(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestEmptyStore() {
	reminders, err := s.store.List(context.Background())
	s.Nil(err)
	s.NotNil(reminders)
	s.Empty(reminders)
}

func (s *testSuite) TestAddKeepsInsertionOrder() {
	ctx := context.Background()
	expected := []reminder.Reminder{
		{Text: "stand up", At: reminder.MustTime(9, 0)},
		{Text: "call mom", At: reminder.MustTime(15, 30)},
		{Text: "stand up", At: reminder.MustTime(9, 0)},
		{Text: "sleep", At: reminder.MustTime(0, 0)},
	}
	for _, r := range expected {
		s.Require().Nil(s.store.Add(ctx, r))
	}

	reminders, err := s.store.List(ctx)
	s.Nil(err)
	s.Equal(expected, reminders)
}

func (s *testSuite) TestRemoveFirstEqualEntry() {
	ctx := context.Background()
	first := reminder.Reminder{Text: "call mom", At: reminder.MustTime(15, 30)}
	other := reminder.Reminder{Text: "call mom", At: reminder.MustTime(16, 30)}
	s.Require().Nil(s.store.Add(ctx, first))
	s.Require().Nil(s.store.Add(ctx, other))
	s.Require().Nil(s.store.Add(ctx, first))

	removed, err := s.store.Remove(ctx, first)
	s.Nil(err)
	s.True(removed)

	reminders, err := s.store.List(ctx)
	s.Nil(err)
	s.Equal([]reminder.Reminder{other, first}, reminders)
}

func (s *testSuite) TestRemoveMissingEntry() {
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, reminder.Reminder{Text: "t", At: reminder.MustTime(9, 0)}))

	removed, err := s.store.Remove(ctx, reminder.Reminder{Text: "t", At: reminder.MustTime(9, 1)})
	s.Nil(err)
	s.False(removed)
}
