package checkreminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/voice"
	"assistant/internal/core/services"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	store   *reminder.TestStore
	sender  *reminder.TestSender
	now     time.Time
	waited  []time.Duration
	waitErr error
	service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.store = reminder.NewTestStore()
	suite.sender = reminder.NewTestSender()
	suite.now = time.Date(2026, 3, 1, 9, 0, 15, 0, time.Local)
	suite.waited = nil
	suite.waitErr = nil
	suite.service = New(
		suite.logger,
		suite.store,
		suite.sender,
		func() time.Time { return suite.now },
		time.Minute,
		func(ctx context.Context, d time.Duration) error {
			suite.waited = append(suite.waited, d)
			return suite.waitErr
		},
	)
}

func TestCheckRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestDueReminderFiresOnce() {
	// Setup ---
	rem := reminder.Reminder{Text: "stand up", At: reminder.MustTime(9, 0)}
	s.store.Reminders = []reminder.Reminder{rem}

	// Exercise ---
	first, err1 := s.service.Run(context.Background(), Input{Voice: voice.GenderFemale})
	second, err2 := s.service.Run(context.Background(), Input{Voice: voice.GenderFemale})

	// Verify ---
	s.Nil(err1)
	s.Nil(err2)
	s.Equal([]reminder.Reminder{rem}, first.Triggered)
	s.Empty(second.Triggered)
	s.Equal([]reminder.SentReminder{{Reminder: rem, Voice: voice.GenderFemale}}, s.sender.Sent)
	s.Empty(s.store.Reminders)
	s.Equal([]time.Duration{time.Minute, time.Minute}, s.waited)
}

func (s *testSuite) TestAllRemindersOfTheSameMinuteFire() {
	// Setup ---
	a := reminder.Reminder{Text: "a", At: reminder.MustTime(9, 0)}
	b := reminder.Reminder{Text: "b", At: reminder.MustTime(9, 0)}
	later := reminder.Reminder{Text: "later", At: reminder.MustTime(9, 1)}
	s.store.Reminders = []reminder.Reminder{a, b, later}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Nil(err)
	s.Equal([]reminder.Reminder{a, b}, result.Triggered)
	s.Equal([]reminder.SentReminder{{Reminder: a}, {Reminder: b}}, s.sender.Sent)
	s.Equal([]reminder.Reminder{later}, s.store.Reminders)
}

func (s *testSuite) TestDuplicatesFireTogether() {
	rem := reminder.Reminder{Text: "water", At: reminder.MustTime(9, 0)}
	s.store.Reminders = []reminder.Reminder{rem, rem}

	result, err := s.service.Run(context.Background(), Input{})

	s.Nil(err)
	s.Len(result.Triggered, 2)
	s.Empty(s.store.Reminders)
}

func (s *testSuite) TestMissedMinuteNeverFires() {
	// Setup ---
	rem := reminder.Reminder{Text: "missed", At: reminder.MustTime(8, 59)}
	s.store.Reminders = []reminder.Reminder{rem}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Nil(err)
	s.Empty(result.Triggered)
	s.Empty(s.sender.Sent)
	s.Equal([]reminder.Reminder{rem}, s.store.Reminders)
}

func (s *testSuite) TestSpeakErrorStillRemoves() {
	// Setup ---
	rem := reminder.Reminder{Text: "stand up", At: reminder.MustTime(9, 0)}
	s.store.Reminders = []reminder.Reminder{rem}
	s.sender.Error = errors.New("speaker failed")

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Nil(err)
	s.Equal([]reminder.Reminder{rem}, result.Triggered)
	s.Empty(s.store.Reminders)
	s.Equal(1, s.logger.Count(logging.ERROR))
}

func (s *testSuite) TestRemoveErrorIsLogged() {
	rem := reminder.Reminder{Text: "stand up", At: reminder.MustTime(9, 0)}
	s.store.Reminders = []reminder.Reminder{rem}
	s.store.RemoveError = errors.New("disk full")

	result, err := s.service.Run(context.Background(), Input{})

	s.Nil(err)
	s.Len(result.Triggered, 1)
	s.Equal(1, s.logger.Count(logging.ERROR))
}

func (s *testSuite) TestListError() {
	// Setup ---
	listErr := errors.New("cannot read")
	s.store.ListError = listErr

	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.ErrorIs(err, listErr)
	s.Equal([]time.Duration{time.Minute}, s.waited)
	s.Empty(s.sender.Sent)
}

func (s *testSuite) TestListErrorWinsOverWaitError() {
	listErr := errors.New("cannot read")
	s.store.ListError = listErr
	s.waitErr = context.Canceled

	_, err := s.service.Run(context.Background(), Input{})

	s.ErrorIs(err, listErr)
	s.Len(s.waited, 1)
}

func (s *testSuite) TestWaitErrorIsReturned() {
	s.waitErr = context.Canceled

	_, err := s.service.Run(context.Background(), Input{})

	s.ErrorIs(err, context.Canceled)
}

func (s *testSuite) TestWait() {
	s.Run("elapses", func() {
		err := Wait(context.Background(), time.Millisecond)
		s.Nil(err)
	})
	s.Run("cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Wait(ctx, time.Hour)
		s.ErrorIs(err, context.Canceled)
	})
}
