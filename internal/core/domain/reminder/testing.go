package reminder

import (
	"context"
	"sync"

	"assistant/internal/core/domain/voice"
)

type TestStore struct {
	Reminders   []Reminder
	ListError   error
	AddError    error
	RemoveError error
	AddedWith   []Reminder
	RemovedWith []Reminder
	lock        sync.Mutex
}

func NewTestStore(reminders ...Reminder) *TestStore {
	return &TestStore{Reminders: append([]Reminder{}, reminders...)}
}

func (s *TestStore) List(ctx context.Context) ([]Reminder, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.ListError != nil {
		return nil, s.ListError
	}
	return append([]Reminder{}, s.Reminders...), nil
}

func (s *TestStore) Add(ctx context.Context, r Reminder) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.AddedWith = append(s.AddedWith, r)
	if s.AddError != nil {
		return s.AddError
	}
	s.Reminders = append(s.Reminders, r)
	return nil
}

func (s *TestStore) Remove(ctx context.Context, r Reminder) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.RemovedWith = append(s.RemovedWith, r)
	for ix, existing := range s.Reminders {
		if existing == r {
			s.Reminders = append(s.Reminders[:ix], s.Reminders[ix+1:]...)
			return true, s.RemoveError
		}
	}
	return false, s.RemoveError
}

type CreatedEvent struct {
	Summary string
	Start   Time
}

type TestCalendar struct {
	Created []CreatedEvent
	Handle  EventHandle
	Error   error
	lock    sync.Mutex
}

func NewTestCalendar() *TestCalendar {
	return &TestCalendar{}
}

func (c *TestCalendar) CreateEvent(ctx context.Context, summary string, start Time) (EventHandle, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.Created = append(c.Created, CreatedEvent{Summary: summary, Start: start})
	if c.Error != nil {
		return EventHandle{}, c.Error
	}
	return c.Handle, nil
}

type SentReminder struct {
	Reminder Reminder
	Voice    voice.Gender
}

type TestSender struct {
	Sent  []SentReminder
	Error error
	lock  sync.Mutex
}

func NewTestSender() *TestSender {
	return &TestSender{}
}

func (s *TestSender) SendReminder(ctx context.Context, r Reminder, g voice.Gender) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentReminder{Reminder: r, Voice: g})
	return s.Error
}
