package checkreminders

import (
	"context"
	"time"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/voice"
	"assistant/internal/core/services"
)

type Input struct {
	Voice voice.Gender
}

type Result struct {
	Triggered []reminder.Reminder
}

type WaitFunc func(ctx context.Context, d time.Duration) error

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type service struct {
	log      logging.Logger
	store    reminder.Store
	sender   reminder.Sender
	now      func() time.Time
	interval time.Duration
	wait     WaitFunc
}

// New creates the scheduler check. A reminder fires only if a check runs
// during its exact minute; a skipped minute means it never fires.
func New(
	log logging.Logger,
	store reminder.Store,
	sender reminder.Sender,
	now func() time.Time,
	interval time.Duration,
	wait WaitFunc,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if wait == nil {
		panic(e.NewNilArgumentError("wait"))
	}
	return &service{
		log:      log,
		store:    store,
		sender:   sender,
		now:      now,
		interval: interval,
		wait:     wait,
	}
}

// Run waits the full interval after every check, also a failed one, so a
// broken store cannot turn the loop into a busy one.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.check(ctx, input)
	if waitErr := s.wait(ctx, s.interval); err == nil {
		err = waitErr
	}
	return result, err
}

func (s *service) check(ctx context.Context, input Input) (result Result, err error) {
	reminders, err := s.store.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	current := reminder.TimeOf(s.now())
	due := make([]reminder.Reminder, 0)
	for _, rem := range reminders {
		if rem.IsDue(current) {
			due = append(due, rem)
		}
	}
	if len(due) == 0 {
		s.log.Debug(ctx, "No reminders are due.", logging.Entry("now", current), logging.Entry("pending", len(reminders)))
		return result, nil
	}

	// Scan a snapshot first so removing entries cannot skip a second due reminder.
	for _, rem := range due {
		s.trigger(ctx, rem, input.Voice)
		removed, err := s.store.Remove(ctx, rem)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminder", rem))
		} else if !removed {
			s.log.Warning(ctx, "Triggered reminder was already removed.", logging.Entry("reminder", rem))
		}
		result.Triggered = append(result.Triggered, rem)
	}

	s.log.Info(
		ctx,
		"Due reminders triggered.",
		logging.Entry("now", current),
		logging.Entry("count", len(result.Triggered)),
	)
	return result, nil
}

func (s *service) trigger(ctx context.Context, rem reminder.Reminder, gender voice.Gender) {
	if err := s.sender.SendReminder(ctx, rem, gender); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminder", rem))
	}
}
