package addreminder

import (
	"context"
	"errors"
	"strings"

	c "assistant/internal/core/domain/common"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/services"
)

type Input struct {
	Text    string
	TimeRaw string
}

type Result struct {
	Reminder reminder.Reminder
	Event    c.Optional[reminder.EventHandle]
}

type service struct {
	log      logging.Logger
	store    reminder.Store
	calendar reminder.Calendar
}

func New(
	log logging.Logger,
	store reminder.Store,
	calendar reminder.Calendar,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if calendar == nil {
		panic(e.NewNilArgumentError("calendar"))
	}
	return &service{
		log:      log,
		store:    store,
		calendar: calendar,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	at, err := reminder.ParseTime(input.TimeRaw)
	if err != nil {
		s.log.Info(ctx, "Reminder time could not be parsed.", logging.Entry("input", input))
		return result, err
	}

	rem := reminder.Reminder{Text: strings.TrimSpace(input.Text), At: at}
	if err := rem.Validate(); err != nil {
		s.log.Info(ctx, "Reminder is not valid.", logging.Entry("input", input), logging.Entry("err", err))
		return result, err
	}

	if err := s.store.Add(ctx, rem); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminder", rem))
		return result, err
	}
	result.Reminder = rem
	s.log.Info(ctx, "Reminder added.", logging.Entry("text", rem.Text), logging.Entry("time", rem.At))

	// Calendar failures never roll back the stored reminder.
	event, err := s.calendar.CreateEvent(ctx, rem.Text, rem.At)
	switch {
	case errors.Is(err, reminder.ErrCalendarDisabled):
		s.log.Debug(ctx, "Calendar sync is disabled, event skipped.")
	case err != nil:
		logging.Error(ctx, s.log, err, logging.Entry("reminder", rem))
	default:
		result.Event = c.NewOptional(event, true)
		s.log.Info(ctx, "Calendar event created.", logging.Entry("uid", event.UID), logging.Entry("path", event.Path))
	}

	return result, nil
}
