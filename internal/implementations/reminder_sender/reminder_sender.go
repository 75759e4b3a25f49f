package remindersender

import (
	"context"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/voice"
)

const prefix = "Reminder: "

// Sender speaks due reminders.
type Sender struct {
	log     logging.Logger
	speaker voice.Speaker
}

func New(log logging.Logger, speaker voice.Speaker) *Sender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if speaker == nil {
		panic(e.NewNilArgumentError("speaker"))
	}
	return &Sender{log: log, speaker: speaker}
}

func (s *Sender) SendReminder(ctx context.Context, rem reminder.Reminder, g voice.Gender) error {
	err := s.speaker.Speak(ctx, voice.Utterance{Text: prefix + rem.Text, Gender: g})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "Reminder has been sent.", logging.Entry("text", rem.Text), logging.Entry("time", rem.At))
	return nil
}
