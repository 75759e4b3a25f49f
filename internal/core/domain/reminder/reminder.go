package reminder

import (
	e "assistant/internal/core/domain/errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Reminder struct {
	Text string `json:"text"`
	At   Time   `json:"time"`
}

func (r Reminder) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.At, validation.By(validateTime)),
	)
	if err != nil {
		return e.WrapInvalidStateError("reminder is not valid", err)
	}
	return nil
}

func validateTime(value interface{}) error {
	t, ok := value.(Time)
	if !ok {
		return ErrInvalidTimeFormat
	}
	if _, err := NewTime(t.hour, t.minute); err != nil {
		return err
	}
	return nil
}

// IsDue reports whether the reminder belongs to the given wall clock minute.
func (r Reminder) IsDue(now Time) bool {
	return r.At == now
}
