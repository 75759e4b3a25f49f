package reminder

import (
	"context"

	"assistant/internal/core/domain/voice"
)

// Sender announces a due reminder to the user.
type Sender interface {
	SendReminder(ctx context.Context, r Reminder, g voice.Gender) error
}
