package reminder

import "context"

// Store owns the ordered sequence of pending reminders. Every mutation is
// persisted before it returns.
type Store interface {
	List(ctx context.Context) ([]Reminder, error)
	Add(ctx context.Context, r Reminder) error
	// Remove deletes the first entry equal to r and reports whether one was found.
	Remove(ctx context.Context, r Reminder) (bool, error)
}
