package reminder

import "context"

type EventHandle struct {
	UID  string
	Path string
}

type Calendar interface {
	CreateEvent(ctx context.Context, summary string, start Time) (EventHandle, error)
}

// EventUIDGenerator produces globally unique iCalendar UIDs.
type EventUIDGenerator interface {
	GenerateEventUID() string
}
