package reminder

import "errors"

var ErrCalendarDisabled = errors.New("calendar sync is disabled")
