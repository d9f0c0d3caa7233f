package schedule

import "errors"

// Errors returned by the schedule store.
var (
	// ErrNoSchedule is returned when the schedule file does not exist.
	// The scheduler treats this as a startup configuration error.
	ErrNoSchedule = errors.New("no schedule configured")

	// ErrInvalidSchedule is returned when the schedule file exists but
	// cannot be parsed or holds out-of-range values.
	ErrInvalidSchedule = errors.New("invalid schedule configuration")
)
