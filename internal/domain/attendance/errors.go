package attendance

import "errors"

// Attendance domain errors
var (
	ErrPunchSourceUnavailable = errors.New("punch source unavailable")
)
