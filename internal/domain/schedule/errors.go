package schedule

import "errors"

// Schedule domain errors
var (
	ErrWeekNotFound = errors.New("shift week not found")
)
