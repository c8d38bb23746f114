package ledger

import "errors"

// Ledger domain errors
var (
	ErrInvalidMonthKey   = errors.New("invalid month key, expected YYYY_MM")
	ErrRowNotFound       = errors.New("ledger row not found")
	ErrNoUpdatableFields = errors.New("no updatable fields provided")
)
