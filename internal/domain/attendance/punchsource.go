package attendance

import (
	"context"
	"time"
)

// PunchSource is the external clock-machine collaborator. Implementations
// must bound every call with a timeout; a slow or unreachable source is a
// per-employee failure, never a global abort.
type PunchSource interface {
	// GetPunches returns the employee's punches for the calendar date,
	// ordered by timestamp.
	GetPunches(ctx context.Context, employeeID string, date time.Time) ([]Punch, error)
}
