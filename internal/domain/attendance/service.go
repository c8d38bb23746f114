package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for punch reconciliation.
type AttendanceService interface {
	// SyncDay reconciles every ledger row of the given date against the
	// punch source: presence, clock in/out, lateness and the automatic
	// lateness penalty. Re-running for the same date overwrites the same
	// facts instead of duplicating them, so it is safe to trigger from both
	// a page load and the background job.
	SyncDay(ctx context.Context, date time.Time) (SyncDayResult, error)
}
