package ledger

import (
	"context"
	"time"
)

// LedgerRepository defines data access methods for ledger rows. Every method
// addresses a single month partition; historical months stay queryable without
// touching the current one.
type LedgerRepository interface {
	// EnsureMonthPartition creates the month's physical partition if it does
	// not exist yet, including the (employee_id, date) uniqueness constraint.
	EnsureMonthPartition(ctx context.Context, month Month) error

	// CountMonth returns the number of rows in the month partition.
	CountMonth(ctx context.Context, month Month) (int64, error)

	// InsertRows inserts seed rows, skipping any (employee, date) pair that
	// already exists. A losing concurrent insert is a no-op, not an error.
	// Returns the number of rows actually written.
	InsertRows(ctx context.Context, month Month, rows []Row) (int64, error)

	// ListMonth retrieves the month's rows, optionally for one employee.
	ListMonth(ctx context.Context, month Month, employeeID *string) ([]Row, error)

	// ListByDate retrieves the month's rows for one calendar date.
	ListByDate(ctx context.Context, month Month, date time.Time) ([]Row, error)

	// GetByID retrieves a single row from the month partition.
	GetByID(ctx context.Context, month Month, id string) (Row, error)

	// UpdateManual applies a manual edit. It never touches the automatic
	// fields owned by day sync (clock times, late minutes, auto infraction,
	// missing-exit flag are updated here only when explicitly provided).
	UpdateManual(ctx context.Context, month Month, update ManualUpdate) (Row, error)

	// UpdateSyncFields overwrites the automated facts of a row in place:
	// presence, clock in/out, late minutes, missing-exit flag and the
	// automatic infraction component. Manual fields are left untouched.
	UpdateSyncFields(ctx context.Context, month Month, update SyncUpdate) error
}
