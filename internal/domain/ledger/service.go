package ledger

import (
	"context"
)

// LedgerService defines business logic for the attendance/payroll ledger.
type LedgerService interface {
	// EnsureMonth guarantees that the month has one row per active employee
	// per calendar date, seeded from the shift calendar. Idempotent: a second
	// call performs zero writes, and concurrent callers cannot duplicate rows.
	EnsureMonth(ctx context.Context, month Month) (InitResult, error)

	// ListMonth retrieves the month's rows, optionally for a single employee.
	// An uninitialized month is initialized first.
	ListMonth(ctx context.Context, month Month, employeeID *string) ([]RowResponse, error)

	// GetRow retrieves a single row from the month.
	GetRow(ctx context.Context, month Month, rowID string) (RowResponse, error)

	// UpdateRow applies a manual edit to a single row. The automatic
	// infraction component stays untouched so a later day sync and a manual
	// edit never clobber each other.
	UpdateRow(ctx context.Context, month Month, rowID string, req UpdateRowRequest) (RowResponse, error)
}
