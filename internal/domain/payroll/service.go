package payroll

import (
	"context"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
)

// PayrollService defines business logic for monthly payroll computation.
type PayrollService interface {
	// ComputeEmployee derives the month's payable summary for one employee.
	ComputeEmployee(ctx context.Context, employeeID string, month ledger.Month) (SummaryResponse, error)

	// RunMonth computes summaries for every active employee. Individual
	// failures are collected and returned alongside the successful results.
	RunMonth(ctx context.Context, month ledger.Month) (MonthRunResponse, error)

	// ForecastMonth aggregates the month-wide liability, outside-base cash
	// included.
	ForecastMonth(ctx context.Context, month ledger.Month) (ForecastResponse, error)
}
