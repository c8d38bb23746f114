package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
)

// AdvanceStatus enum
type AdvanceStatus string

const (
	AdvanceStatusPending  AdvanceStatus = "pending"
	AdvanceStatusApproved AdvanceStatus = "approved"
	AdvanceStatusRejected AdvanceStatus = "rejected"
)

// Advance is a cash advance owned by the external advances collaborator.
// Approved advances are summed into the monthly computation alongside the
// per-day advance fields of the ledger.
type Advance struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Status     AdvanceStatus
	Month      ledger.Month
	CreatedAt  time.Time
}

// Summary is the payable result for one employee and one month. Derived on
// demand, never persisted.
//
// NetSalary deliberately excludes bonuses, extra-shift pay and double-shift
// pay: those are paid through a different channel and are reported as
// CashOutsideSalary. Company-wide liability forecasts add the two figures
// back together; the payslip never does.
type Summary struct {
	EmployeeID   string
	EmployeeName string
	Month        ledger.Month

	DaysInMonth int
	DayValue    decimal.Decimal

	WorkedDays      int
	AbsentDays      int
	ExtraDays       int
	EffectivePassed int
	EffectiveWorked int
	PaidDays        int

	CalculatedSalary    decimal.Decimal
	TotalAdvances       decimal.Decimal
	TotalBonuses        decimal.Decimal
	TotalInfractions    decimal.Decimal
	TotalExtraPay       decimal.Decimal
	TotalDoubleShiftPay decimal.Decimal
	TotalLateMinutes    int

	NetSalary         decimal.Decimal
	CashOutsideSalary decimal.Decimal
}
