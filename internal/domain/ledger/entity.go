package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Presence is the per-day attendance state of an employee.
type Presence string

const (
	// PresencePending marks a scheduled day that has not been confirmed yet.
	PresencePending Presence = "pending"
	PresencePresent Presence = "present"
	PresenceAbsent  Presence = "absent"
	// PresenceDayOff marks a rest or unscheduled day; not counted as absence.
	PresenceDayOff Presence = "day_off"
)

var PresenceValues = []string{
	string(PresencePending),
	string(PresencePresent),
	string(PresenceAbsent),
	string(PresenceDayOff),
}

// Row is the per-employee-per-day attendance and payroll fact record. Rows are
// unique on (employee, date) within a month partition and are never deleted,
// only updated.
//
// Infraction is the manually entered deduction; AutoInfraction is owned
// exclusively by day sync (lateness penalties) and is never written through
// the manual edit path. Payroll sums both.
type Row struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	Presence       Presence
	ClockIn        *time.Time
	ClockOut       *time.Time
	MissingExit    bool
	LateMinutes    int
	Advance        decimal.Decimal
	Bonus          decimal.Decimal
	ExtraPay       decimal.Decimal
	DoubleShiftPay decimal.Decimal
	Infraction     decimal.Decimal
	AutoInfraction decimal.Decimal
	SuspensionDays int
	Remark         *string
	Paid           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	EmployeeName *string
}
