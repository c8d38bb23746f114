package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/validator"
)

// ManualUpdate carries the fields of a manual row edit. Nil pointers leave the
// stored value alone.
type ManualUpdate struct {
	RowID          string
	Presence       *Presence
	ClockIn        *time.Time
	ClockOut       *time.Time
	Advance        *decimal.Decimal
	Bonus          *decimal.Decimal
	ExtraPay       *decimal.Decimal
	DoubleShiftPay *decimal.Decimal
	Infraction     *decimal.Decimal
	SuspensionDays *int
	Remark         *string
	Paid           *bool
}

// SyncUpdate carries the automated facts written by day sync.
type SyncUpdate struct {
	RowID          string
	Presence       Presence
	ClockIn        *time.Time
	ClockOut       *time.Time
	MissingExit    bool
	LateMinutes    int
	AutoInfraction decimal.Decimal
}

// UpdateRowRequest is the wire form of a manual row edit.
type UpdateRowRequest struct {
	Presence       *string          `json:"presence,omitempty"`
	ClockIn        *string          `json:"clock_in,omitempty"`
	ClockOut       *string          `json:"clock_out,omitempty"`
	Advance        *decimal.Decimal `json:"advance,omitempty"`
	Bonus          *decimal.Decimal `json:"bonus,omitempty"`
	ExtraPay       *decimal.Decimal `json:"extra_pay,omitempty"`
	DoubleShiftPay *decimal.Decimal `json:"double_shift_pay,omitempty"`
	Infraction     *decimal.Decimal `json:"infraction,omitempty"`
	SuspensionDays *int             `json:"suspension_days,omitempty"`
	Remark         *string          `json:"remark,omitempty"`
	Paid           *bool            `json:"paid,omitempty"`
}

// Validate checks the request and converts it to a ManualUpdate.
func (r UpdateRowRequest) Validate(rowID string) (ManualUpdate, error) {
	var errs validator.ValidationErrors

	update := ManualUpdate{
		RowID:          rowID,
		Advance:        r.Advance,
		Bonus:          r.Bonus,
		ExtraPay:       r.ExtraPay,
		DoubleShiftPay: r.DoubleShiftPay,
		Infraction:     r.Infraction,
		SuspensionDays: r.SuspensionDays,
		Remark:         r.Remark,
		Paid:           r.Paid,
	}

	if r.Presence != nil {
		if !validator.IsInSlice(*r.Presence, PresenceValues) {
			errs = append(errs, validator.ValidationError{Field: "presence", Message: "unrecognized presence value"})
		} else {
			p := Presence(*r.Presence)
			update.Presence = &p
		}
	}

	if r.ClockIn != nil {
		t, ok := validator.IsValidDateTime(*r.ClockIn)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be an ISO8601 timestamp"})
		} else {
			update.ClockIn = &t
		}
	}

	if r.ClockOut != nil {
		t, ok := validator.IsValidDateTime(*r.ClockOut)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be an ISO8601 timestamp"})
		} else {
			update.ClockOut = &t
		}
	}

	for field, amount := range map[string]*decimal.Decimal{
		"advance":          r.Advance,
		"bonus":            r.Bonus,
		"extra_pay":        r.ExtraPay,
		"double_shift_pay": r.DoubleShiftPay,
		"infraction":       r.Infraction,
	} {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}

	if r.SuspensionDays != nil && *r.SuspensionDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "suspension_days", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return ManualUpdate{}, errs
	}

	return update, nil
}

// IsEmpty reports whether the request carries no field at all.
func (r UpdateRowRequest) IsEmpty() bool {
	return r.Presence == nil && r.ClockIn == nil && r.ClockOut == nil &&
		r.Advance == nil && r.Bonus == nil && r.ExtraPay == nil &&
		r.DoubleShiftPay == nil && r.Infraction == nil &&
		r.SuspensionDays == nil && r.Remark == nil && r.Paid == nil
}

// RowResponse is the wire form of a ledger row.
type RowResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	Date           string          `json:"date"`
	Presence       Presence        `json:"presence"`
	ClockIn        *string         `json:"clock_in,omitempty"`
	ClockOut       *string         `json:"clock_out,omitempty"`
	MissingExit    bool            `json:"missing_exit"`
	LateMinutes    int             `json:"late_minutes"`
	Advance        decimal.Decimal `json:"advance"`
	Bonus          decimal.Decimal `json:"bonus"`
	ExtraPay       decimal.Decimal `json:"extra_pay"`
	DoubleShiftPay decimal.Decimal `json:"double_shift_pay"`
	Infraction     decimal.Decimal `json:"infraction"`
	AutoInfraction decimal.Decimal `json:"auto_infraction"`
	SuspensionDays int             `json:"suspension_days"`
	Remark         *string         `json:"remark,omitempty"`
	Paid           bool            `json:"paid"`
}

// InitResult reports what a month initialization run did.
type InitResult struct {
	Month       string `json:"month"`
	RowsCreated int64  `json:"rows_created"`
}

func ToRowResponse(row Row) RowResponse {
	resp := RowResponse{
		ID:             row.ID,
		EmployeeID:     row.EmployeeID,
		EmployeeName:   row.EmployeeName,
		Date:           row.Date.Format("2006-01-02"),
		Presence:       row.Presence,
		MissingExit:    row.MissingExit,
		LateMinutes:    row.LateMinutes,
		Advance:        row.Advance,
		Bonus:          row.Bonus,
		ExtraPay:       row.ExtraPay,
		DoubleShiftPay: row.DoubleShiftPay,
		Infraction:     row.Infraction,
		AutoInfraction: row.AutoInfraction,
		SuspensionDays: row.SuspensionDays,
		Remark:         row.Remark,
		Paid:           row.Paid,
	}
	if row.ClockIn != nil {
		s := row.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &s
	}
	if row.ClockOut != nil {
		s := row.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &s
	}
	return resp
}
