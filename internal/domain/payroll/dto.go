package payroll

import "github.com/shopspring/decimal"

// SummaryResponse is the wire form of a monthly payslip summary.
type SummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`

	DaysInMonth int             `json:"days_in_month"`
	DayValue    decimal.Decimal `json:"day_value"`

	WorkedDays      int `json:"worked_days"`
	AbsentDays      int `json:"absent_days"`
	ExtraDays       int `json:"extra_days"`
	EffectivePassed int `json:"effective_passed"`
	EffectiveWorked int `json:"effective_worked"`
	PaidDays        int `json:"paid_days"`

	CalculatedSalary    decimal.Decimal `json:"calculated_salary"`
	TotalAdvances       decimal.Decimal `json:"total_advances"`
	TotalBonuses        decimal.Decimal `json:"total_bonuses"`
	TotalInfractions    decimal.Decimal `json:"total_infractions"`
	TotalExtraPay       decimal.Decimal `json:"total_extra_pay"`
	TotalDoubleShiftPay decimal.Decimal `json:"total_double_shift_pay"`
	TotalLateMinutes    int             `json:"total_late_minutes"`

	NetSalary         decimal.Decimal `json:"net_salary"`
	CashOutsideSalary decimal.Decimal `json:"cash_outside_salary"`
}

// ComputationFailure reports one employee a batch run could not compute.
type ComputationFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// MonthRunResponse is a month-wide payroll run: partial results plus the
// employees that failed, never one aborting the other.
type MonthRunResponse struct {
	Month     string               `json:"month"`
	Summaries []SummaryResponse    `json:"summaries"`
	Failures  []ComputationFailure `json:"failures,omitempty"`
}

// ForecastResponse is the company-wide liability view. Unlike the payslip it
// adds the outside-base cash back into the total.
type ForecastResponse struct {
	Month             string          `json:"month"`
	EmployeeCount     int             `json:"employee_count"`
	TotalNetSalary    decimal.Decimal `json:"total_net_salary"`
	TotalOutsideCash  decimal.Decimal `json:"total_outside_cash"`
	TotalLiability    decimal.Decimal `json:"total_liability"`
	FailedEmployeeIDs []string        `json:"failed_employee_ids,omitempty"`
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:          s.EmployeeID,
		EmployeeName:        s.EmployeeName,
		Month:               s.Month.Key(),
		DaysInMonth:         s.DaysInMonth,
		DayValue:            s.DayValue,
		WorkedDays:          s.WorkedDays,
		AbsentDays:          s.AbsentDays,
		ExtraDays:           s.ExtraDays,
		EffectivePassed:     s.EffectivePassed,
		EffectiveWorked:     s.EffectiveWorked,
		PaidDays:            s.PaidDays,
		CalculatedSalary:    s.CalculatedSalary,
		TotalAdvances:       s.TotalAdvances,
		TotalBonuses:        s.TotalBonuses,
		TotalInfractions:    s.TotalInfractions,
		TotalExtraPay:       s.TotalExtraPay,
		TotalDoubleShiftPay: s.TotalDoubleShiftPay,
		TotalLateMinutes:    s.TotalLateMinutes,
		NetSalary:           s.NetSalary,
		CashOutsideSalary:   s.CashOutsideSalary,
	}
}
