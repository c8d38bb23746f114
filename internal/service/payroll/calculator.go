package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/employee"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/payroll"
)

// AbsenceTolerance is the number of absent days an employee can accumulate
// before the payment basis switches from elapsed days to strictly worked
// days. This is a hard step function, not a gradual penalty: at five or more
// absences the employee is paid only for confirmed worked days.
const AbsenceTolerance = 4

// ComputeSummary derives the payable summary for one employee and one month.
// Pure: it reads nothing but its arguments and is safe to call in parallel
// for different employees.
//
// When the target month is the current month (judged against the 04:00
// logical-day boundary), day counting covers only the elapsed part of the
// month; cash totals always cover the whole month.
func ComputeSummary(
	emp employee.Employee,
	month ledger.Month,
	rows []ledger.Row,
	advances []payroll.Advance,
	now time.Time,
) (payroll.Summary, error) {
	if emp.BaseSalary == nil {
		return payroll.Summary{}, payroll.ErrMissingBaseSalary
	}

	daysInMonth := month.Days()
	dayValue := emp.BaseSalary.Div(decimal.NewFromInt(int64(daysInMonth)))

	logicalToday := ledger.LogicalDate(now)
	elapsed := rows
	if month == ledger.MonthOf(logicalToday) {
		elapsed = make([]ledger.Row, 0, len(rows))
		for _, row := range rows {
			if !row.Date.After(logicalToday) {
				elapsed = append(elapsed, row)
			}
		}
	}

	workedDays := 0
	absentDays := 0
	for _, row := range elapsed {
		switch row.Presence {
		case ledger.PresencePresent:
			workedDays++
		case ledger.PresenceAbsent:
			absentDays++
		}
	}

	// Extra days span the whole month, not just the elapsed part.
	extraDays := 0
	for _, row := range rows {
		if row.ExtraPay.IsPositive() {
			extraDays++
		}
	}

	effectivePassed := max(0, len(elapsed)-extraDays)
	effectiveWorked := max(0, workedDays-extraDays)

	paidDays := effectivePassed
	if absentDays > AbsenceTolerance {
		paidDays = effectiveWorked
	}

	calculatedSalary := dayValue.Mul(decimal.NewFromInt(int64(paidDays)))

	totalAdvances := decimal.Zero
	totalBonuses := decimal.Zero
	totalInfractions := decimal.Zero
	totalExtraPay := decimal.Zero
	totalDoubleShiftPay := decimal.Zero
	totalLateMinutes := 0
	for _, row := range rows {
		totalAdvances = totalAdvances.Add(row.Advance)
		totalBonuses = totalBonuses.Add(row.Bonus)
		totalInfractions = totalInfractions.Add(row.Infraction).Add(row.AutoInfraction)
		totalExtraPay = totalExtraPay.Add(row.ExtraPay)
		totalDoubleShiftPay = totalDoubleShiftPay.Add(row.DoubleShiftPay)
		totalLateMinutes += row.LateMinutes
	}
	for _, adv := range advances {
		if adv.EmployeeID == emp.ID && adv.Status == payroll.AdvanceStatusApproved {
			totalAdvances = totalAdvances.Add(adv.Amount)
		}
	}

	// Bonuses, extra-shift and double-shift pay are paid outside the base
	// salary channel: they never enter NetSalary here. The month forecast
	// adds CashOutsideSalary back in; the payslip does not.
	netSalary := calculatedSalary.Sub(totalInfractions).Sub(totalAdvances)
	cashOutside := totalBonuses.Add(totalExtraPay).Add(totalDoubleShiftPay)

	return payroll.Summary{
		EmployeeID:          emp.ID,
		EmployeeName:        emp.FullName,
		Month:               month,
		DaysInMonth:         daysInMonth,
		DayValue:            dayValue,
		WorkedDays:          workedDays,
		AbsentDays:          absentDays,
		ExtraDays:           extraDays,
		EffectivePassed:     effectivePassed,
		EffectiveWorked:     effectiveWorked,
		PaidDays:            paidDays,
		CalculatedSalary:    calculatedSalary,
		TotalAdvances:       totalAdvances,
		TotalBonuses:        totalBonuses,
		TotalInfractions:    totalInfractions,
		TotalExtraPay:       totalExtraPay,
		TotalDoubleShiftPay: totalDoubleShiftPay,
		TotalLateMinutes:    totalLateMinutes,
		NetSalary:           netSalary,
		CashOutsideSalary:   cashOutside,
	}, nil
}
