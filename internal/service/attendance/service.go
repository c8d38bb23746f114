package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftledger/shiftledger-backend-go/internal/config"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/attendance"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/schedule"
)

type AttendanceServiceImpl struct {
	ledger.LedgerRepository
	ledgerService   ledger.LedgerService
	scheduleService schedule.ScheduleService
	punchSource     attendance.PunchSource
	payrollCfg      config.PayrollConfig
}

// SyncDay implements attendance.AttendanceService. The upsert is keyed on the
// existing (employee, date) rows, so re-running for the same date overwrites
// the same automated facts instead of duplicating anything; manual fields and
// manual infractions are never touched.
func (a *AttendanceServiceImpl) SyncDay(ctx context.Context, date time.Time) (attendance.SyncDayResult, error) {
	month := ledger.MonthOf(date)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if err := a.LedgerRepository.EnsureMonthPartition(ctx, month); err != nil {
		return attendance.SyncDayResult{}, err
	}

	rows, err := a.LedgerRepository.ListByDate(ctx, month, day)
	if err != nil {
		return attendance.SyncDayResult{}, err
	}
	if len(rows) == 0 {
		if _, err := a.ledgerService.EnsureMonth(ctx, month); err != nil {
			return attendance.SyncDayResult{}, err
		}
		rows, err = a.LedgerRepository.ListByDate(ctx, month, day)
		if err != nil {
			return attendance.SyncDayResult{}, err
		}
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.EmployeeID)
	}
	weeks, err := a.scheduleService.WeeksForAll(ctx, ids)
	if err != nil {
		return attendance.SyncDayResult{}, err
	}

	result := attendance.SyncDayResult{Date: day.Format("2006-01-02")}
	for _, row := range rows {
		days := weeks[row.EmployeeID]
		shift := days[int(day.Weekday())]

		punches, err := a.punchSource.GetPunches(ctx, row.EmployeeID, day)
		if err != nil {
			// One unreachable employee never aborts the rest of the run.
			result.Failures = append(result.Failures, attendance.SyncFailure{
				EmployeeID: row.EmployeeID,
				Reason:     err.Error(),
			})
			continue
		}

		update := a.reconcile(row, shift, punches, day)
		if err := a.LedgerRepository.UpdateSyncFields(ctx, month, update); err != nil {
			result.Failures = append(result.Failures, attendance.SyncFailure{
				EmployeeID: row.EmployeeID,
				Reason:     err.Error(),
			})
			continue
		}
		result.RowsSynced++
	}

	return result, nil
}

// reconcile derives the automated facts of one row from its punches.
func (a *AttendanceServiceImpl) reconcile(row ledger.Row, shift schedule.Shift, punches []attendance.Punch, day time.Time) ledger.SyncUpdate {
	var firstIn, lastOut *time.Time
	for i := range punches {
		p := punches[i]
		switch p.Direction {
		case attendance.DirectionIn:
			if firstIn == nil {
				ts := p.Timestamp
				firstIn = &ts
			}
		case attendance.DirectionOut:
			ts := p.Timestamp
			lastOut = &ts
		}
	}

	// An out punch that precedes the first in punch has no matching entry;
	// treat it as no exit at all.
	if firstIn != nil && lastOut != nil && lastOut.Before(*firstIn) {
		lastOut = nil
	}

	presence := row.Presence
	switch {
	case firstIn != nil:
		presence = ledger.PresencePresent
	case shift.Worked():
		presence = ledger.PresenceAbsent
	}
	// Rest and unset days with no punches keep their day-off state: the
	// employee was not expected, so this is not an absence.

	lateMinutes := 0
	if firstIn != nil && shift.Worked() {
		expected := a.shiftStart(day, shift)
		if firstIn.After(expected) {
			lateMinutes = int(firstIn.Sub(expected) / time.Minute)
		}
	}

	autoInfraction := decimal.Zero
	if lateMinutes > a.payrollCfg.LateToleranceMinutes {
		autoInfraction = a.payrollCfg.LatePenalty
	}

	return ledger.SyncUpdate{
		RowID:          row.ID,
		Presence:       presence,
		ClockIn:        firstIn,
		ClockOut:       lastOut,
		MissingExit:    firstIn != nil && lastOut == nil,
		LateMinutes:    lateMinutes,
		AutoInfraction: autoInfraction,
	}
}

// shiftStart returns the expected clock-in time of the shift on the given
// day. A double shift starts with its morning half.
func (a *AttendanceServiceImpl) shiftStart(day time.Time, shift schedule.Shift) time.Time {
	start := a.payrollCfg.MorningShiftStart
	if shift == schedule.ShiftEvening {
		start = a.payrollCfg.EveningShiftStart
	}
	return time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, day.Location())
}

func NewAttendanceService(
	ledgerRepo ledger.LedgerRepository,
	ledgerService ledger.LedgerService,
	scheduleService schedule.ScheduleService,
	punchSource attendance.PunchSource,
	payrollCfg config.PayrollConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		LedgerRepository: ledgerRepo,
		ledgerService:    ledgerService,
		scheduleService:  scheduleService,
		punchSource:      punchSource,
		payrollCfg:       payrollCfg,
	}
}
