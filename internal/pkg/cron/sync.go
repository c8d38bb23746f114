package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/attendance"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
)

// SyncJobs wires the ledger and attendance services into the scheduler: the
// current logical day is re-synced on an interval, and a fresh month is
// initialized right after rollover without waiting for the first viewer.
type SyncJobs struct {
	attendanceSvc attendance.AttendanceService
	ledgerSvc     ledger.LedgerService
	interval      time.Duration
}

func NewSyncJobs(
	attendanceSvc attendance.AttendanceService,
	ledgerSvc ledger.LedgerService,
	interval time.Duration,
) *SyncJobs {
	return &SyncJobs{
		attendanceSvc: attendanceSvc,
		ledgerSvc:     ledgerSvc,
		interval:      interval,
	}
}

func (j *SyncJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_logical_day", j.interval, j.SyncLogicalDay)
	scheduler.AddJob("ensure_current_month", 1*time.Hour, j.EnsureCurrentMonth)
}

// SyncLogicalDay reconciles today's ledger rows against the punch source.
// "Today" follows the logical-day boundary, so an 02:00 run still syncs
// yesterday's business date.
func (j *SyncJobs) SyncLogicalDay(ctx context.Context) error {
	day := ledger.LogicalDate(time.Now())

	result, err := j.attendanceSvc.SyncDay(ctx, day)
	if err != nil {
		return err
	}

	if len(result.Failures) > 0 {
		slog.Warn("Cron: day sync finished with failures",
			"date", result.Date,
			"rows_synced", result.RowsSynced,
			"failures", len(result.Failures))
	}
	return nil
}

// EnsureCurrentMonth keeps the current month's ledger seeded. Idempotent, so
// running it every hour is free once the month exists.
func (j *SyncJobs) EnsureCurrentMonth(ctx context.Context) error {
	month := ledger.MonthOf(ledger.LogicalDate(time.Now()))

	result, err := j.ledgerSvc.EnsureMonth(ctx, month)
	if err != nil {
		return err
	}

	if result.RowsCreated > 0 {
		slog.Info("Cron: initialized ledger month", "month", result.Month, "rows_created", result.RowsCreated)
	}
	return nil
}
