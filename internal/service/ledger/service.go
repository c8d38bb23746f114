package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/employee"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/schedule"
)

type LedgerServiceImpl struct {
	ledger.LedgerRepository
	employee.EmployeeRepository
	scheduleService schedule.ScheduleService
}

// EnsureMonth implements ledger.LedgerService. Seeding goes through
// ON CONFLICT DO NOTHING on the (employee, date) uniqueness constraint, so a
// re-run writes nothing and a losing concurrent initializer is silently a
// no-op rather than an error.
func (l *LedgerServiceImpl) EnsureMonth(ctx context.Context, month ledger.Month) (ledger.InitResult, error) {
	if err := l.LedgerRepository.EnsureMonthPartition(ctx, month); err != nil {
		return ledger.InitResult{}, err
	}

	employees, err := l.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return ledger.InitResult{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	weeks, err := l.scheduleService.WeeksForAll(ctx, ids)
	if err != nil {
		return ledger.InitResult{}, err
	}

	dates := month.Dates()
	rows := make([]ledger.Row, 0, len(employees)*len(dates))
	for _, emp := range employees {
		days := weeks[emp.ID]
		for _, date := range dates {
			rows = append(rows, seedRow(emp.ID, date, days[int(date.Weekday())]))
		}
	}

	created, err := l.LedgerRepository.InsertRows(ctx, month, rows)
	if err != nil {
		return ledger.InitResult{}, err
	}

	return ledger.InitResult{Month: month.Key(), RowsCreated: created}, nil
}

// ListMonth implements ledger.LedgerService. A month that has never been
// touched is initialized on first read.
func (l *LedgerServiceImpl) ListMonth(ctx context.Context, month ledger.Month, employeeID *string) ([]ledger.RowResponse, error) {
	if err := l.LedgerRepository.EnsureMonthPartition(ctx, month); err != nil {
		return nil, err
	}

	total, err := l.LedgerRepository.CountMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		if _, err := l.EnsureMonth(ctx, month); err != nil {
			return nil, err
		}
	}

	rows, err := l.LedgerRepository.ListMonth(ctx, month, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.RowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, ledger.ToRowResponse(row))
	}

	return responses, nil
}

// GetRow implements ledger.LedgerService.
func (l *LedgerServiceImpl) GetRow(ctx context.Context, month ledger.Month, rowID string) (ledger.RowResponse, error) {
	row, err := l.LedgerRepository.GetByID(ctx, month, rowID)
	if err != nil {
		return ledger.RowResponse{}, err
	}

	return ledger.ToRowResponse(row), nil
}

// UpdateRow implements ledger.LedgerService. Only manual fields pass through
// here; the automatic infraction component belongs to day sync and cannot be
// edited or clobbered by this path.
func (l *LedgerServiceImpl) UpdateRow(ctx context.Context, month ledger.Month, rowID string, req ledger.UpdateRowRequest) (ledger.RowResponse, error) {
	if req.IsEmpty() {
		return ledger.RowResponse{}, ledger.ErrNoUpdatableFields
	}

	update, err := req.Validate(rowID)
	if err != nil {
		return ledger.RowResponse{}, err
	}

	row, err := l.LedgerRepository.UpdateManual(ctx, month, update)
	if err != nil {
		return ledger.RowResponse{}, err
	}

	return ledger.ToRowResponse(row), nil
}

func seedRow(employeeID string, date time.Time, shift schedule.Shift) ledger.Row {
	presence := ledger.PresenceDayOff
	if shift.Worked() {
		presence = ledger.PresencePending
	}

	return ledger.Row{
		ID:             uuid.New().String(),
		EmployeeID:     employeeID,
		Date:           date,
		Presence:       presence,
		Advance:        decimal.Zero,
		Bonus:          decimal.Zero,
		ExtraPay:       decimal.Zero,
		DoubleShiftPay: decimal.Zero,
		Infraction:     decimal.Zero,
		AutoInfraction: decimal.Zero,
	}
}

func NewLedgerService(
	ledgerRepo ledger.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleService schedule.ScheduleService,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		LedgerRepository:   ledgerRepo,
		EmployeeRepository: employeeRepo,
		scheduleService:    scheduleService,
	}
}
