package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/employee"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	ledger.LedgerRepository
	employee.EmployeeRepository
	payroll.AdvanceRepository
	ledgerService ledger.LedgerService
}

// ComputeEmployee implements payroll.PayrollService.
func (p *PayrollServiceImpl) ComputeEmployee(ctx context.Context, employeeID string, month ledger.Month) (payroll.SummaryResponse, error) {
	emp, err := p.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	if emp.Blocked {
		return payroll.SummaryResponse{}, employee.ErrEmployeeBlocked
	}

	rows, err := p.monthRows(ctx, month, &employeeID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	advances, err := p.AdvanceRepository.ListByMonth(ctx, month)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}

	summary, err := ComputeSummary(emp, month, rows, advances, time.Now())
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	return payroll.ToSummaryResponse(summary), nil
}

// RunMonth implements payroll.PayrollService. One employee failing to compute
// never prevents the month-wide run from completing for everyone else.
func (p *PayrollServiceImpl) RunMonth(ctx context.Context, month ledger.Month) (payroll.MonthRunResponse, error) {
	employees, err := p.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return payroll.MonthRunResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	rows, err := p.monthRows(ctx, month, nil)
	if err != nil {
		return payroll.MonthRunResponse{}, err
	}

	advances, err := p.AdvanceRepository.ListByMonth(ctx, month)
	if err != nil {
		return payroll.MonthRunResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}

	rowsByEmployee := make(map[string][]ledger.Row, len(employees))
	for _, row := range rows {
		rowsByEmployee[row.EmployeeID] = append(rowsByEmployee[row.EmployeeID], row)
	}

	now := time.Now()
	result := payroll.MonthRunResponse{Month: month.Key()}
	for _, emp := range employees {
		summary, err := ComputeSummary(emp, month, rowsByEmployee[emp.ID], advances, now)
		if err != nil {
			result.Failures = append(result.Failures, payroll.ComputationFailure{
				EmployeeID: emp.ID,
				Reason:     err.Error(),
			})
			continue
		}
		result.Summaries = append(result.Summaries, payroll.ToSummaryResponse(summary))
	}

	return result, nil
}

// ForecastMonth implements payroll.PayrollService. Unlike the payslip, the
// company-wide liability adds the outside-base cash back into the total.
func (p *PayrollServiceImpl) ForecastMonth(ctx context.Context, month ledger.Month) (payroll.ForecastResponse, error) {
	run, err := p.RunMonth(ctx, month)
	if err != nil {
		return payroll.ForecastResponse{}, err
	}

	forecast := payroll.ForecastResponse{
		Month:            month.Key(),
		EmployeeCount:    len(run.Summaries),
		TotalNetSalary:   decimal.Zero,
		TotalOutsideCash: decimal.Zero,
		TotalLiability:   decimal.Zero,
	}
	for _, summary := range run.Summaries {
		forecast.TotalNetSalary = forecast.TotalNetSalary.Add(summary.NetSalary)
		forecast.TotalOutsideCash = forecast.TotalOutsideCash.Add(summary.CashOutsideSalary)
	}
	forecast.TotalLiability = forecast.TotalNetSalary.Add(forecast.TotalOutsideCash)

	for _, failure := range run.Failures {
		forecast.FailedEmployeeIDs = append(forecast.FailedEmployeeIDs, failure.EmployeeID)
	}

	return forecast, nil
}

// monthRows loads the month's raw rows, initializing the month on first
// touch like every other consumer does.
func (p *PayrollServiceImpl) monthRows(ctx context.Context, month ledger.Month, employeeID *string) ([]ledger.Row, error) {
	if err := p.LedgerRepository.EnsureMonthPartition(ctx, month); err != nil {
		return nil, err
	}

	total, err := p.LedgerRepository.CountMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		if _, err := p.ledgerService.EnsureMonth(ctx, month); err != nil {
			return nil, err
		}
	}

	return p.LedgerRepository.ListMonth(ctx, month, employeeID)
}

func NewPayrollService(
	ledgerRepo ledger.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
	advanceRepo payroll.AdvanceRepository,
	ledgerService ledger.LedgerService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		LedgerRepository:   ledgerRepo,
		EmployeeRepository: employeeRepo,
		AdvanceRepository:  advanceRepo,
		ledgerService:      ledgerService,
	}
}
