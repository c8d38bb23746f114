package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/employee"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	employee.EmployeeRepository
}

// GetWeek implements schedule.ScheduleService. An employee without an
// assigned week gets the defaults; this operation never fails on absence.
func (s *ScheduleServiceImpl) GetWeek(ctx context.Context, employeeID string) (schedule.WeekResponse, error) {
	week, err := s.ScheduleRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrWeekNotFound) {
			return schedule.ToWeekResponse(schedule.Week{
				EmployeeID: employeeID,
				Days:       schedule.DefaultDays(),
			}), nil
		}
		return schedule.WeekResponse{}, fmt.Errorf("failed to get shift week: %w", err)
	}

	return schedule.ToWeekResponse(week), nil
}

// ReplaceWeek implements schedule.ScheduleService. The whole week is
// validated and upserted in one statement; concurrent operators are
// last-write-wins, nothing is merged.
func (s *ScheduleServiceImpl) ReplaceWeek(ctx context.Context, employeeID string, req schedule.WeekRequest) (schedule.WeekResponse, error) {
	days, err := req.Validate()
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return schedule.WeekResponse{}, err
	}

	week, err := s.ScheduleRepository.Replace(ctx, schedule.Week{
		EmployeeID: employeeID,
		Days:       days,
	})
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("failed to replace shift week: %w", err)
	}

	return schedule.ToWeekResponse(week), nil
}

// WeeksForAll implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) WeeksForAll(ctx context.Context, employeeIDs []string) (map[string][7]schedule.Shift, error) {
	stored, err := s.ScheduleRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift weeks: %w", err)
	}

	weeks := make(map[string][7]schedule.Shift, len(employeeIDs))
	for _, id := range employeeIDs {
		if days, ok := stored[id]; ok {
			weeks[id] = days
		} else {
			weeks[id] = schedule.DefaultDays()
		}
	}

	return weeks, nil
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepo,
		EmployeeRepository: employeeRepo,
	}
}
