package placement

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/employee"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/placement"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/schedule"
)

type PlacementServiceImpl struct {
	employee.EmployeeRepository
	scheduleService schedule.ScheduleService
}

// ForDay implements placement.PlacementService. A double-shift employee lands
// in both the morning and the evening bucket; unconfigured days are kept
// apart from rest days.
func (p *PlacementServiceImpl) ForDay(ctx context.Context, date time.Time) (placement.DayPlacement, error) {
	employees, err := p.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return placement.DayPlacement{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	weeks, err := p.scheduleService.WeeksForAll(ctx, ids)
	if err != nil {
		return placement.DayPlacement{}, err
	}

	weekday := date.Weekday()
	byDepartment := make(map[string]*placement.DepartmentPlacement)
	for _, emp := range employees {
		days := weeks[emp.ID]
		shift := days[int(weekday)]

		dept := emp.DepartmentName()
		group, ok := byDepartment[dept]
		if !ok {
			group = &placement.DepartmentPlacement{Department: dept}
			byDepartment[dept] = group
		}

		placed := placement.PlacedEmployee{
			EmployeeID:  emp.ID,
			FullName:    emp.FullName,
			DoubleShift: shift == schedule.ShiftDouble,
		}

		switch shift {
		case schedule.ShiftMorning:
			group.Morning = append(group.Morning, placed)
		case schedule.ShiftEvening:
			group.Evening = append(group.Evening, placed)
		case schedule.ShiftDouble:
			group.Morning = append(group.Morning, placed)
			group.Evening = append(group.Evening, placed)
		case schedule.ShiftRest:
			group.RestDay = append(group.RestDay, placed)
		default:
			group.Unconfigured = append(group.Unconfigured, placed)
		}
	}

	result := placement.DayPlacement{Date: date.Format("2006-01-02")}
	for _, group := range byDepartment {
		result.Departments = append(result.Departments, *group)
	}
	sort.Slice(result.Departments, func(i, j int) bool {
		return result.Departments[i].Department < result.Departments[j].Department
	})

	return result, nil
}

func NewPlacementService(
	employeeRepo employee.EmployeeRepository,
	scheduleService schedule.ScheduleService,
) placement.PlacementService {
	return &PlacementServiceImpl{
		EmployeeRepository: employeeRepo,
		scheduleService:    scheduleService,
	}
}
