package placement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/employee"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/placement"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/schedule"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, emp := range f.employees {
		if !emp.Blocked {
			active = append(active, emp)
		}
	}
	return active, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeScheduleService struct {
	weeks map[string][7]schedule.Shift
}

func (f *fakeScheduleService) GetWeek(_ context.Context, employeeID string) (schedule.WeekResponse, error) {
	return schedule.WeekResponse{EmployeeID: employeeID}, nil
}

func (f *fakeScheduleService) ReplaceWeek(_ context.Context, employeeID string, _ schedule.WeekRequest) (schedule.WeekResponse, error) {
	return schedule.WeekResponse{EmployeeID: employeeID}, nil
}

func (f *fakeScheduleService) WeeksForAll(_ context.Context, employeeIDs []string) (map[string][7]schedule.Shift, error) {
	result := make(map[string][7]schedule.Shift, len(employeeIDs))
	for _, id := range employeeIDs {
		if w, ok := f.weeks[id]; ok {
			result[id] = w
		} else {
			result[id] = schedule.DefaultDays()
		}
	}
	return result, nil
}

func strPtr(s string) *string { return &s }

// weekOf builds a week with the same shift on every day.
func weekOf(shift schedule.Shift) [7]schedule.Shift {
	var days [7]schedule.Shift
	for i := range days {
		days[i] = shift
	}
	return days
}

func findDepartment(t *testing.T, day placement.DayPlacement, name string) placement.DepartmentPlacement {
	t.Helper()
	for _, dept := range day.Departments {
		if dept.Department == name {
			return dept
		}
	}
	t.Fatalf("department %q not in placement", name)
	return placement.DepartmentPlacement{}
}

func employeeIDs(placed []placement.PlacedEmployee) []string {
	ids := make([]string, 0, len(placed))
	for _, p := range placed {
		ids = append(ids, p.EmployeeID)
	}
	return ids
}

var wednesday = time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)

func TestForDay_BucketsByShiftAndDepartment(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Carter", Department: strPtr("Kitchen")},
		{ID: "emp-2", FullName: "Bob Reyes", Department: strPtr("Kitchen")},
		{ID: "emp-3", FullName: "Cara Lindt", Department: strPtr("Front")},
	}}
	svc := NewPlacementService(employees, &fakeScheduleService{weeks: map[string][7]schedule.Shift{
		"emp-1": weekOf(schedule.ShiftMorning),
		"emp-2": weekOf(schedule.ShiftEvening),
		"emp-3": weekOf(schedule.ShiftRest),
	}})

	day, err := svc.ForDay(context.Background(), wednesday)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-04", day.Date)
	require.Len(t, day.Departments, 2)
	// Departments come back name-sorted.
	assert.Equal(t, "Front", day.Departments[0].Department)
	assert.Equal(t, "Kitchen", day.Departments[1].Department)

	kitchen := findDepartment(t, day, "Kitchen")
	assert.Equal(t, []string{"emp-1"}, employeeIDs(kitchen.Morning))
	assert.Equal(t, []string{"emp-2"}, employeeIDs(kitchen.Evening))

	front := findDepartment(t, day, "Front")
	assert.Equal(t, []string{"emp-3"}, employeeIDs(front.RestDay))
	assert.Empty(t, front.Morning)
}

func TestForDay_DoubleShiftAppearsInBothBuckets(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Carter", Department: strPtr("Kitchen")},
	}}
	svc := NewPlacementService(employees, &fakeScheduleService{weeks: map[string][7]schedule.Shift{
		"emp-1": weekOf(schedule.ShiftDouble),
	}})

	day, err := svc.ForDay(context.Background(), wednesday)
	require.NoError(t, err)

	kitchen := findDepartment(t, day, "Kitchen")
	assert.Equal(t, []string{"emp-1"}, employeeIDs(kitchen.Morning))
	assert.Equal(t, []string{"emp-1"}, employeeIDs(kitchen.Evening))
	assert.Empty(t, kitchen.RestDay)
	assert.Empty(t, kitchen.Unconfigured)

	require.NotEmpty(t, kitchen.Morning)
	assert.True(t, kitchen.Morning[0].DoubleShift)
}

func TestForDay_UnsetIsNotRest(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Carter", Department: strPtr("Kitchen")},
		{ID: "emp-2", FullName: "Bob Reyes", Department: strPtr("Kitchen")},
	}}
	svc := NewPlacementService(employees, &fakeScheduleService{weeks: map[string][7]schedule.Shift{
		"emp-1": weekOf(schedule.ShiftUnset),
		"emp-2": weekOf(schedule.ShiftRest),
	}})

	day, err := svc.ForDay(context.Background(), wednesday)
	require.NoError(t, err)

	kitchen := findDepartment(t, day, "Kitchen")
	assert.Equal(t, []string{"emp-1"}, employeeIDs(kitchen.Unconfigured))
	assert.Equal(t, []string{"emp-2"}, employeeIDs(kitchen.RestDay))
}

func TestForDay_MissingDepartmentFallsBackToOther(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Carter"},
	}}
	svc := NewPlacementService(employees, &fakeScheduleService{weeks: map[string][7]schedule.Shift{}})

	day, err := svc.ForDay(context.Background(), wednesday)
	require.NoError(t, err)

	other := findDepartment(t, day, employee.DepartmentOther)
	assert.Equal(t, []string{"emp-1"}, employeeIDs(other.Morning))
}

func TestForDay_BlockedEmployeesExcluded(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Carter", Department: strPtr("Kitchen")},
		{ID: "emp-2", FullName: "Bob Reyes", Department: strPtr("Kitchen"), Blocked: true},
	}}
	svc := NewPlacementService(employees, &fakeScheduleService{weeks: map[string][7]schedule.Shift{}})

	day, err := svc.ForDay(context.Background(), wednesday)
	require.NoError(t, err)

	kitchen := findDepartment(t, day, "Kitchen")
	assert.Equal(t, []string{"emp-1"}, employeeIDs(kitchen.Morning))
}
