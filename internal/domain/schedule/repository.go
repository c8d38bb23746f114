package schedule

import "context"

// ScheduleRepository defines data access methods for weekly shift calendars.
type ScheduleRepository interface {
	// GetByEmployee retrieves an employee's week. Returns ErrWeekNotFound
	// when the employee was never assigned one.
	GetByEmployee(ctx context.Context, employeeID string) (Week, error)

	// Replace upserts the whole week atomically (create-or-replace, never a
	// merge). Concurrent replaces are last-write-wins.
	Replace(ctx context.Context, week Week) (Week, error)

	// ListAll retrieves the weeks of every employee that has one, keyed by
	// employee id.
	ListAll(ctx context.Context) (map[string][7]Shift, error)
}
