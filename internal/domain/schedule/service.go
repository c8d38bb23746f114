package schedule

import "context"

// ScheduleService defines business logic for weekly shift calendars.
type ScheduleService interface {
	// GetWeek never fails on an unassigned employee: it returns the default
	// week instead.
	GetWeek(ctx context.Context, employeeID string) (WeekResponse, error)

	// ReplaceWeek validates and upserts the whole week. Last write wins on
	// concurrent edits; nothing is merged or locked.
	ReplaceWeek(ctx context.Context, employeeID string, req WeekRequest) (WeekResponse, error)

	// WeeksForAll returns every employee's seven-slot week, falling back to
	// the defaults for employees without one. Used by the ledger initializer
	// and the placement view.
	WeeksForAll(ctx context.Context, employeeIDs []string) (map[string][7]Shift, error)
}
