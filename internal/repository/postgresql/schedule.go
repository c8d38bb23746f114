package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/schedule"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

// GetByEmployee implements schedule.ScheduleRepository.
func (s *scheduleRepository) GetByEmployee(ctx context.Context, employeeID string) (schedule.Week, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT employee_id, sunday, monday, tuesday, wednesday, thursday, friday, saturday,
			   created_at, updated_at
		FROM shift_weeks
		WHERE employee_id = $1
	`

	var week schedule.Week
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&week.EmployeeID,
		&week.Days[time.Sunday], &week.Days[time.Monday], &week.Days[time.Tuesday],
		&week.Days[time.Wednesday], &week.Days[time.Thursday], &week.Days[time.Friday],
		&week.Days[time.Saturday],
		&week.CreatedAt, &week.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Week{}, schedule.ErrWeekNotFound
		}
		return schedule.Week{}, fmt.Errorf("failed to get shift week: %w", err)
	}

	return week, nil
}

// Replace implements schedule.ScheduleRepository. One row per employee with
// seven day columns keeps the whole-week replace a single atomic upsert;
// concurrent replaces are last-write-wins by construction.
func (s *scheduleRepository) Replace(ctx context.Context, week schedule.Week) (schedule.Week, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shift_weeks (
			employee_id, sunday, monday, tuesday, wednesday, thursday, friday, saturday
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id) DO UPDATE SET
			sunday = EXCLUDED.sunday,
			monday = EXCLUDED.monday,
			tuesday = EXCLUDED.tuesday,
			wednesday = EXCLUDED.wednesday,
			thursday = EXCLUDED.thursday,
			friday = EXCLUDED.friday,
			saturday = EXCLUDED.saturday,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		week.EmployeeID,
		week.Days[time.Sunday], week.Days[time.Monday], week.Days[time.Tuesday],
		week.Days[time.Wednesday], week.Days[time.Thursday], week.Days[time.Friday],
		week.Days[time.Saturday],
	).Scan(&week.CreatedAt, &week.UpdatedAt)
	if err != nil {
		return schedule.Week{}, fmt.Errorf("failed to replace shift week: %w", err)
	}

	return week, nil
}

// ListAll implements schedule.ScheduleRepository.
func (s *scheduleRepository) ListAll(ctx context.Context) (map[string][7]schedule.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT employee_id, sunday, monday, tuesday, wednesday, thursday, friday, saturday
		FROM shift_weeks
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift weeks: %w", err)
	}
	defer rows.Close()

	weeks := make(map[string][7]schedule.Shift)
	for rows.Next() {
		var employeeID string
		var days [7]schedule.Shift
		err := rows.Scan(
			&employeeID,
			&days[time.Sunday], &days[time.Monday], &days[time.Tuesday],
			&days[time.Wednesday], &days[time.Thursday], &days[time.Friday],
			&days[time.Saturday],
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift week: %w", err)
		}
		weeks[employeeID] = days
	}

	return weeks, nil
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}
