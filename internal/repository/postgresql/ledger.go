package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/database"
)

type ledgerRepository struct {
	db *database.DB
}

// ledgerTable returns the physical partition for a month. The key comes from
// ledger.Month, whose format is validated on parse, so it is safe to inline.
func ledgerTable(month ledger.Month) string {
	return "ledger_" + month.Key()
}

const ledgerColumns = `id, employee_id, date, presence, clock_in, clock_out, missing_exit,
	   late_minutes, advance, bonus, extra_pay, double_shift_pay,
	   infraction, auto_infraction, suspension_days, remark, paid,
	   created_at, updated_at`

func scanLedgerRow(row pgx.Row, r *ledger.Row) error {
	return row.Scan(
		&r.ID, &r.EmployeeID, &r.Date, &r.Presence, &r.ClockIn, &r.ClockOut, &r.MissingExit,
		&r.LateMinutes, &r.Advance, &r.Bonus, &r.ExtraPay, &r.DoubleShiftPay,
		&r.Infraction, &r.AutoInfraction, &r.SuspensionDays, &r.Remark, &r.Paid,
		&r.CreatedAt, &r.UpdatedAt,
	)
}

// EnsureMonthPartition implements ledger.LedgerRepository.
func (l *ledgerRepository) EnsureMonthPartition(ctx context.Context, month ledger.Month) error {
	q := GetQuerier(ctx, l.db)

	// UNIQUE (employee_id, date) is the sole concurrency-safety mechanism of
	// month initialization; a losing concurrent insert hits it and is
	// swallowed by ON CONFLICT DO NOTHING.
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			employee_id UUID NOT NULL,
			date DATE NOT NULL,
			presence TEXT NOT NULL,
			clock_in TIMESTAMPTZ,
			clock_out TIMESTAMPTZ,
			missing_exit BOOLEAN NOT NULL DEFAULT FALSE,
			late_minutes INT NOT NULL DEFAULT 0,
			advance NUMERIC(14,2) NOT NULL DEFAULT 0,
			bonus NUMERIC(14,2) NOT NULL DEFAULT 0,
			extra_pay NUMERIC(14,2) NOT NULL DEFAULT 0,
			double_shift_pay NUMERIC(14,2) NOT NULL DEFAULT 0,
			infraction NUMERIC(14,2) NOT NULL DEFAULT 0,
			auto_infraction NUMERIC(14,2) NOT NULL DEFAULT 0,
			suspension_days INT NOT NULL DEFAULT 0,
			remark TEXT,
			paid BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (employee_id, date)
		)
	`, ledgerTable(month))

	if _, err := q.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure ledger partition %s: %w", month.Key(), err)
	}

	return nil
}

// CountMonth implements ledger.LedgerRepository.
func (l *ledgerRepository) CountMonth(ctx context.Context, month ledger.Month) (int64, error) {
	q := GetQuerier(ctx, l.db)

	var total int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, ledgerTable(month))
	if err := q.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count ledger rows: %w", err)
	}

	return total, nil
}

// InsertRows implements ledger.LedgerRepository.
func (l *ledgerRepository) InsertRows(ctx context.Context, month ledger.Month, rows []ledger.Row) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, employee_id, date, presence,
			advance, bonus, extra_pay, double_shift_pay, infraction, auto_infraction
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, date) DO NOTHING
	`, ledgerTable(month))

	var inserted int64
	err := WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(query,
				row.ID,
				row.EmployeeID,
				row.Date,
				row.Presence,
				row.Advance,
				row.Bonus,
				row.ExtraPay,
				row.DoubleShiftPay,
				row.Infraction,
				row.AutoInfraction,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range rows {
			tag, err := results.Exec()
			if err != nil {
				return fmt.Errorf("failed to insert ledger row: %w", err)
			}
			inserted += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// ListMonth implements ledger.LedgerRepository.
func (l *ledgerRepository) ListMonth(ctx context.Context, month ledger.Month, employeeID *string) ([]ledger.Row, error) {
	q := GetQuerier(ctx, l.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	if employeeID != nil && *employeeID != "" {
		baseWhere = "r.employee_id = $1"
		args = append(args, *employeeID)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		FROM %s r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE %s
		ORDER BY r.date ASC, e.full_name ASC
	`, prefixColumns("r", ledgerColumns), ledgerTable(month), baseWhere)

	rowsIter, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger rows: %w", err)
	}
	defer rowsIter.Close()

	var result []ledger.Row
	for rowsIter.Next() {
		var r ledger.Row
		err := rowsIter.Scan(
			&r.ID, &r.EmployeeID, &r.Date, &r.Presence, &r.ClockIn, &r.ClockOut, &r.MissingExit,
			&r.LateMinutes, &r.Advance, &r.Bonus, &r.ExtraPay, &r.DoubleShiftPay,
			&r.Infraction, &r.AutoInfraction, &r.SuspensionDays, &r.Remark, &r.Paid,
			&r.CreatedAt, &r.UpdatedAt,
			&r.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		result = append(result, r)
	}

	return result, nil
}

// ListByDate implements ledger.LedgerRepository.
func (l *ledgerRepository) ListByDate(ctx context.Context, month ledger.Month, date time.Time) ([]ledger.Row, error) {
	q := GetQuerier(ctx, l.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE date = $1
		ORDER BY employee_id
	`, ledgerColumns, ledgerTable(month))

	rowsIter, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger rows by date: %w", err)
	}
	defer rowsIter.Close()

	var result []ledger.Row
	for rowsIter.Next() {
		var r ledger.Row
		err := rowsIter.Scan(
			&r.ID, &r.EmployeeID, &r.Date, &r.Presence, &r.ClockIn, &r.ClockOut, &r.MissingExit,
			&r.LateMinutes, &r.Advance, &r.Bonus, &r.ExtraPay, &r.DoubleShiftPay,
			&r.Infraction, &r.AutoInfraction, &r.SuspensionDays, &r.Remark, &r.Paid,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		result = append(result, r)
	}

	return result, nil
}

// GetByID implements ledger.LedgerRepository.
func (l *ledgerRepository) GetByID(ctx context.Context, month ledger.Month, id string) (ledger.Row, error) {
	q := GetQuerier(ctx, l.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, ledgerColumns, ledgerTable(month))

	var r ledger.Row
	if err := scanLedgerRow(q.QueryRow(ctx, query, id), &r); err != nil {
		if err == pgx.ErrNoRows {
			return ledger.Row{}, ledger.ErrRowNotFound
		}
		return ledger.Row{}, fmt.Errorf("failed to get ledger row by ID: %w", err)
	}

	return r, nil
}

// UpdateManual implements ledger.LedgerRepository.
func (l *ledgerRepository) UpdateManual(ctx context.Context, month ledger.Month, update ledger.ManualUpdate) (ledger.Row, error) {
	q := GetQuerier(ctx, l.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if update.Presence != nil {
		updates = append(updates, fmt.Sprintf("presence = $%d", argIdx))
		args = append(args, *update.Presence)
		argIdx++
	}
	if update.ClockIn != nil {
		updates = append(updates, fmt.Sprintf("clock_in = $%d", argIdx))
		args = append(args, update.ClockIn)
		argIdx++
	}
	if update.ClockOut != nil {
		updates = append(updates, fmt.Sprintf("clock_out = $%d", argIdx))
		args = append(args, update.ClockOut)
		argIdx++
	}
	if update.Advance != nil {
		updates = append(updates, fmt.Sprintf("advance = $%d", argIdx))
		args = append(args, update.Advance)
		argIdx++
	}
	if update.Bonus != nil {
		updates = append(updates, fmt.Sprintf("bonus = $%d", argIdx))
		args = append(args, update.Bonus)
		argIdx++
	}
	if update.ExtraPay != nil {
		updates = append(updates, fmt.Sprintf("extra_pay = $%d", argIdx))
		args = append(args, update.ExtraPay)
		argIdx++
	}
	if update.DoubleShiftPay != nil {
		updates = append(updates, fmt.Sprintf("double_shift_pay = $%d", argIdx))
		args = append(args, update.DoubleShiftPay)
		argIdx++
	}
	if update.Infraction != nil {
		updates = append(updates, fmt.Sprintf("infraction = $%d", argIdx))
		args = append(args, update.Infraction)
		argIdx++
	}
	if update.SuspensionDays != nil {
		updates = append(updates, fmt.Sprintf("suspension_days = $%d", argIdx))
		args = append(args, update.SuspensionDays)
		argIdx++
	}
	if update.Remark != nil {
		updates = append(updates, fmt.Sprintf("remark = $%d", argIdx))
		args = append(args, update.Remark)
		argIdx++
	}
	if update.Paid != nil {
		updates = append(updates, fmt.Sprintf("paid = $%d", argIdx))
		args = append(args, update.Paid)
		argIdx++
	}

	if len(updates) == 0 {
		return ledger.Row{}, ledger.ErrNoUpdatableFields
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, update.RowID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		ledgerTable(month), strings.Join(updates, ", "), argIdx, ledgerColumns)

	var r ledger.Row
	if err := scanLedgerRow(q.QueryRow(ctx, query, args...), &r); err != nil {
		if err == pgx.ErrNoRows {
			return ledger.Row{}, ledger.ErrRowNotFound
		}
		return ledger.Row{}, fmt.Errorf("failed to update ledger row: %w", err)
	}

	return r, nil
}

// UpdateSyncFields implements ledger.LedgerRepository.
func (l *ledgerRepository) UpdateSyncFields(ctx context.Context, month ledger.Month, update ledger.SyncUpdate) error {
	q := GetQuerier(ctx, l.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET presence = $1,
			clock_in = $2,
			clock_out = $3,
			missing_exit = $4,
			late_minutes = $5,
			auto_infraction = $6,
			updated_at = $7
		WHERE id = $8
		RETURNING id
	`, ledgerTable(month))

	var updatedID string
	err := q.QueryRow(ctx, query,
		update.Presence,
		update.ClockIn,
		update.ClockOut,
		update.MissingExit,
		update.LateMinutes,
		update.AutoInfraction,
		time.Now(),
		update.RowID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.ErrRowNotFound
		}
		return fmt.Errorf("failed to update ledger sync fields: %w", err)
	}

	return nil
}

func prefixColumns(alias string, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepository{db: db}
}
