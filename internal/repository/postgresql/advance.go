package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/payroll"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/database"
)

// advanceRepository reads the advances table owned by the external advances
// collaborator.
type advanceRepository struct {
	db *database.DB
}

// ListByMonth implements payroll.AdvanceRepository.
func (a *advanceRepository) ListByMonth(ctx context.Context, month ledger.Month) ([]payroll.Advance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, amount, status, created_at
		FROM advances
		WHERE month_key = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, month.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	var advances []payroll.Advance
	for rows.Next() {
		adv := payroll.Advance{Month: month}
		err := rows.Scan(&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Status, &adv.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, adv)
	}

	return advances, nil
}

func NewAdvanceRepository(db *database.DB) payroll.AdvanceRepository {
	return &advanceRepository{db: db}
}
