package payroll

import (
	"context"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
)

// AdvanceRepository is the read-only view onto the advances collaborator.
type AdvanceRepository interface {
	// ListByMonth retrieves every advance recorded for the month, any status.
	ListByMonth(ctx context.Context, month ledger.Month) ([]Advance, error)
}
