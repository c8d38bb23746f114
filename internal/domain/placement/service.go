package placement

import (
	"context"
	"time"
)

// PlacementService defines the read-only shift placement view.
type PlacementService interface {
	// ForDay groups active employees by department and shift bucket for the
	// given calendar date.
	ForDay(ctx context.Context, date time.Time) (DayPlacement, error)
}
