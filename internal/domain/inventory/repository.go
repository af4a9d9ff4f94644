package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockTakeRepository defines persistence operations for stock takes
type StockTakeRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*StockTake, error)
	SaveWithLines(ctx context.Context, stockTake *StockTake) error
}
