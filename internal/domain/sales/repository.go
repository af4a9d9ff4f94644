package sales

import (
	"context"

	"github.com/google/uuid"
)

// SaleRepository defines persistence operations for sales
type SaleRepository interface {
	// FindByIDForTenant finds a sale with its lines and payments
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Sale, error)
	// SaveWithLines persists the sale header, lines and payments
	SaveWithLines(ctx context.Context, sale *Sale) error
	// GenerateSaleNumber produces the next sale number for the tenant
	GenerateSaleNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
