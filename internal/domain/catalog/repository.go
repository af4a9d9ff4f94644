package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error)
	Save(ctx context.Context, product *Product) error
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Category, error)
	FindWithAccountOverrides(ctx context.Context, tenantID uuid.UUID) ([]Category, error)
	Save(ctx context.Context, category *Category) error
}
