package partner

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	Save(ctx context.Context, customer *Customer) error
}

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
}
