package purchasing

import (
	"context"

	"github.com/google/uuid"
)

// PurchaseOrderRepository defines persistence operations for purchase orders
type PurchaseOrderRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseOrder, error)
	SaveWithLines(ctx context.Context, order *PurchaseOrder) error
	GenerateOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// SupplierInvoiceRepository defines persistence operations for supplier invoices
type SupplierInvoiceRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*SupplierInvoice, error)
	Save(ctx context.Context, invoice *SupplierInvoice) error
	GenerateInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
