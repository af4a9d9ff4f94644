package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle of a purchase order
type OrderStatus string

const (
	OrderStatusDraft             OrderStatus = "draft"
	OrderStatusOrdered           OrderStatus = "ordered"
	OrderStatusPartiallyReceived OrderStatus = "partially_received"
	OrderStatusReceived          OrderStatus = "received"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// PurchaseOrderLine is one ordered item. UnitCost is the cost agreed at order
// time; receptions are valued at this cost even when the product's current
// cost has since changed.
type PurchaseOrderLine struct {
	ID               uuid.UUID
	PurchaseOrderID  uuid.UUID
	ProductID        uuid.UUID
	ProductName      string
	Quantity         decimal.Decimal
	ReceivedQuantity decimal.Decimal
	UnitCost         decimal.Decimal
}

// OutstandingQuantity is how much of the line is still undelivered
func (l *PurchaseOrderLine) OutstandingQuantity() decimal.Decimal {
	return l.Quantity.Sub(l.ReceivedQuantity)
}

// PurchaseOrder is the purchasing aggregate
type PurchaseOrder struct {
	shared.TenantEntity
	OrderNumber  string
	SupplierID   uuid.UUID
	SupplierName string
	Status       OrderStatus
	OrderedAt    time.Time
	Lines        []PurchaseOrderLine
}

// NewPurchaseOrder creates an order in draft status
func NewPurchaseOrder(tenantID uuid.UUID, orderNumber string, supplierID uuid.UUID, supplierName string, orderedAt time.Time) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order number is required")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier is required")
	}
	return &PurchaseOrder{
		TenantEntity: shared.NewTenantEntity(tenantID),
		OrderNumber:  orderNumber,
		SupplierID:   supplierID,
		SupplierName: supplierName,
		Status:       OrderStatusDraft,
		OrderedAt:    orderedAt,
	}, nil
}

// AddLine appends an ordered item
func (po *PurchaseOrder) AddLine(productID uuid.UUID, productName string, quantity, unitCost decimal.Decimal) error {
	if po.Status != OrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Lines can only be added to a draft order")
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Line quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Unit cost cannot be negative")
	}
	po.Lines = append(po.Lines, PurchaseOrderLine{
		ID:               uuid.New(),
		PurchaseOrderID:  po.ID,
		ProductID:        productID,
		ProductName:      productName,
		Quantity:         quantity,
		ReceivedQuantity: decimal.Zero,
		UnitCost:         unitCost,
	})
	return nil
}

// Place moves a draft order with lines to ordered
func (po *PurchaseOrder) Place() error {
	if po.Status != OrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft orders can be placed")
	}
	if len(po.Lines) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Order has no lines")
	}
	po.Status = OrderStatusOrdered
	return nil
}

// ReceiptItem is one received quantity against an order line
type ReceiptItem struct {
	LineID   uuid.UUID
	Quantity decimal.Decimal
}

// ReceivedProduct is the inventory effect of one received line
type ReceivedProduct struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Cost      decimal.Decimal // quantity valued at the order line's unit cost
}

// Receive applies received quantities to the order lines, recomputes the
// order status and returns the per-product inventory effects plus the total
// received cost, valued at each line's ordered cost.
func (po *PurchaseOrder) Receive(items []ReceiptItem) ([]ReceivedProduct, decimal.Decimal, error) {
	if po.Status != OrderStatusOrdered && po.Status != OrderStatusPartiallyReceived {
		return nil, decimal.Zero, shared.NewDomainError("INVALID_STATE", "Order is not open for receiving")
	}
	if len(items) == 0 {
		return nil, decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Reception must include at least one line")
	}

	received := make([]ReceivedProduct, 0, len(items))
	totalCost := decimal.Zero
	for _, item := range items {
		if !item.Quantity.IsPositive() {
			return nil, decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Received quantity must be positive")
		}
		line := po.findLine(item.LineID)
		if line == nil {
			return nil, decimal.Zero, shared.NewDomainError("NOT_FOUND", "Purchase order line not found")
		}
		if item.Quantity.GreaterThan(line.OutstandingQuantity()) {
			return nil, decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Received quantity exceeds the outstanding quantity on the line")
		}

		line.ReceivedQuantity = line.ReceivedQuantity.Add(item.Quantity)
		cost := item.Quantity.Mul(line.UnitCost)
		totalCost = totalCost.Add(cost)
		received = append(received, ReceivedProduct{
			ProductID: line.ProductID,
			Quantity:  item.Quantity,
			Cost:      cost,
		})
	}

	po.refreshStatus()
	return received, totalCost, nil
}

func (po *PurchaseOrder) refreshStatus() {
	allReceived := true
	anyReceived := false
	for i := range po.Lines {
		if po.Lines[i].ReceivedQuantity.IsPositive() {
			anyReceived = true
		}
		if po.Lines[i].ReceivedQuantity.LessThan(po.Lines[i].Quantity) {
			allReceived = false
		}
	}
	switch {
	case allReceived:
		po.Status = OrderStatusReceived
	case anyReceived:
		po.Status = OrderStatusPartiallyReceived
	}
}

func (po *PurchaseOrder) findLine(lineID uuid.UUID) *PurchaseOrderLine {
	for i := range po.Lines {
		if po.Lines[i].ID == lineID {
			return &po.Lines[i]
		}
	}
	return nil
}
