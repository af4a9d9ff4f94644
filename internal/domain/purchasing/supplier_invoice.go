package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks how much of a supplier invoice has been paid
type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "unpaid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
)

// SupplierInvoice is an amount owed to a supplier, typically raised against
// a received purchase order.
type SupplierInvoice struct {
	shared.TenantEntity
	InvoiceNumber   string
	SupplierID      uuid.UUID
	SupplierName    string
	PurchaseOrderID *uuid.UUID
	Total           decimal.Decimal
	AmountPaid      decimal.Decimal
	Status          InvoiceStatus
	IssuedAt        time.Time
}

// NewSupplierInvoice creates an unpaid invoice
func NewSupplierInvoice(tenantID uuid.UUID, invoiceNumber string, supplierID uuid.UUID, supplierName string, purchaseOrderID *uuid.UUID, total decimal.Decimal, issuedAt time.Time) (*SupplierInvoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice number is required")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier is required")
	}
	if !total.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice total must be positive")
	}
	return &SupplierInvoice{
		TenantEntity:    shared.NewTenantEntity(tenantID),
		InvoiceNumber:   invoiceNumber,
		SupplierID:      supplierID,
		SupplierName:    supplierName,
		PurchaseOrderID: purchaseOrderID,
		Total:           total,
		AmountPaid:      decimal.Zero,
		Status:          InvoiceStatusUnpaid,
		IssuedAt:        issuedAt,
	}, nil
}

// RecordPayment applies a payment and recomputes the status
func (inv *SupplierInvoice) RecordPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}
	if amount.GreaterThan(inv.Outstanding()) {
		return shared.NewDomainError("INVALID_INPUT", "Payment exceeds the outstanding amount")
	}
	inv.AmountPaid = inv.AmountPaid.Add(amount)
	if inv.AmountPaid.GreaterThanOrEqual(inv.Total) {
		inv.Status = InvoiceStatusPaid
	} else {
		inv.Status = InvoiceStatusPartiallyPaid
	}
	return nil
}

// Outstanding is the unpaid remainder
func (inv *SupplierInvoice) Outstanding() decimal.Decimal {
	return inv.Total.Sub(inv.AmountPaid)
}
