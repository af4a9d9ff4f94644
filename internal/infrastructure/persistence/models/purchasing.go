package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
)

// PurchaseOrderModel is the persistence model for purchase orders.
type PurchaseOrderModel struct {
	TenantModel
	OrderNumber  string                   `gorm:"type:varchar(50);not null;uniqueIndex:idx_po_tenant_number,priority:2"`
	SupplierID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	SupplierName string                   `gorm:"type:varchar(200);not null"`
	Status       purchasing.OrderStatus   `gorm:"type:varchar(30);not null;index"`
	OrderedAt    time.Time                `gorm:"not null"`
	Lines        []PurchaseOrderLineModel `gorm:"foreignKey:PurchaseOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderLineModel is the persistence model for purchase order lines.
type PurchaseOrderLineModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	PurchaseOrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName      string          `gorm:"type:varchar(200);not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReceivedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderLineModel) TableName() string {
	return "purchase_order_lines"
}

// ToDomain converts the persistence model to a domain PurchaseOrder
func (m *PurchaseOrderModel) ToDomain() *purchasing.PurchaseOrder {
	lines := make([]purchasing.PurchaseOrderLine, len(m.Lines))
	for i := range m.Lines {
		lines[i] = purchasing.PurchaseOrderLine{
			ID:               m.Lines[i].ID,
			PurchaseOrderID:  m.Lines[i].PurchaseOrderID,
			ProductID:        m.Lines[i].ProductID,
			ProductName:      m.Lines[i].ProductName,
			Quantity:         m.Lines[i].Quantity,
			ReceivedQuantity: m.Lines[i].ReceivedQuantity,
			UnitCost:         m.Lines[i].UnitCost,
		}
	}
	return &purchasing.PurchaseOrder{
		TenantEntity: m.ToDomainTenantEntity(),
		OrderNumber:  m.OrderNumber,
		SupplierID:   m.SupplierID,
		SupplierName: m.SupplierName,
		Status:       m.Status,
		OrderedAt:    m.OrderedAt,
		Lines:        lines,
	}
}

// FromDomain populates the persistence model from a domain PurchaseOrder
func (m *PurchaseOrderModel) FromDomain(po *purchasing.PurchaseOrder) {
	m.FromDomainTenantEntity(po.TenantEntity)
	m.OrderNumber = po.OrderNumber
	m.SupplierID = po.SupplierID
	m.SupplierName = po.SupplierName
	m.Status = po.Status
	m.OrderedAt = po.OrderedAt
	m.Lines = make([]PurchaseOrderLineModel, len(po.Lines))
	for i := range po.Lines {
		m.Lines[i] = PurchaseOrderLineModel{
			ID:               po.Lines[i].ID,
			PurchaseOrderID:  po.Lines[i].PurchaseOrderID,
			ProductID:        po.Lines[i].ProductID,
			ProductName:      po.Lines[i].ProductName,
			Quantity:         po.Lines[i].Quantity,
			ReceivedQuantity: po.Lines[i].ReceivedQuantity,
			UnitCost:         po.Lines[i].UnitCost,
		}
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder
func PurchaseOrderModelFromDomain(po *purchasing.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(po)
	return m
}

// SupplierInvoiceModel is the persistence model for supplier invoices.
type SupplierInvoiceModel struct {
	TenantModel
	InvoiceNumber   string                   `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	SupplierID      uuid.UUID                `gorm:"type:uuid;not null;index"`
	SupplierName    string                   `gorm:"type:varchar(200);not null"`
	PurchaseOrderID *uuid.UUID               `gorm:"type:uuid;index"`
	Total           decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	AmountPaid      decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Status          purchasing.InvoiceStatus `gorm:"type:varchar(20);not null;index"`
	IssuedAt        time.Time                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SupplierInvoiceModel) TableName() string {
	return "supplier_invoices"
}

// ToDomain converts the persistence model to a domain SupplierInvoice
func (m *SupplierInvoiceModel) ToDomain() *purchasing.SupplierInvoice {
	return &purchasing.SupplierInvoice{
		TenantEntity:    m.ToDomainTenantEntity(),
		InvoiceNumber:   m.InvoiceNumber,
		SupplierID:      m.SupplierID,
		SupplierName:    m.SupplierName,
		PurchaseOrderID: m.PurchaseOrderID,
		Total:           m.Total,
		AmountPaid:      m.AmountPaid,
		Status:          m.Status,
		IssuedAt:        m.IssuedAt,
	}
}

// FromDomain populates the persistence model from a domain SupplierInvoice
func (m *SupplierInvoiceModel) FromDomain(inv *purchasing.SupplierInvoice) {
	m.FromDomainTenantEntity(inv.TenantEntity)
	m.InvoiceNumber = inv.InvoiceNumber
	m.SupplierID = inv.SupplierID
	m.SupplierName = inv.SupplierName
	m.PurchaseOrderID = inv.PurchaseOrderID
	m.Total = inv.Total
	m.AmountPaid = inv.AmountPaid
	m.Status = inv.Status
	m.IssuedAt = inv.IssuedAt
}

// SupplierInvoiceModelFromDomain creates a new persistence model from a domain SupplierInvoice
func SupplierInvoiceModelFromDomain(inv *purchasing.SupplierInvoice) *SupplierInvoiceModel {
	m := &SupplierInvoiceModel{}
	m.FromDomain(inv)
	return m
}
