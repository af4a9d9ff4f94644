package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for the Sale aggregate.
type SaleModel struct {
	TenantModel
	SaleNumber    string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_sale_tenant_number,priority:2"`
	CustomerID    *uuid.UUID          `gorm:"type:uuid;index"`
	GrossTotal    decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	DiscountTotal decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Subtotal      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	TaxTotal      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Total         decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	AmountPaid    decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	PaymentStatus sales.PaymentStatus `gorm:"type:varchar(20);not null;index"`
	SoldAt        time.Time           `gorm:"not null;index"`
	Lines         []SaleLineModel     `gorm:"foreignKey:SaleID;references:ID"`
	Payments      []SalePaymentModel  `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// SaleLineModel is the persistence model for sale lines.
type SaleLineModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName      string          `gorm:"type:varchar(200);not null"`
	CategoryID       *uuid.UUID      `gorm:"type:uuid"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CostPriceAtSale  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReturnedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SaleLineModel) TableName() string {
	return "sale_lines"
}

// SalePaymentModel is the persistence model for sale payments.
type SalePaymentModel struct {
	ID     uuid.UUID           `gorm:"type:uuid;primary_key"`
	SaleID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Method sales.PaymentMethod `gorm:"type:varchar(20);not null"`
	Amount decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	PaidAt time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalePaymentModel) TableName() string {
	return "sale_payments"
}

// ToDomain converts the persistence model to a domain Sale
func (m *SaleModel) ToDomain() *sales.Sale {
	lines := make([]sales.SaleLine, len(m.Lines))
	for i := range m.Lines {
		lines[i] = sales.SaleLine{
			ID:               m.Lines[i].ID,
			SaleID:           m.Lines[i].SaleID,
			ProductID:        m.Lines[i].ProductID,
			ProductName:      m.Lines[i].ProductName,
			CategoryID:       m.Lines[i].CategoryID,
			Quantity:         m.Lines[i].Quantity,
			UnitPrice:        m.Lines[i].UnitPrice,
			CostPriceAtSale:  m.Lines[i].CostPriceAtSale,
			ReturnedQuantity: m.Lines[i].ReturnedQuantity,
		}
	}
	payments := make([]sales.SalePayment, len(m.Payments))
	for i := range m.Payments {
		payments[i] = sales.SalePayment{
			ID:     m.Payments[i].ID,
			SaleID: m.Payments[i].SaleID,
			Method: m.Payments[i].Method,
			Amount: m.Payments[i].Amount,
			PaidAt: m.Payments[i].PaidAt,
		}
	}
	return &sales.Sale{
		TenantEntity:  m.ToDomainTenantEntity(),
		SaleNumber:    m.SaleNumber,
		CustomerID:    m.CustomerID,
		GrossTotal:    m.GrossTotal,
		DiscountTotal: m.DiscountTotal,
		Subtotal:      m.Subtotal,
		TaxTotal:      m.TaxTotal,
		Total:         m.Total,
		AmountPaid:    m.AmountPaid,
		PaymentStatus: m.PaymentStatus,
		SoldAt:        m.SoldAt,
		Lines:         lines,
		Payments:      payments,
	}
}

// FromDomain populates the persistence model from a domain Sale
func (m *SaleModel) FromDomain(s *sales.Sale) {
	m.FromDomainTenantEntity(s.TenantEntity)
	m.SaleNumber = s.SaleNumber
	m.CustomerID = s.CustomerID
	m.GrossTotal = s.GrossTotal
	m.DiscountTotal = s.DiscountTotal
	m.Subtotal = s.Subtotal
	m.TaxTotal = s.TaxTotal
	m.Total = s.Total
	m.AmountPaid = s.AmountPaid
	m.PaymentStatus = s.PaymentStatus
	m.SoldAt = s.SoldAt
	m.Lines = make([]SaleLineModel, len(s.Lines))
	for i := range s.Lines {
		m.Lines[i] = SaleLineModel{
			ID:               s.Lines[i].ID,
			SaleID:           s.Lines[i].SaleID,
			ProductID:        s.Lines[i].ProductID,
			ProductName:      s.Lines[i].ProductName,
			CategoryID:       s.Lines[i].CategoryID,
			Quantity:         s.Lines[i].Quantity,
			UnitPrice:        s.Lines[i].UnitPrice,
			CostPriceAtSale:  s.Lines[i].CostPriceAtSale,
			ReturnedQuantity: s.Lines[i].ReturnedQuantity,
		}
	}
	m.Payments = make([]SalePaymentModel, len(s.Payments))
	for i := range s.Payments {
		m.Payments[i] = SalePaymentModel{
			ID:     s.Payments[i].ID,
			SaleID: s.Payments[i].SaleID,
			Method: s.Payments[i].Method,
			Amount: s.Payments[i].Amount,
			PaidAt: s.Payments[i].PaidAt,
		}
	}
}

// SaleModelFromDomain creates a new persistence model from a domain Sale
func SaleModelFromDomain(s *sales.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}
