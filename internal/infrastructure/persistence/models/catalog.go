package models

import (
	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for product categories.
type CategoryModel struct {
	TenantModel
	Name             string     `gorm:"type:varchar(200);not null"`
	RevenueAccountID *uuid.UUID `gorm:"type:uuid"`
	COGSAccountID    *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		TenantEntity:     m.ToDomainTenantEntity(),
		Name:             m.Name,
		RevenueAccountID: m.RevenueAccountID,
		COGSAccountID:    m.COGSAccountID,
	}
}

// FromDomain populates the persistence model from a domain Category
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.Name = c.Name
	m.RevenueAccountID = c.RevenueAccountID
	m.COGSAccountID = c.COGSAccountID
}

// CategoryModelFromDomain creates a new persistence model from a domain Category
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ProductModel is the persistence model for products.
type ProductModel struct {
	TenantModel
	SKU           string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_tenant_sku,priority:2"`
	Name          string          `gorm:"type:varchar(200);not null"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	StockQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		TenantEntity:  m.ToDomainTenantEntity(),
		SKU:           m.SKU,
		Name:          m.Name,
		CategoryID:    m.CategoryID,
		SalePrice:     m.SalePrice,
		CostPrice:     m.CostPrice,
		TaxRate:       m.TaxRate,
		StockQuantity: m.StockQuantity,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainTenantEntity(p.TenantEntity)
	m.SKU = p.SKU
	m.Name = p.Name
	m.CategoryID = p.CategoryID
	m.SalePrice = p.SalePrice
	m.CostPrice = p.CostPrice
	m.TaxRate = p.TaxRate
	m.StockQuantity = p.StockQuantity
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
