package catalog

import (
	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Category groups products and may override the tenant's default revenue and
// COGS accounts for sale postings of its products.
type Category struct {
	shared.TenantEntity
	Name             string
	RevenueAccountID *uuid.UUID
	COGSAccountID    *uuid.UUID
}

// NewCategory creates a category without account overrides
func NewCategory(tenantID uuid.UUID, name string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	return &Category{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
	}, nil
}

// SetAccountOverrides sets the optional revenue/COGS account overrides
func (c *Category) SetAccountOverrides(revenueAccountID, cogsAccountID *uuid.UUID) {
	c.RevenueAccountID = revenueAccountID
	c.COGSAccountID = cogsAccountID
}

// HasAccountOverride reports whether the category overrides either account
func (c *Category) HasAccountOverride() bool {
	return c.RevenueAccountID != nil || c.COGSAccountID != nil
}

// Product is a sellable item. CostPrice is the current replacement cost used
// for COGS when the product is sold; sales capture it per line at sale time.
type Product struct {
	shared.TenantEntity
	SKU           string
	Name          string
	CategoryID    *uuid.UUID
	SalePrice     decimal.Decimal
	CostPrice     decimal.Decimal
	TaxRate       decimal.Decimal
	StockQuantity decimal.Decimal
}

// NewProduct creates a product
func NewProduct(tenantID uuid.UUID, sku, name string, categoryID *uuid.UUID, salePrice, costPrice, taxRate decimal.Decimal) (*Product, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product SKU is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if salePrice.IsNegative() || costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product prices cannot be negative")
	}
	return &Product{
		TenantEntity:  shared.NewTenantEntity(tenantID),
		SKU:           sku,
		Name:          name,
		CategoryID:    categoryID,
		SalePrice:     salePrice,
		CostPrice:     costPrice,
		TaxRate:       taxRate,
		StockQuantity: decimal.Zero,
	}, nil
}

// AdjustStock applies a signed quantity delta. Stock can never go negative.
func (p *Product) AdjustStock(delta decimal.Decimal) error {
	next := p.StockQuantity.Add(delta)
	if next.IsNegative() {
		return shared.ErrInsufficientStock
	}
	p.StockQuantity = next
	return nil
}

// SetStock replaces the stock quantity, for stock-take reconciliation
func (p *Product) SetStock(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Stock quantity cannot be negative")
	}
	p.StockQuantity = quantity
	return nil
}
