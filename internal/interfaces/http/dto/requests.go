package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest creates a chart-of-accounts row
type CreateAccountRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Number      string  `json:"number" binding:"required,max=32"`
	Type        string  `json:"type" binding:"required,oneof=asset liability equity revenue expense"`
	SubType     *string `json:"sub_type" binding:"omitempty"`
	Description string  `json:"description" binding:"max=1000"`
}

// UpdateAccountRequest renames or renumbers an account
type UpdateAccountRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Number      string `json:"number" binding:"required,max=32"`
	Description string `json:"description" binding:"max=1000"`
}

// SaleLineRequest is one cart line of a checkout
type SaleLineRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required,dpositive"`
	UnitPrice *decimal.Decimal `json:"unit_price" binding:"omitempty,dnonneg"`
}

// SalePaymentRequest is one tendered payment at checkout
type SalePaymentRequest struct {
	Method string          `json:"method" binding:"required,oneof=cash card store_credit"`
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
}

// CreateSaleRequest checks out a cart
type CreateSaleRequest struct {
	CustomerID *uuid.UUID           `json:"customer_id"`
	Lines      []SaleLineRequest    `json:"lines" binding:"required,min=1,dive"`
	Discount   decimal.Decimal      `json:"discount" binding:"dnonneg"`
	Payments   []SalePaymentRequest `json:"payments" binding:"dive"`
}

// RecordPaymentRequest records a payment against an existing sale
type RecordPaymentRequest struct {
	Method string          `json:"method" binding:"required,oneof=cash card store_credit"`
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
}

// ReturnItemRequest is one returned quantity against a sale line
type ReturnItemRequest struct {
	LineID   uuid.UUID       `json:"line_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required,dpositive"`
}

// ReturnSaleRequest returns part of a sale
type ReturnSaleRequest struct {
	Items        []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
	RefundMethod string              `json:"refund_method" binding:"required,oneof=cash card store_credit"`
}

// OrderLineRequest is one ordered item on a purchase order
type OrderLineRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required,dpositive"`
	UnitCost  *decimal.Decimal `json:"unit_cost" binding:"omitempty,dnonneg"`
}

// CreatePurchaseOrderRequest places a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID          `json:"supplier_id" binding:"required"`
	Lines      []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ReceiptItemRequest is one received quantity against an order line
type ReceiptItemRequest struct {
	LineID   uuid.UUID       `json:"line_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required,dpositive"`
}

// ReceiveItemsRequest records a delivery against a purchase order
type ReceiveItemsRequest struct {
	Items []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateSupplierInvoiceRequest raises a supplier invoice
type CreateSupplierInvoiceRequest struct {
	SupplierID      uuid.UUID       `json:"supplier_id" binding:"required"`
	PurchaseOrderID *uuid.UUID      `json:"purchase_order_id"`
	Total           decimal.Decimal `json:"total" binding:"required,dpositive"`
}

// PaySupplierInvoiceRequest pays down a supplier invoice
type PaySupplierInvoiceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
}

// AdjustStockRequest applies a manual signed stock correction
type AdjustStockRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Delta     decimal.Decimal `json:"delta" binding:"required"`
	Reason    string          `json:"reason" binding:"required,max=500"`
}

// CreateStockTakeRequest starts a count over a set of products
type CreateStockTakeRequest struct {
	Reference  string      `json:"reference" binding:"required,max=100"`
	ProductIDs []uuid.UUID `json:"product_ids" binding:"required,min=1"`
}

// CountRequest is one counted quantity in a stock take
type CountRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Counted   decimal.Decimal `json:"counted" binding:"dnonneg"`
}

// RecordCountsRequest records counted quantities in a stock take
type RecordCountsRequest struct {
	Counts []CountRequest `json:"counts" binding:"required,min=1,dive"`
}

// CreateProductRequest creates a product
type CreateProductRequest struct {
	SKU        string          `json:"sku" binding:"required,max=64"`
	Name       string          `json:"name" binding:"required,max=255"`
	CategoryID *uuid.UUID      `json:"category_id"`
	SalePrice  decimal.Decimal `json:"sale_price" binding:"dnonneg"`
	CostPrice  decimal.Decimal `json:"cost_price" binding:"dnonneg"`
	TaxRate    decimal.Decimal `json:"tax_rate" binding:"dnonneg"`
}

// CreateCategoryRequest creates a category, optionally with account overrides
type CreateCategoryRequest struct {
	Name             string     `json:"name" binding:"required,max=255"`
	RevenueAccountID *uuid.UUID `json:"revenue_account_id"`
	COGSAccountID    *uuid.UUID `json:"cogs_account_id"`
}

// CreateCustomerRequest creates a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Phone string `json:"phone" binding:"max=32"`
	Email string `json:"email" binding:"omitempty,email"`
}

// CreateSupplierRequest creates a supplier
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Phone string `json:"phone" binding:"max=32"`
	Email string `json:"email" binding:"omitempty,email"`
}
