package sales

import (
	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// SaleLineInput is one cart line of a new sale. UnitPrice overrides the
// product's list price when set (e.g. a per-line haggle); cost is always
// captured from the product.
type SaleLineInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice *decimal.Decimal
}

// PaymentInput is one tendered payment
type PaymentInput struct {
	Method sales.PaymentMethod
	Amount decimal.Decimal
}

// CreateSaleInput carries a complete checkout: cart, discount and payments
type CreateSaleInput struct {
	CustomerID *uuid.UUID
	Lines      []SaleLineInput
	Discount   decimal.Decimal
	Payments   []PaymentInput
}

// ReturnInput carries a return request against an existing sale
type ReturnInput struct {
	Items        []sales.ReturnItem
	RefundMethod sales.PaymentMethod
}
