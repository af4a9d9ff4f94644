package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks how much of a sale has been paid
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
)

// PaymentMethod is how a payment was tendered
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodStoreCredit PaymentMethod = "store_credit"
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodStoreCredit:
		return true
	}
	return false
}

// SaleLine is one cart line. CostPriceAtSale is the product's cost captured
// at sale time; later cost changes never rewrite past COGS.
type SaleLine struct {
	ID               uuid.UUID
	SaleID           uuid.UUID
	ProductID        uuid.UUID
	ProductName      string
	CategoryID       *uuid.UUID
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	CostPriceAtSale  decimal.Decimal
	ReturnedQuantity decimal.Decimal
}

// GrossValue is the undiscounted value of the line
func (l *SaleLine) GrossValue() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Cost is the total cost of goods sold for the line
func (l *SaleLine) Cost() decimal.Decimal {
	return l.Quantity.Mul(l.CostPriceAtSale)
}

// ReturnableQuantity is how much of the line can still be returned
func (l *SaleLine) ReturnableQuantity() decimal.Decimal {
	return l.Quantity.Sub(l.ReturnedQuantity)
}

// SalePayment is one payment row against a sale
type SalePayment struct {
	ID     uuid.UUID
	SaleID uuid.UUID
	Method PaymentMethod
	Amount decimal.Decimal
	PaidAt time.Time
}

// Sale is the point-of-sale aggregate: header, cart lines and payments.
// GrossTotal is the undiscounted cart value, Subtotal is after the sale-level
// discount, Total adds tax.
type Sale struct {
	shared.TenantEntity
	SaleNumber    string
	CustomerID    *uuid.UUID
	GrossTotal    decimal.Decimal
	DiscountTotal decimal.Decimal
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentStatus PaymentStatus
	SoldAt        time.Time
	Lines         []SaleLine
	Payments      []SalePayment
}

// NewSale creates an empty sale
func NewSale(tenantID uuid.UUID, saleNumber string, customerID *uuid.UUID, soldAt time.Time) (*Sale, error) {
	if saleNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale number is required")
	}
	return &Sale{
		TenantEntity:  shared.NewTenantEntity(tenantID),
		SaleNumber:    saleNumber,
		CustomerID:    customerID,
		GrossTotal:    decimal.Zero,
		DiscountTotal: decimal.Zero,
		Subtotal:      decimal.Zero,
		TaxTotal:      decimal.Zero,
		Total:         decimal.Zero,
		AmountPaid:    decimal.Zero,
		PaymentStatus: PaymentStatusUnpaid,
		SoldAt:        soldAt,
	}, nil
}

// AddLine appends a cart line and recomputes the totals
func (s *Sale) AddLine(productID uuid.UUID, productName string, categoryID *uuid.UUID, quantity, unitPrice, costPriceAtSale decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Line quantity must be positive")
	}
	if unitPrice.IsNegative() || costPriceAtSale.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Line prices cannot be negative")
	}
	s.Lines = append(s.Lines, SaleLine{
		ID:               uuid.New(),
		SaleID:           s.ID,
		ProductID:        productID,
		ProductName:      productName,
		CategoryID:       categoryID,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		CostPriceAtSale:  costPriceAtSale,
		ReturnedQuantity: decimal.Zero,
	})
	s.recalculate()
	return nil
}

// ApplyDiscount sets the sale-level discount and recomputes the totals
func (s *Sale) ApplyDiscount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Discount cannot be negative")
	}
	if amount.GreaterThan(s.GrossTotal) {
		return shared.NewDomainError("INVALID_INPUT", "Discount cannot exceed the cart value")
	}
	s.DiscountTotal = amount
	s.recalculate()
	return nil
}

// SetTax sets the tax amount and recomputes the total
func (s *Sale) SetTax(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Tax cannot be negative")
	}
	s.TaxTotal = amount
	s.recalculate()
	return nil
}

func (s *Sale) recalculate() {
	gross := decimal.Zero
	for i := range s.Lines {
		gross = gross.Add(s.Lines[i].GrossValue())
	}
	s.GrossTotal = gross
	s.Subtotal = gross.Sub(s.DiscountTotal)
	s.Total = s.Subtotal.Add(s.TaxTotal)
	s.refreshPaymentStatus()
}

// AddPayment records a payment and recomputes amountPaid and paymentStatus
func (s *Sale) AddPayment(method PaymentMethod, amount decimal.Decimal, paidAt time.Time) error {
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown payment method: "+string(method))
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}
	s.Payments = append(s.Payments, SalePayment{
		ID:     uuid.New(),
		SaleID: s.ID,
		Method: method,
		Amount: amount,
		PaidAt: paidAt,
	})
	s.AmountPaid = s.AmountPaid.Add(amount)
	s.refreshPaymentStatus()
	return nil
}

func (s *Sale) refreshPaymentStatus() {
	switch {
	case s.AmountPaid.GreaterThanOrEqual(s.Total) && s.Total.IsPositive():
		s.PaymentStatus = PaymentStatusPaid
	case s.AmountPaid.IsPositive():
		s.PaymentStatus = PaymentStatusPartiallyPaid
	default:
		s.PaymentStatus = PaymentStatusUnpaid
	}
}

// IsPaid reports whether the sale is fully paid
func (s *Sale) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// Outstanding is the unpaid remainder of the sale
func (s *Sale) Outstanding() decimal.Decimal {
	outstanding := s.Total.Sub(s.AmountPaid)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}

// DiscountRatio is Subtotal / GrossTotal, the factor revenue is prorated by.
// A cart of zero-priced items has nothing to prorate, so the ratio is 1.
func (s *Sale) DiscountRatio() decimal.Decimal {
	if s.GrossTotal.IsZero() {
		return decimal.NewFromInt(1)
	}
	return s.Subtotal.Div(s.GrossTotal)
}

// TotalCost is the total cost of goods sold across the cart
func (s *Sale) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for i := range s.Lines {
		total = total.Add(s.Lines[i].Cost())
	}
	return total
}

// ReturnItem requests a quantity of one sale line to be returned
type ReturnItem struct {
	LineID   uuid.UUID
	Quantity decimal.Decimal
}

// ReturnedLine is one computed line of a return
type ReturnedLine struct {
	ProductID    uuid.UUID
	CategoryID   *uuid.UUID
	Quantity     decimal.Decimal
	RevenueValue decimal.Decimal // prorated revenue being reversed
	Cost         decimal.Decimal // cost of goods flowing back into inventory
}

// ReturnComputation is the financial effect of a return, derived from the
// sale's own proration so the reversal mirrors the original posting.
type ReturnComputation struct {
	Lines          []ReturnedLine
	RefundSubtotal decimal.Decimal
	RefundTax      decimal.Decimal
	RefundTotal    decimal.Decimal
	TotalCost      decimal.Decimal
}

// ApplyReturn validates the requested quantities, marks them returned on the
// sale and computes the refund and reversal amounts. Revenue is reversed at
// the same discount ratio the sale was posted with; tax is scaled by the
// returned share of the subtotal.
func (s *Sale) ApplyReturn(items []ReturnItem) (*ReturnComputation, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Return must include at least one line")
	}

	ratio := s.DiscountRatio()
	result := &ReturnComputation{
		RefundSubtotal: decimal.Zero,
		RefundTax:      decimal.Zero,
		RefundTotal:    decimal.Zero,
		TotalCost:      decimal.Zero,
	}

	for _, item := range items {
		if !item.Quantity.IsPositive() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Return quantity must be positive")
		}
		line := s.findLine(item.LineID)
		if line == nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Sale line not found")
		}
		if item.Quantity.GreaterThan(line.ReturnableQuantity()) {
			return nil, shared.NewDomainError("INVALID_INPUT", "Return quantity exceeds the remaining quantity on the line")
		}

		line.ReturnedQuantity = line.ReturnedQuantity.Add(item.Quantity)

		revenueValue := item.Quantity.Mul(line.UnitPrice).Mul(ratio)
		cost := item.Quantity.Mul(line.CostPriceAtSale)
		result.Lines = append(result.Lines, ReturnedLine{
			ProductID:    line.ProductID,
			CategoryID:   line.CategoryID,
			Quantity:     item.Quantity,
			RevenueValue: revenueValue,
			Cost:         cost,
		})
		result.RefundSubtotal = result.RefundSubtotal.Add(revenueValue)
		result.TotalCost = result.TotalCost.Add(cost)
	}

	if s.Subtotal.IsPositive() {
		result.RefundTax = s.TaxTotal.Mul(result.RefundSubtotal).Div(s.Subtotal)
	}
	result.RefundTotal = result.RefundSubtotal.Add(result.RefundTax)
	return result, nil
}

func (s *Sale) findLine(lineID uuid.UUID) *SaleLine {
	for i := range s.Lines {
		if s.Lines[i].ID == lineID {
			return &s.Lines[i]
		}
	}
	return nil
}
