package partner

import (
	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Customer is a retail customer. Balance is what the customer owes on unpaid
// or partially paid sales; StoreCredit is what the store owes the customer.
type Customer struct {
	shared.TenantEntity
	Name        string
	Phone       string
	Email       string
	Balance     decimal.Decimal
	StoreCredit decimal.Decimal
}

// NewCustomer creates a customer
func NewCustomer(tenantID uuid.UUID, name, phone, email string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name is required")
	}
	return &Customer{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Phone:        phone,
		Email:        email,
		Balance:      decimal.Zero,
		StoreCredit:  decimal.Zero,
	}, nil
}

// AddBalance increases what the customer owes
func (c *Customer) AddBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Balance increase cannot be negative")
	}
	c.Balance = c.Balance.Add(amount)
	return nil
}

// SettleBalance reduces what the customer owes after a payment. Overpayment
// is capped at zero; the excess stays with the sale's amountPaid bookkeeping.
func (c *Customer) SettleBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Settlement amount cannot be negative")
	}
	c.Balance = c.Balance.Sub(amount)
	if c.Balance.IsNegative() {
		c.Balance = decimal.Zero
	}
	return nil
}

// AddStoreCredit increases the customer's store credit (e.g. refunds)
func (c *Customer) AddStoreCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Store credit increase cannot be negative")
	}
	c.StoreCredit = c.StoreCredit.Add(amount)
	return nil
}

// UseStoreCredit spends store credit against a sale
func (c *Customer) UseStoreCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Store credit amount cannot be negative")
	}
	if c.StoreCredit.LessThan(amount) {
		return shared.ErrInsufficientCredit
	}
	c.StoreCredit = c.StoreCredit.Sub(amount)
	return nil
}

// Supplier is a purchasing counterparty. Balance is what the store owes.
type Supplier struct {
	shared.TenantEntity
	Name    string
	Phone   string
	Email   string
	Balance decimal.Decimal
}

// NewSupplier creates a supplier
func NewSupplier(tenantID uuid.UUID, name, phone, email string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier name is required")
	}
	return &Supplier{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Phone:        phone,
		Email:        email,
		Balance:      decimal.Zero,
	}, nil
}

// AddBalance increases what the store owes the supplier
func (s *Supplier) AddBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Balance increase cannot be negative")
	}
	s.Balance = s.Balance.Add(amount)
	return nil
}

// SettleBalance reduces what the store owes after a supplier payment
func (s *Supplier) SettleBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Settlement amount cannot be negative")
	}
	s.Balance = s.Balance.Sub(amount)
	if s.Balance.IsNegative() {
		s.Balance = decimal.Zero
	}
	return nil
}
