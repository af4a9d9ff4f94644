package ledger

import (
	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AccountType classifies an account in the chart of accounts
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// IsValid checks if the account type is one of the known types
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// IsDebitNormal returns whether a debit increases the natural balance of
// accounts of this type. Assets and expenses are debit-normal; liabilities,
// equity and revenue are credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// String returns the string representation of AccountType
func (t AccountType) String() string {
	return string(t)
}

// AccountSubType tags a tenant's single canonical account for a functional
// role. At most one account per sub-type exists within a tenant.
type AccountSubType string

const (
	SubTypeCash                AccountSubType = "cash"
	SubTypeAccountsReceivable  AccountSubType = "accounts_receivable"
	SubTypeInventory           AccountSubType = "inventory"
	SubTypeAccountsPayable     AccountSubType = "accounts_payable"
	SubTypeSalesTaxPayable     AccountSubType = "sales_tax_payable"
	SubTypeStoreCreditPayable  AccountSubType = "store_credit_payable"
	SubTypeSalesRevenue        AccountSubType = "sales_revenue"
	SubTypeCOGS                AccountSubType = "cogs"
	SubTypeInventoryAdjustment AccountSubType = "inventory_adjustment"
)

// IsValid checks if the sub-type is one of the known functional roles
func (s AccountSubType) IsValid() bool {
	switch s {
	case SubTypeCash, SubTypeAccountsReceivable, SubTypeInventory,
		SubTypeAccountsPayable, SubTypeSalesTaxPayable, SubTypeStoreCreditPayable,
		SubTypeSalesRevenue, SubTypeCOGS, SubTypeInventoryAdjustment:
		return true
	}
	return false
}

// String returns the string representation of AccountSubType
func (s AccountSubType) String() string {
	return string(s)
}

// SystemSubTypes lists every functional role a fully configured tenant carries.
var SystemSubTypes = []AccountSubType{
	SubTypeCash,
	SubTypeAccountsReceivable,
	SubTypeInventory,
	SubTypeAccountsPayable,
	SubTypeSalesTaxPayable,
	SubTypeStoreCreditPayable,
	SubTypeSalesRevenue,
	SubTypeCOGS,
	SubTypeInventoryAdjustment,
}

// Account is one row in a tenant's chart of accounts.
//
// IsDebitNormal is derived once from Type at creation and never recomputed.
// Balance is derivative state: it is mutated only through
// AccountRepository.ApplyBalanceChange, driven by the journal poster.
type Account struct {
	shared.TenantEntity
	Name          string
	Number        string
	Type          AccountType
	SubType       *AccountSubType
	IsDebitNormal bool
	Balance       decimal.Decimal
	Description   string
}

// NewAccount creates an account, deriving its debit/credit polarity from the type.
func NewAccount(tenantID uuid.UUID, name, number string, accountType AccountType, subType *AccountSubType, description string) (*Account, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Account name is required")
	}
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Account number is required")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown account type: "+string(accountType))
	}
	if subType != nil && !subType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown account sub-type: "+string(*subType))
	}

	return &Account{
		TenantEntity:  shared.NewTenantEntity(tenantID),
		Name:          name,
		Number:        number,
		Type:          accountType,
		SubType:       subType,
		IsDebitNormal: accountType.IsDebitNormal(),
		Balance:       decimal.Zero,
		Description:   description,
	}, nil
}

// Update changes the administrator-editable fields. Type, sub-type and
// polarity are fixed after creation.
func (a *Account) Update(name, number, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Account name is required")
	}
	if number == "" {
		return shared.NewDomainError("INVALID_INPUT", "Account number is required")
	}
	a.Name = name
	a.Number = number
	a.Description = description
	return nil
}

// BalanceChange returns the signed delta a journal line applies to this
// account's running balance: +amount when the line side matches the account's
// normal polarity, -amount otherwise.
func (a *Account) BalanceChange(lineType LineType, amount decimal.Decimal) decimal.Decimal {
	matches := (lineType == LineTypeDebit) == a.IsDebitNormal
	if matches {
		return amount
	}
	return amount.Neg()
}
