package ledger

import (
	"github.com/google/uuid"
)

// Chart is an immutable per-tenant snapshot of the resolved system accounts
// and the category-level revenue/COGS overrides. It is loaded once per
// request (and cached with a TTL) instead of re-querying per line item.
//
// Chart resolves accounts by functional role; it never carries balances that
// are expected to stay current, only identity and polarity.
type Chart struct {
	tenantID         uuid.UUID
	bySubType        map[AccountSubType]*Account
	revenueOverrides map[uuid.UUID]*Account
	cogsOverrides    map[uuid.UUID]*Account
}

// NewChart builds a chart snapshot from the tenant's system accounts and the
// category override tables (keyed by category ID).
func NewChart(tenantID uuid.UUID, accounts []*Account, revenueOverrides, cogsOverrides map[uuid.UUID]*Account) *Chart {
	bySubType := make(map[AccountSubType]*Account, len(accounts))
	for _, account := range accounts {
		if account.SubType != nil {
			bySubType[*account.SubType] = account
		}
	}
	if revenueOverrides == nil {
		revenueOverrides = map[uuid.UUID]*Account{}
	}
	if cogsOverrides == nil {
		cogsOverrides = map[uuid.UUID]*Account{}
	}
	return &Chart{
		tenantID:         tenantID,
		bySubType:        bySubType,
		revenueOverrides: revenueOverrides,
		cogsOverrides:    cogsOverrides,
	}
}

// TenantID returns the tenant this chart belongs to
func (c *Chart) TenantID() uuid.UUID {
	return c.tenantID
}

// SystemAccounts lists the snapshot's role-bearing accounts, for callers
// that need to serialize the chart (e.g. a distributed cache).
func (c *Chart) SystemAccounts() []*Account {
	accounts := make([]*Account, 0, len(c.bySubType))
	for _, account := range c.bySubType {
		accounts = append(accounts, account)
	}
	return accounts
}

// RevenueOverrides returns the category revenue override table
func (c *Chart) RevenueOverrides() map[uuid.UUID]*Account {
	return c.revenueOverrides
}

// COGSOverrides returns the category COGS override table
func (c *Chart) COGSOverrides() map[uuid.UUID]*Account {
	return c.cogsOverrides
}

// Get resolves the tenant's canonical account for the given functional role.
// A missing required account is a configuration error that must abort the
// calling transaction.
func (c *Chart) Get(subType AccountSubType) (*Account, error) {
	account, ok := c.bySubType[subType]
	if !ok {
		return nil, ErrMissingSystemAccount
	}
	return account, nil
}

// Has reports whether the tenant has an account for the given role
func (c *Chart) Has(subType AccountSubType) bool {
	_, ok := c.bySubType[subType]
	return ok
}

// RevenueFor resolves the revenue account for a line item: the category's
// explicit override when set and still valid, otherwise the tenant's default
// sales revenue account.
func (c *Chart) RevenueFor(categoryID *uuid.UUID) (*Account, error) {
	if categoryID != nil {
		if account, ok := c.revenueOverrides[*categoryID]; ok {
			return account, nil
		}
	}
	return c.Get(SubTypeSalesRevenue)
}

// COGSFor resolves the cost-of-goods-sold account for a line item, with the
// same override-then-default order as RevenueFor.
func (c *Chart) COGSFor(categoryID *uuid.UUID) (*Account, error) {
	if categoryID != nil {
		if account, ok := c.cogsOverrides[*categoryID]; ok {
			return account, nil
		}
	}
	return c.Get(SubTypeCOGS)
}
