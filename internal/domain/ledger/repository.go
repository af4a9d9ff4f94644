package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for the chart of accounts
type AccountRepository interface {
	// FindByIDForTenant finds an account by ID within a tenant. Unknown or
	// foreign-tenant IDs return shared.ErrNotFound.
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Account, error)
	// FindByNumber finds an account by its display number within a tenant
	FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*Account, error)
	// FindBySubType finds the tenant's canonical account for a functional role
	FindBySubType(ctx context.Context, tenantID uuid.UUID, subType AccountSubType) (*Account, error)
	// FindAllForTenant lists the tenant's chart of accounts ordered by number
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Account, error)
	// FindSystemAccounts lists the tenant's accounts that carry a sub-type
	FindSystemAccounts(ctx context.Context, tenantID uuid.UUID) ([]Account, error)
	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error
	// DeleteForTenant deletes an account. Accounts referenced by journal
	// lines are protected by the database and return ErrAccountReferenced.
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	// ApplyBalanceChange applies a signed delta to the account's running
	// balance as an atomic in-database increment, never read-modify-write.
	ApplyBalanceChange(ctx context.Context, tenantID, accountID uuid.UUID, delta decimal.Decimal) error
}

// JournalEntryFilter narrows journal entry listings
type JournalEntryFilter struct {
	Source    *EntrySource
	SourceID  *uuid.UUID
	AccountID *uuid.UUID
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

// JournalEntryRepository defines persistence operations for journal entries.
// Entries are append-only in steady state.
type JournalEntryRepository interface {
	// SaveWithLines persists the entry and all of its lines
	SaveWithLines(ctx context.Context, entry *JournalEntry) error
	// FindByIDForTenant finds an entry (with lines) by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*JournalEntry, error)
	// FindAllForTenant lists entries matching the filter, newest first
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter JournalEntryFilter) ([]JournalEntry, int64, error)
}
