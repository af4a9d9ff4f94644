package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// In-memory repositories for workflow tests, tenant-scoped like the real ones.

type fakeStockTakeRepo struct {
	mu    sync.Mutex
	takes map[uuid.UUID]*inventory.StockTake
}

func newFakeStockTakeRepo() *fakeStockTakeRepo {
	return &fakeStockTakeRepo{takes: make(map[uuid.UUID]*inventory.StockTake)}
}

func (r *fakeStockTakeRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*inventory.StockTake, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stockTake, ok := r.takes[id]
	if !ok || stockTake.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	return stockTake, nil
}

func (r *fakeStockTakeRepo) SaveWithLines(_ context.Context, stockTake *inventory.StockTake) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.takes[stockTake.ID] = stockTake
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *fakeProductRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok || product.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) FindBySKU(_ context.Context, tenantID uuid.UUID, sku string) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range r.products {
		if product.TenantID == tenantID && product.SKU == sku {
			return product, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*ledger.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*ledger.Account)}
}

func (r *fakeAccountRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok || account.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, number string) (*ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.TenantID == tenantID && account.Number == number {
			return account, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAccountRepo) FindBySubType(_ context.Context, tenantID uuid.UUID, subType ledger.AccountSubType) (*ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.TenantID == tenantID && account.SubType != nil && *account.SubType == subType {
			return account, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAccountRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID) ([]ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ledger.Account
	for _, account := range r.accounts {
		if account.TenantID == tenantID {
			out = append(out, *account)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) FindSystemAccounts(_ context.Context, tenantID uuid.UUID) ([]ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ledger.Account
	for _, account := range r.accounts {
		if account.TenantID == tenantID && account.SubType != nil {
			out = append(out, *account)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Save(_ context.Context, account *ledger.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) DeleteForTenant(_ context.Context, tenantID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok || account.TenantID != tenantID {
		return shared.ErrNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) ApplyBalanceChange(_ context.Context, tenantID, accountID uuid.UUID, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[accountID]
	if !ok || account.TenantID != tenantID {
		return shared.ErrNotFound
	}
	account.Balance = account.Balance.Add(delta)
	return nil
}

func (r *fakeAccountRepo) balanceOf(id uuid.UUID) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[id].Balance
}

type fakeJournalRepo struct {
	mu      sync.Mutex
	entries []*ledger.JournalEntry
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{}
}

func (r *fakeJournalRepo) SaveWithLines(_ context.Context, entry *ledger.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeJournalRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*ledger.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.entries {
		if entry.ID == id && entry.TenantID == tenantID {
			return entry, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeJournalRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ ledger.JournalEntryFilter) ([]ledger.JournalEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ledger.JournalEntry
	for _, entry := range r.entries {
		if entry.TenantID == tenantID {
			out = append(out, *entry)
		}
	}
	return out, int64(len(out)), nil
}

type fakeAuditRepo struct {
	mu   sync.Mutex
	logs []*audit.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Save(_ context.Context, log *audit.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeAuditRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ int, _ int) ([]audit.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []audit.AuditLog
	for _, log := range r.logs {
		if log.TenantID == tenantID {
			out = append(out, *log)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) FindByIDForTenant(context.Context, uuid.UUID, uuid.UUID) (*catalog.Category, error) {
	return nil, shared.ErrNotFound
}

func (fakeCategoryRepo) FindWithAccountOverrides(context.Context, uuid.UUID) ([]catalog.Category, error) {
	return nil, nil
}

func (fakeCategoryRepo) Save(context.Context, *catalog.Category) error {
	return nil
}

type noopChartCache struct{}

func (noopChartCache) Get(context.Context, uuid.UUID) (*ledger.Chart, bool) { return nil, false }
func (noopChartCache) Set(context.Context, uuid.UUID, *ledger.Chart)        {}
func (noopChartCache) Invalidate(context.Context, uuid.UUID)                {}
