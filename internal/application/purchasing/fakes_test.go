package purchasing

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// In-memory repositories for workflow tests, tenant-scoped like the real ones.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*purchasing.PurchaseOrder
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*purchasing.PurchaseOrder)}
}

func (r *fakeOrderRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok || order.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) SaveWithLines(_ context.Context, order *purchasing.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GenerateOrderNumber(_ context.Context, _ uuid.UUID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("PO-%04d", r.seq), nil
}

type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[uuid.UUID]*purchasing.SupplierInvoice
	seq      int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*purchasing.SupplierInvoice)}
}

func (r *fakeInvoiceRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*purchasing.SupplierInvoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice, ok := r.invoices[id]
	if !ok || invoice.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	return invoice, nil
}

func (r *fakeInvoiceRepo) Save(_ context.Context, invoice *purchasing.SupplierInvoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) GenerateInvoiceNumber(_ context.Context, _ uuid.UUID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("INV-%04d", r.seq), nil
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

type fakeSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[uuid.UUID]*partner.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*partner.Supplier)}
}

func (r *fakeSupplierRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*partner.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	supplier, ok := r.suppliers[id]
	if !ok || supplier.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	return supplier, nil
}

func (r *fakeSupplierRepo) Save(_ context.Context, supplier *partner.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = supplier
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
