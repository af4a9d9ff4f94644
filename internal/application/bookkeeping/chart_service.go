package bookkeeping

import (
	"context"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ChartCache caches per-tenant chart snapshots. Implementations must expire
// entries on their own (TTL); the service additionally invalidates on every
// account or override mutation.
type ChartCache interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*ledger.Chart, bool)
	Set(ctx context.Context, tenantID uuid.UUID, chart *ledger.Chart)
	Invalidate(ctx context.Context, tenantID uuid.UUID)
}

// CreateAccountInput carries the fields for a new account
type CreateAccountInput struct {
	Name        string
	Number      string
	Type        ledger.AccountType
	SubType     *ledger.AccountSubType
	Description string
}

// defaultChart is the seed chart every new tenant starts with
var defaultChart = []CreateAccountInput{
	{Name: "Cash", Number: "1000", Type: ledger.AccountTypeAsset, SubType: subTypePtr(ledger.SubTypeCash)},
	{Name: "Accounts Receivable", Number: "1100", Type: ledger.AccountTypeAsset, SubType: subTypePtr(ledger.SubTypeAccountsReceivable)},
	{Name: "Inventory", Number: "1200", Type: ledger.AccountTypeAsset, SubType: subTypePtr(ledger.SubTypeInventory)},
	{Name: "Accounts Payable", Number: "2000", Type: ledger.AccountTypeLiability, SubType: subTypePtr(ledger.SubTypeAccountsPayable)},
	{Name: "Sales Tax Payable", Number: "2100", Type: ledger.AccountTypeLiability, SubType: subTypePtr(ledger.SubTypeSalesTaxPayable)},
	{Name: "Store Credit Payable", Number: "2200", Type: ledger.AccountTypeLiability, SubType: subTypePtr(ledger.SubTypeStoreCreditPayable)},
	{Name: "Sales Revenue", Number: "4000", Type: ledger.AccountTypeRevenue, SubType: subTypePtr(ledger.SubTypeSalesRevenue)},
	{Name: "Cost of Goods Sold", Number: "5000", Type: ledger.AccountTypeExpense, SubType: subTypePtr(ledger.SubTypeCOGS)},
	{Name: "Inventory Adjustment", Number: "5100", Type: ledger.AccountTypeExpense, SubType: subTypePtr(ledger.SubTypeInventoryAdjustment)},
}

func subTypePtr(s ledger.AccountSubType) *ledger.AccountSubType {
	return &s
}

// ChartService manages the chart of accounts and serves cached chart
// snapshots to the recorders.
type ChartService struct {
	accounts   ledger.AccountRepository
	categories catalog.CategoryRepository
	cache      ChartCache
	logger     *zap.Logger
}

// NewChartService creates a chart service
func NewChartService(accounts ledger.AccountRepository, categories catalog.CategoryRepository, cache ChartCache, logger *zap.Logger) *ChartService {
	return &ChartService{
		accounts:   accounts,
		categories: categories,
		cache:      cache,
		logger:     logger,
	}
}

// CreateAccount adds an account to the tenant's chart. A sub-type can be
// held by at most one account per tenant.
func (s *ChartService) CreateAccount(ctx context.Context, tenantID uuid.UUID, input CreateAccountInput) (*ledger.Account, error) {
	if existing, err := s.accounts.FindByNumber(ctx, tenantID, input.Number); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Account number is already in use: "+input.Number)
	}
	if input.SubType != nil {
		if existing, err := s.accounts.FindBySubType(ctx, tenantID, *input.SubType); err == nil && existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Tenant already has an account for role: "+input.SubType.String())
		}
	}

	account, err := ledger.NewAccount(tenantID, input.Name, input.Number, input.Type, input.SubType, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, tenantID)
	s.logger.Info("Account created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("account_id", account.ID.String()),
		zap.String("number", account.Number))
	return account, nil
}

// UpdateAccount changes an account's name, number and description
func (s *ChartService) UpdateAccount(ctx context.Context, tenantID, accountID uuid.UUID, name, number, description string) (*ledger.Account, error) {
	account, err := s.accounts.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if err := account.Update(name, number, description); err != nil {
		return nil, err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, tenantID)
	return account, nil
}

// DeleteAccount removes an account. Accounts referenced by journal lines are
// protected and return ErrAccountReferenced.
func (s *ChartService) DeleteAccount(ctx context.Context, tenantID, accountID uuid.UUID) error {
	if err := s.accounts.DeleteForTenant(ctx, tenantID, accountID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, tenantID)
	s.logger.Info("Account deleted",
		zap.String("tenant_id", tenantID.String()),
		zap.String("account_id", accountID.String()))
	return nil
}

// GetAccount loads one account tenant-scoped
func (s *ChartService) GetAccount(ctx context.Context, tenantID, accountID uuid.UUID) (*ledger.Account, error) {
	return s.accounts.FindByIDForTenant(ctx, tenantID, accountID)
}

// ListAccounts lists the tenant's chart of accounts
func (s *ChartService) ListAccounts(ctx context.Context, tenantID uuid.UUID) ([]ledger.Account, error) {
	return s.accounts.FindAllForTenant(ctx, tenantID)
}

// SeedDefaultChart creates the standard retail chart for a tenant, skipping
// any role the tenant already has an account for. Safe to call repeatedly.
func (s *ChartService) SeedDefaultChart(ctx context.Context, tenantID uuid.UUID) error {
	existing, err := s.accounts.FindSystemAccounts(ctx, tenantID)
	if err != nil {
		return err
	}
	present := make(map[ledger.AccountSubType]bool, len(existing))
	for i := range existing {
		if existing[i].SubType != nil {
			present[*existing[i].SubType] = true
		}
	}

	created := 0
	for _, seed := range defaultChart {
		if present[*seed.SubType] {
			continue
		}
		account, err := ledger.NewAccount(tenantID, seed.Name, seed.Number, seed.Type, seed.SubType, seed.Description)
		if err != nil {
			return err
		}
		if err := s.accounts.Save(ctx, account); err != nil {
			return err
		}
		created++
	}

	s.cache.Invalidate(ctx, tenantID)
	s.logger.Info("Default chart seeded",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("accounts_created", created))
	return nil
}

// InvalidateSnapshot drops the tenant's cached chart. Called by services that
// mutate category account overrides.
func (s *ChartService) InvalidateSnapshot(ctx context.Context, tenantID uuid.UUID) {
	s.cache.Invalidate(ctx, tenantID)
}

// Snapshot returns the tenant's chart snapshot, from cache when fresh. The
// snapshot resolves system accounts by role and category revenue/COGS
// overrides by category ID; overrides pointing at deleted accounts are
// silently dropped so postings fall back to the defaults.
func (s *ChartService) Snapshot(ctx context.Context, tenantID uuid.UUID) (*ledger.Chart, error) {
	if chart, ok := s.cache.Get(ctx, tenantID); ok {
		return chart, nil
	}

	accounts, err := s.accounts.FindSystemAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	accountPtrs := make([]*ledger.Account, len(accounts))
	for i := range accounts {
		accountPtrs[i] = &accounts[i]
	}

	categories, err := s.categories.FindWithAccountOverrides(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	revenueOverrides := make(map[uuid.UUID]*ledger.Account)
	cogsOverrides := make(map[uuid.UUID]*ledger.Account)
	for i := range categories {
		category := &categories[i]
		if category.RevenueAccountID != nil {
			if account, err := s.accounts.FindByIDForTenant(ctx, tenantID, *category.RevenueAccountID); err == nil {
				revenueOverrides[category.ID] = account
			}
		}
		if category.COGSAccountID != nil {
			if account, err := s.accounts.FindByIDForTenant(ctx, tenantID, *category.COGSAccountID); err == nil {
				cogsOverrides[category.ID] = account
			}
		}
	}

	chart := ledger.NewChart(tenantID, accountPtrs, revenueOverrides, cogsOverrides)
	s.cache.Set(ctx, tenantID, chart)
	return chart, nil
}
