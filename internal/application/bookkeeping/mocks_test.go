package bookkeeping

import (
	"context"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of ledger.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Account, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*ledger.Account, error) {
	args := m.Called(ctx, tenantID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindBySubType(ctx context.Context, tenantID uuid.UUID, subType ledger.AccountSubType) (*ledger.Account, error) {
	args := m.Called(ctx, tenantID, subType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]ledger.Account, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindSystemAccounts(ctx context.Context, tenantID uuid.UUID) ([]ledger.Account, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *ledger.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockAccountRepository) ApplyBalanceChange(ctx context.Context, tenantID, accountID uuid.UUID, delta decimal.Decimal) error {
	args := m.Called(ctx, tenantID, accountID, delta)
	return args.Error(0)
}

// MockJournalEntryRepository is a mock implementation of ledger.JournalEntryRepository
type MockJournalEntryRepository struct {
	mock.Mock
}

func (m *MockJournalEntryRepository) SaveWithLines(ctx context.Context, entry *ledger.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.JournalEntry, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.JournalEntryFilter) ([]ledger.JournalEntry, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]ledger.JournalEntry), args.Get(1).(int64), args.Error(2)
}

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindWithAccountOverrides(ctx context.Context, tenantID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockChartCache is a mock implementation of ChartCache
type MockChartCache struct {
	mock.Mock
}

func (m *MockChartCache) Get(ctx context.Context, tenantID uuid.UUID) (*ledger.Chart, bool) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*ledger.Chart), args.Bool(1)
}

func (m *MockChartCache) Set(ctx context.Context, tenantID uuid.UUID, chart *ledger.Chart) {
	m.Called(ctx, tenantID, chart)
}

func (m *MockChartCache) Invalidate(ctx context.Context, tenantID uuid.UUID) {
	m.Called(ctx, tenantID)
}
