package bookkeeping

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decimalEq(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expected)
	})
}

func TestPoster_Post_AppliesSignedBalanceDeltas(t *testing.T) {
	tenantID := uuid.New()
	cash := systemAccount(t, tenantID, "Cash", "1000", ledger.AccountTypeAsset, ledger.SubTypeCash)
	revenue := systemAccount(t, tenantID, "Sales Revenue", "4000", ledger.AccountTypeRevenue, ledger.SubTypeSalesRevenue)

	entry, err := ledger.NewJournalEntry(tenantID, time.Now(), "Cash sale", ledger.SourceSale, nil, []ledger.JournalLine{
		{AccountID: cash.ID, AccountName: cash.Name, Type: ledger.LineTypeDebit, Amount: decimal.NewFromInt(100)},
		{AccountID: revenue.ID, AccountName: revenue.Name, Type: ledger.LineTypeCredit, Amount: decimal.NewFromInt(100)},
	})
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	entryRepo := new(MockJournalEntryRepository)
	entryRepo.On("SaveWithLines", mock.Anything, entry).Return(nil)
	accountRepo.On("FindByIDForTenant", mock.Anything, tenantID, cash.ID).Return(cash, nil)
	accountRepo.On("FindByIDForTenant", mock.Anything, tenantID, revenue.ID).Return(revenue, nil)
	// a debit grows a debit-normal account, a credit grows a credit-normal one
	accountRepo.On("ApplyBalanceChange", mock.Anything, tenantID, cash.ID, decimalEq(decimal.NewFromInt(100))).Return(nil)
	accountRepo.On("ApplyBalanceChange", mock.Anything, tenantID, revenue.ID, decimalEq(decimal.NewFromInt(100))).Return(nil)

	poster := NewPoster(zap.NewNop())
	err = poster.Post(context.Background(), Repositories{Accounts: accountRepo, Entries: entryRepo}, entry)
	require.NoError(t, err)

	accountRepo.AssertExpectations(t)
	entryRepo.AssertExpectations(t)
}

func TestPoster_Post_CreditAgainstDebitNormalIsNegative(t *testing.T) {
	tenantID := uuid.New()
	inventory := systemAccount(t, tenantID, "Inventory", "1200", ledger.AccountTypeAsset, ledger.SubTypeInventory)
	cogs := systemAccount(t, tenantID, "Cost of Goods Sold", "5000", ledger.AccountTypeExpense, ledger.SubTypeCOGS)

	entry, err := ledger.NewJournalEntry(tenantID, time.Now(), "Cost of sale", ledger.SourceSale, nil, []ledger.JournalLine{
		{AccountID: cogs.ID, AccountName: cogs.Name, Type: ledger.LineTypeDebit, Amount: decimal.NewFromInt(34)},
		{AccountID: inventory.ID, AccountName: inventory.Name, Type: ledger.LineTypeCredit, Amount: decimal.NewFromInt(34)},
	})
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	entryRepo := new(MockJournalEntryRepository)
	entryRepo.On("SaveWithLines", mock.Anything, entry).Return(nil)
	accountRepo.On("FindByIDForTenant", mock.Anything, tenantID, cogs.ID).Return(cogs, nil)
	accountRepo.On("FindByIDForTenant", mock.Anything, tenantID, inventory.ID).Return(inventory, nil)
	accountRepo.On("ApplyBalanceChange", mock.Anything, tenantID, cogs.ID, decimalEq(decimal.NewFromInt(34))).Return(nil)
	accountRepo.On("ApplyBalanceChange", mock.Anything, tenantID, inventory.ID, decimalEq(decimal.NewFromInt(-34))).Return(nil)

	poster := NewPoster(zap.NewNop())
	err = poster.Post(context.Background(), Repositories{Accounts: accountRepo, Entries: entryRepo}, entry)
	require.NoError(t, err)
	accountRepo.AssertExpectations(t)
}

func TestPoster_Post_ForeignTenantAccountFails(t *testing.T) {
	tenantID := uuid.New()
	cash := systemAccount(t, tenantID, "Cash", "1000", ledger.AccountTypeAsset, ledger.SubTypeCash)
	revenue := systemAccount(t, tenantID, "Sales Revenue", "4000", ledger.AccountTypeRevenue, ledger.SubTypeSalesRevenue)

	entry, err := ledger.NewJournalEntry(tenantID, time.Now(), "Cash sale", ledger.SourceSale, nil, []ledger.JournalLine{
		{AccountID: cash.ID, AccountName: cash.Name, Type: ledger.LineTypeDebit, Amount: decimal.NewFromInt(10)},
		{AccountID: revenue.ID, AccountName: revenue.Name, Type: ledger.LineTypeCredit, Amount: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	entryRepo := new(MockJournalEntryRepository)
	entryRepo.On("SaveWithLines", mock.Anything, entry).Return(nil)
	// tenant-scoped lookup does not see the other tenant's account
	accountRepo.On("FindByIDForTenant", mock.Anything, tenantID, cash.ID).Return(nil, shared.ErrNotFound)

	poster := NewPoster(zap.NewNop())
	err = poster.Post(context.Background(), Repositories{Accounts: accountRepo, Entries: entryRepo}, entry)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	accountRepo.AssertNotCalled(t, "ApplyBalanceChange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPoster_PostManualEntry_RejectsUnbalancedLines(t *testing.T) {
	tenantID := uuid.New()
	cash := systemAccount(t, tenantID, "Cash", "1000", ledger.AccountTypeAsset, ledger.SubTypeCash)
	revenue := systemAccount(t, tenantID, "Sales Revenue", "4000", ledger.AccountTypeRevenue, ledger.SubTypeSalesRevenue)

	accountRepo := new(MockAccountRepository)
	entryRepo := new(MockJournalEntryRepository)

	poster := NewPoster(zap.NewNop())
	_, err := poster.PostManualEntry(context.Background(), Repositories{Accounts: accountRepo, Entries: entryRepo}, tenantID, time.Now(), "Bad entry", []ledger.JournalLine{
		{AccountID: cash.ID, Type: ledger.LineTypeDebit, Amount: decimal.NewFromInt(100)},
		{AccountID: revenue.ID, Type: ledger.LineTypeCredit, Amount: decimal.NewFromInt(90)},
	})

	assert.ErrorIs(t, err, ledger.ErrUnbalancedEntry)
	entryRepo.AssertNotCalled(t, "SaveWithLines", mock.Anything, mock.Anything)
}
