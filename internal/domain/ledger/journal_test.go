package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(t *testing.T, tenantID uuid.UUID, name, number string, accountType AccountType) *Account {
	t.Helper()
	account, err := NewAccount(tenantID, name, number, accountType, nil, "")
	require.NoError(t, err)
	return account
}

func TestNewJournalEntry_Balanced(t *testing.T) {
	tenantID := uuid.New()
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)
	revenue := testAccount(t, tenantID, "Sales Revenue", "4000", AccountTypeRevenue)

	lines := NewLineBuilder().
		Debit(cash, decimal.RequireFromString("100.00")).
		Credit(revenue, decimal.RequireFromString("100.00")).
		Lines()

	entry, err := NewJournalEntry(tenantID, time.Now(), "Cash sale", SourceSale, nil, lines)
	require.NoError(t, err)

	assert.Len(t, entry.Lines, 2)
	assert.True(t, entry.TotalDebits().Equal(entry.TotalCredits()))
	for _, line := range entry.Lines {
		assert.Equal(t, entry.ID, line.JournalEntryID)
		assert.NotEqual(t, uuid.Nil, line.ID)
	}
}

func TestNewJournalEntry_RejectsUnbalanced(t *testing.T) {
	tenantID := uuid.New()
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)
	revenue := testAccount(t, tenantID, "Sales Revenue", "4000", AccountTypeRevenue)

	lines := NewLineBuilder().
		Debit(cash, decimal.RequireFromString("100.00")).
		Credit(revenue, decimal.RequireFromString("99.00")).
		Lines()

	_, err := NewJournalEntry(tenantID, time.Now(), "Broken", SourceManual, nil, lines)
	assert.True(t, errors.Is(err, ErrUnbalancedEntry))
}

func TestNewJournalEntry_ToleranceIsInclusive(t *testing.T) {
	tenantID := uuid.New()
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)
	revenue := testAccount(t, tenantID, "Sales Revenue", "4000", AccountTypeRevenue)

	// exactly 0.01 apart: still within tolerance
	lines := NewLineBuilder().
		Debit(cash, decimal.RequireFromString("100.01")).
		Credit(revenue, decimal.RequireFromString("100.00")).
		Lines()

	_, err := NewJournalEntry(tenantID, time.Now(), "Boundary", SourceManual, nil, lines)
	assert.NoError(t, err)
}

func TestNewJournalEntry_ToleratesRounding(t *testing.T) {
	tenantID := uuid.New()
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)
	revenue := testAccount(t, tenantID, "Sales Revenue", "4000", AccountTypeRevenue)

	// 0.005 apart: inside the 0.01 tolerance.
	lines := NewLineBuilder().
		Debit(cash, decimal.RequireFromString("100.005")).
		Credit(revenue, decimal.RequireFromString("100.00")).
		Lines()

	_, err := NewJournalEntry(tenantID, time.Now(), "Rounded", SourceManual, nil, lines)
	assert.NoError(t, err)
}

func TestNewJournalEntry_DropsNearZeroLines(t *testing.T) {
	tenantID := uuid.New()
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)
	revenue := testAccount(t, tenantID, "Sales Revenue", "4000", AccountTypeRevenue)
	tax := testAccount(t, tenantID, "Sales Tax Payable", "2100", AccountTypeLiability)

	lines := []JournalLine{
		{AccountID: cash.ID, AccountName: cash.Name, Type: LineTypeDebit, Amount: decimal.RequireFromString("50.00")},
		{AccountID: revenue.ID, AccountName: revenue.Name, Type: LineTypeCredit, Amount: decimal.RequireFromString("50.00")},
		{AccountID: tax.ID, AccountName: tax.Name, Type: LineTypeCredit, Amount: decimal.RequireFromString("0.004")},
	}

	entry, err := NewJournalEntry(tenantID, time.Now(), "Sale", SourceSale, nil, lines)
	require.NoError(t, err)
	assert.Len(t, entry.Lines, 2)
	for _, line := range entry.Lines {
		assert.NotEqual(t, tax.ID, line.AccountID)
	}
}

func TestNewJournalEntry_Validation(t *testing.T) {
	tenantID := uuid.New()
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)

	t.Run("rejects unknown source", func(t *testing.T) {
		_, err := NewJournalEntry(tenantID, time.Now(), "x", EntrySource("transfer"), nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects empty line set", func(t *testing.T) {
		_, err := NewJournalEntry(tenantID, time.Now(), "x", SourceManual, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		lines := []JournalLine{
			{AccountID: cash.ID, Type: LineTypeDebit, Amount: decimal.RequireFromString("-5.00")},
			{AccountID: cash.ID, Type: LineTypeCredit, Amount: decimal.RequireFromString("-5.00")},
		}
		_, err := NewJournalEntry(tenantID, time.Now(), "x", SourceManual, nil, lines)
		assert.Error(t, err)
	})

	t.Run("rejects missing account reference", func(t *testing.T) {
		lines := []JournalLine{
			{AccountID: uuid.Nil, Type: LineTypeDebit, Amount: decimal.RequireFromString("5.00")},
			{AccountID: cash.ID, Type: LineTypeCredit, Amount: decimal.RequireFromString("5.00")},
		}
		_, err := NewJournalEntry(tenantID, time.Now(), "x", SourceManual, nil, lines)
		assert.Error(t, err)
	})
}

func TestLineBuilder_AggregatesByAccountAndSide(t *testing.T) {
	tenantID := uuid.New()
	cogs := testAccount(t, tenantID, "Cost of Goods Sold", "5000", AccountTypeExpense)
	inventory := testAccount(t, tenantID, "Inventory", "1200", AccountTypeAsset)

	lines := NewLineBuilder().
		Debit(cogs, decimal.RequireFromString("12.00")).
		Debit(cogs, decimal.RequireFromString("8.00")).
		Credit(inventory, decimal.RequireFromString("20.00")).
		Lines()

	require.Len(t, lines, 2)
	assert.Equal(t, cogs.ID, lines[0].AccountID)
	assert.Equal(t, LineTypeDebit, lines[0].Type)
	assert.True(t, lines[0].Amount.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, "Cost of Goods Sold", lines[0].AccountName)
}

func TestLineBuilder_KeepsSidesSeparate(t *testing.T) {
	tenantID := uuid.New()
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)

	lines := NewLineBuilder().
		Debit(cash, decimal.RequireFromString("30.00")).
		Credit(cash, decimal.RequireFromString("10.00")).
		Lines()

	require.Len(t, lines, 2)
	assert.Equal(t, LineTypeDebit, lines[0].Type)
	assert.Equal(t, LineTypeCredit, lines[1].Type)
}

func TestLineBuilder_DropsNearZeroAggregates(t *testing.T) {
	tenantID := uuid.New()
	tax := testAccount(t, tenantID, "Sales Tax Payable", "2100", AccountTypeLiability)
	cash := testAccount(t, tenantID, "Cash", "1000", AccountTypeAsset)

	lines := NewLineBuilder().
		Debit(cash, decimal.RequireFromString("10.00")).
		Credit(tax, decimal.RequireFromString("0.003")).
		Credit(cash, decimal.Zero).
		Lines()

	require.Len(t, lines, 1)
	assert.Equal(t, cash.ID, lines[0].AccountID)
}
