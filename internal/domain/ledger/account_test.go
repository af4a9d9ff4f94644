package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_DerivesPolarity(t *testing.T) {
	tenantID := uuid.New()

	tests := []struct {
		accountType AccountType
		debitNormal bool
	}{
		{AccountTypeAsset, true},
		{AccountTypeExpense, true},
		{AccountTypeLiability, false},
		{AccountTypeEquity, false},
		{AccountTypeRevenue, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			account, err := NewAccount(tenantID, "Some Account", "9999", tt.accountType, nil, "")
			require.NoError(t, err)
			assert.Equal(t, tt.debitNormal, account.IsDebitNormal)
			assert.True(t, account.Balance.IsZero())
			assert.Equal(t, tenantID, account.TenantID)
		})
	}
}

func TestNewAccount_Validation(t *testing.T) {
	tenantID := uuid.New()

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewAccount(tenantID, "", "1000", AccountTypeAsset, nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := NewAccount(tenantID, "Cash", "", AccountTypeAsset, nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewAccount(tenantID, "Cash", "1000", AccountType("contra"), nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown sub-type", func(t *testing.T) {
		sub := AccountSubType("petty_cash")
		_, err := NewAccount(tenantID, "Cash", "1000", AccountTypeAsset, &sub, "")
		assert.Error(t, err)
	})

	t.Run("accepts valid sub-type", func(t *testing.T) {
		sub := SubTypeCash
		account, err := NewAccount(tenantID, "Cash", "1000", AccountTypeAsset, &sub, "Till and register")
		require.NoError(t, err)
		require.NotNil(t, account.SubType)
		assert.Equal(t, SubTypeCash, *account.SubType)
	})
}

func TestAccount_BalanceChange(t *testing.T) {
	tenantID := uuid.New()
	amount := decimal.RequireFromString("25.50")

	debitNormal, err := NewAccount(tenantID, "Cash", "1000", AccountTypeAsset, nil, "")
	require.NoError(t, err)
	creditNormal, err := NewAccount(tenantID, "Sales Revenue", "4000", AccountTypeRevenue, nil, "")
	require.NoError(t, err)

	t.Run("debit to debit-normal increases", func(t *testing.T) {
		assert.True(t, debitNormal.BalanceChange(LineTypeDebit, amount).Equal(amount))
	})

	t.Run("credit to debit-normal decreases", func(t *testing.T) {
		assert.True(t, debitNormal.BalanceChange(LineTypeCredit, amount).Equal(amount.Neg()))
	})

	t.Run("credit to credit-normal increases", func(t *testing.T) {
		assert.True(t, creditNormal.BalanceChange(LineTypeCredit, amount).Equal(amount))
	})

	t.Run("debit to credit-normal decreases", func(t *testing.T) {
		assert.True(t, creditNormal.BalanceChange(LineTypeDebit, amount).Equal(amount.Neg()))
	})
}

func TestAccount_Update(t *testing.T) {
	account, err := NewAccount(uuid.New(), "Cash", "1000", AccountTypeAsset, nil, "")
	require.NoError(t, err)

	require.NoError(t, account.Update("Cash on Hand", "1001", "Registers"))
	assert.Equal(t, "Cash on Hand", account.Name)
	assert.Equal(t, "1001", account.Number)
	assert.Equal(t, "Registers", account.Description)

	assert.Error(t, account.Update("", "1001", ""))
}
