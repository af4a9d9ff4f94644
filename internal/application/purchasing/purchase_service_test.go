package purchasing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type purchaseFixture struct {
	tenantID     uuid.UUID
	accounts     map[ledger.AccountSubType]*ledger.Account
	orderRepo    *fakeOrderRepo
	invoiceRepo  *fakeInvoiceRepo
	productRepo  *fakeProductRepo
	supplierRepo *fakeSupplierRepo
	accountRepo  *fakeAccountRepo
	journalRepo  *fakeJournalRepo
	auditRepo    *fakeAuditRepo
	service      *PurchaseService
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	tenantID := uuid.New()

	seeds := []struct {
		name    string
		number  string
		accType ledger.AccountType
		subType ledger.AccountSubType
	}{
		{"Cash", "1000", ledger.AccountTypeAsset, ledger.SubTypeCash},
		{"Inventory", "1200", ledger.AccountTypeAsset, ledger.SubTypeInventory},
		{"Accounts Payable", "2000", ledger.AccountTypeLiability, ledger.SubTypeAccountsPayable},
	}
	accounts := make(map[ledger.AccountSubType]*ledger.Account)
	accountRepo := newFakeAccountRepo()
	for _, seed := range seeds {
		subType := seed.subType
		account, err := ledger.NewAccount(tenantID, seed.name, seed.number, seed.accType, &subType, "")
		require.NoError(t, err)
		accounts[subType] = account
		require.NoError(t, accountRepo.Save(context.Background(), account))
	}

	fixture := &purchaseFixture{
		tenantID:     tenantID,
		accounts:     accounts,
		orderRepo:    newFakeOrderRepo(),
		invoiceRepo:  newFakeInvoiceRepo(),
		productRepo:  newFakeProductRepo(),
		supplierRepo: newFakeSupplierRepo(),
		accountRepo:  accountRepo,
		journalRepo:  newFakeJournalRepo(),
		auditRepo:    newFakeAuditRepo(),
	}

	logger := zap.NewNop()
	charts := bookkeeping.NewChartService(accountRepo, fakeCategoryRepo{}, noopChartCache{}, logger)
	recorder := bookkeeping.NewRecorder(bookkeeping.NewPoster(logger), logger)
	scope := NewNoOpTransactionScope(fixture.orderRepo, fixture.invoiceRepo, fixture.productRepo, fixture.supplierRepo, accountRepo, fixture.journalRepo, fixture.auditRepo)
	fixture.service = NewPurchaseService(scope, charts, recorder, logger)
	return fixture
}

func (f *purchaseFixture) addProduct(t *testing.T, name string, cost float64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(f.tenantID, "SKU-"+name, name, nil,
		decimal.NewFromFloat(cost*2), decimal.NewFromFloat(cost), decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, f.productRepo.Save(context.Background(), product))
	return product
}

func (f *purchaseFixture) addSupplier(t *testing.T, name string) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier(f.tenantID, name, "", "")
	require.NoError(t, err)
	require.NoError(t, f.supplierRepo.Save(context.Background(), supplier))
	return supplier
}

func (f *purchaseFixture) balance(subType ledger.AccountSubType) decimal.Decimal {
	return f.accountRepo.balanceOf(f.accounts[subType].ID)
}

func TestCreatePurchaseOrder_LocksCostsAtOrderTime(t *testing.T) {
	fixture := newPurchaseFixture(t)
	supplier := fixture.addSupplier(t, "Acme Wholesale")
	product := fixture.addProduct(t, "Widget", 4)

	order, err := fixture.service.CreatePurchaseOrder(context.Background(), fixture.tenantID, nil, CreateOrderInput{
		SupplierID: supplier.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	assert.Equal(t, purchasing.OrderStatusOrdered, order.Status)
	require.Len(t, order.Lines, 1)
	assert.True(t, order.Lines[0].UnitCost.Equal(decimal.NewFromInt(4)))

	// the product's cost changing later must not reprice the order
	product.CostPrice = decimal.NewFromInt(9)
	require.NoError(t, fixture.productRepo.Save(context.Background(), product))

	reloaded, err := fixture.orderRepo.FindByIDForTenant(context.Background(), fixture.tenantID, order.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Lines[0].UnitCost.Equal(decimal.NewFromInt(4)))
}

func TestReceiveItems_BooksStockSupplierAndLedger(t *testing.T) {
	fixture := newPurchaseFixture(t)
	supplier := fixture.addSupplier(t, "Acme Wholesale")
	product := fixture.addProduct(t, "Widget", 4)

	order, err := fixture.service.CreatePurchaseOrder(context.Background(), fixture.tenantID, nil, CreateOrderInput{
		SupplierID: supplier.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	order, err = fixture.service.ReceiveItems(context.Background(), fixture.tenantID, nil, order.ID, []purchasing.ReceiptItem{
		{LineID: order.Lines[0].ID, Quantity: decimal.NewFromInt(4)},
	})
	require.NoError(t, err)

	assert.Equal(t, purchasing.OrderStatusPartiallyReceived, order.Status)
	assert.True(t, product.StockQuantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, supplier.Balance.Equal(decimal.NewFromInt(16)))
	assert.True(t, fixture.balance(ledger.SubTypeInventory).Equal(decimal.NewFromInt(16)))
	assert.True(t, fixture.balance(ledger.SubTypeAccountsPayable).Equal(decimal.NewFromInt(16)))
	require.Len(t, fixture.journalRepo.entries, 1)
	assert.Equal(t, ledger.SourcePurchase, fixture.journalRepo.entries[0].Source)
	assert.Len(t, fixture.auditRepo.logs, 1)
}

func TestReceiveItems_OverReceiveFails(t *testing.T) {
	fixture := newPurchaseFixture(t)
	supplier := fixture.addSupplier(t, "Acme Wholesale")
	product := fixture.addProduct(t, "Widget", 4)

	order, err := fixture.service.CreatePurchaseOrder(context.Background(), fixture.tenantID, nil, CreateOrderInput{
		SupplierID: supplier.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	_, err = fixture.service.ReceiveItems(context.Background(), fixture.tenantID, nil, order.ID, []purchasing.ReceiptItem{
		{LineID: order.Lines[0].ID, Quantity: decimal.NewFromInt(11)},
	})

	require.Error(t, err)
	assert.Empty(t, fixture.journalRepo.entries)
	assert.True(t, supplier.Balance.IsZero())
}

func TestRecordSupplierPayment_SettlesInvoiceAndBalance(t *testing.T) {
	fixture := newPurchaseFixture(t)
	supplier := fixture.addSupplier(t, "Acme Wholesale")
	product := fixture.addProduct(t, "Widget", 4)

	order, err := fixture.service.CreatePurchaseOrder(context.Background(), fixture.tenantID, nil, CreateOrderInput{
		SupplierID: supplier.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	_, err = fixture.service.ReceiveItems(context.Background(), fixture.tenantID, nil, order.ID, []purchasing.ReceiptItem{
		{LineID: order.Lines[0].ID, Quantity: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)

	invoice, err := fixture.service.CreateSupplierInvoice(context.Background(), fixture.tenantID, nil, supplier.ID, &order.ID, decimal.NewFromInt(40))
	require.NoError(t, err)

	invoice, err = fixture.service.RecordSupplierPayment(context.Background(), fixture.tenantID, nil, invoice.ID, decimal.NewFromInt(40))
	require.NoError(t, err)

	assert.Equal(t, purchasing.InvoiceStatusPaid, invoice.Status)
	assert.True(t, supplier.Balance.IsZero())
	assert.True(t, fixture.balance(ledger.SubTypeCash).Equal(decimal.NewFromInt(-40)))
	assert.True(t, fixture.balance(ledger.SubTypeAccountsPayable).IsZero())
	require.Len(t, fixture.journalRepo.entries, 2)
}
