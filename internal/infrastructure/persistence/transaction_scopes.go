package persistence

import (
	"context"

	appinventory "github.com/retail/backend/internal/application/inventory"
	apppurchasing "github.com/retail/backend/internal/application/purchasing"
	appsales "github.com/retail/backend/internal/application/sales"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/retail/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSalesTransactionScope implements the sales TransactionScope over a
// GORM transaction. All repositories handed to the workflow function are
// bound to the same tx, so a failure anywhere rolls back the sale, the
// stock movement, the partner balances and the posting together.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a sales transaction scope
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesRepositories{tx: tx})
	})
}

type gormSalesRepositories struct {
	tx *gorm.DB
}

func (r *gormSalesRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormSalesRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormSalesRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormSalesRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormSalesRepositories) JournalRepo() ledger.JournalEntryRepository {
	return NewGormJournalEntryRepository(r.tx)
}

func (r *gormSalesRepositories) AuditRepo() audit.AuditLogRepository {
	return NewGormAuditLogRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormSalesRepositories)(nil)

// GormPurchasingTransactionScope implements the purchasing TransactionScope
// over a GORM transaction.
type GormPurchasingTransactionScope struct {
	db *gorm.DB
}

// NewGormPurchasingTransactionScope creates a purchasing transaction scope
func NewGormPurchasingTransactionScope(db *gorm.DB) *GormPurchasingTransactionScope {
	return &GormPurchasingTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormPurchasingTransactionScope) Execute(ctx context.Context, fn func(repos apppurchasing.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPurchasingRepositories{tx: tx})
	})
}

type gormPurchasingRepositories struct {
	tx *gorm.DB
}

func (r *gormPurchasingRepositories) OrderRepo() purchasing.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

func (r *gormPurchasingRepositories) InvoiceRepo() purchasing.SupplierInvoiceRepository {
	return NewGormSupplierInvoiceRepository(r.tx)
}

func (r *gormPurchasingRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormPurchasingRepositories) SupplierRepo() partner.SupplierRepository {
	return NewGormSupplierRepository(r.tx)
}

func (r *gormPurchasingRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormPurchasingRepositories) JournalRepo() ledger.JournalEntryRepository {
	return NewGormJournalEntryRepository(r.tx)
}

func (r *gormPurchasingRepositories) AuditRepo() audit.AuditLogRepository {
	return NewGormAuditLogRepository(r.tx)
}

var _ apppurchasing.TransactionScope = (*GormPurchasingTransactionScope)(nil)
var _ apppurchasing.TransactionalRepositories = (*gormPurchasingRepositories)(nil)

// GormInventoryTransactionScope implements the inventory TransactionScope
// over a GORM transaction.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates an inventory transaction scope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

type gormInventoryRepositories struct {
	tx *gorm.DB
}

func (r *gormInventoryRepositories) StockTakeRepo() inventory.StockTakeRepository {
	return NewGormStockTakeRepository(r.tx)
}

func (r *gormInventoryRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormInventoryRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormInventoryRepositories) JournalRepo() ledger.JournalEntryRepository {
	return NewGormJournalEntryRepository(r.tx)
}

func (r *gormInventoryRepositories) AuditRepo() audit.AuditLogRepository {
	return NewGormAuditLogRepository(r.tx)
}

var _ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinventory.TransactionalRepositories = (*gormInventoryRepositories)(nil)
