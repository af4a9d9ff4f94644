package purchasing

import (
	"context"

	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/purchasing"
)

// TransactionScope provides transactional access to the repositories a
// purchasing workflow touches. A reception's stock increments, supplier
// balance and journal entry commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the purchasing workflow
// repositories within a transaction.
type TransactionalRepositories interface {
	OrderRepo() purchasing.PurchaseOrderRepository
	InvoiceRepo() purchasing.SupplierInvoiceRepository
	ProductRepo() catalog.ProductRepository
	SupplierRepo() partner.SupplierRepository
	AccountRepo() ledger.AccountRepository
	JournalRepo() ledger.JournalEntryRepository
	AuditRepo() audit.AuditLogRepository
}

func ledgerRepos(repos TransactionalRepositories) bookkeeping.Repositories {
	return bookkeeping.Repositories{
		Accounts: repos.AccountRepo(),
		Entries:  repos.JournalRepo(),
	}
}

// NoOpTransactionScope runs the function without a real transaction, for
// tests and callers that bring their own transaction management.
type NoOpTransactionScope struct {
	orderRepo    purchasing.PurchaseOrderRepository
	invoiceRepo  purchasing.SupplierInvoiceRepository
	productRepo  catalog.ProductRepository
	supplierRepo partner.SupplierRepository
	accountRepo  ledger.AccountRepository
	journalRepo  ledger.JournalEntryRepository
	auditRepo    audit.AuditLogRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	orderRepo purchasing.PurchaseOrderRepository,
	invoiceRepo purchasing.SupplierInvoiceRepository,
	productRepo catalog.ProductRepository,
	supplierRepo partner.SupplierRepository,
	accountRepo ledger.AccountRepository,
	journalRepo ledger.JournalEntryRepository,
	auditRepo audit.AuditLogRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		accountRepo:  accountRepo,
		journalRepo:  journalRepo,
		auditRepo:    auditRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) OrderRepo() purchasing.PurchaseOrderRepository     { return s.orderRepo }
func (s *NoOpTransactionScope) InvoiceRepo() purchasing.SupplierInvoiceRepository { return s.invoiceRepo }
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository            { return s.productRepo }
func (s *NoOpTransactionScope) SupplierRepo() partner.SupplierRepository          { return s.supplierRepo }
func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository             { return s.accountRepo }
func (s *NoOpTransactionScope) JournalRepo() ledger.JournalEntryRepository        { return s.journalRepo }
func (s *NoOpTransactionScope) AuditRepo() audit.AuditLogRepository               { return s.auditRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
