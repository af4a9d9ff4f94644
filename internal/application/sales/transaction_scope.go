package sales

import (
	"context"

	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories a sales
// workflow touches. Everything executed within one scope commits or rolls
// back atomically: the sale, the stock decrement, the customer balance, the
// journal entry and its balance updates.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sales workflow
// repositories within a transaction.
type TransactionalRepositories interface {
	SaleRepo() sales.SaleRepository
	ProductRepo() catalog.ProductRepository
	CustomerRepo() partner.CustomerRepository
	AccountRepo() ledger.AccountRepository
	JournalRepo() ledger.JournalEntryRepository
	AuditRepo() audit.AuditLogRepository
}

// ledgerRepos bundles the transaction-bound ledger repositories for posting
func ledgerRepos(repos TransactionalRepositories) bookkeeping.Repositories {
	return bookkeeping.Repositories{
		Accounts: repos.AccountRepo(),
		Entries:  repos.JournalRepo(),
	}
}

// NoOpTransactionScope runs the function without a real transaction, for
// tests and callers that bring their own transaction management.
type NoOpTransactionScope struct {
	saleRepo     sales.SaleRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	accountRepo  ledger.AccountRepository
	journalRepo  ledger.JournalEntryRepository
	auditRepo    audit.AuditLogRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	saleRepo sales.SaleRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	accountRepo ledger.AccountRepository,
	journalRepo ledger.JournalEntryRepository,
	auditRepo audit.AuditLogRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		journalRepo:  journalRepo,
		auditRepo:    auditRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository            { return s.saleRepo }
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository    { return s.productRepo }
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository  { return s.customerRepo }
func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository     { return s.accountRepo }
func (s *NoOpTransactionScope) JournalRepo() ledger.JournalEntryRepository { return s.journalRepo }
func (s *NoOpTransactionScope) AuditRepo() audit.AuditLogRepository       { return s.auditRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
