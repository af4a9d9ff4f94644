package bookkeeping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Repositories bundles the ledger repositories a posting runs against. When
// posting happens inside a business transaction, these are the
// transaction-bound repositories so the entry, the balance updates and the
// caller's side effects commit or roll back together.
type Repositories struct {
	Accounts ledger.AccountRepository
	Entries  ledger.JournalEntryRepository
}

// Poster persists journal entries and applies their balance effects. It is
// the only writer of account balances.
type Poster struct {
	logger *zap.Logger
}

// NewPoster creates a journal poster
func NewPoster(logger *zap.Logger) *Poster {
	return &Poster{logger: logger}
}

// Post persists the entry with its lines and applies each line's signed
// balance delta to its account. Every account is re-read tenant-scoped, so a
// line pointing at another tenant's account fails with not-found and the
// enclosing transaction rolls back.
func (p *Poster) Post(ctx context.Context, repos Repositories, entry *ledger.JournalEntry) error {
	if err := repos.Entries.SaveWithLines(ctx, entry); err != nil {
		return err
	}

	for i := range entry.Lines {
		line := &entry.Lines[i]
		account, err := repos.Accounts.FindByIDForTenant(ctx, entry.TenantID, line.AccountID)
		if err != nil {
			return err
		}
		delta := account.BalanceChange(line.Type, line.Amount)
		if err := repos.Accounts.ApplyBalanceChange(ctx, entry.TenantID, account.ID, delta); err != nil {
			return err
		}
	}

	p.logger.Info("Journal entry posted",
		zap.String("tenant_id", entry.TenantID.String()),
		zap.String("entry_id", entry.ID.String()),
		zap.String("source", string(entry.Source)),
		zap.Int("lines", len(entry.Lines)),
		zap.String("total_debits", entry.TotalDebits().String()))
	return nil
}

// PostManualEntry validates and posts a hand-entered journal entry. Manual
// entries carry caller-chosen debit/credit lines; the usual balance and
// rounding rules apply.
func (p *Poster) PostManualEntry(ctx context.Context, repos Repositories, tenantID uuid.UUID, entryDate time.Time, description string, lines []ledger.JournalLine) (*ledger.JournalEntry, error) {
	entry, err := ledger.NewJournalEntry(tenantID, entryDate, description, ledger.SourceManual, nil, lines)
	if err != nil {
		return nil, err
	}
	if err := p.Post(ctx, repos, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// nearZero reports whether an amount is below the posting threshold
func nearZero(amount decimal.Decimal) bool {
	return amount.Abs().LessThan(ledger.RoundingEpsilon)
}
