package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RoundingEpsilon is the tolerance for balance checks and the floor below
// which a computed line amount is treated as zero and dropped.
var RoundingEpsilon = decimal.RequireFromString("0.01")

// EntrySource tags the business event a journal entry originated from
type EntrySource string

const (
	SourceSale     EntrySource = "sale"
	SourcePurchase EntrySource = "purchase"
	SourceManual   EntrySource = "manual"
	SourcePayment  EntrySource = "payment"
)

// IsValid checks if the source is one of the known entry sources
func (s EntrySource) IsValid() bool {
	switch s {
	case SourceSale, SourcePurchase, SourceManual, SourcePayment:
		return true
	}
	return false
}

// LineType is the side of a journal line
type LineType string

const (
	LineTypeDebit  LineType = "debit"
	LineTypeCredit LineType = "credit"
)

// JournalLine is a child row of a JournalEntry. AccountName is denormalized
// for audit readability.
type JournalLine struct {
	ID             uuid.UUID
	JournalEntryID uuid.UUID
	AccountID      uuid.UUID
	AccountName    string
	Type           LineType
	Amount         decimal.Decimal
}

// JournalEntry is one balanced financial event. Entries are immutable once
// posted; corrections are made by posting a new, offsetting entry.
type JournalEntry struct {
	shared.TenantEntity
	EntryDate   time.Time
	Description string
	Source      EntrySource
	SourceID    *uuid.UUID
	Lines       []JournalLine
}

// NewJournalEntry builds a journal entry from the given lines. Lines whose
// amount is below RoundingEpsilon are dropped before validation. The
// remaining lines must be positive and must balance (total debits equal
// total credits within RoundingEpsilon).
func NewJournalEntry(tenantID uuid.UUID, entryDate time.Time, description string, source EntrySource, sourceID *uuid.UUID, lines []JournalLine) (*JournalEntry, error) {
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown journal entry source: "+string(source))
	}

	kept := make([]JournalLine, 0, len(lines))
	for _, line := range lines {
		if line.Amount.Abs().LessThan(RoundingEpsilon) {
			continue
		}
		if line.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Journal line amount must be positive")
		}
		if line.AccountID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Journal line must reference an account")
		}
		if line.Type != LineTypeDebit && line.Type != LineTypeCredit {
			return nil, shared.NewDomainError("INVALID_INPUT", "Journal line must be a debit or a credit")
		}
		kept = append(kept, line)
	}

	if len(kept) == 0 {
		return nil, shared.NewDomainError("EMPTY_ENTRY", "Journal entry has no lines above the rounding threshold")
	}

	if !balanced(kept) {
		return nil, ErrUnbalancedEntry
	}

	entry := &JournalEntry{
		TenantEntity: shared.NewTenantEntity(tenantID),
		EntryDate:    entryDate,
		Description:  description,
		Source:       source,
		SourceID:     sourceID,
		Lines:        kept,
	}
	for i := range entry.Lines {
		entry.Lines[i].ID = uuid.New()
		entry.Lines[i].JournalEntryID = entry.ID
	}
	return entry, nil
}

// TotalDebits sums the debit lines of the entry
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		if line.Type == LineTypeDebit {
			total = total.Add(line.Amount)
		}
	}
	return total
}

// TotalCredits sums the credit lines of the entry
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		if line.Type == LineTypeCredit {
			total = total.Add(line.Amount)
		}
	}
	return total
}

func balanced(lines []JournalLine) bool {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if line.Type == LineTypeDebit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	return debits.Sub(credits).Abs().LessThanOrEqual(RoundingEpsilon)
}

// Ledger-specific domain errors
var (
	// ErrUnbalancedEntry signals that constructed lines do not balance.
	// Recorders derive lines so that debits equal credits by construction,
	// so reaching this error means a derivation bug, not bad user input.
	ErrUnbalancedEntry = shared.NewDomainError("UNBALANCED_ENTRY", "Journal entry debits and credits do not balance")

	// ErrMissingSystemAccount signals that a tenant's chart of accounts lacks
	// a required system account. Posting must abort the enclosing transaction
	// so inventory and cash side effects do not commit without their ledger
	// record.
	ErrMissingSystemAccount = shared.NewDomainError("MISSING_SYSTEM_ACCOUNT", "Required system account is not configured for this tenant")
)

// LineBuilder accumulates debit and credit amounts per account, so that
// multiple contributions to the same account on the same side emit one
// combined line instead of one line per item. Near-zero accumulated amounts
// are dropped when the lines are emitted.
type LineBuilder struct {
	keys    []lineKey
	amounts map[lineKey]decimal.Decimal
	names   map[uuid.UUID]string
}

type lineKey struct {
	accountID uuid.UUID
	lineType  LineType
}

// NewLineBuilder creates an empty LineBuilder
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		amounts: make(map[lineKey]decimal.Decimal),
		names:   make(map[uuid.UUID]string),
	}
}

// Debit adds a debit amount against the account
func (b *LineBuilder) Debit(account *Account, amount decimal.Decimal) *LineBuilder {
	return b.add(account, LineTypeDebit, amount)
}

// Credit adds a credit amount against the account
func (b *LineBuilder) Credit(account *Account, amount decimal.Decimal) *LineBuilder {
	return b.add(account, LineTypeCredit, amount)
}

func (b *LineBuilder) add(account *Account, lineType LineType, amount decimal.Decimal) *LineBuilder {
	key := lineKey{accountID: account.ID, lineType: lineType}
	if _, seen := b.amounts[key]; !seen {
		b.keys = append(b.keys, key)
	}
	b.amounts[key] = b.amounts[key].Add(amount)
	b.names[account.ID] = account.Name
	return b
}

// Lines emits the aggregated journal lines in insertion order, dropping any
// whose accumulated amount is below RoundingEpsilon.
func (b *LineBuilder) Lines() []JournalLine {
	lines := make([]JournalLine, 0, len(b.keys))
	for _, key := range b.keys {
		amount := b.amounts[key]
		if amount.Abs().LessThan(RoundingEpsilon) {
			continue
		}
		lines = append(lines, JournalLine{
			AccountID:   key.accountID,
			AccountName: b.names[key.accountID],
			Type:        key.lineType,
			Amount:      amount,
		})
	}
	return lines
}
