package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for chart-of-accounts rows.
type AccountModel struct {
	TenantModel
	Name          string                 `gorm:"type:varchar(200);not null"`
	Number        string                 `gorm:"type:varchar(50);not null;uniqueIndex:idx_account_tenant_number,priority:2"`
	Type          ledger.AccountType     `gorm:"type:varchar(20);not null"`
	SubType       *ledger.AccountSubType `gorm:"type:varchar(30);uniqueIndex:idx_account_tenant_subtype,priority:2"`
	IsDebitNormal bool                   `gorm:"not null"`
	Balance       decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Description   string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account
func (m *AccountModel) ToDomain() *ledger.Account {
	return &ledger.Account{
		TenantEntity:  m.ToDomainTenantEntity(),
		Name:          m.Name,
		Number:        m.Number,
		Type:          m.Type,
		SubType:       m.SubType,
		IsDebitNormal: m.IsDebitNormal,
		Balance:       m.Balance,
		Description:   m.Description,
	}
}

// FromDomain populates the persistence model from a domain Account
func (m *AccountModel) FromDomain(a *ledger.Account) {
	m.FromDomainTenantEntity(a.TenantEntity)
	m.Name = a.Name
	m.Number = a.Number
	m.Type = a.Type
	m.SubType = a.SubType
	m.IsDebitNormal = a.IsDebitNormal
	m.Balance = a.Balance
	m.Description = a.Description
}

// AccountModelFromDomain creates a new persistence model from a domain Account
func AccountModelFromDomain(a *ledger.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}

// JournalEntryModel is the persistence model for journal entries.
type JournalEntryModel struct {
	TenantModel
	EntryDate   time.Time          `gorm:"not null;index"`
	Description string             `gorm:"type:varchar(500)"`
	Source      ledger.EntrySource `gorm:"type:varchar(20);not null;index"`
	SourceID    *uuid.UUID         `gorm:"type:uuid;index"`
	Lines       []JournalLineModel `gorm:"foreignKey:JournalEntryID;references:ID"`
}

// TableName returns the table name for GORM
func (JournalEntryModel) TableName() string {
	return "journal_entries"
}

// JournalLineModel is the persistence model for journal lines. The foreign
// key to accounts is RESTRICT so an account with postings cannot be deleted.
type JournalLineModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	JournalEntryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Account        *AccountModel   `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:RESTRICT"`
	AccountName    string          `gorm:"type:varchar(200);not null"`
	Type           ledger.LineType `gorm:"type:varchar(10);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (JournalLineModel) TableName() string {
	return "journal_lines"
}

// ToDomain converts the persistence model to a domain JournalEntry
func (m *JournalEntryModel) ToDomain() *ledger.JournalEntry {
	lines := make([]ledger.JournalLine, len(m.Lines))
	for i := range m.Lines {
		lines[i] = ledger.JournalLine{
			ID:             m.Lines[i].ID,
			JournalEntryID: m.Lines[i].JournalEntryID,
			AccountID:      m.Lines[i].AccountID,
			AccountName:    m.Lines[i].AccountName,
			Type:           m.Lines[i].Type,
			Amount:         m.Lines[i].Amount,
		}
	}
	return &ledger.JournalEntry{
		TenantEntity: m.ToDomainTenantEntity(),
		EntryDate:    m.EntryDate,
		Description:  m.Description,
		Source:       m.Source,
		SourceID:     m.SourceID,
		Lines:        lines,
	}
}

// FromDomain populates the persistence model from a domain JournalEntry
func (m *JournalEntryModel) FromDomain(e *ledger.JournalEntry) {
	m.FromDomainTenantEntity(e.TenantEntity)
	m.EntryDate = e.EntryDate
	m.Description = e.Description
	m.Source = e.Source
	m.SourceID = e.SourceID
	m.Lines = make([]JournalLineModel, len(e.Lines))
	for i := range e.Lines {
		m.Lines[i] = JournalLineModel{
			ID:             e.Lines[i].ID,
			JournalEntryID: e.Lines[i].JournalEntryID,
			AccountID:      e.Lines[i].AccountID,
			AccountName:    e.Lines[i].AccountName,
			Type:           e.Lines[i].Type,
			Amount:         e.Lines[i].Amount,
		}
	}
}

// JournalEntryModelFromDomain creates a new persistence model from a domain JournalEntry
func JournalEntryModelFromDomain(e *ledger.JournalEntry) *JournalEntryModel {
	m := &JournalEntryModel{}
	m.FromDomain(e)
	return m
}
