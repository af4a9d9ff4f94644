package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJournalEntryRepository implements ledger.JournalEntryRepository using GORM
type GormJournalEntryRepository struct {
	db *gorm.DB
}

// NewGormJournalEntryRepository creates a new GormJournalEntryRepository
func NewGormJournalEntryRepository(db *gorm.DB) *GormJournalEntryRepository {
	return &GormJournalEntryRepository{db: db}
}

// SaveWithLines persists the entry and all of its lines. Entries are
// append-only: this is an insert, never an update.
func (r *GormJournalEntryRepository) SaveWithLines(ctx context.Context, entry *ledger.JournalEntry) error {
	model := models.JournalEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByIDForTenant finds an entry with its lines by ID within a tenant
func (r *GormJournalEntryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.JournalEntry, error) {
	var model models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists entries matching the filter, newest first
func (r *GormJournalEntryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.JournalEntryFilter) ([]ledger.JournalEntry, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.JournalEntryModel{}).
		Where("journal_entries.tenant_id = ?", tenantID)

	if filter.Source != nil {
		query = query.Where("journal_entries.source = ?", *filter.Source)
	}
	if filter.SourceID != nil {
		query = query.Where("journal_entries.source_id = ?", *filter.SourceID)
	}
	if filter.AccountID != nil {
		query = query.
			Joins("JOIN journal_lines ON journal_lines.journal_entry_id = journal_entries.id").
			Where("journal_lines.account_id = ?", *filter.AccountID).
			Distinct("journal_entries.*")
	}
	if filter.From != nil {
		query = query.Where("journal_entries.entry_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("journal_entries.entry_date < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	var rows []models.JournalEntryModel
	if err := query.
		Preload("Lines").
		Order("journal_entries.entry_date DESC, journal_entries.created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]ledger.JournalEntry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].ToDomain()
	}
	return entries, total, nil
}
