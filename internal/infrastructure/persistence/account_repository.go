package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormAccountRepository implements ledger.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByIDForTenant finds an account by ID within a tenant
func (r *GormAccountRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds an account by its display number within a tenant
func (r *GormAccountRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*ledger.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND number = ?", tenantID, number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySubType finds the tenant's canonical account for a functional role
func (r *GormAccountRepository) FindBySubType(ctx context.Context, tenantID uuid.UUID, subType ledger.AccountSubType) (*ledger.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND sub_type = ?", tenantID, subType).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists the tenant's chart of accounts ordered by number
func (r *GormAccountRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]ledger.Account, error) {
	var rows []models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("number ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	accounts := make([]ledger.Account, len(rows))
	for i := range rows {
		accounts[i] = *rows[i].ToDomain()
	}
	return accounts, nil
}

// FindSystemAccounts lists the tenant's accounts that carry a sub-type
func (r *GormAccountRepository) FindSystemAccounts(ctx context.Context, tenantID uuid.UUID) ([]ledger.Account, error) {
	var rows []models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND sub_type IS NOT NULL", tenantID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	accounts := make([]ledger.Account, len(rows))
	for i := range rows {
		accounts[i] = *rows[i].ToDomain()
	}
	return accounts, nil
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, account *ledger.Account) error {
	model := models.AccountModelFromDomain(account)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes an account. Accounts referenced by journal lines
// cannot be deleted; the ledger is append-only and its history must stay
// resolvable.
func (r *GormAccountRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	var referenced int64
	if err := r.db.WithContext(ctx).
		Model(&models.JournalLineModel{}).
		Where("account_id = ?", id).
		Count(&referenced).Error; err != nil {
		return err
	}
	if referenced > 0 {
		return shared.ErrAccountReferenced
	}

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&models.AccountModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ApplyBalanceChange applies a signed delta to the account's running balance
// as an atomic in-database increment, never read-modify-write.
func (r *GormAccountRepository) ApplyBalanceChange(ctx context.Context, tenantID, accountID uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("tenant_id = ? AND id = ?", tenantID, accountID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
