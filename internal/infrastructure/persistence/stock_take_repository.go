package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStockTakeRepository implements inventory.StockTakeRepository using GORM
type GormStockTakeRepository struct {
	db *gorm.DB
}

// NewGormStockTakeRepository creates a new GormStockTakeRepository
func NewGormStockTakeRepository(db *gorm.DB) *GormStockTakeRepository {
	return &GormStockTakeRepository{db: db}
}

// FindByIDForTenant finds a stock take with its lines
func (r *GormStockTakeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*inventory.StockTake, error) {
	var model models.StockTakeModel
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

// SaveWithLines persists the stock take header and lines
func (r *GormStockTakeRepository) SaveWithLines(ctx context.Context, stockTake *inventory.StockTake) error {
	model := models.StockTakeModelFromDomain(stockTake)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Save(model).Error; err != nil {
			return err
		}
		for i := range model.Lines {
			if err := tx.Save(&model.Lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
