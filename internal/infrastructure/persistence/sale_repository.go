package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSaleRepository implements sales.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByIDForTenant finds a sale with its lines and payments
func (r *GormSaleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*sales.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Payments").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveWithLines persists the sale header, lines and payments
func (r *GormSaleRepository) SaveWithLines(ctx context.Context, sale *sales.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines", "Payments").Save(model).Error; err != nil {
			return err
		}
		for i := range model.Lines {
			if err := tx.Save(&model.Lines[i]).Error; err != nil {
				return err
			}
		}
		for i := range model.Payments {
			if err := tx.Save(&model.Payments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GenerateSaleNumber produces the next sale number for the tenant
func (r *GormSaleRepository) GenerateSaleNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SaleModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("S-%06d", count+1), nil
}
