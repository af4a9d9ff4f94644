package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements purchasing.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByIDForTenant finds a purchase order with its lines
func (r *GormPurchaseOrderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
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

// SaveWithLines persists the order header and lines
func (r *GormPurchaseOrderRepository) SaveWithLines(ctx context.Context, order *purchasing.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(order)
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

// GenerateOrderNumber produces the next order number for the tenant
func (r *GormPurchaseOrderRepository) GenerateOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("PO-%06d", count+1), nil
}

// GormSupplierInvoiceRepository implements purchasing.SupplierInvoiceRepository using GORM
type GormSupplierInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSupplierInvoiceRepository creates a new GormSupplierInvoiceRepository
func NewGormSupplierInvoiceRepository(db *gorm.DB) *GormSupplierInvoiceRepository {
	return &GormSupplierInvoiceRepository{db: db}
}

// FindByIDForTenant finds a supplier invoice by ID within a tenant
func (r *GormSupplierInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*purchasing.SupplierInvoice, error) {
	var model models.SupplierInvoiceModel
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

// Save creates or updates a supplier invoice
func (r *GormSupplierInvoiceRepository) Save(ctx context.Context, invoice *purchasing.SupplierInvoice) error {
	model := models.SupplierInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Save(model).Error
}

// GenerateInvoiceNumber produces the next invoice number for the tenant
func (r *GormSupplierInvoiceRepository) GenerateInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SupplierInvoiceModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%06d", count+1), nil
}
