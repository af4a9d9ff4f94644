package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAuditLogRepository implements audit.AuditLogRepository using GORM
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Save appends an audit log row
func (r *GormAuditLogRepository) Save(ctx context.Context, log *audit.AuditLog) error {
	model := models.AuditLogModelFromDomain(log)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindAllForTenant lists audit logs for a tenant, newest first
func (r *GormAuditLogRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]audit.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.AuditLogModel{}).
		Where("tenant_id = ?", tenantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit < 1 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows []models.AuditLogModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]audit.AuditLog, len(rows))
	for i := range rows {
		logs[i] = *rows[i].ToDomain()
	}
	return logs, total, nil
}
