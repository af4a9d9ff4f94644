package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/audit"
)

// AuditLogModel is the persistence model for audit log rows. Rows are
// append-only; there is no update path.
type AuditLogModel struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key"`
	TenantID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	ActorID    *uuid.UUID   `gorm:"type:uuid;index"`
	Action     audit.Action `gorm:"type:varchar(50);not null;index"`
	EntityType string       `gorm:"type:varchar(50);not null"`
	EntityID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	Detail     string       `gorm:"type:text"`
	CreatedAt  time.Time    `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts the persistence model to a domain AuditLog
func (m *AuditLogModel) ToDomain() *audit.AuditLog {
	return &audit.AuditLog{
		ID:         m.ID,
		TenantID:   m.TenantID,
		ActorID:    m.ActorID,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Detail:     m.Detail,
		CreatedAt:  m.CreatedAt,
	}
}

// AuditLogModelFromDomain creates a new persistence model from a domain AuditLog
func AuditLogModelFromDomain(l *audit.AuditLog) *AuditLogModel {
	return &AuditLogModel{
		ID:         l.ID,
		TenantID:   l.TenantID,
		ActorID:    l.ActorID,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Detail:     l.Detail,
		CreatedAt:  l.CreatedAt,
	}
}
