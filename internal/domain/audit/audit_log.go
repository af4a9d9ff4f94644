package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action identifies what happened
type Action string

const (
	ActionSaleCreated       Action = "sale.created"
	ActionSaleReturned      Action = "sale.returned"
	ActionPaymentRecorded   Action = "payment.recorded"
	ActionOrderReceived     Action = "purchase_order.received"
	ActionInvoicePaid       Action = "supplier_invoice.paid"
	ActionStockAdjusted     Action = "stock.adjusted"
	ActionStockTakeFinished Action = "stock_take.finalized"
	ActionAccountCreated    Action = "account.created"
	ActionAccountUpdated    Action = "account.updated"
	ActionAccountDeleted    Action = "account.deleted"
)

// AuditLog is an append-only record of a business action
type AuditLog struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	ActorID    *uuid.UUID
	Action     Action
	EntityType string
	EntityID   uuid.UUID
	Detail     string
	CreatedAt  time.Time
}

// NewAuditLog builds a log row for an action on an entity
func NewAuditLog(tenantID uuid.UUID, actorID *uuid.UUID, action Action, entityType string, entityID uuid.UUID, detail string) *AuditLog {
	return &AuditLog{
		ID:         uuid.New(),
		TenantID:   tenantID,
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
}

// AuditLogRepository defines persistence operations for audit logs
type AuditLogRepository interface {
	Save(ctx context.Context, log *AuditLog) error
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]AuditLog, int64, error)
}
