package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/interfaces/http/dto"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// AuditHandler exposes the audit trail
type AuditHandler struct {
	BaseHandler
	logs audit.AuditLogRepository
}

// NewAuditHandler creates an audit handler
func NewAuditHandler(logs audit.AuditLogRepository, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		BaseHandler: NewBaseHandler(logger),
		logs:        logs,
	}
}

// RegisterRoutes registers audit routes
func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", h.ListLogs)
}

// ListLogs handles GET /audit-logs
func (h *AuditHandler) ListLogs(c *gin.Context) {
	page, pageSize := Pagination(c)
	logs, total, err := h.logs.FindAllForTenant(c.Request.Context(),
		middleware.GetTenantID(c), pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.AuditLogsFromDomain(logs), total, page, pageSize)
}
