package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/retail/backend/internal/interfaces/http/dto"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler exposes health probes
type SystemHandler struct {
	db Pinger
}

// NewSystemHandler creates a system handler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// RegisterRoutes registers health routes on the root engine, outside the
// tenant-scoped API group
func (h *SystemHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", h.Health)
	engine.GET("/readyz", h.Ready)
}

// Health handles GET /healthz
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
}

// Ready handles GET /readyz
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable,
			dto.NewErrorResponse(dto.ErrCodeInternal, "database is unreachable"))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ready"}))
}
