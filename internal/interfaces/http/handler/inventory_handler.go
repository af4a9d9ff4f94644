package handler

import (
	"github.com/gin-gonic/gin"
	appinventory "github.com/retail/backend/internal/application/inventory"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/interfaces/http/dto"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// InventoryHandler exposes stock adjustments and stock takes
type InventoryHandler struct {
	BaseHandler
	service    *appinventory.StockService
	stockTakes inventory.StockTakeRepository
}

// NewInventoryHandler creates an inventory handler
func NewInventoryHandler(service *appinventory.StockService, stockTakes inventory.StockTakeRepository, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		stockTakes:  stockTakes,
	}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/stock-adjustments", h.AdjustStock)

	stockTakes := router.Group("/stock-takes")
	{
		stockTakes.POST("", h.CreateStockTake)
		stockTakes.GET("/:id", h.GetStockTake)
		stockTakes.POST("/:id/counts", h.RecordCounts)
		stockTakes.POST("/:id/finalize", h.FinalizeStockTake)
	}
}

// AdjustStock handles POST /stock-adjustments
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.service.AdjustStock(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c),
		req.ProductID, req.Delta, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ProductFromDomain(product))
}

// CreateStockTake handles POST /stock-takes
func (h *InventoryHandler) CreateStockTake(c *gin.Context) {
	var req dto.CreateStockTakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stockTake, err := h.service.CreateStockTake(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c),
		req.Reference, req.ProductIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.StockTakeFromDomain(stockTake))
}

// GetStockTake handles GET /stock-takes/:id
func (h *InventoryHandler) GetStockTake(c *gin.Context) {
	stockTakeID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	stockTake, err := h.stockTakes.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), stockTakeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.StockTakeFromDomain(stockTake))
}

// RecordCounts handles POST /stock-takes/:id/counts
func (h *InventoryHandler) RecordCounts(c *gin.Context) {
	stockTakeID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.RecordCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	counts := make([]appinventory.CountInput, 0, len(req.Counts))
	for _, count := range req.Counts {
		counts = append(counts, appinventory.CountInput{
			ProductID: count.ProductID,
			Counted:   count.Counted,
		})
	}

	stockTake, err := h.service.RecordCounts(c.Request.Context(),
		middleware.GetTenantID(c), stockTakeID, counts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.StockTakeFromDomain(stockTake))
}

// FinalizeStockTake handles POST /stock-takes/:id/finalize
func (h *InventoryHandler) FinalizeStockTake(c *gin.Context) {
	stockTakeID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	stockTake, err := h.service.FinalizeStockTake(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c), stockTakeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.StockTakeFromDomain(stockTake))
}
