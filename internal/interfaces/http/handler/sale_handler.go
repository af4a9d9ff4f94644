package handler

import (
	"github.com/gin-gonic/gin"
	appsales "github.com/retail/backend/internal/application/sales"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/retail/backend/internal/interfaces/http/dto"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// SaleHandler exposes checkout, payments and returns
type SaleHandler struct {
	BaseHandler
	service *appsales.SaleService
	repo    sales.SaleRepository
}

// NewSaleHandler creates a sale handler
func NewSaleHandler(service *appsales.SaleService, repo sales.SaleRepository, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		repo:        repo,
	}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	salesGroup := router.Group("/sales")
	{
		salesGroup.POST("", h.CreateSale)
		salesGroup.GET("/:id", h.GetSale)
		salesGroup.POST("/:id/payments", h.RecordPayment)
		salesGroup.POST("/:id/returns", h.ReturnSale)
	}
}

// CreateSale handles POST /sales
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := appsales.CreateSaleInput{
		CustomerID: req.CustomerID,
		Discount:   req.Discount,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, appsales.SaleLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	for _, payment := range req.Payments {
		input.Payments = append(input.Payments, appsales.PaymentInput{
			Method: sales.PaymentMethod(payment.Method),
			Amount: payment.Amount,
		})
	}

	sale, err := h.service.CreateSale(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.SaleFromDomain(sale))
}

// GetSale handles GET /sales/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	saleID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	sale, err := h.repo.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), saleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SaleFromDomain(sale))
}

// RecordPayment handles POST /sales/:id/payments
func (h *SaleHandler) RecordPayment(c *gin.Context) {
	saleID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.service.RecordPayment(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c),
		saleID, sales.PaymentMethod(req.Method), req.Amount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SaleFromDomain(sale))
}

// ReturnSale handles POST /sales/:id/returns
func (h *SaleHandler) ReturnSale(c *gin.Context) {
	saleID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ReturnSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := appsales.ReturnInput{RefundMethod: sales.PaymentMethod(req.RefundMethod)}
	for _, item := range req.Items {
		input.Items = append(input.Items, sales.ReturnItem{
			LineID:   item.LineID,
			Quantity: item.Quantity,
		})
	}

	sale, err := h.service.ReturnSale(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c), saleID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SaleFromDomain(sale))
}
