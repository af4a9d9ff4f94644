package handler

import (
	"github.com/gin-gonic/gin"
	apppurchasing "github.com/retail/backend/internal/application/purchasing"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/retail/backend/internal/interfaces/http/dto"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// PurchaseHandler exposes purchase orders and supplier invoices
type PurchaseHandler struct {
	BaseHandler
	service  *apppurchasing.PurchaseService
	orders   purchasing.PurchaseOrderRepository
	invoices purchasing.SupplierInvoiceRepository
}

// NewPurchaseHandler creates a purchase handler
func NewPurchaseHandler(service *apppurchasing.PurchaseService, orders purchasing.PurchaseOrderRepository, invoices purchasing.SupplierInvoiceRepository, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		orders:      orders,
		invoices:    invoices,
	}
}

// RegisterRoutes registers purchasing routes
func (h *PurchaseHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/purchase-orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/receipts", h.ReceiveItems)
	}
	invoices := router.Group("/supplier-invoices")
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("/:id/payments", h.PayInvoice)
	}
}

// CreateOrder handles POST /purchase-orders
func (h *PurchaseHandler) CreateOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := apppurchasing.CreateOrderInput{SupplierID: req.SupplierID}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, apppurchasing.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
		})
	}

	order, err := h.service.CreatePurchaseOrder(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.PurchaseOrderFromDomain(order))
}

// GetOrder handles GET /purchase-orders/:id
func (h *PurchaseHandler) GetOrder(c *gin.Context) {
	orderID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.PurchaseOrderFromDomain(order))
}

// ReceiveItems handles POST /purchase-orders/:id/receipts
func (h *PurchaseHandler) ReceiveItems(c *gin.Context) {
	orderID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ReceiveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items := make([]purchasing.ReceiptItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, purchasing.ReceiptItem{
			LineID:   item.LineID,
			Quantity: item.Quantity,
		})
	}

	order, err := h.service.ReceiveItems(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c), orderID, items)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.PurchaseOrderFromDomain(order))
}

// CreateInvoice handles POST /supplier-invoices
func (h *PurchaseHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateSupplierInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.CreateSupplierInvoice(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c),
		req.SupplierID, req.PurchaseOrderID, req.Total)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.SupplierInvoiceFromDomain(invoice))
}

// GetInvoice handles GET /supplier-invoices/:id
func (h *PurchaseHandler) GetInvoice(c *gin.Context) {
	invoiceID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoices.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SupplierInvoiceFromDomain(invoice))
}

// PayInvoice handles POST /supplier-invoices/:id/payments
func (h *PurchaseHandler) PayInvoice(c *gin.Context) {
	invoiceID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PaySupplierInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.RecordSupplierPayment(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c), invoiceID, req.Amount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SupplierInvoiceFromDomain(invoice))
}
