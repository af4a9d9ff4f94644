package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/interfaces/http/dto"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// PartnerHandler exposes customers and suppliers
type PartnerHandler struct {
	BaseHandler
	customers partner.CustomerRepository
	suppliers partner.SupplierRepository
}

// NewPartnerHandler creates a partner handler
func NewPartnerHandler(customers partner.CustomerRepository, suppliers partner.SupplierRepository, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		BaseHandler: NewBaseHandler(logger),
		customers:   customers,
		suppliers:   suppliers,
	}
}

// RegisterRoutes registers partner routes
func (h *PartnerHandler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
	}
	suppliers := router.Group("/suppliers")
	{
		suppliers.POST("", h.CreateSupplier)
		suppliers.GET("/:id", h.GetSupplier)
	}
}

// CreateCustomer handles POST /customers
func (h *PartnerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := partner.NewCustomer(middleware.GetTenantID(c), req.Name, req.Phone, req.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if actorID := middleware.GetActorID(c); actorID != nil {
		customer.SetCreatedBy(*actorID)
	}
	if err := h.customers.Save(c.Request.Context(), customer); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.CustomerFromDomain(customer))
}

// GetCustomer handles GET /customers/:id
func (h *PartnerHandler) GetCustomer(c *gin.Context) {
	customerID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := h.customers.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.CustomerFromDomain(customer))
}

// CreateSupplier handles POST /suppliers
func (h *PartnerHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := partner.NewSupplier(middleware.GetTenantID(c), req.Name, req.Phone, req.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if actorID := middleware.GetActorID(c); actorID != nil {
		supplier.SetCreatedBy(*actorID)
	}
	if err := h.suppliers.Save(c.Request.Context(), supplier); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.SupplierFromDomain(supplier))
}

// GetSupplier handles GET /suppliers/:id
func (h *PartnerHandler) GetSupplier(c *gin.Context) {
	supplierID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	supplier, err := h.suppliers.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SupplierFromDomain(supplier))
}
