package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/interfaces/http/dto"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// CatalogHandler exposes products and categories. Writes go straight through
// the repositories; the only cross-cutting concern is invalidating the chart
// snapshot when category account overrides change.
type CatalogHandler struct {
	BaseHandler
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	charts     *bookkeeping.ChartService
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(products catalog.ProductRepository, categories catalog.CategoryRepository, charts *bookkeeping.ChartService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(logger),
		products:    products,
		categories:  categories,
		charts:      charts,
	}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
	}
	categories := router.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
	}
}

// CreateProduct handles POST /products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	tenantID := middleware.GetTenantID(c)

	if existing, err := h.products.FindBySKU(c.Request.Context(), tenantID, req.SKU); err == nil && existing != nil {
		h.HandleError(c, shared.NewDomainError("ALREADY_EXISTS", "SKU is already in use: "+req.SKU))
		return
	}

	product, err := catalog.NewProduct(tenantID, req.SKU, req.Name, req.CategoryID,
		req.SalePrice, req.CostPrice, req.TaxRate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if actorID := middleware.GetActorID(c); actorID != nil {
		product.SetCreatedBy(*actorID)
	}
	if err := h.products.Save(c.Request.Context(), product); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ProductFromDomain(product))
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.products.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ProductFromDomain(product))
}

// CreateCategory handles POST /categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	tenantID := middleware.GetTenantID(c)

	category, err := catalog.NewCategory(tenantID, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	category.SetAccountOverrides(req.RevenueAccountID, req.COGSAccountID)
	if actorID := middleware.GetActorID(c); actorID != nil {
		category.SetCreatedBy(*actorID)
	}
	if err := h.categories.Save(c.Request.Context(), category); err != nil {
		h.HandleError(c, err)
		return
	}
	if category.HasAccountOverride() {
		h.charts.InvalidateSnapshot(c.Request.Context(), tenantID)
	}
	h.Created(c, dto.CategoryFromDomain(category))
}
