package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/interfaces/http/dto"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// AccountHandler exposes the chart of accounts and the journal
type AccountHandler struct {
	BaseHandler
	charts  *bookkeeping.ChartService
	journal ledger.JournalEntryRepository
}

// NewAccountHandler creates an account handler
func NewAccountHandler(charts *bookkeeping.ChartService, journal ledger.JournalEntryRepository, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler: NewBaseHandler(logger),
		charts:      charts,
		journal:     journal,
	}
}

// RegisterRoutes registers account and journal routes
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	accounts := router.Group("/accounts")
	{
		accounts.POST("", h.CreateAccount)
		accounts.GET("", h.ListAccounts)
		accounts.GET("/:id", h.GetAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
	}
	router.POST("/chart/seed", h.SeedChart)

	journal := router.Group("/journal-entries")
	{
		journal.GET("", h.ListJournalEntries)
		journal.GET("/:id", h.GetJournalEntry)
	}
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := bookkeeping.CreateAccountInput{
		Name:        req.Name,
		Number:      req.Number,
		Type:        ledger.AccountType(req.Type),
		Description: req.Description,
	}
	if req.SubType != nil {
		subType := ledger.AccountSubType(*req.SubType)
		input.SubType = &subType
	}

	account, err := h.charts.CreateAccount(c.Request.Context(), middleware.GetTenantID(c), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.AccountFromDomain(account))
}

// ListAccounts handles GET /accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.charts.ListAccounts(c.Request.Context(), middleware.GetTenantID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.AccountsFromDomain(accounts))
}

// GetAccount handles GET /accounts/:id
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	account, err := h.charts.GetAccount(c.Request.Context(), middleware.GetTenantID(c), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.AccountFromDomain(account))
}

// UpdateAccount handles PUT /accounts/:id
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	accountID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	account, err := h.charts.UpdateAccount(c.Request.Context(), middleware.GetTenantID(c),
		accountID, req.Name, req.Number, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.AccountFromDomain(account))
}

// DeleteAccount handles DELETE /accounts/:id
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	accountID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.charts.DeleteAccount(c.Request.Context(), middleware.GetTenantID(c), accountID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SeedChart handles POST /chart/seed
func (h *AccountHandler) SeedChart(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	if err := h.charts.SeedDefaultChart(c.Request.Context(), tenantID); err != nil {
		h.HandleError(c, err)
		return
	}
	accounts, err := h.charts.ListAccounts(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.AccountsFromDomain(accounts))
}

// ListJournalEntries handles GET /journal-entries
func (h *AccountHandler) ListJournalEntries(c *gin.Context) {
	filter, ok := h.journalFilter(c)
	if !ok {
		return
	}
	entries, total, err := h.journal.FindAllForTenant(c.Request.Context(), middleware.GetTenantID(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.JournalEntriesFromDomain(entries), total, filter.Page, filter.PageSize)
}

// GetJournalEntry handles GET /journal-entries/:id
func (h *AccountHandler) GetJournalEntry(c *gin.Context) {
	entryID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	entry, err := h.journal.FindByIDForTenant(c.Request.Context(), middleware.GetTenantID(c), entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.JournalEntryFromDomain(entry))
}

func (h *AccountHandler) journalFilter(c *gin.Context) (ledger.JournalEntryFilter, bool) {
	var filter ledger.JournalEntryFilter
	filter.Page, filter.PageSize = Pagination(c)

	if raw := c.Query("source"); raw != "" {
		source := ledger.EntrySource(raw)
		if !source.IsValid() {
			h.BadRequest(c, "Unknown journal entry source: "+raw)
			return filter, false
		}
		filter.Source = &source
	}
	if raw := c.Query("source_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "source_id must be a valid UUID")
			return filter, false
		}
		filter.SourceID = &id
	}
	if raw := c.Query("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "account_id must be a valid UUID")
			return filter, false
		}
		filter.AccountID = &id
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.BadRequest(c, "from must be an RFC3339 timestamp")
			return filter, false
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.BadRequest(c, "to must be an RFC3339 timestamp")
			return filter, false
		}
		filter.To = &to
	}
	return filter, true
}
