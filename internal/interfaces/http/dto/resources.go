package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// AccountResponse is the API shape of a chart-of-accounts row
type AccountResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Number        string          `json:"number"`
	Type          string          `json:"type"`
	SubType       *string         `json:"sub_type,omitempty"`
	IsDebitNormal bool            `json:"is_debit_normal"`
	Balance       decimal.Decimal `json:"balance"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a ledger account to its API shape
func AccountFromDomain(account *ledger.Account) AccountResponse {
	var subType *string
	if account.SubType != nil {
		s := account.SubType.String()
		subType = &s
	}
	return AccountResponse{
		ID:            account.ID,
		Name:          account.Name,
		Number:        account.Number,
		Type:          account.Type.String(),
		SubType:       subType,
		IsDebitNormal: account.IsDebitNormal,
		Balance:       account.Balance,
		Description:   account.Description,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// AccountsFromDomain converts a slice of ledger accounts
func AccountsFromDomain(accounts []ledger.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = AccountFromDomain(&accounts[i])
	}
	return out
}

// JournalLineResponse is one line of a journal entry
type JournalLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	AccountName string          `json:"account_name"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
}

// JournalEntryResponse is the API shape of a posted journal entry
type JournalEntryResponse struct {
	ID          uuid.UUID             `json:"id"`
	EntryDate   time.Time             `json:"entry_date"`
	Description string                `json:"description"`
	Source      string                `json:"source"`
	SourceID    *uuid.UUID            `json:"source_id,omitempty"`
	Lines       []JournalLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"created_at"`
}

// JournalEntryFromDomain converts a journal entry to its API shape
func JournalEntryFromDomain(entry *ledger.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(entry.Lines))
	for i, line := range entry.Lines {
		lines[i] = JournalLineResponse{
			ID:          line.ID,
			AccountID:   line.AccountID,
			AccountName: line.AccountName,
			Type:        string(line.Type),
			Amount:      line.Amount,
		}
	}
	return JournalEntryResponse{
		ID:          entry.ID,
		EntryDate:   entry.EntryDate,
		Description: entry.Description,
		Source:      string(entry.Source),
		SourceID:    entry.SourceID,
		Lines:       lines,
		CreatedAt:   entry.CreatedAt,
	}
}

// JournalEntriesFromDomain converts a slice of journal entries
func JournalEntriesFromDomain(entries []ledger.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = JournalEntryFromDomain(&entries[i])
	}
	return out
}

// SaleLineResponse is one cart line of a sale
type SaleLineResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ReturnedQuantity decimal.Decimal `json:"returned_quantity"`
}

// SalePaymentResponse is one payment against a sale
type SalePaymentResponse struct {
	ID     uuid.UUID       `json:"id"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paid_at"`
}

// SaleResponse is the API shape of a sale
type SaleResponse struct {
	ID            uuid.UUID             `json:"id"`
	SaleNumber    string                `json:"sale_number"`
	CustomerID    *uuid.UUID            `json:"customer_id,omitempty"`
	GrossTotal    decimal.Decimal       `json:"gross_total"`
	DiscountTotal decimal.Decimal       `json:"discount_total"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxTotal      decimal.Decimal       `json:"tax_total"`
	Total         decimal.Decimal       `json:"total"`
	AmountPaid    decimal.Decimal       `json:"amount_paid"`
	PaymentStatus string                `json:"payment_status"`
	SoldAt        time.Time             `json:"sold_at"`
	Lines         []SaleLineResponse    `json:"lines"`
	Payments      []SalePaymentResponse `json:"payments"`
}

// SaleFromDomain converts a sale to its API shape
func SaleFromDomain(sale *sales.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(sale.Lines))
	for i, line := range sale.Lines {
		lines[i] = SaleLineResponse{
			ID:               line.ID,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			UnitPrice:        line.UnitPrice,
			ReturnedQuantity: line.ReturnedQuantity,
		}
	}
	payments := make([]SalePaymentResponse, len(sale.Payments))
	for i, payment := range sale.Payments {
		payments[i] = SalePaymentResponse{
			ID:     payment.ID,
			Method: string(payment.Method),
			Amount: payment.Amount,
			PaidAt: payment.PaidAt,
		}
	}
	return SaleResponse{
		ID:            sale.ID,
		SaleNumber:    sale.SaleNumber,
		CustomerID:    sale.CustomerID,
		GrossTotal:    sale.GrossTotal,
		DiscountTotal: sale.DiscountTotal,
		Subtotal:      sale.Subtotal,
		TaxTotal:      sale.TaxTotal,
		Total:         sale.Total,
		AmountPaid:    sale.AmountPaid,
		PaymentStatus: string(sale.PaymentStatus),
		SoldAt:        sale.SoldAt,
		Lines:         lines,
		Payments:      payments,
	}
}

// ProductResponse is the API shape of a product
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductFromDomain converts a product to its API shape
func ProductFromDomain(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		SKU:           product.SKU,
		Name:          product.Name,
		CategoryID:    product.CategoryID,
		SalePrice:     product.SalePrice,
		CostPrice:     product.CostPrice,
		TaxRate:       product.TaxRate,
		StockQuantity: product.StockQuantity,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// CategoryResponse is the API shape of a category
type CategoryResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	RevenueAccountID *uuid.UUID `json:"revenue_account_id,omitempty"`
	COGSAccountID    *uuid.UUID `json:"cogs_account_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// CategoryFromDomain converts a category to its API shape
func CategoryFromDomain(category *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:               category.ID,
		Name:             category.Name,
		RevenueAccountID: category.RevenueAccountID,
		COGSAccountID:    category.COGSAccountID,
		CreatedAt:        category.CreatedAt,
	}
}

// CustomerResponse is the API shape of a customer
type CustomerResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone,omitempty"`
	Email       string          `json:"email,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	StoreCredit decimal.Decimal `json:"store_credit"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CustomerFromDomain converts a customer to its API shape
func CustomerFromDomain(customer *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Phone:       customer.Phone,
		Email:       customer.Email,
		Balance:     customer.Balance,
		StoreCredit: customer.StoreCredit,
		CreatedAt:   customer.CreatedAt,
	}
}

// SupplierResponse is the API shape of a supplier
type SupplierResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// SupplierFromDomain converts a supplier to its API shape
func SupplierFromDomain(supplier *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Phone:     supplier.Phone,
		Email:     supplier.Email,
		Balance:   supplier.Balance,
		CreatedAt: supplier.CreatedAt,
	}
}

// PurchaseOrderLineResponse is one ordered item
type PurchaseOrderLineResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrderResponse is the API shape of a purchase order
type PurchaseOrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	OrderNumber  string                      `json:"order_number"`
	SupplierID   uuid.UUID                   `json:"supplier_id"`
	SupplierName string                      `json:"supplier_name"`
	Status       string                      `json:"status"`
	OrderedAt    time.Time                   `json:"ordered_at"`
	Lines        []PurchaseOrderLineResponse `json:"lines"`
}

// PurchaseOrderFromDomain converts a purchase order to its API shape
func PurchaseOrderFromDomain(order *purchasing.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = PurchaseOrderLineResponse{
			ID:               line.ID,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			ReceivedQuantity: line.ReceivedQuantity,
			UnitCost:         line.UnitCost,
		}
	}
	return PurchaseOrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		SupplierID:   order.SupplierID,
		SupplierName: order.SupplierName,
		Status:       string(order.Status),
		OrderedAt:    order.OrderedAt,
		Lines:        lines,
	}
}

// SupplierInvoiceResponse is the API shape of a supplier invoice
type SupplierInvoiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	SupplierID      uuid.UUID       `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name"`
	PurchaseOrderID *uuid.UUID      `json:"purchase_order_id,omitempty"`
	Total           decimal.Decimal `json:"total"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Status          string          `json:"status"`
	IssuedAt        time.Time       `json:"issued_at"`
}

// SupplierInvoiceFromDomain converts a supplier invoice to its API shape
func SupplierInvoiceFromDomain(invoice *purchasing.SupplierInvoice) SupplierInvoiceResponse {
	return SupplierInvoiceResponse{
		ID:              invoice.ID,
		InvoiceNumber:   invoice.InvoiceNumber,
		SupplierID:      invoice.SupplierID,
		SupplierName:    invoice.SupplierName,
		PurchaseOrderID: invoice.PurchaseOrderID,
		Total:           invoice.Total,
		AmountPaid:      invoice.AmountPaid,
		Status:          string(invoice.Status),
		IssuedAt:        invoice.IssuedAt,
	}
}

// StockTakeLineResponse is one counted product
type StockTakeLineResponse struct {
	ID               uuid.UUID        `json:"id"`
	ProductID        uuid.UUID        `json:"product_id"`
	ProductName      string           `json:"product_name"`
	ExpectedQuantity decimal.Decimal  `json:"expected_quantity"`
	CountedQuantity  *decimal.Decimal `json:"counted_quantity,omitempty"`
	UnitCost         decimal.Decimal  `json:"unit_cost"`
}

// StockTakeResponse is the API shape of a stock take
type StockTakeResponse struct {
	ID          uuid.UUID               `json:"id"`
	Reference   string                  `json:"reference"`
	Status      string                  `json:"status"`
	StartedAt   time.Time               `json:"started_at"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	Lines       []StockTakeLineResponse `json:"lines"`
}

// StockTakeFromDomain converts a stock take to its API shape
func StockTakeFromDomain(stockTake *inventory.StockTake) StockTakeResponse {
	lines := make([]StockTakeLineResponse, len(stockTake.Lines))
	for i, line := range stockTake.Lines {
		lines[i] = StockTakeLineResponse{
			ID:               line.ID,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			ExpectedQuantity: line.ExpectedQuantity,
			CountedQuantity:  line.CountedQuantity,
			UnitCost:         line.UnitCost,
		}
	}
	return StockTakeResponse{
		ID:          stockTake.ID,
		Reference:   stockTake.Reference,
		Status:      string(stockTake.Status),
		StartedAt:   stockTake.StartedAt,
		CompletedAt: stockTake.CompletedAt,
		Lines:       lines,
	}
}

// AuditLogResponse is the API shape of an audit log row
type AuditLogResponse struct {
	ID         uuid.UUID  `json:"id"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	Detail     string     `json:"detail,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AuditLogsFromDomain converts a slice of audit logs
func AuditLogsFromDomain(logs []audit.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(logs))
	for i, log := range logs {
		out[i] = AuditLogResponse{
			ID:         log.ID,
			ActorID:    log.ActorID,
			Action:     string(log.Action),
			EntityType: log.EntityType,
			EntityID:   log.EntityID,
			Detail:     log.Detail,
			CreatedAt:  log.CreatedAt,
		}
	}
	return out
}
