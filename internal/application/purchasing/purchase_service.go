package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderLineInput is one ordered item of a new purchase order
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitCost  *decimal.Decimal
}

// CreateOrderInput carries a new purchase order
type CreateOrderInput struct {
	SupplierID uuid.UUID
	Lines      []OrderLineInput
}

// PurchaseService runs the purchasing workflows: ordering, receiving stock
// and paying suppliers.
type PurchaseService struct {
	scope    TransactionScope
	charts   *bookkeeping.ChartService
	recorder *bookkeeping.Recorder
	logger   *zap.Logger
}

// NewPurchaseService creates a purchase service
func NewPurchaseService(scope TransactionScope, charts *bookkeeping.ChartService, recorder *bookkeeping.Recorder, logger *zap.Logger) *PurchaseService {
	return &PurchaseService{
		scope:    scope,
		charts:   charts,
		recorder: recorder,
		logger:   logger,
	}
}

// CreatePurchaseOrder creates and places an order. Line costs default to the
// product's current cost and are locked on the order from then on.
func (s *PurchaseService) CreatePurchaseOrder(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, input CreateOrderInput) (*purchasing.PurchaseOrder, error) {
	if len(input.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Purchase order must have at least one line")
	}

	var order *purchasing.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		supplier, err := repos.SupplierRepo().FindByIDForTenant(ctx, tenantID, input.SupplierID)
		if err != nil {
			return err
		}
		number, err := repos.OrderRepo().GenerateOrderNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		order, err = purchasing.NewPurchaseOrder(tenantID, number, supplier.ID, supplier.Name, time.Now())
		if err != nil {
			return err
		}
		if actorID != nil {
			order.SetCreatedBy(*actorID)
		}

		for _, lineInput := range input.Lines {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, lineInput.ProductID)
			if err != nil {
				return err
			}
			unitCost := product.CostPrice
			if lineInput.UnitCost != nil {
				unitCost = *lineInput.UnitCost
			}
			if err := order.AddLine(product.ID, product.Name, lineInput.Quantity, unitCost); err != nil {
				return err
			}
		}
		if err := order.Place(); err != nil {
			return err
		}
		return repos.OrderRepo().SaveWithLines(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber))
	return order, nil
}

// ReceiveItems books received quantities against an order: stock goes up at
// the ordered cost, the supplier balance grows and the reception is posted
// to the ledger, all in one transaction.
func (s *PurchaseService) ReceiveItems(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, orderID uuid.UUID, items []purchasing.ReceiptItem) (*purchasing.PurchaseOrder, error) {
	chart, err := s.charts.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var order *purchasing.PurchaseOrder
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err = repos.OrderRepo().FindByIDForTenant(ctx, tenantID, orderID)
		if err != nil {
			return err
		}

		received, totalCost, err := order.Receive(items)
		if err != nil {
			return err
		}

		for _, item := range received {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, item.ProductID)
			if err != nil {
				return err
			}
			if err := product.AdjustStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		supplier, err := repos.SupplierRepo().FindByIDForTenant(ctx, tenantID, order.SupplierID)
		if err != nil {
			return err
		}
		if err := supplier.AddBalance(totalCost); err != nil {
			return err
		}
		if err := repos.SupplierRepo().Save(ctx, supplier); err != nil {
			return err
		}

		if _, err := s.recorder.RecordPurchaseOrderReception(ctx, ledgerRepos(repos), chart, order, totalCost); err != nil {
			return err
		}
		if err := repos.OrderRepo().SaveWithLines(ctx, order); err != nil {
			return err
		}
		return repos.AuditRepo().Save(ctx, audit.NewAuditLog(tenantID, actorID, audit.ActionOrderReceived, "purchase_order", order.ID, "Reception for order "+order.OrderNumber))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order items received",
		zap.String("tenant_id", tenantID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)))
	return order, nil
}

// CreateSupplierInvoice raises an invoice for an amount owed to a supplier
func (s *PurchaseService) CreateSupplierInvoice(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, supplierID uuid.UUID, purchaseOrderID *uuid.UUID, total decimal.Decimal) (*purchasing.SupplierInvoice, error) {
	var invoice *purchasing.SupplierInvoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		supplier, err := repos.SupplierRepo().FindByIDForTenant(ctx, tenantID, supplierID)
		if err != nil {
			return err
		}
		if purchaseOrderID != nil {
			if _, err := repos.OrderRepo().FindByIDForTenant(ctx, tenantID, *purchaseOrderID); err != nil {
				return err
			}
		}
		number, err := repos.InvoiceRepo().GenerateInvoiceNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		invoice, err = purchasing.NewSupplierInvoice(tenantID, number, supplier.ID, supplier.Name, purchaseOrderID, total, time.Now())
		if err != nil {
			return err
		}
		if actorID != nil {
			invoice.SetCreatedBy(*actorID)
		}
		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Supplier invoice created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("invoice_id", invoice.ID.String()))
	return invoice, nil
}

// RecordSupplierPayment pays down an invoice: the invoice and supplier
// balance shrink and the payment is posted to the ledger.
func (s *PurchaseService) RecordSupplierPayment(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, invoiceID uuid.UUID, amount decimal.Decimal) (*purchasing.SupplierInvoice, error) {
	chart, err := s.charts.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var invoice *purchasing.SupplierInvoice
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err = repos.InvoiceRepo().FindByIDForTenant(ctx, tenantID, invoiceID)
		if err != nil {
			return err
		}
		if err := invoice.RecordPayment(amount); err != nil {
			return err
		}

		supplier, err := repos.SupplierRepo().FindByIDForTenant(ctx, tenantID, invoice.SupplierID)
		if err != nil {
			return err
		}
		if err := supplier.SettleBalance(amount); err != nil {
			return err
		}
		if err := repos.SupplierRepo().Save(ctx, supplier); err != nil {
			return err
		}

		if _, err := s.recorder.RecordSupplierPayment(ctx, ledgerRepos(repos), chart, invoice, amount); err != nil {
			return err
		}
		if err := repos.InvoiceRepo().Save(ctx, invoice); err != nil {
			return err
		}
		return repos.AuditRepo().Save(ctx, audit.NewAuditLog(tenantID, actorID, audit.ActionInvoicePaid, "supplier_invoice", invoice.ID, "Payment "+amount.String()+" for invoice "+invoice.InvoiceNumber))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Supplier payment recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("amount", amount.String()))
	return invoice, nil
}
