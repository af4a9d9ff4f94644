package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SaleService runs the point-of-sale workflows. Each operation executes in a
// single transaction scope: stock, partner balances, the sale itself and the
// ledger posting commit together or not at all.
type SaleService struct {
	scope    TransactionScope
	charts   *bookkeeping.ChartService
	recorder *bookkeeping.Recorder
	logger   *zap.Logger
}

// NewSaleService creates a sale service
func NewSaleService(scope TransactionScope, charts *bookkeeping.ChartService, recorder *bookkeeping.Recorder, logger *zap.Logger) *SaleService {
	return &SaleService{
		scope:    scope,
		charts:   charts,
		recorder: recorder,
		logger:   logger,
	}
}

// CreateSale checks out a cart: decrements stock, captures prices and costs,
// computes tax from the products' rates, applies payments and posts the
// sale's journal entry.
func (s *SaleService) CreateSale(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, input CreateSaleInput) (*sales.Sale, error) {
	if len(input.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale must have at least one line")
	}

	chart, err := s.charts.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var sale *sales.Sale
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		number, err := repos.SaleRepo().GenerateSaleNumber(ctx, tenantID)
		if err != nil {
			return err
		}
		sale, err = sales.NewSale(tenantID, number, input.CustomerID, time.Now())
		if err != nil {
			return err
		}
		if actorID != nil {
			sale.SetCreatedBy(*actorID)
		}

		// build the cart, decrementing stock as we go
		taxRates := make([]decimal.Decimal, 0, len(input.Lines))
		for _, lineInput := range input.Lines {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, lineInput.ProductID)
			if err != nil {
				return err
			}
			unitPrice := product.SalePrice
			if lineInput.UnitPrice != nil {
				unitPrice = *lineInput.UnitPrice
			}
			if err := product.AdjustStock(lineInput.Quantity.Neg()); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
			if err := sale.AddLine(product.ID, product.Name, product.CategoryID, lineInput.Quantity, unitPrice, product.CostPrice); err != nil {
				return err
			}
			taxRates = append(taxRates, product.TaxRate)
		}

		if err := sale.ApplyDiscount(input.Discount); err != nil {
			return err
		}

		// tax applies to the discounted line values at each product's rate
		ratio := sale.DiscountRatio()
		tax := decimal.Zero
		for i := range sale.Lines {
			tax = tax.Add(sale.Lines[i].GrossValue().Mul(ratio).Mul(taxRates[i]))
		}
		if err := sale.SetTax(tax.Round(2)); err != nil {
			return err
		}

		// tendered payments may not exceed the sale total; change is handed
		// back at the till and never enters the ledger
		tendered := decimal.Zero
		for _, payment := range input.Payments {
			tendered = tendered.Add(payment.Amount)
		}
		if tendered.GreaterThan(sale.Total) {
			return shared.NewDomainError("INVALID_INPUT", "Payments exceed the sale total")
		}

		var customer *partner.Customer
		if input.CustomerID != nil {
			customer, err = repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, *input.CustomerID)
			if err != nil {
				return err
			}
		}

		for _, payment := range input.Payments {
			if payment.Method == sales.PaymentMethodStoreCredit {
				if customer == nil {
					return shared.NewDomainError("INVALID_INPUT", "Store credit requires a customer")
				}
				if err := customer.UseStoreCredit(payment.Amount); err != nil {
					return err
				}
			}
			if err := sale.AddPayment(payment.Method, payment.Amount, time.Now()); err != nil {
				return err
			}
		}

		outstanding := sale.Outstanding()
		if outstanding.IsPositive() {
			if customer == nil {
				return shared.NewDomainError("INVALID_INPUT", "An unpaid sale requires a customer")
			}
			if err := customer.AddBalance(outstanding); err != nil {
				return err
			}
		}
		if customer != nil {
			if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
				return err
			}
		}

		if _, err := s.recorder.RecordSale(ctx, ledgerRepos(repos), chart, sale); err != nil {
			return err
		}
		if err := repos.SaleRepo().SaveWithLines(ctx, sale); err != nil {
			return err
		}
		return repos.AuditRepo().Save(ctx, audit.NewAuditLog(tenantID, actorID, audit.ActionSaleCreated, "sale", sale.ID, "Sale "+sale.SaleNumber))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sale created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("sale_id", sale.ID.String()),
		zap.String("total", sale.Total.String()),
		zap.String("status", string(sale.PaymentStatus)))
	return sale, nil
}

// RecordPayment applies a payment against an outstanding sale, settles the
// customer's balance and posts the payment entry.
func (s *SaleService) RecordPayment(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, saleID uuid.UUID, method sales.PaymentMethod, amount decimal.Decimal) (*sales.Sale, error) {
	chart, err := s.charts.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var sale *sales.Sale
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err = repos.SaleRepo().FindByIDForTenant(ctx, tenantID, saleID)
		if err != nil {
			return err
		}
		if sale.IsPaid() {
			return shared.NewDomainError("INVALID_STATE", "Sale is already fully paid")
		}
		if amount.GreaterThan(sale.Outstanding()) {
			return shared.NewDomainError("INVALID_INPUT", "Payment exceeds the outstanding amount")
		}

		if err := sale.AddPayment(method, amount, time.Now()); err != nil {
			return err
		}

		if sale.CustomerID != nil {
			customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, *sale.CustomerID)
			if err != nil {
				return err
			}
			if method == sales.PaymentMethodStoreCredit {
				if err := customer.UseStoreCredit(amount); err != nil {
					return err
				}
			}
			if err := customer.SettleBalance(amount); err != nil {
				return err
			}
			if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
				return err
			}
		} else if method == sales.PaymentMethodStoreCredit {
			return shared.NewDomainError("INVALID_INPUT", "Store credit requires a customer")
		}

		if _, err := s.recorder.RecordCustomerPayment(ctx, ledgerRepos(repos), chart, sale, method, amount); err != nil {
			return err
		}
		if err := repos.SaleRepo().SaveWithLines(ctx, sale); err != nil {
			return err
		}
		return repos.AuditRepo().Save(ctx, audit.NewAuditLog(tenantID, actorID, audit.ActionPaymentRecorded, "sale", sale.ID, "Payment "+amount.String()+" for sale "+sale.SaleNumber))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sale payment recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("sale_id", sale.ID.String()),
		zap.String("amount", amount.String()))
	return sale, nil
}

// ReturnSale takes returned goods back into stock, refunds the customer in
// cash or store credit and posts the reversal entry.
func (s *SaleService) ReturnSale(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, saleID uuid.UUID, input ReturnInput) (*sales.Sale, error) {
	if input.RefundMethod != sales.PaymentMethodCash && input.RefundMethod != sales.PaymentMethodStoreCredit {
		return nil, shared.NewDomainError("INVALID_INPUT", "Refund method must be cash or store credit")
	}

	chart, err := s.charts.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var sale *sales.Sale
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err = repos.SaleRepo().FindByIDForTenant(ctx, tenantID, saleID)
		if err != nil {
			return err
		}

		computation, err := sale.ApplyReturn(input.Items)
		if err != nil {
			return err
		}

		// goods flow back into stock
		for _, line := range computation.Lines {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, line.ProductID)
			if err != nil {
				return err
			}
			if err := product.AdjustStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		if input.RefundMethod == sales.PaymentMethodStoreCredit {
			if sale.CustomerID == nil {
				return shared.NewDomainError("INVALID_INPUT", "Store credit refund requires a customer")
			}
			customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, *sale.CustomerID)
			if err != nil {
				return err
			}
			if err := customer.AddStoreCredit(computation.RefundTotal); err != nil {
				return err
			}
			if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
				return err
			}
		}

		if _, err := s.recorder.RecordReturn(ctx, ledgerRepos(repos), chart, sale, computation, input.RefundMethod); err != nil {
			return err
		}
		if err := repos.SaleRepo().SaveWithLines(ctx, sale); err != nil {
			return err
		}
		return repos.AuditRepo().Save(ctx, audit.NewAuditLog(tenantID, actorID, audit.ActionSaleReturned, "sale", sale.ID, "Return for sale "+sale.SaleNumber))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sale returned",
		zap.String("tenant_id", tenantID.String()),
		zap.String("sale_id", sale.ID.String()))
	return sale, nil
}
