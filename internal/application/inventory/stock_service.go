package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/application/bookkeeping"
	"github.com/retail/backend/internal/domain/audit"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CountInput is one counted quantity in a stock take
type CountInput struct {
	ProductID uuid.UUID
	Counted   decimal.Decimal
}

// StockService runs the stock correction workflows: ad-hoc adjustments and
// full stock takes.
type StockService struct {
	scope    TransactionScope
	charts   *bookkeeping.ChartService
	recorder *bookkeeping.Recorder
	logger   *zap.Logger
}

// NewStockService creates a stock service
func NewStockService(scope TransactionScope, charts *bookkeeping.ChartService, recorder *bookkeeping.Recorder, logger *zap.Logger) *StockService {
	return &StockService{
		scope:    scope,
		charts:   charts,
		recorder: recorder,
		logger:   logger,
	}
}

// AdjustStock applies a signed quantity correction to one product and posts
// its value, at the product's current cost, as an inventory adjustment.
func (s *StockService) AdjustStock(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, productID uuid.UUID, delta decimal.Decimal, reason string) (*catalog.Product, error) {
	if delta.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Adjustment delta cannot be zero")
	}

	chart, err := s.charts.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var product *catalog.Product
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err = repos.ProductRepo().FindByIDForTenant(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		if err := product.AdjustStock(delta); err != nil {
			return err
		}
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}

		costDelta := delta.Mul(product.CostPrice)
		description := "Stock adjustment for " + product.Name
		if reason != "" {
			description += ": " + reason
		}
		if _, err := s.recorder.RecordStockAdjustment(ctx, ledgerRepos(repos), chart, tenantID, description, costDelta, &product.ID); err != nil {
			return err
		}
		return repos.AuditRepo().Save(ctx, audit.NewAuditLog(tenantID, actorID, audit.ActionStockAdjusted, "product", product.ID, description))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock adjusted",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", productID.String()),
		zap.String("delta", delta.String()))
	return product, nil
}

// CreateStockTake starts a count over the given products, snapshotting their
// expected quantities and current costs.
func (s *StockService) CreateStockTake(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, reference string, productIDs []uuid.UUID) (*inventory.StockTake, error) {
	if len(productIDs) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock take must cover at least one product")
	}

	var stockTake *inventory.StockTake
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		stockTake, err = inventory.NewStockTake(tenantID, reference, time.Now())
		if err != nil {
			return err
		}
		if actorID != nil {
			stockTake.SetCreatedBy(*actorID)
		}
		for _, productID := range productIDs {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, productID)
			if err != nil {
				return err
			}
			if err := stockTake.AddLine(product.ID, product.Name, product.StockQuantity, product.CostPrice); err != nil {
				return err
			}
		}
		return repos.StockTakeRepo().SaveWithLines(ctx, stockTake)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock take created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("stock_take_id", stockTake.ID.String()),
		zap.Int("lines", len(stockTake.Lines)))
	return stockTake, nil
}

// RecordCounts records counted quantities on an in-progress stock take
func (s *StockService) RecordCounts(ctx context.Context, tenantID uuid.UUID, stockTakeID uuid.UUID, counts []CountInput) (*inventory.StockTake, error) {
	var stockTake *inventory.StockTake
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		stockTake, err = repos.StockTakeRepo().FindByIDForTenant(ctx, tenantID, stockTakeID)
		if err != nil {
			return err
		}
		for _, count := range counts {
			if err := stockTake.RecordCount(count.ProductID, count.Counted); err != nil {
				return err
			}
		}
		return repos.StockTakeRepo().SaveWithLines(ctx, stockTake)
	})
	if err != nil {
		return nil, err
	}
	return stockTake, nil
}

// FinalizeStockTake completes the count: product stock is corrected to the
// counted quantities and the net variance value is posted as one
// consolidated inventory adjustment entry.
func (s *StockService) FinalizeStockTake(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, stockTakeID uuid.UUID) (*inventory.StockTake, error) {
	chart, err := s.charts.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var stockTake *inventory.StockTake
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		stockTake, err = repos.StockTakeRepo().FindByIDForTenant(ctx, tenantID, stockTakeID)
		if err != nil {
			return err
		}

		result, err := stockTake.Finalize(time.Now())
		if err != nil {
			return err
		}

		for _, delta := range result.Deltas {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, delta.ProductID)
			if err != nil {
				return err
			}
			if err := product.AdjustStock(delta.Delta); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		if _, err := s.recorder.RecordConsolidatedStockAdjustment(ctx, ledgerRepos(repos), chart, tenantID, "Stock take "+stockTake.Reference, result.TotalCost, &stockTake.ID); err != nil {
			return err
		}
		if err := repos.StockTakeRepo().SaveWithLines(ctx, stockTake); err != nil {
			return err
		}
		return repos.AuditRepo().Save(ctx, audit.NewAuditLog(tenantID, actorID, audit.ActionStockTakeFinished, "stock_take", stockTake.ID, "Stock take "+stockTake.Reference))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock take finalized",
		zap.String("tenant_id", tenantID.String()),
		zap.String("stock_take_id", stockTake.ID.String()))
	return stockTake, nil
}
