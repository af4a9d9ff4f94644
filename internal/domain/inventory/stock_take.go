package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockTakeStatus is the lifecycle of a stock take
type StockTakeStatus string

const (
	StockTakeStatusInProgress StockTakeStatus = "in_progress"
	StockTakeStatusCompleted  StockTakeStatus = "completed"
	StockTakeStatusCancelled  StockTakeStatus = "cancelled"
)

// StockTakeLine captures one product's expected quantity at the start of the
// count and the quantity actually counted. UnitCost is the product's cost at
// count time, used to value the variance.
type StockTakeLine struct {
	ID               uuid.UUID
	StockTakeID      uuid.UUID
	ProductID        uuid.UUID
	ProductName      string
	ExpectedQuantity decimal.Decimal
	CountedQuantity  *decimal.Decimal
	UnitCost         decimal.Decimal
}

// Variance is counted minus expected; positive means surplus
func (l *StockTakeLine) Variance() decimal.Decimal {
	if l.CountedQuantity == nil {
		return decimal.Zero
	}
	return l.CountedQuantity.Sub(l.ExpectedQuantity)
}

// StockTake is a physical inventory count over a set of products
type StockTake struct {
	shared.TenantEntity
	Reference   string
	Status      StockTakeStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Lines       []StockTakeLine
}

// NewStockTake starts a count
func NewStockTake(tenantID uuid.UUID, reference string, startedAt time.Time) (*StockTake, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock take reference is required")
	}
	return &StockTake{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Reference:    reference,
		Status:       StockTakeStatusInProgress,
		StartedAt:    startedAt,
	}, nil
}

// AddLine snapshots a product's expected quantity and cost into the count
func (st *StockTake) AddLine(productID uuid.UUID, productName string, expectedQuantity, unitCost decimal.Decimal) error {
	if st.Status != StockTakeStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Stock take is not in progress")
	}
	for i := range st.Lines {
		if st.Lines[i].ProductID == productID {
			return shared.NewDomainError("ALREADY_EXISTS", "Product is already part of the stock take")
		}
	}
	st.Lines = append(st.Lines, StockTakeLine{
		ID:               uuid.New(),
		StockTakeID:      st.ID,
		ProductID:        productID,
		ProductName:      productName,
		ExpectedQuantity: expectedQuantity,
		UnitCost:         unitCost,
	})
	return nil
}

// RecordCount records the counted quantity for a product in the take
func (st *StockTake) RecordCount(productID uuid.UUID, counted decimal.Decimal) error {
	if st.Status != StockTakeStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Stock take is not in progress")
	}
	if counted.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Counted quantity cannot be negative")
	}
	for i := range st.Lines {
		if st.Lines[i].ProductID == productID {
			qty := counted
			st.Lines[i].CountedQuantity = &qty
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Product is not part of the stock take")
}

// ProductDelta is the stock correction for one product after finalization
type ProductDelta struct {
	ProductID uuid.UUID
	Delta     decimal.Decimal // counted minus expected
	Cost      decimal.Decimal // delta valued at the line's unit cost
}

// FinalizeResult is the outcome of completing a stock take
type FinalizeResult struct {
	Deltas    []ProductDelta
	TotalCost decimal.Decimal // signed net cost of all variances
}

// Finalize completes the count and returns the per-product corrections.
// Every line must have been counted. Lines with no variance produce no delta.
func (st *StockTake) Finalize(completedAt time.Time) (*FinalizeResult, error) {
	if st.Status != StockTakeStatusInProgress {
		return nil, shared.NewDomainError("INVALID_STATE", "Stock take is not in progress")
	}
	if len(st.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock take has no lines")
	}
	for i := range st.Lines {
		if st.Lines[i].CountedQuantity == nil {
			return nil, shared.NewDomainError("INVALID_STATE", "Not all products have been counted: "+st.Lines[i].ProductName)
		}
	}

	result := &FinalizeResult{TotalCost: decimal.Zero}
	for i := range st.Lines {
		variance := st.Lines[i].Variance()
		if variance.IsZero() {
			continue
		}
		cost := variance.Mul(st.Lines[i].UnitCost)
		result.TotalCost = result.TotalCost.Add(cost)
		result.Deltas = append(result.Deltas, ProductDelta{
			ProductID: st.Lines[i].ProductID,
			Delta:     variance,
			Cost:      cost,
		})
	}

	st.Status = StockTakeStatusCompleted
	st.CompletedAt = &completedAt
	return result, nil
}

// Cancel abandons an in-progress count
func (st *StockTake) Cancel() error {
	if st.Status != StockTakeStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Stock take is not in progress")
	}
	st.Status = StockTakeStatusCancelled
	return nil
}
