package bookkeeping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/purchasing"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Recorder translates business events into balanced journal entries and
// posts them. Recorders never write inventory or partner state; they run
// inside the calling workflow's transaction so a failed posting rolls the
// whole business operation back.
type Recorder struct {
	poster *Poster
	logger *zap.Logger
}

// NewRecorder creates a recorder posting through the given poster
func NewRecorder(poster *Poster, logger *zap.Logger) *Recorder {
	return &Recorder{poster: poster, logger: logger}
}

// post builds and posts an entry from accumulated lines. An entry whose
// lines all rounded away is skipped rather than posted empty.
func (r *Recorder) post(ctx context.Context, repos Repositories, tenantID uuid.UUID, entryDate time.Time, description string, source ledger.EntrySource, sourceID *uuid.UUID, builder *ledger.LineBuilder) (*ledger.JournalEntry, error) {
	lines := builder.Lines()
	if len(lines) == 0 {
		r.logger.Debug("Skipping empty journal entry",
			zap.String("tenant_id", tenantID.String()),
			zap.String("description", description))
		return nil, nil
	}
	entry, err := ledger.NewJournalEntry(tenantID, entryDate, description, source, sourceID, lines)
	if err != nil {
		return nil, err
	}
	if err := r.poster.Post(ctx, repos, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordSale posts the financial effect of a completed sale:
//
//	debit  cash / store credit payable   tendered amounts, by method
//	debit  accounts receivable           unpaid remainder
//	credit sales revenue (per category)  discounted line revenue
//	credit sales tax payable             tax collected
//	debit  cost of goods sold            cost of the cart
//	credit inventory                     cost of the cart
//
// Line revenue is the gross line value scaled by the sale's discount ratio,
// so the revenue split by category still sums to the discounted subtotal.
func (r *Recorder) RecordSale(ctx context.Context, repos Repositories, chart *ledger.Chart, sale *sales.Sale) (*ledger.JournalEntry, error) {
	builder := ledger.NewLineBuilder()

	// tendered amounts, grouped by method
	for i := range sale.Payments {
		payment := &sale.Payments[i]
		account, err := tenderAccount(chart, payment.Method)
		if err != nil {
			return nil, err
		}
		builder.Debit(account, payment.Amount)
	}

	outstanding := sale.Outstanding()
	if !nearZero(outstanding) {
		receivable, err := chart.Get(ledger.SubTypeAccountsReceivable)
		if err != nil {
			return nil, err
		}
		builder.Debit(receivable, outstanding)
	}

	ratio := sale.DiscountRatio()
	for i := range sale.Lines {
		line := &sale.Lines[i]
		revenue, err := chart.RevenueFor(line.CategoryID)
		if err != nil {
			return nil, err
		}
		builder.Credit(revenue, line.GrossValue().Mul(ratio))
	}

	if !nearZero(sale.TaxTotal) {
		taxPayable, err := chart.Get(ledger.SubTypeSalesTaxPayable)
		if err != nil {
			return nil, err
		}
		builder.Credit(taxPayable, sale.TaxTotal)
	}

	totalCost := sale.TotalCost()
	if !nearZero(totalCost) {
		inventory, err := chart.Get(ledger.SubTypeInventory)
		if err != nil {
			return nil, err
		}
		for i := range sale.Lines {
			line := &sale.Lines[i]
			cogs, err := chart.COGSFor(line.CategoryID)
			if err != nil {
				return nil, err
			}
			builder.Debit(cogs, line.Cost())
		}
		builder.Credit(inventory, totalCost)
	}

	return r.post(ctx, repos, sale.TenantID, sale.SoldAt, "Sale "+sale.SaleNumber, ledger.SourceSale, &sale.ID, builder)
}

// RecordReturn posts the reversal for a return against a sale. Revenue and
// tax are reversed at the amounts the return computation derived from the
// original proration; the refund is credited to cash or to store credit
// payable depending on how the customer is refunded. Returned goods flow
// back into inventory at their captured cost.
func (r *Recorder) RecordReturn(ctx context.Context, repos Repositories, chart *ledger.Chart, sale *sales.Sale, computation *sales.ReturnComputation, refundMethod sales.PaymentMethod) (*ledger.JournalEntry, error) {
	builder := ledger.NewLineBuilder()

	for i := range computation.Lines {
		line := &computation.Lines[i]
		revenue, err := chart.RevenueFor(line.CategoryID)
		if err != nil {
			return nil, err
		}
		builder.Debit(revenue, line.RevenueValue)
	}

	if !nearZero(computation.RefundTax) {
		taxPayable, err := chart.Get(ledger.SubTypeSalesTaxPayable)
		if err != nil {
			return nil, err
		}
		builder.Debit(taxPayable, computation.RefundTax)
	}

	refundAccount, err := tenderAccount(chart, refundMethod)
	if err != nil {
		return nil, err
	}
	builder.Credit(refundAccount, computation.RefundTotal)

	if !nearZero(computation.TotalCost) {
		inventory, err := chart.Get(ledger.SubTypeInventory)
		if err != nil {
			return nil, err
		}
		builder.Debit(inventory, computation.TotalCost)
		for i := range computation.Lines {
			line := &computation.Lines[i]
			cogs, err := chart.COGSFor(line.CategoryID)
			if err != nil {
				return nil, err
			}
			builder.Credit(cogs, line.Cost)
		}
	}

	return r.post(ctx, repos, sale.TenantID, time.Now(), "Return for sale "+sale.SaleNumber, ledger.SourceSale, &sale.ID, builder)
}

// RecordCustomerPayment posts a payment received against an outstanding
// sale: debit the tender account, credit accounts receivable.
func (r *Recorder) RecordCustomerPayment(ctx context.Context, repos Repositories, chart *ledger.Chart, sale *sales.Sale, method sales.PaymentMethod, amount decimal.Decimal) (*ledger.JournalEntry, error) {
	tender, err := tenderAccount(chart, method)
	if err != nil {
		return nil, err
	}
	receivable, err := chart.Get(ledger.SubTypeAccountsReceivable)
	if err != nil {
		return nil, err
	}

	builder := ledger.NewLineBuilder().
		Debit(tender, amount).
		Credit(receivable, amount)
	return r.post(ctx, repos, sale.TenantID, time.Now(), "Payment for sale "+sale.SaleNumber, ledger.SourcePayment, &sale.ID, builder)
}

// RecordPurchaseOrderReception posts the stock intake of a reception: debit
// inventory, credit accounts payable, valued at the ordered cost. Receptions
// whose cost rounds to zero post nothing.
func (r *Recorder) RecordPurchaseOrderReception(ctx context.Context, repos Repositories, chart *ledger.Chart, order *purchasing.PurchaseOrder, receivedCost decimal.Decimal) (*ledger.JournalEntry, error) {
	if nearZero(receivedCost) {
		return nil, nil
	}
	inventory, err := chart.Get(ledger.SubTypeInventory)
	if err != nil {
		return nil, err
	}
	payable, err := chart.Get(ledger.SubTypeAccountsPayable)
	if err != nil {
		return nil, err
	}

	builder := ledger.NewLineBuilder().
		Debit(inventory, receivedCost).
		Credit(payable, receivedCost)
	return r.post(ctx, repos, order.TenantID, time.Now(), "Reception for order "+order.OrderNumber, ledger.SourcePurchase, &order.ID, builder)
}

// RecordSupplierPayment posts a payment to a supplier against an invoice:
// debit accounts payable, credit cash.
func (r *Recorder) RecordSupplierPayment(ctx context.Context, repos Repositories, chart *ledger.Chart, invoice *purchasing.SupplierInvoice, amount decimal.Decimal) (*ledger.JournalEntry, error) {
	payable, err := chart.Get(ledger.SubTypeAccountsPayable)
	if err != nil {
		return nil, err
	}
	cash, err := chart.Get(ledger.SubTypeCash)
	if err != nil {
		return nil, err
	}

	builder := ledger.NewLineBuilder().
		Debit(payable, amount).
		Credit(cash, amount)
	return r.post(ctx, repos, invoice.TenantID, time.Now(), "Payment for invoice "+invoice.InvoiceNumber, ledger.SourcePayment, &invoice.ID, builder)
}

// RecordStockAdjustment posts the value of a single stock correction. The
// cost delta is signed: positive for surplus stock, negative for shrinkage.
func (r *Recorder) RecordStockAdjustment(ctx context.Context, repos Repositories, chart *ledger.Chart, tenantID uuid.UUID, description string, costDelta decimal.Decimal, sourceID *uuid.UUID) (*ledger.JournalEntry, error) {
	return r.RecordConsolidatedStockAdjustment(ctx, repos, chart, tenantID, description, costDelta, sourceID)
}

// RecordConsolidatedStockAdjustment posts one two-line entry for the net
// cost of a batch of stock corrections, such as a finalized stock take.
// Surpluses and shortfalls within the batch offset each other; a net that
// rounds to zero posts nothing.
func (r *Recorder) RecordConsolidatedStockAdjustment(ctx context.Context, repos Repositories, chart *ledger.Chart, tenantID uuid.UUID, description string, netCost decimal.Decimal, sourceID *uuid.UUID) (*ledger.JournalEntry, error) {
	if nearZero(netCost) {
		r.logger.Debug("Stock adjustment rounds to zero, nothing to post",
			zap.String("tenant_id", tenantID.String()),
			zap.String("description", description))
		return nil, nil
	}

	inventory, err := chart.Get(ledger.SubTypeInventory)
	if err != nil {
		return nil, err
	}
	adjustment, err := chart.Get(ledger.SubTypeInventoryAdjustment)
	if err != nil {
		return nil, err
	}

	builder := ledger.NewLineBuilder()
	if netCost.IsPositive() {
		builder.Debit(inventory, netCost).Credit(adjustment, netCost)
	} else {
		builder.Debit(adjustment, netCost.Neg()).Credit(inventory, netCost.Neg())
	}
	return r.post(ctx, repos, tenantID, time.Now(), description, ledger.SourceManual, sourceID, builder)
}

// tenderAccount maps a payment method to the account its money moves
// through. Store credit settles against the store credit liability; cash and
// card both move through the cash account.
func tenderAccount(chart *ledger.Chart, method sales.PaymentMethod) (*ledger.Account, error) {
	if method == sales.PaymentMethodStoreCredit {
		return chart.Get(ledger.SubTypeStoreCreditPayable)
	}
	return chart.Get(ledger.SubTypeCash)
}
