// Package goodsreceipt provides the GoodsReceipt document: goods
// arriving from a supplier into a warehouse. Posting receives stock.
package goodsreceipt

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

// GoodsReceipt records goods received from a supplier.
type GoodsReceipt struct {
	documents.TradeDocument

	// PurchaseOrderID links back to the originating order, if any
	PurchaseOrderID *string `db:"purchase_order_id" json:"purchaseOrderId,omitempty"`
}

// New creates a goods receipt.
func New(counterpartyID, warehouseID, currency string) *GoodsReceipt {
	gr := &GoodsReceipt{
		TradeDocument: documents.NewTradeDocument(currency),
	}
	if counterpartyID != "" {
		gr.CounterpartyID = &counterpartyID
	}
	if warehouseID != "" {
		gr.WarehouseID = &warehouseID
	}
	return gr
}

// Validate implements entity.Validatable.
func (gr *GoodsReceipt) Validate(ctx context.Context) error {
	if err := gr.Document.Validate(ctx); err != nil {
		return err
	}
	if gr.WarehouseID == nil || *gr.WarehouseID == "" {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}
	for i := range gr.Lines {
		if !gr.Lines[i].Quantity.IsPositive() && !gr.Lines[i].IsOrphaned() {
			return apperror.NewValidation("line quantity must be positive").
				WithDetail("lineNo", gr.Lines[i].LineNo)
		}
	}
	return nil
}

// Recalculate recomputes totals. Receipts carry purchase prices but no
// document-level discount or shipping.
func (gr *GoodsReceipt) Recalculate() {
	gr.RecalculateWith(billing.Adjustments{})
}
