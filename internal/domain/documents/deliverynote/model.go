// Package deliverynote provides the DeliveryNote document: a
// quantity-only record of goods leaving a warehouse. Lines carry no
// money; posting issues stock.
package deliverynote

import (
	"context"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

// DeliveryNote records goods shipped to a customer.
type DeliveryNote struct {
	documents.TradeDocument

	// SalesOrderID links back to the fulfilled order, if any
	SalesOrderID *string `db:"sales_order_id" json:"salesOrderId,omitempty"`
}

// New creates a delivery note.
func New(counterpartyID, warehouseID string) *DeliveryNote {
	dn := &DeliveryNote{
		TradeDocument: documents.NewTradeDocument(""),
	}
	if counterpartyID != "" {
		dn.CounterpartyID = &counterpartyID
	}
	if warehouseID != "" {
		dn.WarehouseID = &warehouseID
	}
	return dn
}

// Validate implements entity.Validatable.
func (dn *DeliveryNote) Validate(ctx context.Context) error {
	if err := dn.Document.Validate(ctx); err != nil {
		return err
	}
	if dn.WarehouseID == nil || *dn.WarehouseID == "" {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}
	for i := range dn.Lines {
		if !dn.Lines[i].Quantity.IsPositive() && !dn.Lines[i].IsOrphaned() {
			return apperror.NewValidation("line quantity must be positive").
				WithDetail("lineNo", dn.Lines[i].LineNo)
		}
	}
	return nil
}

// Recalculate normalizes quantities. Delivery note lines carry no money,
// so the totals stay zero.
func (dn *DeliveryNote) Recalculate() {
	for i := range dn.Lines {
		dn.Lines[i].UnitPrice = decimal.Zero
		dn.Lines[i].DiscountPct = decimal.Zero
		dn.Lines[i].TaxRate = decimal.Zero
	}
	dn.RecalculateWith(billing.Adjustments{})
}
