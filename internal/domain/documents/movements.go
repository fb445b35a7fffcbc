package documents

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/registers/stock"
)

// Direction of stock movements produced by a document.
const (
	DirectionReceipt = 1
	DirectionIssue   = -1
)

// Movements converts a document's lines into signed stock register rows,
// normalizing every quantity to the product's stock unit. Orphaned lines
// are skipped.
func (n *Normalizer) Movements(ctx context.Context, d *TradeDocument, docType string, direction int) ([]stock.Movement, error) {
	if d.WarehouseID == nil || *d.WarehouseID == "" {
		return nil, apperror.NewValidation("warehouse is required for posting").
			WithDetail("field", "warehouseId")
	}
	warehouseID, err := id.Parse(*d.WarehouseID)
	if err != nil {
		return nil, apperror.NewValidation("invalid warehouse reference").
			WithDetail("warehouseId", *d.WarehouseID)
	}

	movements := make([]stock.Movement, 0, len(d.Lines))
	for _, line := range d.Lines {
		if line.IsOrphaned() {
			continue
		}

		qty, _, err := n.StockQuantity(ctx, line)
		if err != nil {
			return nil, err
		}
		if qty.IsZero() {
			continue
		}
		if direction == DirectionIssue {
			qty = qty.Neg()
		}

		movements = append(movements, stock.Movement{
			ID:           id.New(),
			DocumentID:   d.ID,
			DocumentType: docType,
			WarehouseID:  warehouseID,
			ProductID:    line.ProductID,
			Quantity:     qty,
			Period:       d.Date,
		})
	}

	return movements, nil
}
