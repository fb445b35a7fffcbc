// Package stock provides the stock accumulation register. Posting paths
// of stock-affecting documents write signed movement rows; balances are
// sums over those rows. Quantities are always in the product's stock
// unit; callers convert via the unit catalog before writing.
package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/id"
)

// Movement is one signed stock register row.
type Movement struct {
	ID id.ID `db:"id" json:"id"`

	// DocumentID and DocumentType identify the recorder
	DocumentID   id.ID  `db:"document_id" json:"documentId"`
	DocumentType string `db:"document_type" json:"documentType"`

	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`
	ProductID   id.ID `db:"product_id" json:"productId"`

	// Quantity in the product's stock unit; positive for receipt,
	// negative for issue
	Quantity decimal.Decimal `db:"quantity" json:"quantity"`

	// Period is the document date the movement is accounted under
	Period time.Time `db:"period" json:"period"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Balance is an aggregated stock position.
type Balance struct {
	ProductID   id.ID           `db:"product_id" json:"productId"`
	WarehouseID *id.ID          `db:"warehouse_id" json:"warehouseId,omitempty"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
}
