// Package documents provides the shared line shape, totals recomputation
// and generic service machinery for trade documents.
package documents

import (
	"github.com/shopspring/decimal"

	"tradewind/internal/core/id"
	"tradewind/internal/core/types"
	"tradewind/internal/domain/billing"
)

// Line is one row of a trade document. The same shape serves all
// document types; quantity-only documents leave the money fields zero.
type Line struct {
	ID         id.ID `db:"id" json:"id"`
	DocumentID id.ID `db:"document_id" json:"documentId"`

	// LineNo preserves user ordering
	LineNo int `db:"line_no" json:"lineNo"`

	ProductID id.ID `db:"product_id" json:"productId"`

	// UnitID is the optional transaction unit. Nil means the quantity is
	// already in the product's stock unit.
	UnitID *string `db:"unit_id" json:"unitId,omitempty"`

	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unitPrice"`
	DiscountPct decimal.Decimal `db:"discount_pct" json:"discountPct"`
	TaxRate     decimal.Decimal `db:"tax_rate" json:"taxRate"`

	// LineTotal is computed, never accepted from input
	LineTotal decimal.Decimal `db:"line_total" json:"lineTotal"`
}

// NewLine creates a line with a generated ID.
func NewLine(productID id.ID, qty, unitPrice decimal.Decimal) Line {
	return Line{
		ID:        id.New(),
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: unitPrice,
	}
}

// IsOrphaned reports whether the line lost its product reference.
// Orphaned lines are skipped during totals recomputation instead of
// aborting the document.
func (l *Line) IsOrphaned() bool {
	return id.IsNil(l.ProductID)
}

// Amounts computes the billing components of the line.
func (l *Line) Amounts() billing.LineAmounts {
	return billing.ComputeLine(billing.LineInput{
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		DiscountPct: l.DiscountPct,
		TaxRate:     l.TaxRate,
	})
}

// Normalize clamps inputs and recomputes the stored line total.
func (l *Line) Normalize() {
	l.Quantity = types.RoundQuantity(types.ClampNonNegative(l.Quantity))
	amounts := l.Amounts()
	l.LineTotal = amounts.LineTotal
}
