package documents

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/entity"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/billing"
)

// Totals are the aggregated money fields of a trade document.
// They are always recomputed from the live line set, never mutated
// incrementally.
type Totals struct {
	Subtotal       decimal.Decimal `db:"subtotal" json:"subtotal"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discountAmount"`
	ShippingAmount decimal.Decimal `db:"shipping_amount" json:"shippingAmount"`
	TaxesAmount    decimal.Decimal `db:"taxes_amount" json:"taxesAmount"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"totalAmount"`
}

// TradeDocument is the shared base of all trade documents: header
// references, the line collection and the computed totals.
type TradeDocument struct {
	entity.Document
	Totals

	CounterpartyID *string `db:"counterparty_id" json:"counterpartyId,omitempty"`
	WarehouseID    *string `db:"warehouse_id" json:"warehouseId,omitempty"`

	// Lines are loaded and saved separately from the header
	Lines []Line `db:"-" json:"lines,omitempty"`

	// SkippedLines counts lines excluded from the last recomputation
	// (orphaned product references). Surfaced as a warning, not an error.
	SkippedLines int `db:"-" json:"skippedLines,omitempty"`
}

// NewTradeDocument creates a trade document base with generated ID.
func NewTradeDocument(currency string) TradeDocument {
	return TradeDocument{
		Document: entity.NewDocument(currency),
	}
}

// DocNumber returns the assigned document number.
func (d *TradeDocument) DocNumber() string { return d.Number }

// SetNumber assigns the document number.
func (d *TradeDocument) SetNumber(n string) { d.Number = n }

// DocDate returns the business date.
func (d *TradeDocument) DocDate() time.Time { return d.Date }

// DocLines returns the current line set.
func (d *TradeDocument) DocLines() []Line { return d.Lines }

// SetLines replaces the line set. Callers must Recalculate afterwards.
func (d *TradeDocument) SetLines(lines []Line) { d.Lines = lines }

// AddLine appends a line, assigning document reference and ordering.
func (d *TradeDocument) AddLine(line Line) {
	if id.IsNil(line.ID) {
		line.ID = id.New()
	}
	line.DocumentID = d.ID
	line.LineNo = len(d.Lines) + 1
	d.Lines = append(d.Lines, line)
}

// RemoveLine deletes a line by ID and renumbers the remainder.
// Returns false when no line matched.
func (d *TradeDocument) RemoveLine(lineID id.ID) bool {
	for i, l := range d.Lines {
		if l.ID == lineID {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			for j := range d.Lines {
				d.Lines[j].LineNo = j + 1
			}
			return true
		}
	}
	return false
}

// RecalculateWith recomputes line totals and document totals from the
// full live line set, skipping orphaned lines. Document types call this
// from their Recalculate with their own adjustments.
func (d *TradeDocument) RecalculateWith(adj billing.Adjustments) {
	amounts := make([]billing.LineAmounts, 0, len(d.Lines))
	skipped := 0

	for i := range d.Lines {
		line := &d.Lines[i]
		if line.IsOrphaned() {
			skipped++
			continue
		}
		line.Normalize()
		amounts = append(amounts, line.Amounts())
	}

	totals := billing.AggregateLines(amounts, adj)
	d.Subtotal = totals.Subtotal
	d.DiscountAmount = totals.DiscountAmount
	d.ShippingAmount = totals.ShippingAmount
	d.TaxesAmount = totals.TaxTotal
	d.TotalAmount = totals.Total
	d.SkippedLines = skipped
}

// Doc is the contract the generic document service works against.
type Doc interface {
	entity.Validatable

	GetID() id.ID
	DocNumber() string
	SetNumber(string)
	DocDate() time.Time
	DocLines() []Line
	SetLines([]Line)

	// Recalculate recomputes all derived money fields from the line set.
	Recalculate()

	// CanModify reports whether the document accepts mutations.
	CanModify() error
}

// Poster is implemented by documents whose posting writes stock movements.
type Poster interface {
	Doc
	IsPosted() bool
	MarkPosted()
	MarkUnposted()
}
