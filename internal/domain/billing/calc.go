// Package billing computes line-item amounts and document totals.
//
// All arithmetic runs at full decimal precision; rounding happens exactly
// once, at the externally visible fields (line_total and the document
// totals). Intermediate components are never rounded.
package billing

import (
	"github.com/shopspring/decimal"

	"tradewind/internal/core/types"
)

// LineInput carries the raw pricing fields of one document line.
type LineInput struct {
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // 0..100
	TaxRate     decimal.Decimal // 0..100
}

// LineAmounts holds the computed components of one line.
// LineTotal is rounded to 2 places; the other fields keep full precision
// so document aggregation can sum them without accumulating round-off.
type LineAmounts struct {
	BasePrice          decimal.Decimal
	DiscountAmount     decimal.Decimal
	PriceAfterDiscount decimal.Decimal
	TaxAmount          decimal.Decimal
	LineTotal          decimal.Decimal
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(types.Percent100) {
		return types.Percent100
	}
	return p
}

// ComputeLine computes the monetary components of one line:
//
//	base_price           = quantity * unit_price
//	discount_amount      = base_price * discount_pct / 100
//	price_after_discount = base_price - discount_amount
//	tax_amount           = price_after_discount * tax_rate / 100
//	line_total           = round2(price_after_discount + tax_amount)
//
// Negative quantity and unit price are clamped to zero; percentages are
// clamped to [0, 100]. The computation is pure and idempotent.
func ComputeLine(in LineInput) LineAmounts {
	qty := types.ClampNonNegative(in.Quantity)
	price := types.ClampNonNegative(in.UnitPrice)
	discPct := clampPercent(in.DiscountPct)
	taxRate := clampPercent(in.TaxRate)

	base := qty.Mul(price)
	discount := base.Mul(discPct).Div(types.Percent100)
	net := base.Sub(discount)
	tax := net.Mul(taxRate).Div(types.Percent100)

	return LineAmounts{
		BasePrice:          base,
		DiscountAmount:     discount,
		PriceAfterDiscount: net,
		TaxAmount:          tax,
		LineTotal:          types.RoundMoney(net.Add(tax)),
	}
}

// Adjustments are document-level amounts applied after line aggregation.
type Adjustments struct {
	DiscountAmount decimal.Decimal // absolute document discount
	ShippingAmount decimal.Decimal
}

// DocTotals are the externally visible document totals, each rounded to 2
// places.
type DocTotals struct {
	Subtotal       decimal.Decimal // sum of price_after_discount
	DiscountAmount decimal.Decimal // document-level discount actually applied
	TaxTotal       decimal.Decimal
	ShippingAmount decimal.Decimal
	Total          decimal.Decimal
}

// AggregateLines sums unrounded line components, applies document-level
// discount and shipping, and rounds once per visible field. An empty line
// slice yields all-zero totals.
func AggregateLines(lines []LineAmounts, adj Adjustments) DocTotals {
	subtotal := decimal.Zero
	taxes := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.PriceAfterDiscount)
		taxes = taxes.Add(l.TaxAmount)
	}

	discount := types.ClampNonNegative(adj.DiscountAmount)
	shipping := types.ClampNonNegative(adj.ShippingAmount)

	// The document discount never exceeds the subtotal
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	total := subtotal.Sub(discount).Add(taxes).Add(shipping)

	return DocTotals{
		Subtotal:       types.RoundMoney(subtotal),
		DiscountAmount: types.RoundMoney(discount),
		TaxTotal:       types.RoundMoney(taxes),
		ShippingAmount: types.RoundMoney(shipping),
		Total:          types.RoundMoney(total),
	}
}
