package documents

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewind/internal/core/id"
	"tradewind/internal/domain/billing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func refLine() Line {
	l := NewLine(id.New(), dec("3"), dec("10.00"))
	l.DiscountPct = dec("10")
	l.TaxRate = dec("20")
	return l
}

func TestLineNormalize(t *testing.T) {
	l := refLine()
	l.Normalize()

	assert.Equal(t, "32.40", l.LineTotal.StringFixed(2))
	assert.Equal(t, "3.0000", l.Quantity.StringFixed(4))
}

func TestTradeDocumentRecalculate(t *testing.T) {
	d := NewTradeDocument("EUR")
	d.AddLine(refLine())

	second := NewLine(id.New(), dec("2"), dec("25.00"))
	second.TaxRate = dec("20")
	d.AddLine(second)

	d.DiscountAmount = dec("5.00")
	d.ShippingAmount = dec("2.50")
	d.RecalculateWith(billing.Adjustments{
		DiscountAmount: d.DiscountAmount,
		ShippingAmount: d.ShippingAmount,
	})

	assert.Equal(t, "77.00", d.Subtotal.StringFixed(2))
	assert.Equal(t, "15.40", d.TaxesAmount.StringFixed(2))
	assert.Equal(t, "89.90", d.TotalAmount.StringFixed(2))
	assert.Equal(t, 0, d.SkippedLines)

	assert.Equal(t, 1, d.Lines[0].LineNo)
	assert.Equal(t, 2, d.Lines[1].LineNo)
}

func TestTradeDocumentRemoveLineRecalculates(t *testing.T) {
	d := NewTradeDocument("EUR")
	a := refLine()
	b := NewLine(id.New(), dec("2"), dec("25.00"))
	b.TaxRate = dec("20")
	d.AddLine(a)
	d.AddLine(b)

	d.RecalculateWith(billing.Adjustments{})
	require.Equal(t, "92.40", d.TotalAmount.StringFixed(2))

	removed := d.RemoveLine(d.Lines[1].ID)
	require.True(t, removed)
	d.RecalculateWith(billing.Adjustments{})

	// no residual from the removed line
	assert.Equal(t, "32.40", d.TotalAmount.StringFixed(2))
	assert.Equal(t, "27.00", d.Subtotal.StringFixed(2))
	assert.Len(t, d.Lines, 1)
	assert.Equal(t, 1, d.Lines[0].LineNo)
}

func TestTradeDocumentSkipsOrphanedLines(t *testing.T) {
	d := NewTradeDocument("EUR")
	d.AddLine(refLine())

	orphan := NewLine(id.Nil(), dec("100"), dec("100"))
	d.AddLine(orphan)

	d.RecalculateWith(billing.Adjustments{})

	assert.Equal(t, "32.40", d.TotalAmount.StringFixed(2))
	assert.Equal(t, 1, d.SkippedLines)
}

func TestTradeDocumentZeroLines(t *testing.T) {
	d := NewTradeDocument("EUR")
	d.ShippingAmount = dec("2.50")
	d.DiscountAmount = dec("5.00")
	d.RecalculateWith(billing.Adjustments{
		DiscountAmount: d.DiscountAmount,
		ShippingAmount: d.ShippingAmount,
	})

	assert.Equal(t, "0.00", d.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", d.TaxesAmount.StringFixed(2))
	assert.Equal(t, "2.50", d.TotalAmount.StringFixed(2))
}

func TestRemoveLineMissing(t *testing.T) {
	d := NewTradeDocument("EUR")
	d.AddLine(refLine())

	assert.False(t, d.RemoveLine(id.New()))
	assert.Len(t, d.Lines, 1)
}
