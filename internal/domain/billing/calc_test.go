package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name          string
		in            LineInput
		wantBase      string
		wantDiscount  string
		wantNet       string
		wantTax       string
		wantLineTotal string
	}{
		{
			name: "reference line",
			in: LineInput{
				Quantity:    dec("3"),
				UnitPrice:   dec("10.00"),
				DiscountPct: dec("10"),
				TaxRate:     dec("20"),
			},
			wantBase:      "30",
			wantDiscount:  "3",
			wantNet:       "27",
			wantTax:       "5.4",
			wantLineTotal: "32.40",
		},
		{
			name: "no discount no tax",
			in: LineInput{
				Quantity:  dec("2.5"),
				UnitPrice: dec("4.20"),
			},
			wantBase:      "10.5",
			wantDiscount:  "0",
			wantNet:       "10.5",
			wantTax:       "0",
			wantLineTotal: "10.50",
		},
		{
			name: "fractional cents round at line total only",
			in: LineInput{
				Quantity:    dec("1"),
				UnitPrice:   dec("0.333"),
				DiscountPct: dec("0"),
				TaxRate:     dec("19"),
			},
			wantBase:      "0.333",
			wantDiscount:  "0",
			wantNet:       "0.333",
			wantTax:       "0.06327",
			wantLineTotal: "0.40",
		},
		{
			name: "negative inputs clamped to zero",
			in: LineInput{
				Quantity:    dec("-3"),
				UnitPrice:   dec("10"),
				DiscountPct: dec("-5"),
				TaxRate:     dec("-20"),
			},
			wantBase:      "0",
			wantDiscount:  "0",
			wantNet:       "0",
			wantTax:       "0",
			wantLineTotal: "0.00",
		},
		{
			name: "discount above 100 clamped",
			in: LineInput{
				Quantity:    dec("1"),
				UnitPrice:   dec("50"),
				DiscountPct: dec("150"),
				TaxRate:     dec("20"),
			},
			wantBase:      "50",
			wantDiscount:  "50",
			wantNet:       "0",
			wantTax:       "0",
			wantLineTotal: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLine(tt.in)

			assert.True(t, got.BasePrice.Equal(dec(tt.wantBase)), "base price: got %s", got.BasePrice)
			assert.True(t, got.DiscountAmount.Equal(dec(tt.wantDiscount)), "discount: got %s", got.DiscountAmount)
			assert.True(t, got.PriceAfterDiscount.Equal(dec(tt.wantNet)), "net: got %s", got.PriceAfterDiscount)
			assert.True(t, got.TaxAmount.Equal(dec(tt.wantTax)), "tax: got %s", got.TaxAmount)
			assert.Equal(t, tt.wantLineTotal, got.LineTotal.StringFixed(2))
		})
	}
}

func TestComputeLineIdempotent(t *testing.T) {
	in := LineInput{
		Quantity:    dec("7.1234"),
		UnitPrice:   dec("99.99"),
		DiscountPct: dec("12.5"),
		TaxRate:     dec("19"),
	}

	first := ComputeLine(in)
	second := ComputeLine(in)

	assert.True(t, first.LineTotal.Equal(second.LineTotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.PriceAfterDiscount.Equal(second.PriceAfterDiscount))
}

func TestAggregateLines(t *testing.T) {
	lines := []LineAmounts{
		{PriceAfterDiscount: dec("27.00"), TaxAmount: dec("5.40")},
		{PriceAfterDiscount: dec("50.00"), TaxAmount: dec("10.00")},
	}
	adj := Adjustments{
		DiscountAmount: dec("5.00"),
		ShippingAmount: dec("2.50"),
	}

	got := AggregateLines(lines, adj)

	assert.Equal(t, "77.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "15.40", got.TaxTotal.StringFixed(2))
	assert.Equal(t, "5.00", got.DiscountAmount.StringFixed(2))
	assert.Equal(t, "2.50", got.ShippingAmount.StringFixed(2))
	assert.Equal(t, "89.90", got.Total.StringFixed(2))
}

func TestAggregateLinesZeroLines(t *testing.T) {
	got := AggregateLines(nil, Adjustments{
		DiscountAmount: dec("5.00"),
		ShippingAmount: dec("2.50"),
	})

	assert.Equal(t, "0.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", got.TaxTotal.StringFixed(2))
	// discount cannot exceed the zero subtotal
	assert.Equal(t, "0.00", got.DiscountAmount.StringFixed(2))
	assert.Equal(t, "2.50", got.Total.StringFixed(2))
}

func TestAggregateLinesRemovalLeavesNoResidual(t *testing.T) {
	a := ComputeLine(LineInput{Quantity: dec("3"), UnitPrice: dec("10"), DiscountPct: dec("10"), TaxRate: dec("20")})
	b := ComputeLine(LineInput{Quantity: dec("2"), UnitPrice: dec("25"), TaxRate: dec("20")})

	both := AggregateLines([]LineAmounts{a, b}, Adjustments{})
	onlyA := AggregateLines([]LineAmounts{a}, Adjustments{})

	assert.Equal(t, "32.40", onlyA.Total.StringFixed(2))
	assert.Equal(t, "92.40", both.Total.StringFixed(2))

	// removing line b again yields exactly the single-line totals
	again := AggregateLines([]LineAmounts{a}, Adjustments{})
	assert.True(t, again.Total.Equal(onlyA.Total))
	assert.True(t, again.Subtotal.Equal(onlyA.Subtotal))
}

func TestAggregateLinesUnroundedAccumulation(t *testing.T) {
	// three lines of 0.333 each: per-line rounding would give 1.00,
	// full-precision accumulation gives round2(0.999) = 1.00 as well,
	// but tax on the sum differs from the sum of rounded taxes
	line := ComputeLine(LineInput{Quantity: dec("1"), UnitPrice: dec("0.333"), TaxRate: dec("19")})
	got := AggregateLines([]LineAmounts{line, line, line}, Adjustments{})

	// 3 * 0.06327 = 0.18981 -> 0.19
	assert.Equal(t, "0.19", got.TaxTotal.StringFixed(2))
	assert.Equal(t, "1.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "1.19", got.Total.StringFixed(2))
}
