package unit

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewind/internal/core/apperror"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func basePiece() *Unit {
	return NewUnit("UN-001", "Piece", "pcs", TypePiece)
}

func boxOf12(base *Unit) *Unit {
	return NewDerivedUnit("UN-002", "Box of 12", "box12", TypePiece, base.ID.String(), dec("12"))
}

func TestConvertToBaseIdentityForBaseUnit(t *testing.T) {
	base := basePiece()

	for _, q := range []string{"0", "1", "3.5", "1000.1234"} {
		got, err := base.ConvertToBase(dec(q))
		require.NoError(t, err)
		assert.True(t, got.Equal(dec(q)), "to base: %s", q)

		got, err = base.ConvertFromBase(dec(q))
		require.NoError(t, err)
		assert.True(t, got.Equal(dec(q)), "from base: %s", q)
	}
}

func TestConvertToBaseDerived(t *testing.T) {
	base := basePiece()
	box := boxOf12(base)

	got, err := box.ConvertToBase(dec("3"))
	require.NoError(t, err)
	assert.Equal(t, "36.0000", got.StringFixed(4))

	got, err = box.ConvertFromBase(dec("36"))
	require.NoError(t, err)
	assert.Equal(t, "3.0000", got.StringFixed(4))
}

func TestConvertRoundTrip(t *testing.T) {
	base := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)

	factors := []string{"0.001", "12", "1000", "2.2046"}
	quantities := []string{"0", "1", "0.25", "17.5", "1234.5678"}

	for _, f := range factors {
		derived := NewDerivedUnit("UN-011", "Derived", "d", TypeWeight, base.ID.String(), dec(f))

		for _, q := range quantities {
			toBase, err := derived.ConvertToBase(dec(q))
			require.NoError(t, err)

			back, err := derived.ConvertFromBase(toBase)
			require.NoError(t, err)

			diff := back.Sub(dec(q)).Abs()
			assert.True(t, diff.LessThanOrEqual(dec("0.0001")),
				"factor=%s qty=%s got=%s", f, q, back)
		}
	}
}

func TestConvertInvalidFactor(t *testing.T) {
	base := basePiece()
	broken := boxOf12(base)
	broken.ConversionFactor = decimal.Zero

	_, err := broken.ConvertToBase(dec("5"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidConversionFactor, appErr.Code)

	_, err = broken.ConvertFromBase(dec("5"))
	require.Error(t, err)

	broken.ConversionFactor = dec("-2")
	_, err = broken.ConvertToBase(dec("5"))
	require.Error(t, err)
}

func TestConvertToAcrossHierarchy(t *testing.T) {
	kg := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)
	gram := NewDerivedUnit("UN-011", "Gram", "g", TypeWeight, kg.ID.String(), dec("0.001"))
	tonne := NewDerivedUnit("UN-012", "Tonne", "t", TypeWeight, kg.ID.String(), dec("1000"))

	got, err := gram.ConvertTo(dec("500000"), tonne)
	require.NoError(t, err)
	assert.Equal(t, "0.5000", got.StringFixed(4))
}

func TestConvertToRejectsDifferentTypes(t *testing.T) {
	kg := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)
	m := NewUnit("UN-020", "Meter", "m", TypeLength)

	_, err := kg.ConvertTo(dec("1"), m)
	require.Error(t, err)
}

func TestUnitValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid base unit", func(t *testing.T) {
		assert.NoError(t, basePiece().Validate(ctx))
	})

	t.Run("valid derived unit", func(t *testing.T) {
		base := basePiece()
		assert.NoError(t, boxOf12(base).Validate(ctx))
	})

	t.Run("missing symbol", func(t *testing.T) {
		u := basePiece()
		u.Symbol = ""
		assert.Error(t, u.Validate(ctx))
	})

	t.Run("zero factor", func(t *testing.T) {
		u := basePiece()
		u.ConversionFactor = decimal.Zero
		assert.Error(t, u.Validate(ctx))
	})

	t.Run("negative factor", func(t *testing.T) {
		base := basePiece()
		u := boxOf12(base)
		u.ConversionFactor = dec("-12")
		assert.Error(t, u.Validate(ctx))
	})

	t.Run("derived unit marked as base", func(t *testing.T) {
		base := basePiece()
		u := boxOf12(base)
		u.IsBase = true
		assert.Error(t, u.Validate(ctx))
	})

	t.Run("base unit with non-unit factor", func(t *testing.T) {
		u := basePiece()
		u.ConversionFactor = dec("2")
		assert.Error(t, u.Validate(ctx))
	})

	t.Run("invalid type", func(t *testing.T) {
		u := basePiece()
		u.Type = UnitType("banana")
		assert.Error(t, u.Validate(ctx))
	})
}
