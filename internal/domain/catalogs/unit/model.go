// Package unit provides the unit-of-measure catalog and base-unit
// conversion. Units form a two-level hierarchy: a base unit stands alone,
// a derived unit references exactly one base unit with a positive
// conversion factor. Chains of derived units are not allowed.
package unit

import (
	"context"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/entity"
)

// UnitType defines the category of a measurement unit.
type UnitType string

const (
	TypePiece  UnitType = "piece"
	TypeWeight UnitType = "weight" // kg, g, t
	TypeLength UnitType = "length" // m, cm, mm
	TypeArea   UnitType = "area"
	TypeVolume UnitType = "volume" // l, ml, m3
	TypeTime   UnitType = "time"
	TypePack   UnitType = "pack"
)

// Unit represents a measurement unit.
type Unit struct {
	entity.Catalog

	// Type defines the unit category
	Type UnitType `db:"type" json:"type"`

	// Symbol is the short symbol (e.g. "kg", "m", "pcs"), unique per tenant
	Symbol string `db:"symbol" json:"symbol"`

	// BaseUnitID references the base unit for conversions.
	// Nil for base units.
	BaseUnitID *string `db:"base_unit_id" json:"baseUnitId,omitempty"`

	// ConversionFactor is the multiplier to convert one of this unit
	// into the base unit, e.g. for "box of 12" with base "piece": 12.
	ConversionFactor decimal.Decimal `db:"conversion_factor" json:"conversionFactor"`

	// IsBase indicates a base unit (not derived)
	IsBase bool `db:"is_base" json:"isBase"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewUnit creates a base Unit with factor 1.
func NewUnit(code, name, symbol string, unitType UnitType) *Unit {
	return &Unit{
		Catalog:          entity.NewCatalog(code, name),
		Type:             unitType,
		Symbol:           symbol,
		ConversionFactor: decimal.NewFromInt(1),
		IsBase:           true,
	}
}

// NewDerivedUnit creates a Unit derived from a base unit.
func NewDerivedUnit(code, name, symbol string, unitType UnitType, baseUnitID string, factor decimal.Decimal) *Unit {
	return &Unit{
		Catalog:          entity.NewCatalog(code, name),
		Type:             unitType,
		Symbol:           symbol,
		BaseUnitID:       &baseUnitID,
		ConversionFactor: factor,
		IsBase:           false,
	}
}

// Validate implements entity.Validatable.
func (u *Unit) Validate(ctx context.Context) error {
	if err := u.Catalog.Validate(ctx); err != nil {
		return err
	}

	if u.Symbol == "" {
		return apperror.NewValidation("symbol is required").
			WithDetail("field", "symbol")
	}

	if !isValidUnitType(u.Type) {
		return apperror.NewValidation("invalid unit type").
			WithDetail("field", "type").
			WithDetail("value", string(u.Type))
	}

	if !u.ConversionFactor.IsPositive() {
		return apperror.NewValidation("conversion factor must be positive").
			WithDetail("field", "conversionFactor").
			WithDetail("value", u.ConversionFactor.String())
	}

	if u.IsDerived() && u.IsBase {
		return apperror.NewValidation("unit with base unit reference cannot be marked as base").
			WithDetail("field", "isBase")
	}

	if u.IsBase && !u.ConversionFactor.Equal(decimal.NewFromInt(1)) {
		return apperror.NewValidation("base unit must have conversion factor 1").
			WithDetail("field", "conversionFactor")
	}

	return nil
}

// IsDerived reports whether the unit references a base unit.
func (u *Unit) IsDerived() bool {
	return u.BaseUnitID != nil && *u.BaseUnitID != ""
}

// ConvertToBase converts a quantity in this unit into the base unit:
// identity for base units, qty * factor otherwise. The result keeps full
// precision; persistence rounds quantities to 4 places at the edge.
// A non-positive factor fails explicitly instead of producing a wrong
// quantity.
func (u *Unit) ConvertToBase(qty decimal.Decimal) (decimal.Decimal, error) {
	if !u.IsDerived() {
		return qty, nil
	}
	if !u.ConversionFactor.IsPositive() {
		return decimal.Zero, apperror.NewInvalidConversionFactor(u.Symbol, u.ConversionFactor.String())
	}
	return qty.Mul(u.ConversionFactor), nil
}

// ConvertFromBase converts a quantity in the base unit into this unit:
// identity for base units, qty / factor otherwise. A non-positive factor
// fails explicitly instead of dividing toward Inf/NaN.
func (u *Unit) ConvertFromBase(qty decimal.Decimal) (decimal.Decimal, error) {
	if !u.IsDerived() {
		return qty, nil
	}
	if !u.ConversionFactor.IsPositive() {
		return decimal.Zero, apperror.NewInvalidConversionFactor(u.Symbol, u.ConversionFactor.String())
	}
	return qty.Div(u.ConversionFactor), nil
}

// ConvertTo converts a quantity from this unit to a target unit via the
// base unit. Both units must belong to the same type and hierarchy.
func (u *Unit) ConvertTo(qty decimal.Decimal, target *Unit) (decimal.Decimal, error) {
	if u.Type != target.Type {
		return decimal.Zero, apperror.NewValidation("cannot convert between different unit types").
			WithDetail("source", string(u.Type)).
			WithDetail("target", string(target.Type))
	}

	base, err := u.ConvertToBase(qty)
	if err != nil {
		return decimal.Zero, err
	}
	return target.ConvertFromBase(base)
}

func isValidUnitType(t UnitType) bool {
	switch t {
	case TypePiece, TypeWeight, TypeLength, TypeArea, TypeVolume, TypeTime, TypePack:
		return true
	}
	return false
}
