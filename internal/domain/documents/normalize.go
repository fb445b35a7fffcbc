package documents

import (
	"context"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/core/types"
	"tradewind/internal/domain/catalogs/product"
	"tradewind/internal/domain/catalogs/unit"
	"tradewind/pkg/logger"
)

// Normalizer converts line quantities into the product's stock unit
// before stock movements are written.
type Normalizer struct {
	units    *unit.Service
	products *product.Service
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(units *unit.Service, products *product.Service) *Normalizer {
	return &Normalizer{units: units, products: products}
}

// StockQuantity returns the line quantity expressed in the product's
// stock unit, rounded to 4 places. A line without a transaction unit is
// treated as already being in the stock unit; that fallback is logged
// and reported via the warned flag.
func (n *Normalizer) StockQuantity(ctx context.Context, line Line) (qty decimal.Decimal, warned bool, err error) {
	p, err := n.products.GetByID(ctx, line.ProductID)
	if err != nil {
		return decimal.Zero, false, err
	}

	if line.UnitID == nil || *line.UnitID == "" {
		logger.Warn(ctx, "line has no transaction unit, assuming stock unit",
			"product_id", line.ProductID.String(),
			"line_id", line.ID.String(),
		)
		return types.RoundQuantity(line.Quantity), true, nil
	}

	lineUnitID, err := id.Parse(*line.UnitID)
	if err != nil {
		return decimal.Zero, false, apperror.NewValidation("invalid unit reference").
			WithDetail("unitId", *line.UnitID)
	}
	stockUnitID, err := id.Parse(p.StockUnitID)
	if err != nil {
		return decimal.Zero, false, apperror.NewValidation("invalid stock unit reference").
			WithDetail("stockUnitId", p.StockUnitID)
	}

	if lineUnitID == stockUnitID {
		return types.RoundQuantity(line.Quantity), false, nil
	}

	lineUnit, err := n.units.GetByID(ctx, lineUnitID)
	if err != nil {
		return decimal.Zero, false, err
	}
	stockUnit, err := n.units.GetByID(ctx, stockUnitID)
	if err != nil {
		return decimal.Zero, false, err
	}

	converted, err := lineUnit.ConvertTo(line.Quantity, stockUnit)
	if err != nil {
		return decimal.Zero, false, err
	}
	return types.RoundQuantity(converted), false, nil
}
