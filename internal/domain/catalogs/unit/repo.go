package unit

import (
	"context"

	"tradewind/internal/core/id"
	"tradewind/internal/domain"
)

// Repository defines the interface for Unit persistence.
type Repository interface {
	domain.CatalogRepository[*Unit]

	// FindBySymbol retrieves unit by symbol (unique within tenant).
	FindBySymbol(ctx context.Context, symbol string) (*Unit, error)

	// ListByBaseUnit retrieves all units derived from the given base unit.
	ListByBaseUnit(ctx context.Context, baseUnitID id.ID) ([]*Unit, error)
}
