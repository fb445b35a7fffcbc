package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"tradewind/internal/core/id"
	"tradewind/internal/domain/catalogs/unit"
	"tradewind/internal/infrastructure/storage/postgres"
)

const unitTable = "cat_units"

// UnitRepo implements unit.Repository.
type UnitRepo struct {
	*BaseCatalogRepo[*unit.Unit]
}

var _ unit.Repository = (*UnitRepo)(nil)

// NewUnitRepo creates a new unit repository.
func NewUnitRepo() *UnitRepo {
	return &UnitRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			unitTable,
			postgres.ExtractDBColumns[unit.Unit](),
			func() *unit.Unit { return &unit.Unit{} },
		),
	}
}

// FindBySymbol retrieves a live unit by symbol.
func (r *UnitRepo) FindBySymbol(ctx context.Context, symbol string) (*unit.Unit, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"symbol": symbol}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}

// ListByBaseUnit retrieves all units derived from the given base unit.
func (r *UnitRepo) ListByBaseUnit(ctx context.Context, baseUnitID id.ID) ([]*unit.Unit, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"base_unit_id": baseUnitID.String()}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC")

	return r.FindMany(ctx, q)
}
