package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"tradewind/internal/domain/catalogs/counterparty"
	"tradewind/internal/infrastructure/storage/postgres"
)

const counterpartyTable = "cat_counterparties"

// CounterpartyRepo implements counterparty.Repository.
type CounterpartyRepo struct {
	*BaseCatalogRepo[*counterparty.Counterparty]
}

var _ counterparty.Repository = (*CounterpartyRepo)(nil)

// NewCounterpartyRepo creates a new counterparty repository.
func NewCounterpartyRepo() *CounterpartyRepo {
	return &CounterpartyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			counterpartyTable,
			postgres.ExtractDBColumns[counterparty.Counterparty](),
			func() *counterparty.Counterparty { return &counterparty.Counterparty{} },
		),
	}
}

// FindByTaxID retrieves a live counterparty by tax identifier.
func (r *CounterpartyRepo) FindByTaxID(ctx context.Context, taxID string) (*counterparty.Counterparty, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"tax_id": taxID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
