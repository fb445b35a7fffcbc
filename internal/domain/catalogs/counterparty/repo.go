package counterparty

import (
	"context"

	"tradewind/internal/domain"
)

// Repository defines the interface for Counterparty persistence.
type Repository interface {
	domain.CatalogRepository[*Counterparty]

	// FindByTaxID retrieves counterparty by tax identifier.
	FindByTaxID(ctx context.Context, taxID string) (*Counterparty, error)
}
