package counterparty

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain"
)

// Service provides business logic for the Counterparty catalog.
type Service struct {
	*domain.CatalogService[*Counterparty]
	repo Repository
}

// NewService creates a new Counterparty service.
func NewService(repo Repository) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Counterparty]{
		Repo:       repo,
		TxManager:  nil,
		EntityName: "counterparty",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkTaxID)
	base.Hooks().OnBeforeUpdate(svc.checkTaxID)

	return svc
}

func (s *Service) checkTaxID(ctx context.Context, c *Counterparty) error {
	if c.TaxID == nil || *c.TaxID == "" {
		return nil
	}
	if existing, err := s.repo.FindByTaxID(ctx, *c.TaxID); err == nil && existing.ID != c.ID {
		return apperror.NewDuplicate("counterparty", "tax_id", *c.TaxID)
	}
	return nil
}

// FindByTaxID retrieves a counterparty by tax identifier.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Counterparty, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}
