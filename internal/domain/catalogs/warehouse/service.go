package warehouse

import (
	"tradewind/internal/domain"
)

// Repository defines the interface for Warehouse persistence.
type Repository interface {
	domain.CatalogRepository[*Warehouse]
}

// Service provides business logic for the Warehouse catalog.
type Service struct {
	*domain.CatalogService[*Warehouse]
	repo Repository
}

// NewService creates a new Warehouse service.
func NewService(repo Repository) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
		Repo:       repo,
		TxManager:  nil,
		EntityName: "warehouse",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
