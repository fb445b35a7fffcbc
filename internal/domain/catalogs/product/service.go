package product

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain"
	"tradewind/internal/domain/catalogs/unit"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo  Repository
	units *unit.Service
}

// NewService creates a new Product service.
func NewService(repo Repository, units *unit.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  nil,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		units:          units,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)

	return svc
}

// prepareForSave enforces SKU uniqueness and checks that every referenced
// unit exists and is compatible with the stock unit.
func (s *Service) prepareForSave(ctx context.Context, p *Product) error {
	if p.IsFolder {
		return nil
	}

	if existing, err := s.repo.FindBySKU(ctx, p.SKU); err == nil && existing.ID != p.ID {
		return apperror.NewDuplicate("product", "sku", p.SKU)
	}

	stockUnitID, err := id.Parse(p.StockUnitID)
	if err != nil {
		return apperror.NewValidation("invalid stock unit reference").
			WithDetail("stockUnitId", p.StockUnitID)
	}
	if _, err := s.units.GetByID(ctx, stockUnitID); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("stock unit does not exist").
				WithDetail("stockUnitId", p.StockUnitID)
		}
		return err
	}

	for field, ref := range map[string]*string{
		"salesUnitId":    p.SalesUnitID,
		"purchaseUnitId": p.PurchaseUnitID,
	} {
		if ref == nil || *ref == "" {
			continue
		}
		if err := s.checkUnitCompatible(ctx, stockUnitID, *ref, field); err != nil {
			return err
		}
	}

	return nil
}

// checkUnitCompatible verifies that the referenced unit converts to the
// product's stock unit.
func (s *Service) checkUnitCompatible(ctx context.Context, stockUnitID id.ID, ref, field string) error {
	unitID, err := id.Parse(ref)
	if err != nil {
		return apperror.NewValidation("invalid unit reference").
			WithDetail(field, ref)
	}

	compatible, err := s.units.CompatibleUnits(ctx, stockUnitID)
	if err != nil {
		return err
	}
	for _, u := range compatible {
		if u.ID == unitID {
			return nil
		}
	}
	return apperror.NewValidation("unit is not compatible with the stock unit").
		WithDetail(field, ref)
}

// FindBySKU retrieves a product by SKU.
func (s *Service) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	return s.repo.FindBySKU(ctx, sku)
}

// CompatibleUnits lists the units a line of this product may use.
func (s *Service) CompatibleUnits(ctx context.Context, productID id.ID) ([]*unit.Unit, error) {
	p, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	stockUnitID, err := id.Parse(p.StockUnitID)
	if err != nil {
		return nil, apperror.NewValidation("invalid stock unit reference").
			WithDetail("stockUnitId", p.StockUnitID)
	}
	return s.units.CompatibleUnits(ctx, stockUnitID)
}
