package unit

import (
	"context"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain"
)

// Service provides business logic for the Unit catalog.
// Common CRUD comes from domain.CatalogService; conversion helpers and
// hierarchy checks live here.
type Service struct {
	*domain.CatalogService[*Unit]
	repo Repository
}

// NewService creates a new Unit service.
// In Database-per-Tenant mode the TxManager is obtained from context.
func NewService(repo Repository) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Unit]{
		Repo:       repo,
		TxManager:  nil,
		EntityName: "unit",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)
	base.Hooks().OnBeforeDelete(svc.checkNoDependants)

	return svc
}

// checkNoDependants rejects deleting a base unit that derived units still
// reference; deleting it would strand their conversion factors.
func (s *Service) checkNoDependants(ctx context.Context, u *Unit) error {
	if u.IsDerived() {
		return nil
	}

	dependants, err := s.repo.ListByBaseUnit(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(dependants) > 0 {
		return apperror.NewConflict("base unit has derived units and cannot be deleted").
			WithDetail("unitId", u.ID.String()).
			WithDetail("derivedCount", len(dependants))
	}
	return nil
}

// SetDeletionMark applies the same dependant guard as Delete when marking.
func (s *Service) SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error {
	if marked {
		u, err := s.GetByID(ctx, entityID)
		if err != nil {
			return err
		}
		if err := s.checkNoDependants(ctx, u); err != nil {
			return err
		}
	}
	return s.CatalogService.SetDeletionMark(ctx, entityID, marked)
}

// prepareForSave enforces symbol uniqueness and the two-level hierarchy:
// a derived unit may only reference a base unit, never another derived one.
func (s *Service) prepareForSave(ctx context.Context, u *Unit) error {
	if u.Symbol != "" {
		if exists, _ := s.symbolTaken(ctx, u.Symbol, u.ID); exists {
			return apperror.NewConflict("unit with this symbol already exists").
				WithDetail("symbol", u.Symbol)
		}
	}

	if !u.IsDerived() {
		return nil
	}

	baseID, err := id.Parse(*u.BaseUnitID)
	if err != nil {
		return apperror.NewValidation("invalid base unit reference").
			WithDetail("baseUnitId", *u.BaseUnitID)
	}

	base, err := s.repo.GetByID(ctx, baseID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("base unit does not exist").
				WithDetail("baseUnitId", *u.BaseUnitID)
		}
		return err
	}

	if base.IsDerived() {
		return apperror.NewValidation("base unit must itself be a base unit").
			WithDetail("baseUnitId", *u.BaseUnitID)
	}

	if base.Type != u.Type {
		return apperror.NewValidation("derived unit type must match its base unit").
			WithDetail("unitType", string(u.Type)).
			WithDetail("baseUnitType", string(base.Type))
	}

	return nil
}

func (s *Service) symbolTaken(ctx context.Context, symbol string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindBySymbol(ctx, symbol)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}

// FindBySymbol retrieves a unit by symbol.
func (s *Service) FindBySymbol(ctx context.Context, symbol string) (*Unit, error) {
	return s.repo.FindBySymbol(ctx, symbol)
}

// CompatibleUnits returns the base unit plus every unit derived from it,
// i.e. all units a quantity in baseUnitID can be converted to.
func (s *Service) CompatibleUnits(ctx context.Context, baseUnitID id.ID) ([]*Unit, error) {
	base, err := s.GetByID(ctx, baseUnitID)
	if err != nil {
		return nil, err
	}

	// Called with a derived unit: walk up to its base first
	if base.IsDerived() {
		realBaseID, err := id.Parse(*base.BaseUnitID)
		if err != nil {
			return nil, apperror.NewValidation("invalid base unit reference").
				WithDetail("baseUnitId", *base.BaseUnitID)
		}
		return s.CompatibleUnits(ctx, realBaseID)
	}

	derived, err := s.repo.ListByBaseUnit(ctx, base.ID)
	if err != nil {
		return nil, err
	}

	return append([]*Unit{base}, derived...), nil
}

// ConvertToBase converts a quantity from the given unit into its base unit.
func (s *Service) ConvertToBase(ctx context.Context, unitID id.ID, qty decimal.Decimal) (decimal.Decimal, error) {
	u, err := s.GetByID(ctx, unitID)
	if err != nil {
		return decimal.Zero, err
	}
	return u.ConvertToBase(qty)
}

// ConvertFromBase converts a base-unit quantity into the given unit.
func (s *Service) ConvertFromBase(ctx context.Context, unitID id.ID, qty decimal.Decimal) (decimal.Decimal, error) {
	u, err := s.GetByID(ctx, unitID)
	if err != nil {
		return decimal.Zero, err
	}
	return u.ConvertFromBase(qty)
}
