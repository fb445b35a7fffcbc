package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
)

// Service provides stock register operations. Posting methods are called
// by document services inside the document's own transaction.
type Service struct {
	repo Repository
}

// NewService creates a new stock register service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Post replaces the movements recorded by a document. Issue movements
// (negative quantities) are checked against the balance first.
func (s *Service) Post(ctx context.Context, documentID id.ID, movements []Movement) error {
	for i := range movements {
		m := &movements[i]
		if id.IsNil(m.ID) {
			m.ID = id.New()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}

		if m.Quantity.IsNegative() {
			if err := s.checkAvailability(ctx, m); err != nil {
				return err
			}
		}
	}

	return s.repo.ReplaceMovements(ctx, documentID, movements)
}

// Unpost removes all movements recorded by a document.
func (s *Service) Unpost(ctx context.Context, documentID id.ID) error {
	return s.repo.ReplaceMovements(ctx, documentID, nil)
}

func (s *Service) checkAvailability(ctx context.Context, m *Movement) error {
	available, err := s.repo.GetBalanceByWarehouse(ctx, m.ProductID, m.WarehouseID, m.Period)
	if err != nil {
		return err
	}

	requested := m.Quantity.Neg()
	if available.LessThan(requested) {
		return apperror.NewInsufficientStock(
			m.ProductID.String(),
			requested.String(),
			available.String(),
		)
	}
	return nil
}

// Balance returns the total quantity of a product across all warehouses.
func (s *Service) Balance(ctx context.Context, productID id.ID, asOf time.Time) (decimal.Decimal, error) {
	return s.repo.GetBalance(ctx, productID, asOf)
}

// BalanceByWarehouse returns the product quantity in one warehouse.
func (s *Service) BalanceByWarehouse(ctx context.Context, productID, warehouseID id.ID, asOf time.Time) (decimal.Decimal, error) {
	return s.repo.GetBalanceByWarehouse(ctx, productID, warehouseID, asOf)
}

// Balances returns per-warehouse positions for a product.
func (s *Service) Balances(ctx context.Context, productID id.ID, asOf time.Time) ([]Balance, error) {
	return s.repo.ListBalances(ctx, productID, asOf)
}

// MovementsByDocument returns the register rows a document recorded.
func (s *Service) MovementsByDocument(ctx context.Context, documentID id.ID) ([]Movement, error) {
	return s.repo.ListMovementsByDocument(ctx, documentID)
}
