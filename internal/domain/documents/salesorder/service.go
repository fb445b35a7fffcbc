package salesorder

import (
	"context"

	"tradewind/internal/core/id"
	"tradewind/internal/core/numerator"
	"tradewind/internal/domain/documents"
)

// Repository defines SalesOrder persistence.
type Repository interface {
	documents.Repository[*SalesOrder]
}

// Service provides SalesOrder business logic.
type Service struct {
	*documents.Service[*SalesOrder]
}

// NewService creates a SalesOrder service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	return &Service{
		Service: documents.NewService(documents.ServiceConfig[*SalesOrder]{
			Repo:         repo,
			Numerator:    gen,
			NumberPrefix: "SO",
			EntityName:   "sales order",
		}),
	}
}

func (s *Service) transition(ctx context.Context, docID id.ID, fn func(*SalesOrder) error) (*SalesOrder, error) {
	so, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if err := fn(so); err != nil {
		return nil, err
	}
	if err := s.UpdateHeader(ctx, so); err != nil {
		return nil, err
	}
	return so, nil
}

// Confirm transitions the order to confirmed.
func (s *Service) Confirm(ctx context.Context, docID id.ID) (*SalesOrder, error) {
	return s.transition(ctx, docID, (*SalesOrder).Confirm)
}

// Fulfill marks the order as delivered.
func (s *Service) Fulfill(ctx context.Context, docID id.ID) (*SalesOrder, error) {
	return s.transition(ctx, docID, (*SalesOrder).Fulfill)
}

// Cancel voids the order.
func (s *Service) Cancel(ctx context.Context, docID id.ID) (*SalesOrder, error) {
	return s.transition(ctx, docID, (*SalesOrder).Cancel)
}
