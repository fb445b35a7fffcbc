package purchaseorder

import (
	"context"

	"tradewind/internal/core/id"
	"tradewind/internal/core/numerator"
	"tradewind/internal/domain/documents"
)

// Repository defines PurchaseOrder persistence.
type Repository interface {
	documents.Repository[*PurchaseOrder]
}

// Service provides PurchaseOrder business logic.
type Service struct {
	*documents.Service[*PurchaseOrder]
}

// NewService creates a PurchaseOrder service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	return &Service{
		Service: documents.NewService(documents.ServiceConfig[*PurchaseOrder]{
			Repo:         repo,
			Numerator:    gen,
			NumberPrefix: "PO",
			EntityName:   "purchase order",
		}),
	}
}

func (s *Service) transition(ctx context.Context, docID id.ID, fn func(*PurchaseOrder) error) (*PurchaseOrder, error) {
	po, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if err := fn(po); err != nil {
		return nil, err
	}
	if err := s.UpdateHeader(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

// Send transitions the order to sent.
func (s *Service) Send(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	return s.transition(ctx, docID, (*PurchaseOrder).Send)
}

// MarkReceived records full goods receipt.
func (s *Service) MarkReceived(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	return s.transition(ctx, docID, (*PurchaseOrder).MarkReceived)
}

// Cancel voids the order.
func (s *Service) Cancel(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	return s.transition(ctx, docID, (*PurchaseOrder).Cancel)
}
