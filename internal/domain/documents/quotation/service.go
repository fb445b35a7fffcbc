package quotation

import (
	"context"

	"tradewind/internal/core/id"
	"tradewind/internal/core/numerator"
	"tradewind/internal/domain/documents"
)

// Repository defines Quotation persistence.
type Repository interface {
	documents.Repository[*Quotation]
}

// Service provides Quotation business logic.
type Service struct {
	*documents.Service[*Quotation]
}

// NewService creates a Quotation service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	return &Service{
		Service: documents.NewService(documents.ServiceConfig[*Quotation]{
			Repo:         repo,
			Numerator:    gen,
			NumberPrefix: "QT",
			EntityName:   "quotation",
		}),
	}
}

func (s *Service) transition(ctx context.Context, docID id.ID, fn func(*Quotation) error) (*Quotation, error) {
	q, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if err := fn(q); err != nil {
		return nil, err
	}
	if err := s.UpdateHeader(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Send transitions the quotation to sent.
func (s *Service) Send(ctx context.Context, docID id.ID) (*Quotation, error) {
	return s.transition(ctx, docID, (*Quotation).Send)
}

// Accept transitions the quotation to accepted.
func (s *Service) Accept(ctx context.Context, docID id.ID) (*Quotation, error) {
	return s.transition(ctx, docID, (*Quotation).Accept)
}

// Reject transitions the quotation to rejected.
func (s *Service) Reject(ctx context.Context, docID id.ID) (*Quotation, error) {
	return s.transition(ctx, docID, (*Quotation).Reject)
}
