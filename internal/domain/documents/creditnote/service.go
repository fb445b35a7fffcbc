package creditnote

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/core/numerator"
	"tradewind/internal/domain/documents"
	"tradewind/internal/domain/registers/stock"
)

// Repository defines CreditNote persistence.
type Repository interface {
	documents.Repository[*CreditNote]
}

// Service provides CreditNote business logic. Posting a goods return
// receives the returned quantities back into stock.
type Service struct {
	*documents.Service[*CreditNote]
}

// NewService creates a CreditNote service.
func NewService(repo Repository, gen numerator.Generator, stockSvc *stock.Service, normalizer *documents.Normalizer) *Service {
	return &Service{
		Service: documents.NewService(documents.ServiceConfig[*CreditNote]{
			Repo:         repo,
			Numerator:    gen,
			NumberPrefix: "CN",
			EntityName:   "credit note",
			Stock:        stockSvc,
			Movements: func(ctx context.Context, cn *CreditNote) ([]stock.Movement, error) {
				if !cn.GoodsReturn {
					return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule,
						"only goods returns can be posted to stock")
				}
				return normalizer.Movements(ctx, &cn.TradeDocument, "credit_note", documents.DirectionReceipt)
			},
		}),
	}
}

func (s *Service) transition(ctx context.Context, docID id.ID, fn func(*CreditNote) error) (*CreditNote, error) {
	cn, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if err := fn(cn); err != nil {
		return nil, err
	}
	if err := s.UpdateHeader(ctx, cn); err != nil {
		return nil, err
	}
	return cn, nil
}

// Issue finalizes the credit note.
func (s *Service) Issue(ctx context.Context, docID id.ID) (*CreditNote, error) {
	return s.transition(ctx, docID, (*CreditNote).Issue)
}

// Void cancels the credit note.
func (s *Service) Void(ctx context.Context, docID id.ID) (*CreditNote, error) {
	return s.transition(ctx, docID, (*CreditNote).Void)
}
