package deliverynote

import (
	"context"

	"tradewind/internal/core/numerator"
	"tradewind/internal/domain/documents"
	"tradewind/internal/domain/registers/stock"
)

// Repository defines DeliveryNote persistence.
type Repository interface {
	documents.Repository[*DeliveryNote]
}

// Service provides DeliveryNote business logic. Posting issues stock
// from the note's warehouse, normalized to each product's stock unit.
type Service struct {
	*documents.Service[*DeliveryNote]
}

// NewService creates a DeliveryNote service.
func NewService(repo Repository, gen numerator.Generator, stockSvc *stock.Service, normalizer *documents.Normalizer) *Service {
	return &Service{
		Service: documents.NewService(documents.ServiceConfig[*DeliveryNote]{
			Repo:         repo,
			Numerator:    gen,
			NumberPrefix: "DN",
			EntityName:   "delivery note",
			Stock:        stockSvc,
			Movements: func(ctx context.Context, dn *DeliveryNote) ([]stock.Movement, error) {
				return normalizer.Movements(ctx, &dn.TradeDocument, "delivery_note", documents.DirectionIssue)
			},
		}),
	}
}
