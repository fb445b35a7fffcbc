package goodsreceipt

import (
	"context"

	"tradewind/internal/core/numerator"
	"tradewind/internal/domain/documents"
	"tradewind/internal/domain/registers/stock"
)

// Repository defines GoodsReceipt persistence.
type Repository interface {
	documents.Repository[*GoodsReceipt]
}

// Service provides GoodsReceipt business logic. Posting receives stock
// into the receipt's warehouse, normalized to each product's stock unit.
type Service struct {
	*documents.Service[*GoodsReceipt]
}

// NewService creates a GoodsReceipt service.
func NewService(repo Repository, gen numerator.Generator, stockSvc *stock.Service, normalizer *documents.Normalizer) *Service {
	return &Service{
		Service: documents.NewService(documents.ServiceConfig[*GoodsReceipt]{
			Repo:         repo,
			Numerator:    gen,
			NumberPrefix: "GR",
			EntityName:   "goods receipt",
			Stock:        stockSvc,
			Movements: func(ctx context.Context, gr *GoodsReceipt) ([]stock.Movement, error) {
				return normalizer.Movements(ctx, &gr.TradeDocument, "goods_receipt", documents.DirectionReceipt)
			},
		}),
	}
}
