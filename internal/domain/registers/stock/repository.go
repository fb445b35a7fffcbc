package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/id"
)

// Repository defines stock register persistence.
type Repository interface {
	// ReplaceMovements atomically replaces all movements recorded by a
	// document. Posting writes the new set, unposting passes an empty one.
	ReplaceMovements(ctx context.Context, documentID id.ID, movements []Movement) error

	// GetBalance returns the total quantity of a product across all
	// warehouses as of the given time.
	GetBalance(ctx context.Context, productID id.ID, asOf time.Time) (decimal.Decimal, error)

	// GetBalanceByWarehouse returns the quantity of a product in one
	// warehouse as of the given time.
	GetBalanceByWarehouse(ctx context.Context, productID, warehouseID id.ID, asOf time.Time) (decimal.Decimal, error)

	// ListBalances returns per-warehouse positions for a product.
	ListBalances(ctx context.Context, productID id.ID, asOf time.Time) ([]Balance, error)

	// ListMovementsByDocument returns the rows a document recorded.
	ListMovementsByDocument(ctx context.Context, documentID id.ID) ([]Movement, error)
}
