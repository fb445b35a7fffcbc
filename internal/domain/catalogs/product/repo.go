package product

import (
	"context"

	"tradewind/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindBySKU retrieves product by SKU (unique within tenant).
	FindBySKU(ctx context.Context, sku string) (*Product, error)
}
