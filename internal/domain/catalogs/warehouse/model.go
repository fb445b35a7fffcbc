// Package warehouse provides the Warehouse catalog.
package warehouse

import (
	"context"

	"tradewind/internal/core/entity"
)

// Warehouse is a physical or logical stock location.
type Warehouse struct {
	entity.Catalog

	Address *string `db:"address" json:"address,omitempty"`

	// IsDefault marks the warehouse preselected on new documents
	IsDefault bool `db:"is_default" json:"isDefault"`
}

// NewWarehouse creates a Warehouse with required fields.
func NewWarehouse(code, name string) *Warehouse {
	return &Warehouse{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (w *Warehouse) Validate(ctx context.Context) error {
	return w.Catalog.Validate(ctx)
}
