// Package product provides the Product catalog.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/entity"
)

// Product represents a sellable or purchasable item.
type Product struct {
	entity.Catalog

	// SKU is the stock keeping unit (unique within tenant)
	SKU string `db:"sku" json:"sku"`

	// StockUnitID is the unit all stock movements are normalized to
	StockUnitID string `db:"stock_unit_id" json:"stockUnitId"`

	// SalesUnitID is the default unit on sales document lines
	SalesUnitID *string `db:"sales_unit_id" json:"salesUnitId,omitempty"`

	// PurchaseUnitID is the default unit on purchasing document lines
	PurchaseUnitID *string `db:"purchase_unit_id" json:"purchaseUnitId,omitempty"`

	// SalesPrice is the default unit price on sales lines
	SalesPrice decimal.Decimal `db:"sales_price" json:"salesPrice"`

	// PurchasePrice is the default unit price on purchase lines
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchasePrice"`

	// TaxRate is the default tax rate percent applied to lines
	TaxRate decimal.Decimal `db:"tax_rate" json:"taxRate"`

	// ReorderLevel triggers low-stock reporting when balance drops below it
	ReorderLevel decimal.Decimal `db:"reorder_level" json:"reorderLevel"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewProduct creates a Product with required fields.
func NewProduct(code, name, sku, stockUnitID string) *Product {
	return &Product{
		Catalog:     entity.NewCatalog(code, name),
		SKU:         sku,
		StockUnitID: stockUnitID,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	// Folders group products and carry no trade fields
	if p.IsFolder {
		return nil
	}

	if p.SKU == "" {
		return apperror.NewValidation("sku is required").
			WithDetail("field", "sku")
	}

	if p.StockUnitID == "" {
		return apperror.NewValidation("stock unit is required").
			WithDetail("field", "stockUnitId")
	}

	if p.SalesPrice.IsNegative() || p.PurchasePrice.IsNegative() {
		return apperror.NewValidation("prices cannot be negative")
	}

	if p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("tax rate must be between 0 and 100").
			WithDetail("field", "taxRate")
	}

	return nil
}
