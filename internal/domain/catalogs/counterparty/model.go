// Package counterparty provides the Counterparty catalog: customers and
// suppliers a tenant trades with.
package counterparty

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/entity"
)

// Counterparty represents a customer, a supplier, or both.
type Counterparty struct {
	entity.Catalog

	// IsCustomer marks the counterparty as usable on sales documents
	IsCustomer bool `db:"is_customer" json:"isCustomer"`

	// IsSupplier marks the counterparty as usable on purchasing documents
	IsSupplier bool `db:"is_supplier" json:"isSupplier"`

	// TaxID is the counterparty's tax identifier (VAT number etc.)
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// PaymentTermsDays feeds invoice due-date defaults
	PaymentTermsDays int `db:"payment_terms_days" json:"paymentTermsDays"`

	Email   *string `db:"email" json:"email,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`
}

// NewCounterparty creates a Counterparty with required fields.
func NewCounterparty(code, name string) *Counterparty {
	return &Counterparty{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (c *Counterparty) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.IsFolder {
		return nil
	}

	if !c.IsCustomer && !c.IsSupplier {
		return apperror.NewValidation("counterparty must be a customer, a supplier, or both")
	}

	if c.PaymentTermsDays < 0 {
		return apperror.NewValidation("payment terms cannot be negative").
			WithDetail("field", "paymentTermsDays")
	}

	return nil
}
