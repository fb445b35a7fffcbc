package entity

import (
	"context"
	"time"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
)

// Document is the base type for business transactions.
// Examples: Invoice, Quotation, PurchaseOrder, GoodsReceipt.
type Document struct {
	BaseDocument

	// Number is the document number (auto-generated, unique within type+period)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Posted indicates if document movements are recorded in the stock register
	Posted bool `db:"posted" json:"posted"`

	// PostedVersion tracks posting iterations for movement reconciliation.
	// Incremented each time the document is posted.
	PostedVersion int `db:"posted_version" json:"postedVersion"`

	// Currency is the ISO 4217 code of the document currency
	Currency string `db:"currency" json:"currency"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument(currency string) Document {
	if currency == "" {
		currency = "EUR"
	}
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
		Currency:     currency,
	}
}

// Validate implements Validatable.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if d.Currency == "" {
		return apperror.NewValidation("currency is required").
			WithDetail("field", "currency")
	}
	return nil
}

// CanModify checks if the document can be modified.
// Posted documents require unposting first.
func (d *Document) CanModify() error {
	if d.Posted {
		return apperror.NewBusinessRule(
			apperror.CodeDocumentImmutable,
			"Cannot modify posted document. Unpost first.",
		).WithDetail("document_id", d.ID.String())
	}
	return nil
}

// MarkPosted sets the posted flag and increments the posting version.
// The optimistic-lock version is advanced by the repository on save.
func (d *Document) MarkPosted() {
	d.Posted = true
	d.PostedVersion++
}

// MarkUnposted clears the posted flag.
func (d *Document) MarkUnposted() {
	d.Posted = false
}

// IsBackdated checks if the document date is in the past.
func (d *Document) IsBackdated() bool {
	return d.Date.Before(time.Now().UTC().Truncate(24 * time.Hour))
}

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}

// GetPostedVersion returns the current posting version.
func (d *Document) GetPostedVersion() int {
	return d.PostedVersion
}

// IsPosted returns true if the document is currently posted.
func (d *Document) IsPosted() bool {
	return d.Posted
}
