// Package quotation provides the Quotation document: a priced offer that
// precedes a sales order.
package quotation

import (
	"context"
	"time"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

// Status is the quotation lifecycle state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Quotation is a priced offer to a customer.
type Quotation struct {
	documents.TradeDocument

	Status Status `db:"status" json:"status"`

	// ValidUntil is the offer expiry date
	ValidUntil *time.Time `db:"valid_until" json:"validUntil,omitempty"`
}

// New creates a draft quotation.
func New(counterpartyID, currency string) *Quotation {
	q := &Quotation{
		TradeDocument: documents.NewTradeDocument(currency),
		Status:        StatusDraft,
	}
	if counterpartyID != "" {
		q.CounterpartyID = &counterpartyID
	}
	return q
}

// Validate implements entity.Validatable.
func (q *Quotation) Validate(ctx context.Context) error {
	if err := q.Document.Validate(ctx); err != nil {
		return err
	}
	if q.CounterpartyID == nil || *q.CounterpartyID == "" {
		return apperror.NewValidation("counterparty is required").
			WithDetail("field", "counterpartyId")
	}
	switch q.Status {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired:
	default:
		return apperror.NewValidation("invalid status").
			WithDetail("value", string(q.Status))
	}
	return nil
}

// Recalculate recomputes totals with document discount and shipping.
func (q *Quotation) Recalculate() {
	q.RecalculateWith(billing.Adjustments{
		DiscountAmount: q.DiscountAmount,
		ShippingAmount: q.ShippingAmount,
	})
}

// CanModify rejects mutations once the quotation left the draft state.
func (q *Quotation) CanModify() error {
	if q.Status != StatusDraft {
		return apperror.NewBusinessRule(apperror.CodeDocumentImmutable,
			"only draft quotations can be modified").
			WithDetail("status", string(q.Status))
	}
	return q.Document.CanModify()
}

// Send marks the quotation as sent to the customer.
func (q *Quotation) Send() error {
	if q.Status != StatusDraft {
		return apperror.NewConflict("only draft quotations can be sent").
			WithDetail("status", string(q.Status))
	}
	q.Status = StatusSent
	return nil
}

// Accept marks the quotation as accepted.
func (q *Quotation) Accept() error {
	if q.Status != StatusSent {
		return apperror.NewConflict("only sent quotations can be accepted").
			WithDetail("status", string(q.Status))
	}
	q.Status = StatusAccepted
	return nil
}

// Reject marks the quotation as rejected.
func (q *Quotation) Reject() error {
	if q.Status != StatusSent {
		return apperror.NewConflict("only sent quotations can be rejected").
			WithDetail("status", string(q.Status))
	}
	q.Status = StatusRejected
	return nil
}

// IsExpired reports whether the offer passed its validity date.
func (q *Quotation) IsExpired(now time.Time) bool {
	return q.ValidUntil != nil && now.After(*q.ValidUntil)
}
