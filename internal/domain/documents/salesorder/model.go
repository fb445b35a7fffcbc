// Package salesorder provides the SalesOrder document: a confirmed
// customer order awaiting delivery and invoicing.
package salesorder

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

// Status is the sales order lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// SalesOrder is a confirmed customer order.
type SalesOrder struct {
	documents.TradeDocument

	Status Status `db:"status" json:"status"`

	// QuotationID links back to the accepted quotation, if any
	QuotationID *string `db:"quotation_id" json:"quotationId,omitempty"`
}

// New creates a draft sales order.
func New(counterpartyID, currency string) *SalesOrder {
	so := &SalesOrder{
		TradeDocument: documents.NewTradeDocument(currency),
		Status:        StatusDraft,
	}
	if counterpartyID != "" {
		so.CounterpartyID = &counterpartyID
	}
	return so
}

// Validate implements entity.Validatable.
func (so *SalesOrder) Validate(ctx context.Context) error {
	if err := so.Document.Validate(ctx); err != nil {
		return err
	}
	if so.CounterpartyID == nil || *so.CounterpartyID == "" {
		return apperror.NewValidation("counterparty is required").
			WithDetail("field", "counterpartyId")
	}
	switch so.Status {
	case StatusDraft, StatusConfirmed, StatusFulfilled, StatusCancelled:
	default:
		return apperror.NewValidation("invalid status").
			WithDetail("value", string(so.Status))
	}
	return nil
}

// Recalculate recomputes totals with document discount and shipping.
func (so *SalesOrder) Recalculate() {
	so.RecalculateWith(billing.Adjustments{
		DiscountAmount: so.DiscountAmount,
		ShippingAmount: so.ShippingAmount,
	})
}

// CanModify allows line edits only while the order is a draft.
func (so *SalesOrder) CanModify() error {
	if so.Status != StatusDraft {
		return apperror.NewBusinessRule(apperror.CodeDocumentImmutable,
			"only draft sales orders can be modified").
			WithDetail("status", string(so.Status))
	}
	return so.Document.CanModify()
}

// Confirm moves the order from draft to confirmed.
func (so *SalesOrder) Confirm() error {
	if so.Status != StatusDraft {
		return apperror.NewConflict("only draft sales orders can be confirmed").
			WithDetail("status", string(so.Status))
	}
	if len(so.Lines) == 0 {
		return apperror.NewValidation("cannot confirm an order without lines")
	}
	so.Status = StatusConfirmed
	return nil
}

// Fulfill marks the order as fully delivered.
func (so *SalesOrder) Fulfill() error {
	if so.Status != StatusConfirmed {
		return apperror.NewConflict("only confirmed sales orders can be fulfilled").
			WithDetail("status", string(so.Status))
	}
	so.Status = StatusFulfilled
	return nil
}

// Cancel voids the order.
func (so *SalesOrder) Cancel() error {
	if so.Status == StatusFulfilled {
		return apperror.NewConflict("fulfilled sales orders cannot be cancelled")
	}
	so.Status = StatusCancelled
	return nil
}
