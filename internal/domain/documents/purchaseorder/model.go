// Package purchaseorder provides the PurchaseOrder document: an order
// placed with a supplier, awaiting goods receipt.
package purchaseorder

import (
	"context"
	"time"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

// Status is the purchase order lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	documents.TradeDocument

	Status Status `db:"status" json:"status"`

	// ExpectedAt is the expected delivery date
	ExpectedAt *time.Time `db:"expected_at" json:"expectedAt,omitempty"`
}

// New creates a draft purchase order.
func New(counterpartyID, currency string) *PurchaseOrder {
	po := &PurchaseOrder{
		TradeDocument: documents.NewTradeDocument(currency),
		Status:        StatusDraft,
	}
	if counterpartyID != "" {
		po.CounterpartyID = &counterpartyID
	}
	return po
}

// Validate implements entity.Validatable.
func (po *PurchaseOrder) Validate(ctx context.Context) error {
	if err := po.Document.Validate(ctx); err != nil {
		return err
	}
	if po.CounterpartyID == nil || *po.CounterpartyID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "counterpartyId")
	}
	switch po.Status {
	case StatusDraft, StatusSent, StatusReceived, StatusCancelled:
	default:
		return apperror.NewValidation("invalid status").
			WithDetail("value", string(po.Status))
	}
	return nil
}

// Recalculate recomputes totals with document discount and shipping.
func (po *PurchaseOrder) Recalculate() {
	po.RecalculateWith(billing.Adjustments{
		DiscountAmount: po.DiscountAmount,
		ShippingAmount: po.ShippingAmount,
	})
}

// CanModify allows edits only while the order is a draft.
func (po *PurchaseOrder) CanModify() error {
	if po.Status != StatusDraft {
		return apperror.NewBusinessRule(apperror.CodeDocumentImmutable,
			"only draft purchase orders can be modified").
			WithDetail("status", string(po.Status))
	}
	return po.Document.CanModify()
}

// Send marks the order as sent to the supplier.
func (po *PurchaseOrder) Send() error {
	if po.Status != StatusDraft {
		return apperror.NewConflict("only draft purchase orders can be sent").
			WithDetail("status", string(po.Status))
	}
	if len(po.Lines) == 0 {
		return apperror.NewValidation("cannot send an order without lines")
	}
	po.Status = StatusSent
	return nil
}

// MarkReceived records that all goods arrived.
func (po *PurchaseOrder) MarkReceived() error {
	if po.Status != StatusSent {
		return apperror.NewConflict("only sent purchase orders can be received").
			WithDetail("status", string(po.Status))
	}
	po.Status = StatusReceived
	return nil
}

// Cancel voids the order.
func (po *PurchaseOrder) Cancel() error {
	if po.Status == StatusReceived {
		return apperror.NewConflict("received purchase orders cannot be cancelled")
	}
	po.Status = StatusCancelled
	return nil
}
