// Package creditnote provides the CreditNote document: a refund or
// correction against a customer invoice. Credit notes carry no
// document-level discount or shipping; posting a goods return receives
// stock back.
package creditnote

import (
	"context"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

// Status is the credit note lifecycle state.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusIssued Status = "issued"
	StatusVoided Status = "voided"
)

// CreditNote is a refund document against an invoice.
type CreditNote struct {
	documents.TradeDocument

	Status Status `db:"status" json:"status"`

	// InvoiceID references the corrected invoice
	InvoiceID *string `db:"invoice_id" json:"invoiceId,omitempty"`

	// GoodsReturn marks credit notes that bring goods back into stock
	GoodsReturn bool `db:"goods_return" json:"goodsReturn"`

	// Reason is a free-form explanation
	Reason string `db:"reason" json:"reason,omitempty"`
}

// New creates a draft credit note.
func New(counterpartyID, currency string) *CreditNote {
	cn := &CreditNote{
		TradeDocument: documents.NewTradeDocument(currency),
		Status:        StatusDraft,
	}
	if counterpartyID != "" {
		cn.CounterpartyID = &counterpartyID
	}
	return cn
}

// Validate implements entity.Validatable.
func (cn *CreditNote) Validate(ctx context.Context) error {
	if err := cn.Document.Validate(ctx); err != nil {
		return err
	}
	if cn.CounterpartyID == nil || *cn.CounterpartyID == "" {
		return apperror.NewValidation("counterparty is required").
			WithDetail("field", "counterpartyId")
	}
	switch cn.Status {
	case StatusDraft, StatusIssued, StatusVoided:
	default:
		return apperror.NewValidation("invalid status").
			WithDetail("value", string(cn.Status))
	}
	if cn.GoodsReturn && (cn.WarehouseID == nil || *cn.WarehouseID == "") {
		return apperror.NewValidation("warehouse is required for goods returns").
			WithDetail("field", "warehouseId")
	}
	return nil
}

// Recalculate recomputes totals. Credit notes apply no document-level
// adjustments: total = subtotal + taxes.
func (cn *CreditNote) Recalculate() {
	cn.RecalculateWith(billing.Adjustments{})
}

// CanModify allows edits only while the note is a draft.
func (cn *CreditNote) CanModify() error {
	if cn.Status != StatusDraft {
		return apperror.NewBusinessRule(apperror.CodeDocumentImmutable,
			"only draft credit notes can be modified").
			WithDetail("status", string(cn.Status))
	}
	return cn.Document.CanModify()
}

// Issue finalizes the credit note.
func (cn *CreditNote) Issue() error {
	if cn.Status != StatusDraft {
		return apperror.NewConflict("only draft credit notes can be issued").
			WithDetail("status", string(cn.Status))
	}
	if len(cn.Lines) == 0 {
		return apperror.NewValidation("cannot issue a credit note without lines")
	}
	cn.Status = StatusIssued
	return nil
}

// Void cancels the credit note.
func (cn *CreditNote) Void() error {
	if cn.Status == StatusVoided {
		return apperror.NewConflict("credit note is already voided")
	}
	if cn.IsPosted() {
		return apperror.NewConflict("unpost the goods return before voiding")
	}
	cn.Status = StatusVoided
	return nil
}
