// Package supplierinvoice provides the SupplierInvoice document: an
// incoming invoice from a supplier with outgoing payment tracking.
package supplierinvoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/core/types"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

// Status is the supplier invoice lifecycle state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusAccepted Status = "accepted"
	StatusDisputed Status = "disputed"
)

// Payment is one outgoing payment against a supplier invoice.
type Payment struct {
	ID         id.ID           `db:"id" json:"id"`
	DocumentID id.ID           `db:"document_id" json:"documentId"`
	Date       time.Time       `db:"date" json:"date"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Method     string          `db:"method" json:"method,omitempty"`
	Reference  string          `db:"reference" json:"reference,omitempty"`
}

// SupplierInvoice is an invoice received from a supplier.
type SupplierInvoice struct {
	documents.TradeDocument

	Status Status `db:"status" json:"status"`

	// SupplierReference is the number printed on the supplier's document
	SupplierReference string `db:"supplier_reference" json:"supplierReference,omitempty"`

	DueDate    time.Time       `db:"due_date" json:"dueDate"`
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amountPaid"`

	// PaymentStatus is derived from AmountPaid vs TotalAmount
	PaymentStatus billing.PaymentStatus `db:"payment_status" json:"paymentStatus"`

	Payments []Payment `db:"-" json:"payments,omitempty"`

	// PurchaseOrderID links back to the originating order, if any
	PurchaseOrderID *string `db:"purchase_order_id" json:"purchaseOrderId,omitempty"`
}

// New creates a draft supplier invoice.
func New(counterpartyID, currency string) *SupplierInvoice {
	si := &SupplierInvoice{
		TradeDocument: documents.NewTradeDocument(currency),
		Status:        StatusDraft,
		PaymentStatus: billing.StatusPending,
	}
	if counterpartyID != "" {
		si.CounterpartyID = &counterpartyID
	}
	return si
}

// Validate implements entity.Validatable.
func (si *SupplierInvoice) Validate(ctx context.Context) error {
	if err := si.Document.Validate(ctx); err != nil {
		return err
	}
	if si.CounterpartyID == nil || *si.CounterpartyID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "counterpartyId")
	}
	switch si.Status {
	case StatusDraft, StatusAccepted, StatusDisputed:
	default:
		return apperror.NewValidation("invalid status").
			WithDetail("value", string(si.Status))
	}
	if si.AmountPaid.IsNegative() {
		return apperror.NewValidation("amount paid cannot be negative").
			WithDetail("field", "amountPaid")
	}
	return nil
}

// Recalculate recomputes totals and re-derives the payment status.
func (si *SupplierInvoice) Recalculate() {
	si.RecalculateWith(billing.Adjustments{
		DiscountAmount: si.DiscountAmount,
		ShippingAmount: si.ShippingAmount,
	})
	si.RefreshPaymentStatus(time.Now().UTC())
}

// RefreshPaymentStatus re-derives PaymentStatus from paid vs total.
func (si *SupplierInvoice) RefreshPaymentStatus(now time.Time) {
	si.PaymentStatus = billing.DerivePaymentStatus(si.TotalAmount, si.AmountPaid, si.DueDate, now)
}

// CanModify allows content edits only while the document is a draft.
func (si *SupplierInvoice) CanModify() error {
	if si.Status != StatusDraft {
		return apperror.NewBusinessRule(apperror.CodeDocumentImmutable,
			"only draft supplier invoices can be modified").
			WithDetail("status", string(si.Status))
	}
	return si.Document.CanModify()
}

// Accept confirms the supplier invoice against the received goods.
func (si *SupplierInvoice) Accept() error {
	if si.Status != StatusDraft {
		return apperror.NewConflict("only draft supplier invoices can be accepted").
			WithDetail("status", string(si.Status))
	}
	if len(si.Lines) == 0 {
		return apperror.NewValidation("cannot accept a supplier invoice without lines")
	}
	si.Status = StatusAccepted
	return nil
}

// Dispute flags a mismatch with the supplier.
func (si *SupplierInvoice) Dispute() error {
	if si.Status == StatusDisputed {
		return apperror.NewConflict("supplier invoice is already disputed")
	}
	si.Status = StatusDisputed
	return nil
}

// RecordPayment appends an outgoing payment and re-derives the payment
// status.
func (si *SupplierInvoice) RecordPayment(p Payment, now time.Time) error {
	if si.Status != StatusAccepted {
		return apperror.NewConflict("payments are recorded against accepted supplier invoices only").
			WithDetail("status", string(si.Status))
	}
	if !p.Amount.IsPositive() {
		return apperror.NewValidation("payment amount must be positive").
			WithDetail("field", "amount")
	}

	if id.IsNil(p.ID) {
		p.ID = id.New()
	}
	p.DocumentID = si.ID
	if p.Date.IsZero() {
		p.Date = now
	}

	si.Payments = append(si.Payments, p)

	paid := decimal.Zero
	for _, pay := range si.Payments {
		paid = paid.Add(pay.Amount)
	}
	si.AmountPaid = types.RoundMoney(paid)
	si.RefreshPaymentStatus(now)
	return nil
}
