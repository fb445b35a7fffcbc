// Package invoice provides the customer Invoice document with payment
// tracking and derived payment status.
package invoice

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

// Status is the invoice lifecycle state. The payment dimension
// (pending/partially_paid/paid/overdue) lives in PaymentStatus and is
// derived, never set by hand.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusSent   Status = "sent"
	StatusVoided Status = "voided"
)

// Payment is one recorded payment against an invoice.
type Payment struct {
	ID         id.ID           `db:"id" json:"id"`
	DocumentID id.ID           `db:"document_id" json:"documentId"`
	Date       time.Time       `db:"date" json:"date"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Method     string          `db:"method" json:"method,omitempty"`
	Reference  string          `db:"reference" json:"reference,omitempty"`
}

// Invoice is a customer invoice.
type Invoice struct {
	documents.TradeDocument

	Status Status `db:"status" json:"status"`

	// DueDate drives overdue derivation; zero means no due date
	DueDate time.Time `db:"due_date" json:"dueDate"`

	// AmountPaid is the sum of recorded payments
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amountPaid"`

	// PaymentStatus is derived from AmountPaid vs TotalAmount on every
	// change of either
	PaymentStatus billing.PaymentStatus `db:"payment_status" json:"paymentStatus"`

	// Payments are loaded and saved separately from the header
	Payments []Payment `db:"-" json:"payments,omitempty"`

	// SalesOrderID links back to the originating order, if any
	SalesOrderID *string `db:"sales_order_id" json:"salesOrderId,omitempty"`
}

// New creates a draft invoice.
func New(counterpartyID, currency string) *Invoice {
	inv := &Invoice{
		TradeDocument: documents.NewTradeDocument(currency),
		Status:        StatusDraft,
		PaymentStatus: billing.StatusPending,
	}
	if counterpartyID != "" {
		inv.CounterpartyID = &counterpartyID
	}
	return inv
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}
	if inv.CounterpartyID == nil || *inv.CounterpartyID == "" {
		return apperror.NewValidation("counterparty is required").
			WithDetail("field", "counterpartyId")
	}
	switch inv.Status {
	case StatusDraft, StatusSent, StatusVoided:
	default:
		return apperror.NewValidation("invalid status").
			WithDetail("value", string(inv.Status))
	}
	if inv.AmountPaid.IsNegative() {
		return apperror.NewValidation("amount paid cannot be negative").
			WithDetail("field", "amountPaid")
	}
	return nil
}

// Recalculate recomputes totals and re-derives the payment status, as
// required on every total_amount change.
func (inv *Invoice) Recalculate() {
	inv.RecalculateWith(billing.Adjustments{
		DiscountAmount: inv.DiscountAmount,
		ShippingAmount: inv.ShippingAmount,
	})
	inv.RefreshPaymentStatus(time.Now().UTC())
}

// RefreshPaymentStatus re-derives PaymentStatus from the paid/total
// comparison. Voided invoices keep their status frozen.
func (inv *Invoice) RefreshPaymentStatus(now time.Time) {
	if inv.Status == StatusVoided {
		return
	}
	inv.PaymentStatus = billing.DerivePaymentStatus(inv.TotalAmount, inv.AmountPaid, inv.DueDate, now)
}

// CanModify allows content edits only while the invoice is a draft.
func (inv *Invoice) CanModify() error {
	if inv.Status != StatusDraft {
		return apperror.NewBusinessRule(apperror.CodeDocumentImmutable,
			"only draft invoices can be modified").
			WithDetail("status", string(inv.Status))
	}
	return inv.Document.CanModify()
}

// Send issues the invoice to the customer.
func (inv *Invoice) Send() error {
	if inv.Status != StatusDraft {
		return apperror.NewConflict("only draft invoices can be sent").
			WithDetail("status", string(inv.Status))
	}
	if len(inv.Lines) == 0 {
		return apperror.NewValidation("cannot send an invoice without lines")
	}
	inv.Status = StatusSent
	return nil
}

// Void cancels the invoice. Paid invoices cannot be voided.
func (inv *Invoice) Void() error {
	if inv.PaymentStatus == billing.StatusPaid || inv.AmountPaid.IsPositive() {
		return apperror.NewConflict("invoices with recorded payments cannot be voided")
	}
	inv.Status = StatusVoided
	return nil
}

// RecordPayment appends a payment, updates AmountPaid and re-derives the
// payment status.
func (inv *Invoice) RecordPayment(p Payment, now time.Time) error {
	if inv.Status == StatusDraft {
		return apperror.NewConflict("cannot record payments on a draft invoice")
	}
	if inv.Status == StatusVoided {
		return apperror.NewConflict("cannot record payments on a voided invoice")
	}
	if !p.Amount.IsPositive() {
		return apperror.NewValidation("payment amount must be positive").
			WithDetail("field", "amount")
	}

	if id.IsNil(p.ID) {
		p.ID = id.New()
	}
	p.DocumentID = inv.ID
	if p.Date.IsZero() {
		p.Date = now
	}

	inv.Payments = append(inv.Payments, p)

	paid := decimal.Zero
	for _, pay := range inv.Payments {
		paid = paid.Add(pay.Amount)
	}
	inv.AmountPaid = types.RoundMoney(paid)
	inv.RefreshPaymentStatus(now)
	return nil
}
