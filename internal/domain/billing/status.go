package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the derived payment state of an invoice.
type PaymentStatus string

const (
	StatusPending       PaymentStatus = "pending"
	StatusPartiallyPaid PaymentStatus = "partially_paid"
	StatusPaid          PaymentStatus = "paid"
	StatusOverdue       PaymentStatus = "overdue"
)

// DerivePaymentStatus derives the payment status from the paid/total
// comparison. It must run every time amount_paid or total_amount changes.
//
// Rules, in order:
//   - paid >= total (total > 0)  -> paid
//   - past due date, not paid    -> overdue
//   - 0 < paid < total           -> partially_paid
//   - otherwise                  -> pending
//
// A zero-total document is pending until it gains lines. A zero due date
// means no due date was set and the document never becomes overdue.
func DerivePaymentStatus(total, paid decimal.Decimal, dueDate, now time.Time) PaymentStatus {
	switch {
	case total.IsPositive() && paid.GreaterThanOrEqual(total):
		return StatusPaid
	case !dueDate.IsZero() && now.After(dueDate):
		return StatusOverdue
	case paid.IsPositive():
		return StatusPartiallyPaid
	default:
		return StatusPending
	}
}
