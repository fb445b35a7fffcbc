package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewind/internal/core/id"
	"tradewind/internal/domain/billing"
	"tradewind/internal/domain/documents"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func sentInvoice(t *testing.T, total string) *Invoice {
	t.Helper()

	inv := New(id.New().String(), "EUR")
	line := documents.NewLine(id.New(), dec("1"), dec(total))
	inv.AddLine(line)
	inv.DueDate = now.AddDate(0, 0, 30)
	inv.Recalculate()
	require.NoError(t, inv.Send())
	inv.RefreshPaymentStatus(now)
	return inv
}

func TestInvoiceRecalculateDerivesStatus(t *testing.T) {
	inv := sentInvoice(t, "100.00")

	assert.Equal(t, "100.00", inv.TotalAmount.StringFixed(2))
	assert.Equal(t, billing.StatusPending, inv.PaymentStatus)
}

func TestInvoiceRecordPayment(t *testing.T) {
	inv := sentInvoice(t, "100.00")

	require.NoError(t, inv.RecordPayment(Payment{Amount: dec("40.00")}, now))
	assert.Equal(t, "40.00", inv.AmountPaid.StringFixed(2))
	assert.Equal(t, billing.StatusPartiallyPaid, inv.PaymentStatus)

	require.NoError(t, inv.RecordPayment(Payment{Amount: dec("60.00")}, now))
	assert.Equal(t, "100.00", inv.AmountPaid.StringFixed(2))
	assert.Equal(t, billing.StatusPaid, inv.PaymentStatus)

	assert.Len(t, inv.Payments, 2)
	for _, p := range inv.Payments {
		assert.Equal(t, inv.ID, p.DocumentID)
		assert.False(t, id.IsNil(p.ID))
	}
}

func TestInvoiceOverdue(t *testing.T) {
	inv := sentInvoice(t, "100.00")
	inv.DueDate = now.AddDate(0, 0, -1)

	inv.RefreshPaymentStatus(now)
	assert.Equal(t, billing.StatusOverdue, inv.PaymentStatus)

	// payment on an overdue invoice that covers the total settles it
	require.NoError(t, inv.RecordPayment(Payment{Amount: dec("100.00")}, now))
	assert.Equal(t, billing.StatusPaid, inv.PaymentStatus)
}

func TestInvoiceRejectsInvalidPayments(t *testing.T) {
	inv := sentInvoice(t, "100.00")

	assert.Error(t, inv.RecordPayment(Payment{Amount: dec("0")}, now))
	assert.Error(t, inv.RecordPayment(Payment{Amount: dec("-5")}, now))

	draft := New(id.New().String(), "EUR")
	assert.Error(t, draft.RecordPayment(Payment{Amount: dec("10")}, now))
}

func TestInvoiceVoid(t *testing.T) {
	inv := sentInvoice(t, "100.00")
	require.NoError(t, inv.Void())
	assert.Equal(t, StatusVoided, inv.Status)

	// voided invoices freeze their payment status
	inv.DueDate = now.AddDate(0, 0, -10)
	inv.RefreshPaymentStatus(now)
	assert.Equal(t, billing.StatusPending, inv.PaymentStatus)
}

func TestInvoiceVoidRejectedAfterPayment(t *testing.T) {
	inv := sentInvoice(t, "100.00")
	require.NoError(t, inv.RecordPayment(Payment{Amount: dec("40.00")}, now))

	assert.Error(t, inv.Void())
}

func TestInvoiceCanModifyOnlyDraft(t *testing.T) {
	ctx := context.Background()

	inv := New(id.New().String(), "EUR")
	require.NoError(t, inv.Validate(ctx))
	assert.NoError(t, inv.CanModify())

	sent := sentInvoice(t, "50.00")
	assert.Error(t, sent.CanModify())
}
