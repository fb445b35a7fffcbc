package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	futureDue := now.AddDate(0, 0, 14)
	pastDue := now.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		total   string
		paid    string
		dueDate time.Time
		want    PaymentStatus
	}{
		{"unpaid", "100.00", "0", futureDue, StatusPending},
		{"partially paid", "100.00", "40.00", futureDue, StatusPartiallyPaid},
		{"fully paid", "100.00", "100.00", futureDue, StatusPaid},
		{"overpaid", "100.00", "120.00", futureDue, StatusPaid},
		{"unpaid past due", "100.00", "0", pastDue, StatusOverdue},
		{"partially paid past due", "100.00", "40.00", pastDue, StatusOverdue},
		{"fully paid past due stays paid", "100.00", "100.00", pastDue, StatusPaid},
		{"zero total", "0", "0", futureDue, StatusPending},
		{"no due date never overdue", "100.00", "0", time.Time{}, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePaymentStatus(dec(tt.total), dec(tt.paid), tt.dueDate, now)
			assert.Equal(t, tt.want, got)
		})
	}
}
