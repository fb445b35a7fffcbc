// Package numerator provides domain contracts for document auto-numbering.
// Implementations live in the infrastructure layer.
package numerator

import (
	"context"
	"time"
)

// Generator generates sequential document numbers.
//
// In Database-per-Tenant architecture implementations obtain database
// connections from context using tenant.GetPool or tenant.GetTxManager.
type Generator interface {
	// GetNextNumber generates the next document number for the period.
	// Pattern: PREFIX-YYYYMM-NNNN (e.g. INV-202609-0001).
	GetNextNumber(ctx context.Context, cfg Config, opts *Options, period time.Time) (string, error)

	// SetNextNumber sets the next counter value (for migrations).
	SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error
}
