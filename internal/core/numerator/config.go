// Package numerator provides domain contracts for document auto-numbering.
package numerator

// Strategy defines the number generation strategy.
type Strategy int

const (
	// StrategyStrict reserves every number in the database.
	// Guarantees sequential numbers without gaps.
	// Slower, suitable for invoices and accounting documents.
	StrategyStrict Strategy = iota

	// StrategyCached allocates ranges of numbers in memory.
	// Much faster, but may produce gaps if the application restarts.
	// Suitable for internal documents (orders, delivery notes).
	StrategyCached
)

// Options configure number generation.
type Options struct {
	Strategy Strategy
	// RangeSize is the number of IDs to allocate at once in Cached strategy.
	// Default is 50.
	RangeSize int64
}

// DefaultOptions returns standard options (Strict).
func DefaultOptions() *Options {
	return &Options{
		Strategy: StrategyStrict,
	}
}

// Config holds numbering configuration for one document type.
type Config struct {
	// Prefix added to all numbers (e.g. "INV", "SO")
	Prefix string

	// PadWidth is the minimum counter width (default 4)
	PadWidth int

	// ResetPeriod: "month", "year", "never"
	ResetPeriod string
}

// DefaultConfig returns the standard numbering scheme:
// PREFIX-YYYYMM-NNNN with a monthly counter reset.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		PadWidth:    4,
		ResetPeriod: "month",
	}
}
