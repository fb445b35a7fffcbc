// Package id provides UUIDv7 identifiers for all entities.
// UUIDv7 embeds a Unix timestamp in the first 48 bits, so ids sort
// chronologically and cluster well in B-tree indexes.
package id

import (
	"github.com/google/uuid"
)

// ID is a type alias for UUID, used across all entities.
type ID = uuid.UUID

// New generates a new UUIDv7.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// uuid.NewV7 only fails if the entropy source is broken;
		// fall back to V4 rather than panic.
		return uuid.New()
	}
	return id
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero-value UUID.
func Nil() ID {
	return uuid.Nil
}

// IsNil checks if ID is zero-value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
