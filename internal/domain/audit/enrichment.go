// Package audit stamps entities with the acting user.
package audit

import (
	"context"

	"tradewind/internal/core/security"
)

// EnrichCreatedBy sets both audit fields from the request user.
// Wired as an OnBeforeCreate hook on document services.
func EnrichCreatedBy(ctx context.Context, createdBy, updatedBy *string) {
	userID := security.GetUserID(ctx)
	if userID != "" && createdBy != nil && updatedBy != nil {
		*createdBy = userID
		*updatedBy = userID
	}
}

// EnrichUpdatedBy sets the updater field from the request user.
// Wired as an OnBeforeUpdate hook on document services.
func EnrichUpdatedBy(ctx context.Context, updatedBy *string) {
	userID := security.GetUserID(ctx)
	if userID != "" && updatedBy != nil {
		*updatedBy = userID
	}
}
