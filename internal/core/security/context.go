// Package security provides user identity propagation for the domain layer.
package security

import "context"

type userIDKey struct{}

// WithUserID adds user ID to context.
// Used by middleware to propagate the authenticated user through the request chain.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID retrieves user ID from context, or empty string if absent.
//
// Usage in domain layer:
//
//	if uid := security.GetUserID(ctx); uid != "" {
//	    doc.CreatedBy = uid
//	}
func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDKey{}).(string); ok {
		return uid
	}
	return ""
}
