package tenant

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tradewind/internal/core/tx"
)

type poolKey struct{}
type txManagerKey struct{}
type tenantKey struct{}

// WithPool stores the tenant database pool in the context.
func WithPool(ctx context.Context, pool *pgxpool.Pool) context.Context {
	return context.WithValue(ctx, poolKey{}, pool)
}

// GetPool retrieves the tenant database pool from the context.
func GetPool(ctx context.Context) (*pgxpool.Pool, bool) {
	pool, ok := ctx.Value(poolKey{}).(*pgxpool.Pool)
	return pool, ok
}

// MustGetPool retrieves the tenant database pool or panics.
// Only call this from handlers behind the tenant middleware.
func MustGetPool(ctx context.Context) *pgxpool.Pool {
	pool, ok := GetPool(ctx)
	if !ok {
		panic("tenant pool not found in context")
	}
	return pool
}

// WithTxManager stores the tenant transaction manager in the context.
func WithTxManager(ctx context.Context, m tx.Manager) context.Context {
	return context.WithValue(ctx, txManagerKey{}, m)
}

// GetTxManager retrieves the tenant transaction manager from the context.
func GetTxManager(ctx context.Context) (tx.Manager, bool) {
	m, ok := ctx.Value(txManagerKey{}).(tx.Manager)
	return m, ok
}

// MustGetTxManager retrieves the tenant transaction manager or panics.
func MustGetTxManager(ctx context.Context) tx.Manager {
	m, ok := GetTxManager(ctx)
	if !ok {
		panic("tenant tx manager not found in context")
	}
	return m
}

// WithTenant stores the resolved tenant in the context.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, tenantKey{}, t)
}

// GetTenant retrieves the resolved tenant from the context.
func GetTenant(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(tenantKey{}).(*Tenant)
	return t, ok
}

// GetTenantID returns the tenant ID from the context, or empty string.
func GetTenantID(ctx context.Context) string {
	if t, ok := GetTenant(ctx); ok {
		return t.ID
	}
	return ""
}
