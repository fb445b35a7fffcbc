package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Registry resolves tenants from the control-plane database.
type Registry interface {
	GetByID(ctx context.Context, id string) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	ListActive(ctx context.Context) ([]*Tenant, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// PostgresRegistry implements Registry over the control-plane pool.
type PostgresRegistry struct {
	pool *pgxpool.Pool
}

func NewPostgresRegistry(pool *pgxpool.Pool) *PostgresRegistry {
	return &PostgresRegistry{pool: pool}
}

const tenantColumns = `id, slug, name, db_name, db_host, db_port, status, plan, created_at, updated_at`

func (r *PostgresRegistry) GetByID(ctx context.Context, id string) (*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`

	var t Tenant
	if err := pgxscan.Get(ctx, r.pool, &t, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("get tenant by id: %w", err)
	}
	return &t, nil
}

func (r *PostgresRegistry) GetBySlug(ctx context.Context, slug string) (*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1`

	var t Tenant
	if err := pgxscan.Get(ctx, r.pool, &t, query, slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}
	return &t, nil
}

// Create registers a provisioned tenant. The database itself must already
// exist; the registry only records where to find it.
func (r *PostgresRegistry) Create(ctx context.Context, t *Tenant) error {
	query := `INSERT INTO tenants (slug, name, db_name, db_host, db_port, status, plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.Slug, t.Name, t.DBName, t.DBHost, t.DBPort, t.Status, t.Plan,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

func (r *PostgresRegistry) ListAll(ctx context.Context) ([]*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY slug`

	var tenants []*Tenant
	if err := pgxscan.Select(ctx, r.pool, &tenants, query); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return tenants, nil
}

func (r *PostgresRegistry) ListActive(ctx context.Context) ([]*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE status = $1 ORDER BY slug`

	var tenants []*Tenant
	if err := pgxscan.Select(ctx, r.pool, &tenants, query, StatusActive); err != nil {
		return nil, fmt.Errorf("list active tenants: %w", err)
	}
	return tenants, nil
}

func (r *PostgresRegistry) UpdateStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tenants SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update tenant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTenantNotFound
	}
	return nil
}
