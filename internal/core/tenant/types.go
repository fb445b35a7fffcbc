package tenant

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a tenant.
type Status string

const (
	StatusActive      Status = "active"
	StatusSuspended   Status = "suspended"
	StatusDeactivated Status = "deactivated"
)

// Plan represents the subscription plan of a tenant.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanStandard Plan = "standard"
	PlanBusiness Plan = "business"
)

// Tenant is a row of the control-plane tenants table.
// Each tenant owns a dedicated database.
type Tenant struct {
	ID        string    `db:"id"`
	Slug      string    `db:"slug"`
	Name      string    `db:"name"`
	DBName    string    `db:"db_name"`
	DBHost    string    `db:"db_host"`
	DBPort    int       `db:"db_port"`
	Status    Status    `db:"status"`
	Plan      Plan      `db:"plan"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsActive reports whether the tenant may serve requests.
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive
}

// DSN builds the connection string for the tenant database.
func (t *Tenant) DSN(user, password, sslMode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		user, password, t.DBHost, t.DBPort, t.DBName, sslMode)
}

// CreateTenantInput carries the fields needed to provision a tenant.
type CreateTenantInput struct {
	Slug string
	Name string
	Plan Plan
}
