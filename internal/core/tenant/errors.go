package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when the tenant does not exist in the registry.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantNotActive is returned when the tenant is suspended or deactivated.
	ErrTenantNotActive = errors.New("tenant is not active")

	// ErrMaxPoolLimit is returned when the manager refuses to open another pool.
	ErrMaxPoolLimit = errors.New("maximum number of tenant pools reached")
)
