package tenant

import (
	"context"
	"time"
)

// Repository defines persistence for tenants. Tenants are created with an
// explicit, pre-generated ID (the human-readable tenant code).
type Repository interface {
	// Create persists a new tenant under its pre-generated ID.
	Create(ctx context.Context, t *Tenant) (*Tenant, error)

	// Get fetches a tenant by ID.
	Get(ctx context.Context, id string) (*Tenant, error)

	// Exists reports whether a tenant with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)

	// List returns all tenants, newest first.
	List(ctx context.Context) ([]*Tenant, error)

	// ListActive returns active tenants, newest first.
	ListActive(ctx context.Context) ([]*Tenant, error)

	// Update overwrites the tenant's mutable fields.
	Update(ctx context.Context, t *Tenant) (*Tenant, error)

	// UpdateSubscriptionEndDate moves the subscription end date only.
	UpdateSubscriptionEndDate(ctx context.Context, id string, endDate time.Time) error

	// SetActive flips the active flag.
	SetActive(ctx context.Context, id string, active bool) error
}
