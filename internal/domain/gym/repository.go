package gym

import "context"

// Repository defines persistence for gyms.
type Repository interface {
	// Create persists a new gym and returns it with its ID set.
	Create(ctx context.Context, g *Gym) (*Gym, error)

	// Get fetches a gym by ID.
	Get(ctx context.Context, id string) (*Gym, error)

	// ListByTenant returns a tenant's gyms, newest first.
	ListByTenant(ctx context.Context, tenantID string) ([]*Gym, error)

	// ExistsByCode reports whether a gym already uses the given code.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
