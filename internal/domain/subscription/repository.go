package subscription

import "context"

// Repository defines persistence for tenant subscriptions.
type Repository interface {
	// Create persists a new subscription and returns it with its ID set.
	Create(ctx context.Context, s *Subscription) (*Subscription, error)

	// Get fetches a subscription by ID.
	Get(ctx context.Context, id string) (*Subscription, error)

	// ListByTenant returns a tenant's subscriptions, newest first.
	ListByTenant(ctx context.Context, tenantID string) ([]*Subscription, error)
}
