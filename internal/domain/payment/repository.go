package payment

import "context"

// Repository defines persistence for subscription payments.
type Repository interface {
	// Create persists a new payment row and returns it with its ID set.
	Create(ctx context.Context, p *SubscriptionPayment) (*SubscriptionPayment, error)

	// Get fetches a payment by ID.
	Get(ctx context.Context, id string) (*SubscriptionPayment, error)

	// ListByTenant returns a tenant's payments, most recently paid first.
	ListByTenant(ctx context.Context, tenantID string) ([]*SubscriptionPayment, error)

	// List returns all payments, most recently paid first.
	List(ctx context.Context) ([]*SubscriptionPayment, error)
}
