package user

import "context"

// Repository defines persistence for application-level user profiles.
type Repository interface {
	// Create persists a new user profile under its identity user ID.
	Create(ctx context.Context, u *AdminUser) (*AdminUser, error)

	// Get fetches a profile by identity user ID.
	Get(ctx context.Context, userID string) (*AdminUser, error)

	// GetByEmail fetches a profile by email.
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
}
