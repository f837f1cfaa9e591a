package auth

import (
	"context"

	"github.com/metagym/metagym-api/internal/config"
	domainauth "github.com/metagym/metagym-api/internal/domain/auth"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/types"
)

// AuthRequest carries the credentials for identity operations.
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResponse is the provider's result for sign-up and login.
type AuthResponse struct {
	// ID is the identity provider's user ID.
	ID string
	// AuthToken is the access token, set on login.
	AuthToken string
}

// Provider is the identity backend. SignUp creates a new email+password
// identity and is the first step of the approval workflow.
type Provider interface {
	GetProvider() types.AuthProvider

	// SignUp creates a new identity. Fails with ErrAlreadyExists when the
	// email is already registered and ErrValidation when the provider
	// rejects the password.
	SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error)

	// Login authenticates an identity and returns an access token.
	Login(ctx context.Context, req AuthRequest) (*AuthResponse, error)

	// ValidateToken verifies an access token and extracts its claims.
	ValidateToken(ctx context.Context, token string) (*domainauth.Claims, error)

	// AssignUserToTenant stamps the tenant ID into the identity's
	// app metadata so later tokens carry it.
	AssignUserToTenant(ctx context.Context, userID, tenantID string) error
}

// NewProvider returns the configured identity provider.
func NewProvider(cfg *config.Configuration, log *logger.Logger) Provider {
	return NewSupabaseAuth(cfg, log)
}
