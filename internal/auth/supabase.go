package auth

import (
	"context"
	"log"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	supabase "github.com/nedpals/supabase-go"

	"github.com/metagym/metagym-api/internal/config"
	domainauth "github.com/metagym/metagym-api/internal/domain/auth"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/types"
)

type supabaseAuth struct {
	AuthConfig config.AuthConfig
	client     *supabase.Client
	logger     *logger.Logger
}

func NewSupabaseAuth(cfg *config.Configuration, log_ *logger.Logger) Provider {
	supabaseUrl := cfg.Auth.Supabase.BaseURL
	adminApiKey := cfg.Auth.Supabase.ServiceKey

	client := supabase.CreateClient(supabaseUrl, adminApiKey)
	if client == nil {
		log.Fatalf("failed to create Supabase client")
	}

	return &supabaseAuth{
		AuthConfig: cfg.Auth,
		client:     client,
		logger:     log_,
	}
}

func (s *supabaseAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderSupabase
}

// SignUp creates the email+password identity for a newly approved gym
// administrator. Provider failures are mapped to the fixed message set the
// dashboard shows for identity creation.
func (s *supabaseAuth) SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	if req.Email == "" {
		return nil, ierr.NewError("email is required").
			WithHint("Email is required").
			Mark(ierr.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, ierr.NewError("password must be at least 6 characters").
			WithHint("Password must be at least 6 characters").
			Mark(ierr.ErrValidation)
	}

	user, err := s.client.Auth.SignUp(ctx, supabase.UserCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, s.mapSignUpError(err, req.Email)
	}

	s.logger.Infow("identity created", "user_id", user.ID, "email", req.Email)

	return &AuthResponse{ID: user.ID}, nil
}

// mapSignUpError translates provider errors into the taxonomy the UI
// understands: duplicate email, rejected password, or provider failure.
func (s *supabaseAuth) mapSignUpError(err error, email string) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already registered") || strings.Contains(msg, "already been registered"):
		return ierr.WithError(err).
			WithHint("An account with this email already exists").
			WithReportableDetails(map[string]interface{}{
				"email": email,
			}).
			Mark(ierr.ErrAlreadyExists)
	case strings.Contains(msg, "password"):
		return ierr.WithError(err).
			WithHint("The password was rejected by the identity provider").
			Mark(ierr.ErrValidation)
	case strings.Contains(msg, "rate limit"):
		return ierr.WithError(err).
			WithHint("Too many sign-up attempts, please try again later").
			Mark(ierr.ErrPermissionDenied)
	default:
		return ierr.WithError(err).
			WithHint("Failed to create the administrator account").
			Mark(ierr.ErrSystem)
	}
}

// Login authenticates the admin and returns the provider's access token.
func (s *supabaseAuth) Login(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	details, err := s.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid email or password").
			Mark(ierr.ErrPermissionDenied)
	}
	return &AuthResponse{
		ID:        details.User.ID,
		AuthToken: details.AccessToken,
	}, nil
}

func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*domainauth.Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint("Unexpected signing method").
				WithReportableDetails(map[string]interface{}{
					"signing_method": token.Method.Alg(),
				}).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(s.AuthConfig.Secret), nil
	})

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, userOk := claims["sub"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	// Get tenant_id from app_metadata
	var tenantID string
	if appMetadata, ok := claims["app_metadata"].(map[string]interface{}); ok {
		if tid, ok := appMetadata["tenant_id"].(string); ok {
			tenantID = tid
		}
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ierr.NewError("token missing email").
			WithHint("Token missing email").
			Mark(ierr.ErrPermissionDenied)
	}

	return &domainauth.Claims{
		UserID:   userID,
		TenantID: tenantID,
		Email:    email,
	}, nil
}

func (s *supabaseAuth) AssignUserToTenant(ctx context.Context, userID string, tenantID string) error {
	// Use Supabase Admin API to update user's app_metadata
	params := supabase.AdminUserParams{
		AppMetadata: map[string]interface{}{
			"tenant_id": tenantID,
		},
	}

	resp, err := s.client.Admin.UpdateUser(ctx, userID, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to assign tenant to user").
			Mark(ierr.ErrSystem)
	}

	s.logger.Debugw("assigned tenant to user",
		"user_id", userID,
		"tenant_id", tenantID,
		"response", resp,
	)

	return nil
}
