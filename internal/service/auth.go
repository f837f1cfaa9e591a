package service

import (
	"context"

	"github.com/metagym/metagym-api/internal/api/dto"
	authProvider "github.com/metagym/metagym-api/internal/auth"
)

// AuthService authenticates administrators against the identity provider.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.AuthProvider.Login(ctx, authProvider.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("administrator logged in", "user_id", resp.ID)
	return &dto.LoginResponse{
		UserID: resp.ID,
		Token:  resp.AuthToken,
	}, nil
}
