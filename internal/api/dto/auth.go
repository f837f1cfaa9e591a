package dto

import "github.com/metagym/metagym-api/internal/validator"

// LoginRequest authenticates an administrator.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *LoginRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// LoginResponse carries the bearer token for subsequent calls.
type LoginResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}
