package dto

import "github.com/metagym/metagym-api/internal/validator"

// SendCredentialsRequest is the wire shape of the credentials endpoint.
// Field names are camelCase to stay compatible with existing callers.
type SendCredentialsRequest struct {
	ToEmail  string `json:"toEmail" validate:"required,email"`
	ToName   string `json:"toName" validate:"required"`
	GymName  string `json:"gymName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	TenantID string `json:"tenantId" validate:"required"`
	GymCode  string `json:"gymCode"`
}

func (r *SendCredentialsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// SendCredentialsResponse mirrors the `{success, data}` response shape.
type SendCredentialsResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}
