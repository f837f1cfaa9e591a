package dto

import (
	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/validator"
)

// ApproveGymRequestRequest carries the credentials for the administrator
// account created during approval.
type ApproveGymRequestRequest struct {
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=6"`
}

func (r *ApproveGymRequestRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ApproveGymRequestResponse reports the entities provisioned by approval.
type ApproveGymRequestResponse struct {
	TenantID string `json:"tenant_id"`
	GymID    string `json:"gym_id"`
	GymCode  string `json:"gym_code"`
	UserID   string `json:"user_id"`
	// NotificationSent is false when the credentials email failed; the
	// approval itself still succeeded.
	NotificationSent bool `json:"notification_sent"`
}

// RejectGymRequestRequest carries the reviewer's reason for rejection.
type RejectGymRequestRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required,min=10,max=500"`
}

func (r *RejectGymRequestRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// GymRequestResponse wraps a registration request for the API.
type GymRequestResponse struct {
	*gymrequest.GymRequest
}

// ListGymRequestsResponse is the list envelope for registration requests.
type ListGymRequestsResponse struct {
	Items []*GymRequestResponse `json:"items"`
	Total int                   `json:"total"`
}

// GymRequestStatsResponse counts requests per review state.
type GymRequestStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
