package gymrequest

import (
	"time"

	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// GymRequest is a gym registration request submitted from the public site
// and reviewed by a platform administrator.
type GymRequest struct {
	ID          string `json:"id"`
	GymName     string `json:"gym_name"`
	GymPhone    string `json:"gym_phone"`
	GymAddress  string `json:"gym_address"`
	CompanyName string `json:"company_name"`

	AdminName     string `json:"admin_name"`
	AdminSurname1 string `json:"admin_surname1"`
	AdminSurname2 string `json:"admin_surname2"`
	AdminPhone    string `json:"admin_phone"`
	Email         string `json:"email"`

	RequestedPlan types.PlanID           `json:"requested_plan"`
	Status        types.GymRequestStatus `json:"state"`
	Date          time.Time              `json:"date"`

	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	// GeneratedToken stores the tenant ID produced by approval. The column
	// predates the tenant model and kept its name.
	GeneratedToken *string `json:"generated_token,omitempty"`

	types.BaseModel
}

// Validate checks the fields the approval workflow depends on.
func (r *GymRequest) Validate() error {
	if r.GymName == "" {
		return ierr.NewError("gym name is required").
			WithHint("Gym name is required").
			Mark(ierr.ErrValidation)
	}
	if r.Email == "" {
		return ierr.NewError("requester email is required").
			WithHint("Requester email is required").
			Mark(ierr.ErrValidation)
	}
	if err := r.RequestedPlan.Validate(); err != nil {
		return err
	}
	return r.Status.Validate()
}

// IsPending reports whether the request is still open for review.
func (r *GymRequest) IsPending() bool {
	return r.Status == types.GymRequestStatusPending
}

// AdminFullName returns the administrator's display name.
func (r *GymRequest) AdminFullName() string {
	name := r.AdminName
	if r.AdminSurname1 != "" {
		name += " " + r.AdminSurname1
	}
	if r.AdminSurname2 != "" {
		name += " " + r.AdminSurname2
	}
	return name
}
