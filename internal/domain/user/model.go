package user

import (
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// Role is an application-level role entry on a user profile.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleOwner is the role granted to the gym administrator created during
// provisioning.
var RoleOwner = Role{ID: "own", Name: "Administrator"}

// AdminUser is the application-level user profile, keyed by the identity
// provider's user ID. It is distinct from the raw identity (email+password
// account) held by the auth provider.
type AdminUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`

	Name     string `json:"name"`
	Surname1 string `json:"surname1"`
	Surname2 string `json:"surname2"`
	Phone    string `json:"phone"`
	// DateOfBirth is an ISO date string; empty when not provided.
	DateOfBirth string `json:"date_of_birth"`

	Roles    []Role `json:"roles"`
	GymID    string `json:"gym_id"`
	TenantID string `json:"tenant_id"`

	// Physical attributes are collected later in the member app; they are
	// zero-valued on provisioning.
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`

	MembershipID      *string `json:"membership_id,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	PIN               *string `json:"pin,omitempty"`

	types.BaseModel
}

func (u *AdminUser) Validate() error {
	if u.UserID == "" {
		return ierr.NewError("user id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}
	if u.Email == "" {
		return ierr.NewError("email is required").
			WithHint("Email is required").
			Mark(ierr.ErrValidation)
	}
	if len(u.Roles) == 0 {
		return ierr.NewError("at least one role is required").
			WithHint("At least one role is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// HasRole reports whether the user holds the role with the given ID.
func (u *AdminUser) HasRole(roleID string) bool {
	for _, r := range u.Roles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}
