package gym

import (
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// Gym is a physical location operated by a tenant.
type Gym struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	OwnerID  string `json:"owner_id"`
	Code     string `json:"code"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	// City and country are not collected on the registration form yet, so
	// provisioning writes the "N/A" placeholder.
	City    string `json:"city"`
	Country string `json:"country"`

	IsActive bool `json:"is_active"`

	types.BaseModel
}

func (g *Gym) Validate() error {
	if g.TenantID == "" {
		return ierr.NewError("tenant id is required").
			WithHint("Tenant ID is required").
			Mark(ierr.ErrValidation)
	}
	if g.Name == "" {
		return ierr.NewError("gym name is required").
			WithHint("Gym name is required").
			Mark(ierr.ErrValidation)
	}
	if g.Code == "" {
		return ierr.NewError("gym code is required").
			WithHint("Gym code is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}
