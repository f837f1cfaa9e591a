package tenant

import (
	"time"

	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// Tenant is the billing organization behind one or more gyms.
type Tenant struct {
	ID            string       `json:"id"`
	CompanyName   string       `json:"company_name"`
	CompanyEmail  string       `json:"company_email"`
	CompanyPhone  string       `json:"company_phone"`
	OwnerID       string       `json:"owner_id"`
	CurrentPlanID types.PlanID `json:"current_plan_id"`

	SubscriptionEndDate time.Time `json:"subscription_end_date"`
	IsActive            bool      `json:"is_active"`

	types.BaseModel
}

func (t *Tenant) Validate() error {
	if t.ID == "" {
		return ierr.NewError("tenant id is required").
			WithHint("Tenant ID is required").
			Mark(ierr.ErrValidation)
	}
	if t.CompanyName == "" {
		return ierr.NewError("company name is required").
			WithHint("Company name is required").
			Mark(ierr.ErrValidation)
	}
	if t.OwnerID == "" {
		return ierr.NewError("owner id is required").
			WithHint("Owner ID is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsSubscriptionExpired reports whether the subscription end date has passed.
func (t *Tenant) IsSubscriptionExpired(now time.Time) bool {
	return t.SubscriptionEndDate.Before(now)
}

// IsSubscriptionExpiringSoon reports whether the subscription ends within
// the next seven days.
func (t *Tenant) IsSubscriptionExpiringSoon(now time.Time) bool {
	if t.IsSubscriptionExpired(now) {
		return false
	}
	return t.SubscriptionEndDate.Sub(now) <= 7*24*time.Hour
}
