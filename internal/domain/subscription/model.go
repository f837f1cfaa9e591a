package subscription

import (
	"time"

	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
	"github.com/shopspring/decimal"
)

// Subscription is one billing period granted to a tenant.
type Subscription struct {
	ID       string                   `json:"id"`
	TenantID string                   `json:"tenant_id"`
	PlanID   types.PlanID             `json:"plan_id"`
	Status   types.SubscriptionStatus `json:"status"`

	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PaymentDate time.Time `json:"payment_date"`

	PaymentAmount decimal.Decimal `json:"payment_amount"`
	AutoRenew     bool            `json:"auto_renew"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`

	types.BaseModel
}

func (s *Subscription) Validate() error {
	if s.TenantID == "" {
		return ierr.NewError("tenant id is required").
			WithHint("Tenant ID is required").
			Mark(ierr.ErrValidation)
	}
	if !s.EndDate.After(s.StartDate) {
		return ierr.NewError("subscription end date must be after start date").
			WithHint("End date must be after start date").
			WithReportableDetails(map[string]interface{}{
				"start_date": s.StartDate,
				"end_date":   s.EndDate,
			}).
			Mark(ierr.ErrValidation)
	}
	if s.PaymentAmount.IsNegative() {
		return ierr.NewError("payment amount cannot be negative").
			WithHint("Payment amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
