package payment

import (
	"time"

	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
	"github.com/shopspring/decimal"
)

const maxNotesLength = 500

// SubscriptionPayment records one paid (or pending) billing period for a
// tenant. Rows are append-only; marking a payment also moves the tenant's
// subscription end date forward.
type SubscriptionPayment struct {
	ID             string `json:"id"`
	TenantID       string `json:"tenant_id"`
	SubscriptionID string `json:"subscription_id"`

	Amount  decimal.Decimal `json:"amount"`
	HasPaid bool            `json:"has_paid"`

	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`

	Notes *string `json:"notes,omitempty"`

	types.BaseModel
}

// Validate applies the payment input rules: references present, positive
// amount, coherent period no longer than a year and starting at most a year
// out, notes capped at 500 characters.
func (p *SubscriptionPayment) Validate(now time.Time) error {
	if p.TenantID == "" {
		return ierr.NewError("tenant id is required").
			WithHint("Tenant ID is required").
			Mark(ierr.ErrValidation)
	}
	if p.SubscriptionID == "" {
		return ierr.NewError("subscription id is required").
			WithHint("Subscription ID is required").
			Mark(ierr.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return ierr.NewError("amount must be greater than 0").
			WithHint("Amount must be greater than 0").
			WithReportableDetails(map[string]interface{}{
				"amount": p.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if !p.PeriodEnd.After(p.PeriodStart) {
		return ierr.NewError("period end date must be after period start date").
			WithHint("Period end date must be after period start date").
			Mark(ierr.ErrValidation)
	}
	if p.PeriodStart.After(now.AddDate(1, 0, 0)) {
		return ierr.NewError("period start date cannot be more than 1 year in the future").
			WithHint("Period start date cannot be more than 1 year in the future").
			Mark(ierr.ErrValidation)
	}
	if p.PeriodEnd.Sub(p.PeriodStart) > 365*24*time.Hour {
		return ierr.NewError("payment period cannot exceed 365 days").
			WithHint("Payment period cannot exceed 365 days").
			Mark(ierr.ErrValidation)
	}
	if p.Notes != nil && len(*p.Notes) > maxNotesLength {
		return ierr.NewError("notes cannot exceed 500 characters").
			WithHint("Notes cannot exceed 500 characters").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ComputedStatus derives the payment status: overdue when unpaid and the
// period has already ended, active otherwise. It is never persisted.
func (p *SubscriptionPayment) ComputedStatus(now time.Time) types.PaymentStatus {
	if !p.HasPaid && p.PeriodEnd.Before(now) {
		return types.PaymentStatusOverdue
	}
	return types.PaymentStatusActive
}
