package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/metagym/metagym-api/internal/domain/payment"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
	"github.com/metagym/metagym-api/internal/validator"
)

// TenantResponse wraps a tenant with derived subscription health flags.
type TenantResponse struct {
	*tenant.Tenant
	SubscriptionExpired      bool `json:"subscription_expired"`
	SubscriptionExpiringSoon bool `json:"subscription_expiring_soon"`
}

func NewTenantResponse(t *tenant.Tenant, now time.Time) *TenantResponse {
	return &TenantResponse{
		Tenant:                   t,
		SubscriptionExpired:      t.IsSubscriptionExpired(now),
		SubscriptionExpiringSoon: t.IsSubscriptionExpiringSoon(now),
	}
}

// ListTenantsResponse is the list envelope for tenants.
type ListTenantsResponse struct {
	Items []*TenantResponse `json:"items"`
	Total int               `json:"total"`
}

// UpdateTenantRequest updates a tenant's company fields and plan. Nil
// fields are left unchanged.
type UpdateTenantRequest struct {
	CompanyName   *string `json:"company_name,omitempty" validate:"omitempty,min=1"`
	CompanyEmail  *string `json:"company_email,omitempty" validate:"omitempty,email"`
	CompanyPhone  *string `json:"company_phone,omitempty"`
	CurrentPlanID *string `json:"current_plan_id,omitempty"`
}

func (r *UpdateTenantRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.CurrentPlanID != nil {
		if err := types.PlanID(*r.CurrentPlanID).ValidateTenantPlan(); err != nil {
			return err
		}
	}
	return nil
}

// RecordPaymentRequest records a subscription payment and extends the
// tenant's subscription by one period.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Notes  *string         `json:"notes,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be greater than 0").
			WithHint("Amount must be greater than 0").
			WithReportableDetails(map[string]interface{}{
				"amount": r.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		return ierr.NewError("notes cannot exceed 500 characters").
			WithHint("Notes cannot exceed 500 characters").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RecordPaymentResponse reports the extension outcome.
type RecordPaymentResponse struct {
	PaymentID  string    `json:"payment_id"`
	NewEndDate time.Time `json:"new_end_date"`
}

// PaymentResponse wraps a payment with its computed status.
type PaymentResponse struct {
	*payment.SubscriptionPayment
	Status types.PaymentStatus `json:"status"`
}

func NewPaymentResponse(p *payment.SubscriptionPayment, now time.Time) *PaymentResponse {
	return &PaymentResponse{
		SubscriptionPayment: p,
		Status:              p.ComputedStatus(now),
	}
}

// ListPaymentsResponse is the list envelope for payments.
type ListPaymentsResponse struct {
	Items []*PaymentResponse `json:"items"`
	Total int                `json:"total"`
}
