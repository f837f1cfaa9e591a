package types

import (
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/shopspring/decimal"
)

// PlanID identifies a subscription tier. Registration requests use the
// request plan values; tenants use the tenant plan values. The two sets
// overlap but are not identical, see MapRequestPlanToTenantPlan.
type PlanID string

// Plans a gym may request at registration.
const (
	PlanBasic        PlanID = "basic_plan"
	PlanProfessional PlanID = "professional_plan"
	PlanEnterprise   PlanID = "enterprise_plan"
)

// Plans a tenant may hold. The standard tier exists in the tenant catalog
// but is never produced by the approval mapping.
const (
	TenantPlanBasic      PlanID = "basic_plan"
	TenantPlanStandard   PlanID = "standard_plan"
	TenantPlanPremium    PlanID = "premium_plan"
	TenantPlanEnterprise PlanID = "enterprise_plan"
)

func (p PlanID) String() string {
	return string(p)
}

// Validate checks that p is a valid request plan.
func (p PlanID) Validate() error {
	switch p {
	case PlanBasic, PlanProfessional, PlanEnterprise:
		return nil
	default:
		return ierr.NewError("invalid requested plan").
			WithHint("Requested plan must be one of basic_plan, professional_plan, enterprise_plan").
			WithReportableDetails(map[string]interface{}{
				"requested_plan": string(p),
			}).
			Mark(ierr.ErrValidation)
	}
}

// ValidateTenantPlan checks that p is a valid tenant plan. The tenant set
// includes standard and premium, which are never valid on a request.
func (p PlanID) ValidateTenantPlan() error {
	switch p {
	case TenantPlanBasic, TenantPlanStandard, TenantPlanPremium, TenantPlanEnterprise:
		return nil
	default:
		return ierr.NewError("invalid tenant plan").
			WithHint("Tenant plan must be one of basic_plan, standard_plan, premium_plan, enterprise_plan").
			WithReportableDetails(map[string]interface{}{
				"plan": string(p),
			}).
			Mark(ierr.ErrValidation)
	}
}

// requestPlanToTenantPlan is the fixed mapping between the plan names used
// on registration requests and the ones used on tenants. The professional
// tier maps to premium on purpose: the tenant catalog never adopted the
// "professional" name.
var requestPlanToTenantPlan = map[PlanID]PlanID{
	PlanBasic:        TenantPlanBasic,
	PlanProfessional: TenantPlanPremium,
	PlanEnterprise:   TenantPlanEnterprise,
}

// MapRequestPlanToTenantPlan resolves the tenant plan for a requested plan.
// Unknown plans fall back to the basic tier.
func MapRequestPlanToTenantPlan(requestPlan PlanID) PlanID {
	if tenantPlan, ok := requestPlanToTenantPlan[requestPlan]; ok {
		return tenantPlan
	}
	return TenantPlanBasic
}

// planPrices is the static monthly price table keyed by request plan.
var planPrices = map[PlanID]decimal.Decimal{
	PlanBasic:        decimal.NewFromFloat(29.99),
	PlanProfessional: decimal.NewFromFloat(59.99),
	PlanEnterprise:   decimal.NewFromFloat(99.99),
}

// GetPlanPrice returns the monthly price for a plan. Unknown plans price
// at zero rather than erroring.
func GetPlanPrice(planID PlanID) decimal.Decimal {
	if price, ok := planPrices[planID]; ok {
		return price
	}
	return decimal.Zero
}
