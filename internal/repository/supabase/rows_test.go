package supabase

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/domain/payment"
	"github.com/metagym/metagym-api/internal/types"
)

func TestGymRequestRowMapping(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	reviewedAt := now.Add(time.Hour)

	req := &gymrequest.GymRequest{
		ID:              "req_01HV6ZT6Y8",
		GymName:         "Iron Gym",
		GymPhone:        "+34 600 000 001",
		GymAddress:      "Calle Mayor 1",
		CompanyName:     "Iron Gym SL",
		AdminName:       "Ana",
		AdminSurname1:   "García",
		AdminSurname2:   "López",
		AdminPhone:      "+34 600 000 002",
		Email:           "owner@iron.gym",
		RequestedPlan:   types.PlanProfessional,
		Status:          types.GymRequestStatusApproved,
		Date:            now,
		ReviewedBy:      lo.ToPtr("reviewer-1"),
		ReviewedAt:      &reviewedAt,
		GeneratedToken:  lo.ToPtr("tenant_K3F9X2QA"),
		RejectionReason: nil,
		BaseModel: types.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	row := toGymRequestRow(req)
	// The request status is stored in the state column.
	assert.Equal(t, "approved", row.State)
	assert.Equal(t, "professional_plan", row.RequestedPlan)

	back := fromGymRequestRow(row)
	assert.Equal(t, req, back)
}

func TestPaymentRowMapping(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	paidAt := now

	p := &payment.SubscriptionPayment{
		ID:             "paym_01HV6ZT6Y8",
		TenantID:       "tenant_K3F9X2QA",
		SubscriptionID: "subs_01HV6ZT6Y8",
		Amount:         decimal.NewFromFloat(59.99),
		HasPaid:        true,
		PeriodStart:    now,
		PeriodEnd:      now.AddDate(0, 0, 30),
		PaidAt:         &paidAt,
		Notes:          lo.ToPtr("wire transfer"),
		BaseModel: types.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	row := toPaymentRow(p)
	assert.InDelta(t, 59.99, row.Amount, 0.0001)

	back := fromPaymentRow(row)
	// Amounts survive the float64 column without drifting.
	assert.True(t, back.Amount.Equal(p.Amount), "got %s", back.Amount)
	assert.Equal(t, p.PeriodEnd, back.PeriodEnd)
	assert.Equal(t, p.Notes, back.Notes)
}
