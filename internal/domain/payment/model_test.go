package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

func validPayment(now time.Time) *SubscriptionPayment {
	return &SubscriptionPayment{
		ID:             "pay_1",
		TenantID:       "tenant_K3F9X2QA",
		SubscriptionID: "subs_1",
		Amount:         decimal.NewFromFloat(29.99),
		HasPaid:        true,
		PeriodStart:    now,
		PeriodEnd:      now.AddDate(0, 0, 30),
	}
}

func TestPaymentValidate(t *testing.T) {
	now := time.Now().UTC()

	assert.NoError(t, validPayment(now).Validate(now))

	t.Run("missing tenant", func(t *testing.T) {
		p := validPayment(now)
		p.TenantID = ""
		err := p.Validate(now)
		assert.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("missing subscription", func(t *testing.T) {
		p := validPayment(now)
		p.SubscriptionID = ""
		assert.Error(t, p.Validate(now))
	})

	t.Run("zero amount", func(t *testing.T) {
		p := validPayment(now)
		p.Amount = decimal.Zero
		assert.Error(t, p.Validate(now))
	})

	t.Run("negative amount", func(t *testing.T) {
		p := validPayment(now)
		p.Amount = decimal.NewFromFloat(-1)
		assert.Error(t, p.Validate(now))
	})

	t.Run("period end before start", func(t *testing.T) {
		p := validPayment(now)
		p.PeriodEnd = p.PeriodStart.AddDate(0, 0, -1)
		assert.Error(t, p.Validate(now))
	})

	t.Run("period start too far ahead", func(t *testing.T) {
		p := validPayment(now)
		p.PeriodStart = now.AddDate(1, 0, 1)
		p.PeriodEnd = p.PeriodStart.AddDate(0, 0, 30)
		assert.Error(t, p.Validate(now))
	})

	t.Run("period longer than a year", func(t *testing.T) {
		p := validPayment(now)
		p.PeriodEnd = p.PeriodStart.Add(366 * 24 * time.Hour)
		assert.Error(t, p.Validate(now))
	})

	t.Run("notes too long", func(t *testing.T) {
		p := validPayment(now)
		notes := strings.Repeat("x", 501)
		p.Notes = &notes
		assert.Error(t, p.Validate(now))
	})

	t.Run("notes at limit", func(t *testing.T) {
		p := validPayment(now)
		notes := strings.Repeat("x", 500)
		p.Notes = &notes
		assert.NoError(t, p.Validate(now))
	})
}

func TestComputedStatus(t *testing.T) {
	now := time.Now().UTC()

	paid := validPayment(now)
	assert.Equal(t, types.PaymentStatusActive, paid.ComputedStatus(now))

	// Unpaid with the period still open stays active.
	open := validPayment(now)
	open.HasPaid = false
	assert.Equal(t, types.PaymentStatusActive, open.ComputedStatus(now))

	// Unpaid past the period end is overdue.
	overdue := validPayment(now.AddDate(0, 0, -60))
	overdue.HasPaid = false
	assert.Equal(t, types.PaymentStatusOverdue, overdue.ComputedStatus(now))

	// Paid past the period end is not overdue.
	paidLate := validPayment(now.AddDate(0, 0, -60))
	assert.Equal(t, types.PaymentStatusActive, paidLate.ComputedStatus(now))
}
