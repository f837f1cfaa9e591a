package supabase

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/metagym/metagym-api/internal/domain/payment"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

type paymentRepository struct {
	*Client
}

func NewPaymentRepository(client *Client) payment.Repository {
	return &paymentRepository{Client: client}
}

type paymentRow struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenant_id"`
	SubscriptionID string     `json:"subscription_id"`
	Amount         float64    `json:"amount"`
	HasPaid        bool       `json:"has_paid"`
	PeriodStart    time.Time  `json:"period_start"`
	PeriodEnd      time.Time  `json:"period_end"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toPaymentRow(p *payment.SubscriptionPayment) *paymentRow {
	return &paymentRow{
		ID:             p.ID,
		TenantID:       p.TenantID,
		SubscriptionID: p.SubscriptionID,
		Amount:         p.Amount.InexactFloat64(),
		HasPaid:        p.HasPaid,
		PeriodStart:    p.PeriodStart,
		PeriodEnd:      p.PeriodEnd,
		PaidAt:         p.PaidAt,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func fromPaymentRow(row *paymentRow) *payment.SubscriptionPayment {
	if row == nil {
		return nil
	}
	return &payment.SubscriptionPayment{
		ID:             row.ID,
		TenantID:       row.TenantID,
		SubscriptionID: row.SubscriptionID,
		Amount:         decimal.NewFromFloat(row.Amount),
		HasPaid:        row.HasPaid,
		PeriodStart:    row.PeriodStart,
		PeriodEnd:      row.PeriodEnd,
		PaidAt:         row.PaidAt,
		Notes:          row.Notes,
		BaseModel: types.BaseModel{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.SubscriptionPayment) (*payment.SubscriptionPayment, error) {
	var rows []paymentRow
	err := r.supa.DB.From(types.TableNameSubscriptionPayments.String()).
		Insert(toPaymentRow(p)).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create payment").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": p.TenantID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("insert returned no rows").
			WithHint("Failed to create payment").
			Mark(ierr.ErrDatabase)
	}
	return fromPaymentRow(&rows[0]), nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*payment.SubscriptionPayment, error) {
	var rows []paymentRow
	err := r.supa.DB.From(types.TableNameSubscriptionPayments.String()).
		Select("*").
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch payment").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("payment not found").
			WithHint("Payment not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromPaymentRow(&rows[0]), nil
}

func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]*payment.SubscriptionPayment, error) {
	var rows []paymentRow
	err := r.supa.DB.From(types.TableNameSubscriptionPayments.String()).
		Select("*").
		Eq("tenant_id", tenantID).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": tenantID,
			}).
			Mark(ierr.ErrDatabase)
	}
	return sortPayments(rows), nil
}

func (r *paymentRepository) List(ctx context.Context) ([]*payment.SubscriptionPayment, error) {
	var rows []paymentRow
	err := r.supa.DB.From(types.TableNameSubscriptionPayments.String()).
		Select("*").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	return sortPayments(rows), nil
}

// sortPayments orders most recently paid first; unpaid rows fall back to
// their period start.
func sortPayments(rows []paymentRow) []*payment.SubscriptionPayment {
	payments := lo.Map(rows, func(row paymentRow, _ int) *payment.SubscriptionPayment {
		return fromPaymentRow(&row)
	})
	sortKey := func(p *payment.SubscriptionPayment) time.Time {
		if p.PaidAt != nil {
			return *p.PaidAt
		}
		return p.PeriodStart
	}
	sort.Slice(payments, func(i, j int) bool {
		return sortKey(payments[i]).After(sortKey(payments[j]))
	})
	return payments
}
