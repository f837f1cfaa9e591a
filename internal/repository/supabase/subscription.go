package supabase

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/metagym/metagym-api/internal/domain/subscription"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

type subscriptionRepository struct {
	*Client
}

func NewSubscriptionRepository(client *Client) subscription.Repository {
	return &subscriptionRepository{Client: client}
}

// subscriptionRow uses float64 for the amount column since PostgREST
// serializes numeric as a JSON number.
type subscriptionRow struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenant_id"`
	PlanID        string     `json:"plan_id"`
	Status        string     `json:"status"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	PaymentDate   time.Time  `json:"payment_date"`
	PaymentAmount float64    `json:"payment_amount"`
	AutoRenew     bool       `json:"auto_renew"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toSubscriptionRow(s *subscription.Subscription) *subscriptionRow {
	return &subscriptionRow{
		ID:            s.ID,
		TenantID:      s.TenantID,
		PlanID:        s.PlanID.String(),
		Status:        s.Status.String(),
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		PaymentDate:   s.PaymentDate,
		PaymentAmount: s.PaymentAmount.InexactFloat64(),
		AutoRenew:     s.AutoRenew,
		CancelledAt:   s.CancelledAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func fromSubscriptionRow(row *subscriptionRow) *subscription.Subscription {
	if row == nil {
		return nil
	}
	return &subscription.Subscription{
		ID:            row.ID,
		TenantID:      row.TenantID,
		PlanID:        types.PlanID(row.PlanID),
		Status:        types.SubscriptionStatus(row.Status),
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
		PaymentDate:   row.PaymentDate,
		PaymentAmount: decimal.NewFromFloat(row.PaymentAmount),
		AutoRenew:     row.AutoRenew,
		CancelledAt:   row.CancelledAt,
		BaseModel: types.BaseModel{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}

func (r *subscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) (*subscription.Subscription, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var rows []subscriptionRow
	err := r.supa.DB.From(types.TableNameSubscriptions.String()).
		Insert(toSubscriptionRow(s)).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create subscription").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": s.TenantID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("insert returned no rows").
			WithHint("Failed to create subscription").
			Mark(ierr.ErrDatabase)
	}
	return fromSubscriptionRow(&rows[0]), nil
}

func (r *subscriptionRepository) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	var rows []subscriptionRow
	err := r.supa.DB.From(types.TableNameSubscriptions.String()).
		Select("*").
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch subscription").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("subscription not found").
			WithHint("Subscription not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromSubscriptionRow(&rows[0]), nil
}

func (r *subscriptionRepository) ListByTenant(ctx context.Context, tenantID string) ([]*subscription.Subscription, error) {
	var rows []subscriptionRow
	err := r.supa.DB.From(types.TableNameSubscriptions.String()).
		Select("*").
		Eq("tenant_id", tenantID).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list subscriptions").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": tenantID,
			}).
			Mark(ierr.ErrDatabase)
	}

	subs := lo.Map(rows, func(row subscriptionRow, _ int) *subscription.Subscription {
		return fromSubscriptionRow(&row)
	})
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs, nil
}
