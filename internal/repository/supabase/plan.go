package supabase

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/metagym/metagym-api/internal/domain/plan"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

type planRepository struct {
	*Client
}

func NewPlanRepository(client *Client) plan.Repository {
	return &planRepository{Client: client}
}

type planRow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	MaxClients  int       `json:"max_clients"`
	MaxGyms     int       `json:"max_gyms"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func fromPlanRow(row *planRow) *plan.SaasPlan {
	if row == nil {
		return nil
	}
	return &plan.SaasPlan{
		ID:          types.PlanID(row.ID),
		Name:        row.Name,
		Description: row.Description,
		Price:       decimal.NewFromFloat(row.Price),
		MaxClients:  row.MaxClients,
		MaxGyms:     row.MaxGyms,
		Features:    row.Features,
		IsActive:    row.IsActive,
		BaseModel: types.BaseModel{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}

func (r *planRepository) Get(ctx context.Context, id types.PlanID) (*plan.SaasPlan, error) {
	var rows []planRow
	err := r.supa.DB.From(types.TableNameSaasPlans.String()).
		Select("*").
		Eq("id", id.String()).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch plan").
			WithReportableDetails(map[string]interface{}{
				"plan_id": id.String(),
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("plan not found").
			WithHint("Plan not found").
			WithReportableDetails(map[string]interface{}{
				"plan_id": id.String(),
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromPlanRow(&rows[0]), nil
}

func (r *planRepository) List(ctx context.Context) ([]*plan.SaasPlan, error) {
	var rows []planRow
	err := r.supa.DB.From(types.TableNameSaasPlans.String()).
		Select("*").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list plans").
			Mark(ierr.ErrDatabase)
	}
	return sortPlans(rows), nil
}

func (r *planRepository) ListActive(ctx context.Context) ([]*plan.SaasPlan, error) {
	var rows []planRow
	err := r.supa.DB.From(types.TableNameSaasPlans.String()).
		Select("*").
		Eq("is_active", "true").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list active plans").
			Mark(ierr.ErrDatabase)
	}
	return sortPlans(rows), nil
}

func sortPlans(rows []planRow) []*plan.SaasPlan {
	plans := lo.Map(rows, func(row planRow, _ int) *plan.SaasPlan {
		return fromPlanRow(&row)
	})
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Price.LessThan(plans[j].Price)
	})
	return plans
}
