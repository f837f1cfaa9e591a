package supabase

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/metagym/metagym-api/internal/domain/tenant"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

type tenantRepository struct {
	*Client
}

func NewTenantRepository(client *Client) tenant.Repository {
	return &tenantRepository{Client: client}
}

type tenantRow struct {
	ID                  string    `json:"id"`
	CompanyName         string    `json:"company_name"`
	CompanyEmail        string    `json:"company_email"`
	CompanyPhone        string    `json:"company_phone"`
	OwnerID             string    `json:"owner_id"`
	CurrentPlanID       string    `json:"current_plan_id"`
	SubscriptionEndDate time.Time `json:"subscription_end_date"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toTenantRow(t *tenant.Tenant) *tenantRow {
	return &tenantRow{
		ID:                  t.ID,
		CompanyName:         t.CompanyName,
		CompanyEmail:        t.CompanyEmail,
		CompanyPhone:        t.CompanyPhone,
		OwnerID:             t.OwnerID,
		CurrentPlanID:       t.CurrentPlanID.String(),
		SubscriptionEndDate: t.SubscriptionEndDate,
		IsActive:            t.IsActive,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func fromTenantRow(row *tenantRow) *tenant.Tenant {
	if row == nil {
		return nil
	}
	return &tenant.Tenant{
		ID:                  row.ID,
		CompanyName:         row.CompanyName,
		CompanyEmail:        row.CompanyEmail,
		CompanyPhone:        row.CompanyPhone,
		OwnerID:             row.OwnerID,
		CurrentPlanID:       types.PlanID(row.CurrentPlanID),
		SubscriptionEndDate: row.SubscriptionEndDate,
		IsActive:            row.IsActive,
		BaseModel: types.BaseModel{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}

func (r *tenantRepository) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Insert(toTenantRow(t)).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create tenant").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": t.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("insert returned no rows").
			WithHint("Failed to create tenant").
			Mark(ierr.ErrDatabase)
	}
	return fromTenantRow(&rows[0]), nil
}

func (r *tenantRepository) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Select("*").
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch tenant").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromTenantRow(&rows[0]), nil
}

func (r *tenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Select("id").
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check tenant existence").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	return len(rows) > 0, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Select("*").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tenants").
			Mark(ierr.ErrDatabase)
	}
	return sortTenants(rows), nil
}

func (r *tenantRepository) ListActive(ctx context.Context) ([]*tenant.Tenant, error) {
	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Select("*").
		Eq("is_active", "true").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list active tenants").
			Mark(ierr.ErrDatabase)
	}
	return sortTenants(rows), nil
}

func sortTenants(rows []tenantRow) []*tenant.Tenant {
	tenants := lo.Map(rows, func(row tenantRow, _ int) *tenant.Tenant {
		return fromTenantRow(&row)
	})
	sort.Slice(tenants, func(i, j int) bool {
		return tenants[i].CreatedAt.After(tenants[j].CreatedAt)
	})
	return tenants
}

func (r *tenantRepository) Update(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	fields := map[string]interface{}{
		"company_name":          t.CompanyName,
		"company_email":         t.CompanyEmail,
		"company_phone":         t.CompanyPhone,
		"current_plan_id":       t.CurrentPlanID.String(),
		"subscription_end_date": t.SubscriptionEndDate,
		"is_active":             t.IsActive,
		"updated_at":            time.Now().UTC(),
	}

	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Update(fields).
		Eq("id", t.ID).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to update tenant").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": t.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": t.ID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromTenantRow(&rows[0]), nil
}

func (r *tenantRepository) UpdateSubscriptionEndDate(ctx context.Context, id string, endDate time.Time) error {
	fields := map[string]interface{}{
		"subscription_end_date": endDate,
		"updated_at":            time.Now().UTC(),
	}

	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Update(fields).
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update subscription end date").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *tenantRepository) SetActive(ctx context.Context, id string, active bool) error {
	fields := map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	}

	var rows []tenantRow
	err := r.supa.DB.From(types.TableNameTenants.String()).
		Update(fields).
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update tenant status").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
