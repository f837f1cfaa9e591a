package supabase

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/metagym/metagym-api/internal/domain/gym"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

type gymRepository struct {
	*Client
}

func NewGymRepository(client *Client) gym.Repository {
	return &gymRepository{Client: client}
}

type gymRow struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	OwnerID   string    `json:"owner_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toGymRow(g *gym.Gym) *gymRow {
	return &gymRow{
		ID:        g.ID,
		TenantID:  g.TenantID,
		OwnerID:   g.OwnerID,
		Code:      g.Code,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		Address:   g.Address,
		City:      g.City,
		Country:   g.Country,
		IsActive:  g.IsActive,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func fromGymRow(row *gymRow) *gym.Gym {
	if row == nil {
		return nil
	}
	return &gym.Gym{
		ID:       row.ID,
		TenantID: row.TenantID,
		OwnerID:  row.OwnerID,
		Code:     row.Code,
		Name:     row.Name,
		Email:    row.Email,
		Phone:    row.Phone,
		Address:  row.Address,
		City:     row.City,
		Country:  row.Country,
		IsActive: row.IsActive,
		BaseModel: types.BaseModel{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}

func (r *gymRepository) Create(ctx context.Context, g *gym.Gym) (*gym.Gym, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var rows []gymRow
	err := r.supa.DB.From(types.TableNameGyms.String()).
		Insert(toGymRow(g)).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create gym").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": g.TenantID,
				"code":      g.Code,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("insert returned no rows").
			WithHint("Failed to create gym").
			Mark(ierr.ErrDatabase)
	}
	return fromGymRow(&rows[0]), nil
}

func (r *gymRepository) Get(ctx context.Context, id string) (*gym.Gym, error) {
	var rows []gymRow
	err := r.supa.DB.From(types.TableNameGyms.String()).
		Select("*").
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch gym").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("gym not found").
			WithHint("Gym not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromGymRow(&rows[0]), nil
}

func (r *gymRepository) ListByTenant(ctx context.Context, tenantID string) ([]*gym.Gym, error) {
	var rows []gymRow
	err := r.supa.DB.From(types.TableNameGyms.String()).
		Select("*").
		Eq("tenant_id", tenantID).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list gyms").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": tenantID,
			}).
			Mark(ierr.ErrDatabase)
	}

	gyms := lo.Map(rows, func(row gymRow, _ int) *gym.Gym {
		return fromGymRow(&row)
	})
	sort.Slice(gyms, func(i, j int) bool {
		return gyms[i].CreatedAt.After(gyms[j].CreatedAt)
	})
	return gyms, nil
}

func (r *gymRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var rows []gymRow
	err := r.supa.DB.From(types.TableNameGyms.String()).
		Select("id").
		Eq("code", code).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check gym code").
			WithReportableDetails(map[string]interface{}{
				"code": code,
			}).
			Mark(ierr.ErrDatabase)
	}
	return len(rows) > 0, nil
}
