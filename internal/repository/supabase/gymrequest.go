package supabase

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

type gymRequestRepository struct {
	*Client
}

func NewGymRequestRepository(client *Client) gymrequest.Repository {
	return &gymRequestRepository{Client: client}
}

// gymRequestRow mirrors the register_requests table.
type gymRequestRow struct {
	ID              string     `json:"id"`
	GymName         string     `json:"gym_name"`
	GymPhone        string     `json:"gym_phone"`
	GymAddress      string     `json:"gym_address"`
	CompanyName     string     `json:"company_name"`
	AdminName       string     `json:"admin_name"`
	AdminSurname1   string     `json:"admin_surname1"`
	AdminSurname2   string     `json:"admin_surname2"`
	AdminPhone      string     `json:"admin_phone"`
	Email           string     `json:"email"`
	RequestedPlan   string     `json:"requested_plan"`
	State           string     `json:"state"`
	Date            time.Time  `json:"date"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	GeneratedToken  *string    `json:"generated_token,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toGymRequestRow(r *gymrequest.GymRequest) *gymRequestRow {
	return &gymRequestRow{
		ID:              r.ID,
		GymName:         r.GymName,
		GymPhone:        r.GymPhone,
		GymAddress:      r.GymAddress,
		CompanyName:     r.CompanyName,
		AdminName:       r.AdminName,
		AdminSurname1:   r.AdminSurname1,
		AdminSurname2:   r.AdminSurname2,
		AdminPhone:      r.AdminPhone,
		Email:           r.Email,
		RequestedPlan:   r.RequestedPlan.String(),
		State:           r.Status.String(),
		Date:            r.Date,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		RejectionReason: r.RejectionReason,
		GeneratedToken:  r.GeneratedToken,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func fromGymRequestRow(row *gymRequestRow) *gymrequest.GymRequest {
	if row == nil {
		return nil
	}
	return &gymrequest.GymRequest{
		ID:              row.ID,
		GymName:         row.GymName,
		GymPhone:        row.GymPhone,
		GymAddress:      row.GymAddress,
		CompanyName:     row.CompanyName,
		AdminName:       row.AdminName,
		AdminSurname1:   row.AdminSurname1,
		AdminSurname2:   row.AdminSurname2,
		AdminPhone:      row.AdminPhone,
		Email:           row.Email,
		RequestedPlan:   types.PlanID(row.RequestedPlan),
		Status:          types.GymRequestStatus(row.State),
		Date:            row.Date,
		ReviewedBy:      row.ReviewedBy,
		ReviewedAt:      row.ReviewedAt,
		RejectionReason: row.RejectionReason,
		GeneratedToken:  row.GeneratedToken,
		BaseModel: types.BaseModel{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}

func (r *gymRequestRepository) Create(ctx context.Context, req *gymrequest.GymRequest) (*gymrequest.GymRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var rows []gymRequestRow
	err := r.supa.DB.From(types.TableNameGymRequests.String()).
		Insert(toGymRequestRow(req)).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create registration request").
			WithReportableDetails(map[string]interface{}{
				"id": req.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("insert returned no rows").
			WithHint("Failed to create registration request").
			Mark(ierr.ErrDatabase)
	}
	return fromGymRequestRow(&rows[0]), nil
}

func (r *gymRequestRepository) Get(ctx context.Context, id string) (*gymrequest.GymRequest, error) {
	var rows []gymRequestRow
	err := r.supa.DB.From(types.TableNameGymRequests.String()).
		Select("*").
		Eq("id", id).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch registration request").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("registration request not found").
			WithHint("Registration request not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromGymRequestRow(&rows[0]), nil
}

func (r *gymRequestRepository) List(ctx context.Context) ([]*gymrequest.GymRequest, error) {
	var rows []gymRequestRow
	err := r.supa.DB.From(types.TableNameGymRequests.String()).
		Select("*").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list registration requests").
			Mark(ierr.ErrDatabase)
	}

	requests := lo.Map(rows, func(row gymRequestRow, _ int) *gymrequest.GymRequest {
		return fromGymRequestRow(&row)
	})
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *gymRequestRepository) ListByStatus(ctx context.Context, status types.GymRequestStatus) ([]*gymrequest.GymRequest, error) {
	var rows []gymRequestRow
	err := r.supa.DB.From(types.TableNameGymRequests.String()).
		Select("*").
		Eq("state", status.String()).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list registration requests").
			WithReportableDetails(map[string]interface{}{
				"status": status.String(),
			}).
			Mark(ierr.ErrDatabase)
	}

	requests := lo.Map(rows, func(row gymRequestRow, _ int) *gymrequest.GymRequest {
		return fromGymRequestRow(&row)
	})
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *gymRequestRepository) CountByStatus(ctx context.Context) (map[types.GymRequestStatus]int, error) {
	requests, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[types.GymRequestStatus]int{
		types.GymRequestStatusPending:  0,
		types.GymRequestStatusApproved: 0,
		types.GymRequestStatusRejected: 0,
	}
	for _, req := range requests {
		counts[req.Status]++
	}
	return counts, nil
}

func (r *gymRequestRepository) ApplyReviewIfPending(ctx context.Context, id string, update gymrequest.ReviewUpdate) error {
	fields := map[string]interface{}{
		"state":       update.Status.String(),
		"reviewed_by": update.ReviewedBy,
		"reviewed_at": update.ReviewedAt,
		"updated_at":  time.Now().UTC(),
	}
	if update.RejectionReason != nil {
		fields["rejection_reason"] = *update.RejectionReason
	}
	if update.GeneratedToken != nil {
		fields["generated_token"] = *update.GeneratedToken
	}

	// The state filter makes this a conditional write: zero updated rows
	// means another reviewer already closed the request (or it is gone).
	var rows []gymRequestRow
	err := r.supa.DB.From(types.TableNameGymRequests.String()).
		Update(fields).
		Eq("id", id).
		Eq("state", types.GymRequestStatusPending.String()).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update registration request").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return getErr
		}
		return ierr.NewError("request is no longer pending").
			WithHint("This request was already reviewed").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}
