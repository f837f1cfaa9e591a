package supabase

import (
	"context"
	"time"

	"github.com/metagym/metagym-api/internal/domain/user"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

type userRepository struct {
	*Client
}

func NewUserRepository(client *Client) user.Repository {
	return &userRepository{Client: client}
}

// userRow keys the profile on the identity provider's user ID. Roles are
// stored as a jsonb column.
type userRow struct {
	UserID            string      `json:"user_id"`
	Email             string      `json:"email"`
	Name              string      `json:"name"`
	Surname1          string      `json:"surname1"`
	Surname2          string      `json:"surname2"`
	Phone             string      `json:"phone"`
	DateOfBirth       string      `json:"date_of_birth"`
	Roles             []user.Role `json:"roles"`
	GymID             string      `json:"gym_id"`
	TenantID          string      `json:"tenant_id"`
	Height            float64     `json:"height"`
	Weight            float64     `json:"weight"`
	MembershipID      *string     `json:"membership_id,omitempty"`
	ProfilePictureURL *string     `json:"profile_picture_url,omitempty"`
	PIN               *string     `json:"pin,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func toUserRow(u *user.AdminUser) *userRow {
	return &userRow{
		UserID:            u.UserID,
		Email:             u.Email,
		Name:              u.Name,
		Surname1:          u.Surname1,
		Surname2:          u.Surname2,
		Phone:             u.Phone,
		DateOfBirth:       u.DateOfBirth,
		Roles:             u.Roles,
		GymID:             u.GymID,
		TenantID:          u.TenantID,
		Height:            u.Height,
		Weight:            u.Weight,
		MembershipID:      u.MembershipID,
		ProfilePictureURL: u.ProfilePictureURL,
		PIN:               u.PIN,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func fromUserRow(row *userRow) *user.AdminUser {
	if row == nil {
		return nil
	}
	return &user.AdminUser{
		UserID:            row.UserID,
		Email:             row.Email,
		Name:              row.Name,
		Surname1:          row.Surname1,
		Surname2:          row.Surname2,
		Phone:             row.Phone,
		DateOfBirth:       row.DateOfBirth,
		Roles:             row.Roles,
		GymID:             row.GymID,
		TenantID:          row.TenantID,
		Height:            row.Height,
		Weight:            row.Weight,
		MembershipID:      row.MembershipID,
		ProfilePictureURL: row.ProfilePictureURL,
		PIN:               row.PIN,
		BaseModel: types.BaseModel{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
}

func (r *userRepository) Create(ctx context.Context, u *user.AdminUser) (*user.AdminUser, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	var rows []userRow
	err := r.supa.DB.From(types.TableNameUsers.String()).
		Insert(toUserRow(u)).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create user profile").
			WithReportableDetails(map[string]interface{}{
				"user_id": u.UserID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("insert returned no rows").
			WithHint("Failed to create user profile").
			Mark(ierr.ErrDatabase)
	}
	return fromUserRow(&rows[0]), nil
}

func (r *userRepository) Get(ctx context.Context, userID string) (*user.AdminUser, error) {
	var rows []userRow
	err := r.supa.DB.From(types.TableNameUsers.String()).
		Select("*").
		Eq("user_id", userID).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch user profile").
			WithReportableDetails(map[string]interface{}{
				"user_id": userID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			WithReportableDetails(map[string]interface{}{
				"user_id": userID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromUserRow(&rows[0]), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.AdminUser, error) {
	var rows []userRow
	err := r.supa.DB.From(types.TableNameUsers.String()).
		Select("*").
		Eq("email", email).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch user profile").
			WithReportableDetails(map[string]interface{}{
				"email": email,
			}).
			Mark(ierr.ErrDatabase)
	}
	if len(rows) == 0 {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			WithReportableDetails(map[string]interface{}{
				"email": email,
			}).
			Mark(ierr.ErrNotFound)
	}
	return fromUserRow(&rows[0]), nil
}
