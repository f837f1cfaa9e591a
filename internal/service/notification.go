package service

import (
	"context"

	"github.com/metagym/metagym-api/internal/api/dto"
	"github.com/metagym/metagym-api/internal/email"
)

// NotificationService backs the credentials endpoint consumed by the
// approval workflow.
type NotificationService interface {
	SendCredentials(ctx context.Context, req dto.SendCredentialsRequest) (*dto.SendCredentialsResponse, error)
}

type notificationService struct {
	ServiceParams
	email *email.Email
}

func NewNotificationService(params ServiceParams, emailSvc *email.Email) NotificationService {
	return &notificationService{ServiceParams: params, email: emailSvc}
}

func (s *notificationService) SendCredentials(ctx context.Context, req dto.SendCredentialsRequest) (*dto.SendCredentialsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.email.SendCredentials(ctx, email.CredentialsEmailRequest{
		ToEmail:  req.ToEmail,
		ToName:   req.ToName,
		GymName:  req.GymName,
		Email:    req.Email,
		Password: req.Password,
		TenantID: req.TenantID,
		GymCode:  req.GymCode,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SendCredentialsResponse{
		Success: resp.Success,
		Data:    map[string]string{"id": resp.MessageID},
	}, nil
}
