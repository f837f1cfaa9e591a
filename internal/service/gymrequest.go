package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/metagym/metagym-api/internal/api/dto"
	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// GymRequestService exposes read access to registration requests for the
// review screens.
type GymRequestService interface {
	GetRequest(ctx context.Context, id string) (*dto.GymRequestResponse, error)
	ListRequests(ctx context.Context, status *types.GymRequestStatus) (*dto.ListGymRequestsResponse, error)
	GetStats(ctx context.Context) (*dto.GymRequestStatsResponse, error)
}

type gymRequestService struct {
	ServiceParams
}

func NewGymRequestService(params ServiceParams) GymRequestService {
	return &gymRequestService{ServiceParams: params}
}

func (s *gymRequestService) GetRequest(ctx context.Context, id string) (*dto.GymRequestResponse, error) {
	if id == "" {
		return nil, ierr.NewError("request id is required").
			WithHint("Request ID is required").
			Mark(ierr.ErrValidation)
	}

	request, err := s.GymRequestRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.GymRequestResponse{GymRequest: request}, nil
}

func (s *gymRequestService) ListRequests(ctx context.Context, status *types.GymRequestStatus) (*dto.ListGymRequestsResponse, error) {
	var (
		requests []*gymrequest.GymRequest
		err      error
	)
	if status != nil {
		if validateErr := status.Validate(); validateErr != nil {
			return nil, validateErr
		}
		requests, err = s.GymRequestRepo.ListByStatus(ctx, *status)
	} else {
		requests, err = s.GymRequestRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	items := lo.Map(requests, func(r *gymrequest.GymRequest, _ int) *dto.GymRequestResponse {
		return &dto.GymRequestResponse{GymRequest: r}
	})
	return &dto.ListGymRequestsResponse{Items: items, Total: len(items)}, nil
}

func (s *gymRequestService) GetStats(ctx context.Context) (*dto.GymRequestStatsResponse, error) {
	counts, err := s.GymRequestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.GymRequestStatsResponse{
		Pending:  counts[types.GymRequestStatusPending],
		Approved: counts[types.GymRequestStatusApproved],
		Rejected: counts[types.GymRequestStatusRejected],
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats, nil
}
