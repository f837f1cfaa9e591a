package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/testutil"
	"github.com/metagym/metagym-api/internal/types"
)

type GymRequestServiceSuite struct {
	testutil.BaseServiceTestSuite
	service GymRequestService
}

func TestGymRequestService(t *testing.T) {
	suite.Run(t, new(GymRequestServiceSuite))
}

func (s *GymRequestServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewGymRequestService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		GymRequestRepo: s.GetStores().GymRequestRepo,
	})
}

func (s *GymRequestServiceSuite) seedRequest(status types.GymRequestStatus) *gymrequest.GymRequest {
	req := &gymrequest.GymRequest{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST),
		GymName:       "Iron Gym",
		CompanyName:   "Iron Gym SL",
		AdminName:     "Ana",
		AdminSurname1: "García",
		Email:         "owner@iron.gym",
		RequestedPlan: types.PlanBasic,
		Status:        status,
		Date:          time.Now().UTC(),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	created, err := s.GetStores().GymRequestRepo.Create(s.GetContext(), req)
	s.Require().NoError(err)
	return created
}

func (s *GymRequestServiceSuite) TestGetRequest() {
	seeded := s.seedRequest(types.GymRequestStatusPending)

	resp, err := s.service.GetRequest(s.GetContext(), seeded.ID)
	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("Iron Gym", resp.GymName)

	_, err = s.service.GetRequest(s.GetContext(), "req_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.GetRequest(s.GetContext(), "")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *GymRequestServiceSuite) TestListRequestsByStatus() {
	s.seedRequest(types.GymRequestStatusPending)
	s.seedRequest(types.GymRequestStatusPending)
	s.seedRequest(types.GymRequestStatusApproved)

	all, err := s.service.ListRequests(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(3, all.Total)

	pending := types.GymRequestStatusPending
	filtered, err := s.service.ListRequests(s.GetContext(), &pending)
	s.NoError(err)
	s.Equal(2, filtered.Total)
	for _, item := range filtered.Items {
		s.Equal(types.GymRequestStatusPending, item.Status)
	}

	bogus := types.GymRequestStatus("archived")
	_, err = s.service.ListRequests(s.GetContext(), &bogus)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *GymRequestServiceSuite) TestGetStats() {
	s.seedRequest(types.GymRequestStatusPending)
	s.seedRequest(types.GymRequestStatusApproved)
	s.seedRequest(types.GymRequestStatusApproved)
	s.seedRequest(types.GymRequestStatusRejected)

	stats, err := s.service.GetStats(s.GetContext())
	s.NoError(err)
	s.Equal(4, stats.Total)
	s.Equal(1, stats.Pending)
	s.Equal(2, stats.Approved)
	s.Equal(1, stats.Rejected)
}
