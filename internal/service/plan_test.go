package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/metagym/metagym-api/internal/domain/plan"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/testutil"
	"github.com/metagym/metagym-api/internal/types"
)

type PlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PlanService
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPlanService(ServiceParams{
		Logger:   s.GetLogger(),
		Config:   s.GetConfig(),
		PlanRepo: s.GetStores().PlanRepo,
	})
}

func (s *PlanServiceSuite) seedCatalog() {
	catalog := []*plan.SaasPlan{
		{
			ID:        types.PlanEnterprise,
			Name:      "Enterprise",
			Price:     decimal.NewFromFloat(99.99),
			IsActive:  true,
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		},
		{
			ID:        types.PlanBasic,
			Name:      "Basic",
			Price:     decimal.NewFromFloat(29.99),
			IsActive:  true,
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		},
		{
			ID:        types.PlanProfessional,
			Name:      "Professional",
			Price:     decimal.NewFromFloat(59.99),
			IsActive:  false,
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		},
	}
	for _, p := range catalog {
		s.Require().NoError(s.GetStores().PlanRepo.Seed(s.GetContext(), p))
	}
}

func (s *PlanServiceSuite) TestGetPlan() {
	s.seedCatalog()

	resp, err := s.service.GetPlan(s.GetContext(), types.PlanBasic)
	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("Basic", resp.Name)

	_, err = s.service.GetPlan(s.GetContext(), types.PlanID("platinum"))
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.GetPlan(s.GetContext(), "")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PlanServiceSuite) TestListPlansOrderedByPrice() {
	s.seedCatalog()

	resp, err := s.service.ListPlans(s.GetContext(), false)
	s.NoError(err)
	s.Require().Equal(3, resp.Total)
	s.Equal(types.PlanBasic, resp.Items[0].ID)
	s.Equal(types.PlanProfessional, resp.Items[1].ID)
	s.Equal(types.PlanEnterprise, resp.Items[2].ID)
}

func (s *PlanServiceSuite) TestListActiveFiltersAndCaches() {
	s.seedCatalog()

	resp, err := s.service.ListPlans(s.GetContext(), true)
	s.NoError(err)
	s.Require().Equal(2, resp.Total)
	s.Equal(types.PlanBasic, resp.Items[0].ID)
	s.Equal(types.PlanEnterprise, resp.Items[1].ID)

	// A second active listing is served from the cache, so a catalog
	// change within the TTL is not visible yet.
	s.Require().NoError(s.GetStores().PlanRepo.Seed(s.GetContext(), &plan.SaasPlan{
		ID:       types.PlanID("platinum"),
		Name:     "Platinum",
		Price:    decimal.NewFromFloat(199.99),
		IsActive: true,
	}))

	cached, err := s.service.ListPlans(s.GetContext(), true)
	s.NoError(err)
	s.Equal(2, cached.Total)

	// The unfiltered listing bypasses the cache and sees the new plan.
	all, err := s.service.ListPlans(s.GetContext(), false)
	s.NoError(err)
	s.Equal(4, all.Total)
}
