package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/metagym/metagym-api/internal/config"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/types"
)

// Stores bundles every in-memory repository for service tests.
type Stores struct {
	GymRequestRepo   *InMemoryGymRequestStore
	TenantRepo       *InMemoryTenantStore
	SubscriptionRepo *InMemorySubscriptionStore
	GymRepo          *InMemoryGymStore
	UserRepo         *InMemoryUserStore
	PaymentRepo      *InMemoryPaymentStore
	PlanRepo         *InMemoryPlanStore
}

// BaseServiceTestSuite wires fresh in-memory stores before every test.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	logger *logger.Logger
	stores Stores
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = types.SetUserID(context.Background(), "test-admin")
	s.cfg = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.cfg)
	s.Require().NoError(err)
	s.logger = log

	s.stores = Stores{
		GymRequestRepo:   NewInMemoryGymRequestStore(),
		TenantRepo:       NewInMemoryTenantStore(),
		SubscriptionRepo: NewInMemorySubscriptionStore(),
		GymRepo:          NewInMemoryGymStore(),
		UserRepo:         NewInMemoryUserStore(),
		PaymentRepo:      NewInMemoryPaymentStore(),
		PlanRepo:         NewInMemoryPlanStore(),
	}
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}
