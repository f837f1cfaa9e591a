package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/metagym/metagym-api/internal/api/dto"
	"github.com/metagym/metagym-api/internal/domain/plan"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

const (
	planCacheTTL        = 5 * time.Minute
	planCacheSweep      = 10 * time.Minute
	activePlansCacheKey = "plans:active"
)

// PlanService reads the SaaS plan catalog. The catalog changes rarely, so
// the active list is served from a short-lived in-process cache.
type PlanService interface {
	GetPlan(ctx context.Context, id types.PlanID) (*dto.PlanResponse, error)
	ListPlans(ctx context.Context, activeOnly bool) (*dto.ListPlansResponse, error)
}

type planService struct {
	ServiceParams
	cache *gocache.Cache
}

func NewPlanService(params ServiceParams) PlanService {
	return &planService{
		ServiceParams: params,
		cache:         gocache.New(planCacheTTL, planCacheSweep),
	}
}

func (s *planService) GetPlan(ctx context.Context, id types.PlanID) (*dto.PlanResponse, error) {
	if id == "" {
		return nil, ierr.NewError("plan id is required").
			WithHint("Plan ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PlanResponse{SaasPlan: p}, nil
}

func (s *planService) ListPlans(ctx context.Context, activeOnly bool) (*dto.ListPlansResponse, error) {
	var (
		plans []*plan.SaasPlan
		err   error
	)
	if activeOnly {
		if cached, found := s.cache.Get(activePlansCacheKey); found {
			plans = cached.([]*plan.SaasPlan)
		} else {
			plans, err = s.PlanRepo.ListActive(ctx)
			if err != nil {
				return nil, err
			}
			s.cache.Set(activePlansCacheKey, plans, gocache.DefaultExpiration)
		}
	} else {
		plans, err = s.PlanRepo.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	items := lo.Map(plans, func(p *plan.SaasPlan, _ int) *dto.PlanResponse {
		return &dto.PlanResponse{SaasPlan: p}
	})
	return &dto.ListPlansResponse{Items: items, Total: len(items)}, nil
}
