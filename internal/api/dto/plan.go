package dto

import "github.com/metagym/metagym-api/internal/domain/plan"

// PlanResponse wraps a catalog plan for the API.
type PlanResponse struct {
	*plan.SaasPlan
}

// ListPlansResponse is the list envelope for catalog plans.
type ListPlansResponse struct {
	Items []*PlanResponse `json:"items"`
	Total int             `json:"total"`
}
