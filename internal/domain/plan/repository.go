package plan

import (
	"context"

	"github.com/metagym/metagym-api/internal/types"
)

// Repository defines read access to the SaaS plan catalog.
type Repository interface {
	// Get fetches a plan by ID.
	Get(ctx context.Context, id types.PlanID) (*SaasPlan, error)

	// List returns every plan, cheapest first.
	List(ctx context.Context) ([]*SaasPlan, error)

	// ListActive returns plans open for new subscriptions, cheapest first.
	ListActive(ctx context.Context) ([]*SaasPlan, error)
}
