package plan

import (
	"github.com/metagym/metagym-api/internal/types"
	"github.com/shopspring/decimal"
)

// SaasPlan is a subscription tier from the plan catalog. The catalog is
// administered out of band; this service only reads it.
type SaasPlan struct {
	ID          types.PlanID    `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	MaxClients  int             `json:"max_clients"`
	MaxGyms     int             `json:"max_gyms"`
	Features    []string        `json:"features"`
	IsActive    bool            `json:"is_active"`

	types.BaseModel
}
