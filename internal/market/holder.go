package market

import (
	"github.com/google/uuid"

	"github.com/skyhold/outfitledger/internal/depreciation"
	"github.com/skyhold/outfitledger/internal/inventory"
)

// Holder is anything that owns outfits: a ship, a planetary storage yard, a
// fleet. Holders are identified by UUID and own exactly one inventory group.
type Holder struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Group *inventory.Group `json:"-"`
}

func newHolder(name string, model depreciation.Model) *Holder {
	return &Holder{
		ID:    uuid.NewString(),
		Name:  name,
		Group: inventory.NewGroup(model),
	}
}

// Holding is one wear bucket of a holder's inventory, priced for display
type Holding struct {
	Outfit    string `json:"outfit"`
	Wear      int    `json:"wear"`
	Quantity  int    `json:"quantity"`
	UnitCost  int64  `json:"unit_cost"`
	TotalCost int64  `json:"total_cost"`
	CostRatio string `json:"cost_ratio"`
}
