package inventory

import (
	"sort"

	"github.com/skyhold/outfitledger/internal/outfit"
)

// Cursor flattens a group into a single ordered sequence of
// (outfit, wear, quantity) triples: outfits in name order, wear levels
// ascending within each outfit. Usage follows the pull idiom:
//
//	for c := g.All(); c.Next(); {
//		... c.Outfit(), c.Wear(), c.Quantity() ...
//	}
//
// The cursor snapshots the group's key structure at construction and is
// invalidated by any mutation of the group while iterating. The group's own
// bulk operations (Remove, IncrementWear) never go through a Cursor, so
// erase-during-removal is safe; external callers must finish or discard a
// cursor before mutating.
type Cursor struct {
	group     *Group
	order     []*outfit.Outfit
	outfitIdx int
	wears     []int
	wearIdx   int
	exhausted bool
}

// All returns a cursor over the whole group
func (g *Group) All() *Cursor {
	return newCursor(g, 0)
}

// At returns a cursor positioned at the first wear bucket of the given
// outfit, already exhausted when the group holds none of it. Advancing past
// the outfit's last bucket continues into the rest of the sequence; callers
// scanning a single outfit stop when Outfit() changes.
func (g *Group) At(o *outfit.Outfit) *Cursor {
	if _, ok := g.outfits[o]; !ok {
		return &Cursor{group: g, exhausted: true}
	}
	c := newCursor(g, 0)
	for i, held := range c.order {
		if held == o {
			c.outfitIdx = i
			break
		}
	}
	return c
}

func newCursor(g *Group, start int) *Cursor {
	order := make([]*outfit.Outfit, 0, len(g.outfits))
	for o := range g.outfits {
		order = append(order, o)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Name() < order[j].Name() })
	return &Cursor{
		group:     g,
		order:     order,
		outfitIdx: start,
		wearIdx:   -1,
		exhausted: len(order) == 0,
	}
}

// Next advances to the next wear bucket, moving to the next outfit's first
// bucket when the current ledger is spent. It reports whether the cursor is
// positioned on a bucket.
func (c *Cursor) Next() bool {
	for !c.exhausted {
		if c.wears == nil {
			if c.outfitIdx >= len(c.order) {
				c.exhausted = true
				return false
			}
			l := c.group.outfits[c.order[c.outfitIdx]]
			c.wears = l.wears()
			c.wearIdx = -1
		}
		c.wearIdx++
		if c.wearIdx >= len(c.wears) {
			c.outfitIdx++
			c.wears = nil
			continue
		}
		// A bucket erased since the snapshot reads as zero; skip it.
		if c.Quantity() > 0 {
			return true
		}
	}
	return false
}

// Exhausted reports whether the cursor has run off the end of the sequence
func (c *Cursor) Exhausted() bool {
	return c.exhausted
}

// Equal reports whether two cursors reference the same position. All
// exhausted cursors compare equal.
func (c *Cursor) Equal(other *Cursor) bool {
	if c.exhausted || other.exhausted {
		return c.exhausted && other.exhausted
	}
	return c.group == other.group && c.Outfit() == other.Outfit() && c.Wear() == other.Wear()
}

// Outfit returns the outfit at the cursor position
func (c *Cursor) Outfit() *outfit.Outfit {
	if c.exhausted || c.outfitIdx >= len(c.order) {
		return nil
	}
	return c.order[c.outfitIdx]
}

// Wear returns the wear level at the cursor position
func (c *Cursor) Wear() int {
	if c.wearIdx < 0 || c.wearIdx >= len(c.wears) {
		return WearNone
	}
	return c.wears[c.wearIdx]
}

// Quantity returns the live quantity of the current bucket
func (c *Cursor) Quantity() int {
	o := c.Outfit()
	if o == nil {
		return 0
	}
	return c.group.outfits[o][c.Wear()]
}

// TotalBaseCost returns the undepreciated value of the current bucket
func (c *Cursor) TotalBaseCost() int64 {
	o := c.Outfit()
	if o == nil {
		return 0
	}
	return o.BaseCost() * int64(c.Quantity())
}

// TotalCost returns the depreciated value of the current bucket
func (c *Cursor) TotalCost() int64 {
	o := c.Outfit()
	if o == nil {
		return 0
	}
	return c.group.model.Cost(o, c.Wear()) * int64(c.Quantity())
}

// CostRatio returns the current bucket's value as a fraction of base cost
func (c *Cursor) CostRatio() float64 {
	return c.group.model.ValueMultiplier(c.Wear())
}

// CostRatioString returns the value-ratio range held for the current outfit
// as a percent string: a single value like "85%" when every held unit is at
// the same wear, or a range like "41%-85%" from most-worn to least-worn.
func (c *Cursor) CostRatioString() string {
	o := c.Outfit()
	if o == nil {
		return ""
	}
	minCost := c.group.CostOf(o, 1, true)
	maxCost := c.group.CostOf(o, 1, false)
	baseCost := o.BaseCost()
	if minCost == maxCost {
		return FormatPercent(minCost, baseCost)
	}
	return FormatPercent(minCost, baseCost) + "-" + FormatPercent(maxCost, baseCost)
}
