package inventory

import (
	"sort"

	"github.com/skyhold/outfitledger/internal/depreciation"
	"github.com/skyhold/outfitledger/internal/outfit"
)

// WearNone is the sentinel returned by MinWear/MaxWear when a group holds no
// units of the queried outfit.
const WearNone = -1

// ledger maps wear level to quantity for one outfit. Two invariants hold at
// all times: no entry has a non-positive quantity, and an empty ledger is
// never left in a group's outer map. All mutation goes through Group.add and
// Group.Remove, which enforce both.
type ledger map[int]int

// wears returns the ledger's wear levels in ascending order
func (l ledger) wears() []int {
	keys := make([]int, 0, len(l))
	for wear := range l {
		keys = append(keys, wear)
	}
	sort.Ints(keys)
	return keys
}

// count returns the total quantity across all buckets
func (l ledger) count() int {
	total := 0
	for _, quantity := range l {
		total += quantity
	}
	return total
}

// Group is a wear-bucketed multiset of outfits: each outfit maps to a ledger
// of wear level to quantity. Units of the same outfit at the same wear are
// interchangeable. A Group is not safe for concurrent use; callers own the
// synchronization, matching the single-threaded simulation loop it serves.
type Group struct {
	model   depreciation.Model
	outfits map[*outfit.Outfit]ledger
}

// NewGroup creates an empty group priced by the given depreciation model
func NewGroup(model depreciation.Model) *Group {
	return &Group{
		model:   model,
		outfits: make(map[*outfit.Outfit]ledger),
	}
}

// Model returns the depreciation model the group prices with
func (g *Group) Model() depreciation.Model {
	return g.model
}

// Clear discards all holdings
func (g *Group) Clear() {
	g.outfits = make(map[*outfit.Outfit]ledger)
}

// Empty reports whether the group holds nothing
func (g *Group) Empty() bool {
	return len(g.outfits) == 0
}

// Find returns a copy of the outfit's wear ledger, or nil when the group
// holds none. The copy keeps callers from bypassing the mutation primitives.
func (g *Group) Find(o *outfit.Outfit) map[int]int {
	l, ok := g.outfits[o]
	if !ok {
		return nil
	}
	view := make(map[int]int, len(l))
	for wear, quantity := range l {
		view[wear] = quantity
	}
	return view
}

// Count returns the total quantity of an outfit across all wear levels
func (g *Group) Count(o *outfit.Outfit) int {
	l, ok := g.outfits[o]
	if !ok {
		return 0
	}
	return l.count()
}

// MinWear returns the lowest wear level held for an outfit, or WearNone
func (g *Group) MinWear(o *outfit.Outfit) int {
	l, ok := g.outfits[o]
	if !ok || len(l) == 0 {
		return WearNone
	}
	min := 0
	first := true
	for wear := range l {
		if first || wear < min {
			min = wear
			first = false
		}
	}
	return min
}

// MaxWear returns the highest wear level held for an outfit, or WearNone
func (g *Group) MaxWear(o *outfit.Outfit) int {
	l, ok := g.outfits[o]
	if !ok || len(l) == 0 {
		return WearNone
	}
	max := 0
	first := true
	for wear := range l {
		if first || wear > max {
			max = wear
			first = false
		}
	}
	return max
}

// TotalAttribute sums a named outfit attribute (such as mass) over every
// unit in the group.
func (g *Group) TotalAttribute(attribute string) float64 {
	total := 0.0
	for c := g.All(); c.Next(); {
		total += c.Outfit().Get(attribute) * float64(c.Quantity())
	}
	return total
}

// TotalCost returns the depreciated value of everything in the group
func (g *Group) TotalCost() int64 {
	total := int64(0)
	for c := g.All(); c.Next(); {
		total += c.TotalCost()
	}
	return total
}

// TotalCostOf returns the depreciated value of all held units of one outfit
func (g *Group) TotalCostOf(o *outfit.Outfit) int64 {
	total := int64(0)
	for c := g.At(o); c.Next() && c.Outfit() == o; {
		total += c.TotalCost()
	}
	return total
}

// CostOf prices count units of an outfit without removing them, drawing from
// the most-worn buckets first when mostWornFirst is set and the least-worn
// otherwise. Used to quote a sale or purchase before committing it. When
// fewer than count units are held, only the held units are priced.
func (g *Group) CostOf(o *outfit.Outfit, count int, mostWornFirst bool) int64 {
	l, ok := g.outfits[o]
	if !ok {
		return 0
	}
	total := int64(0)
	for _, wear := range orderedWears(l, mostWornFirst) {
		if count <= 0 {
			break
		}
		matched := l[wear]
		if matched > count {
			matched = count
		}
		total += g.model.Cost(o, wear) * int64(matched)
		count -= matched
	}
	return total
}

// add is the signed mutation primitive: it merges count into the bucket at
// the given wear, erasing the bucket when it reaches zero or below and the
// outfit when its ledger empties. A count that would create a new bucket
// with a non-positive quantity is ignored. Returns the count as applied.
func (g *Group) add(o *outfit.Outfit, count, wear int) int {
	if o == nil || count == 0 {
		return 0
	}
	l, ok := g.outfits[o]
	if !ok {
		if count < 0 {
			return 0
		}
		g.outfits[o] = ledger{wear: count}
		return count
	}

	l[wear] += count
	if l[wear] <= 0 {
		delete(l, wear)
	}
	if len(l) == 0 {
		delete(g.outfits, o)
	}
	return count
}

// Remove takes up to count units of an outfit, draining buckets most-worn or
// least-worn first and spreading across as many buckets as needed. Buckets
// that reach zero are erased. When dest is non-nil each removed sub-quantity
// is deposited there at its original wear level. Removal is capped at the
// held total; the return value is the number actually removed.
func (g *Group) Remove(o *outfit.Outfit, count int, mostWornFirst bool, dest *Group) int {
	if o == nil || count <= 0 {
		return 0
	}
	l, ok := g.outfits[o]
	if !ok {
		return 0
	}

	// Iterate a snapshot of the keys so erasing buckets mid-walk is safe.
	removed := 0
	for _, wear := range orderedWears(l, mostWornFirst) {
		if removed >= count {
			break
		}
		take := l[wear]
		if take > count-removed {
			take = count - removed
		}
		removed += take
		l[wear] -= take
		if l[wear] == 0 {
			delete(l, wear)
		}
		if dest != nil {
			dest.add(o, take, wear)
		}
	}
	if len(l) == 0 {
		delete(g.outfits, o)
	}
	return removed
}

// orderedWears returns a ledger's wear levels sorted for a disposal policy:
// descending when draining most-worn-first, ascending otherwise.
func orderedWears(l ledger, mostWornFirst bool) []int {
	keys := l.wears()
	if mostWornFirst {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	return keys
}
