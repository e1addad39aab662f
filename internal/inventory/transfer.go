package inventory

import "github.com/skyhold/outfitledger/internal/outfit"

// The transfer operations come in two layers. Deposit, Withdraw and Move are
// the explicit primitives; Transfer is the single-entry-point adapter whose
// meaning flips on the sign of count and the presence of a destination,
// kept for callers that thread a signed delta straight through from game
// events (buy = negative into the buyer, sell = positive out of the seller).

// Deposit inserts count units of an outfit at the given wear level and
// returns the number added. Nil outfits and non-positive counts are no-ops.
func (g *Group) Deposit(o *outfit.Outfit, count, wear int) int {
	if o == nil || count <= 0 {
		return 0
	}
	return g.add(o, count, wear)
}

// Withdraw removes up to count units under the given disposal policy and
// returns the number actually removed, which is short when stock runs out.
func (g *Group) Withdraw(o *outfit.Outfit, count int, mostWornFirst bool) int {
	return g.Remove(o, count, mostWornFirst, nil)
}

// Move withdraws up to count units and deposits each removed sub-quantity
// into dest at its original wear level, conserving the combined totals of
// the two groups. Returns the number moved.
func (g *Group) Move(o *outfit.Outfit, count int, dest *Group, mostWornFirst bool) int {
	if dest == nil || dest == g {
		return 0
	}
	return g.Remove(o, count, mostWornFirst, dest)
}

// Transfer is the signed adapter over Deposit/Withdraw/Move:
//
//   - count == 0 or o == nil: no-op, returns 0.
//   - dest == nil, count > 0: transfer to nowhere, i.e. Withdraw.
//   - dest == nil, count < 0: transfer from nowhere, i.e. Deposit at
//     defaultWear; returns the negated deposit.
//   - dest != nil, count < 0: the exact inverse of the positive transfer in
//     the opposite direction, with the result negated.
//   - dest != nil, count > 0: Move.
func (g *Group) Transfer(o *outfit.Outfit, count int, dest *Group, mostWornFirst bool, defaultWear int) int {
	if count == 0 || o == nil {
		return 0
	}
	if dest == nil {
		if count > 0 {
			return g.Withdraw(o, count, mostWornFirst)
		}
		return -g.Deposit(o, -count, defaultWear)
	}
	if count < 0 {
		return -dest.Transfer(o, -count, g, mostWornFirst, defaultWear)
	}
	return g.Move(o, count, dest, mostWornFirst)
}

// IncrementWear ages every unit in the group by delta wear steps. Each
// ledger is rebuilt from a snapshot of its buckets: shifting keys in place
// while ranging the same map could revisit moved entries. Quantities per
// outfit are unchanged; only the keys shift.
func (g *Group) IncrementWear(delta int) {
	if delta <= 0 {
		return
	}
	for o, l := range g.outfits {
		shifted := make(ledger, len(l))
		for wear, quantity := range l {
			shifted[wear+delta] = quantity
		}
		g.outfits[o] = shifted
	}
}
