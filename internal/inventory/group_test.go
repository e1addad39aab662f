package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyhold/outfitledger/internal/depreciation"
	"github.com/skyhold/outfitledger/internal/outfit"
)

func testGroup() *Group {
	return NewGroup(depreciation.DefaultModel())
}

func testLaser() *outfit.Outfit {
	return outfit.New("Beam Laser", "Guns", 1000, map[string]float64{"mass": 6})
}

// assertInvariants verifies no empty ledgers and no non-positive quantities
func assertInvariants(t *testing.T, g *Group) {
	t.Helper()
	for o, l := range g.outfits {
		assert.NotEmpty(t, l, "outfit %s maps to an empty ledger", o.Name())
		for wear, quantity := range l {
			assert.Positive(t, quantity, "outfit %s holds %d units at wear %d", o.Name(), quantity, wear)
		}
	}
}

func TestGroupDeposit(t *testing.T) {
	t.Run("creates bucket on first deposit", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()

		added := g.Deposit(laser, 3, 0)

		assert.Equal(t, 3, added)
		assert.Equal(t, 3, g.Count(laser))
		assert.False(t, g.Empty())
		assertInvariants(t, g)
	})

	t.Run("merges into existing bucket at same wear", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()

		g.Deposit(laser, 3, 5)
		g.Deposit(laser, 2, 5)

		assert.Equal(t, 5, g.Count(laser))
		assert.Equal(t, map[int]int{5: 5}, g.Find(laser))
	})

	t.Run("keeps separate buckets per wear level", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()

		g.Deposit(laser, 3, 0)
		g.Deposit(laser, 2, 5)

		assert.Equal(t, 5, g.Count(laser))
		assert.Equal(t, map[int]int{0: 3, 5: 2}, g.Find(laser))
	})

	t.Run("ignores nil outfit and non-positive counts", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()

		assert.Equal(t, 0, g.Deposit(nil, 3, 0))
		assert.Equal(t, 0, g.Deposit(laser, 0, 0))
		assert.Equal(t, 0, g.Deposit(laser, -2, 0))
		assert.True(t, g.Empty())
	})
}

func TestGroupRemove(t *testing.T) {
	t.Run("most worn first drains highest wear buckets", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		g.Deposit(laser, 3, 0)
		g.Deposit(laser, 2, 5)

		removed := g.Remove(laser, 4, true, nil)

		assert.Equal(t, 4, removed)
		assert.Equal(t, map[int]int{0: 1}, g.Find(laser), "wear 5 fully removed, wear 0 reduced to 1")
		assertInvariants(t, g)
	})

	t.Run("least worn first drains lowest wear buckets", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		g.Deposit(laser, 3, 0)
		g.Deposit(laser, 2, 5)

		removed := g.Remove(laser, 4, false, nil)

		assert.Equal(t, 4, removed)
		assert.Equal(t, map[int]int{5: 1}, g.Find(laser))
	})

	t.Run("caps removal at available stock", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		g.Deposit(laser, 3, 2)

		removed := g.Remove(laser, 10, true, nil)

		assert.Equal(t, 3, removed, "returns the short count rather than erroring")
		assert.Equal(t, 0, g.Count(laser))
		assert.True(t, g.Empty(), "emptied ledger is erased from the group")
	})

	t.Run("removing from absent outfit returns zero", func(t *testing.T) {
		g := testGroup()
		assert.Equal(t, 0, g.Remove(testLaser(), 5, true, nil))
	})

	t.Run("deposits removed units into destination at original wear", func(t *testing.T) {
		src := testGroup()
		dst := testGroup()
		laser := testLaser()
		src.Deposit(laser, 3, 0)
		src.Deposit(laser, 2, 5)

		removed := src.Remove(laser, 4, true, dst)

		assert.Equal(t, 4, removed)
		assert.Equal(t, map[int]int{0: 1}, src.Find(laser))
		assert.Equal(t, map[int]int{0: 2, 5: 2}, dst.Find(laser), "wear levels preserved on transfer")
		assertInvariants(t, src)
		assertInvariants(t, dst)
	})

	t.Run("conservation across add and remove sequences", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()

		g.Deposit(laser, 10, 0)
		g.Deposit(laser, 5, 3)
		g.Remove(laser, 7, true, nil)
		g.Deposit(laser, 2, 1)
		g.Remove(laser, 4, false, nil)

		assert.Equal(t, 10+5-7+2-4, g.Count(laser))
		assertInvariants(t, g)
	})
}

func TestGroupQueries(t *testing.T) {
	t.Run("find returns nil for absent outfit", func(t *testing.T) {
		g := testGroup()
		assert.Nil(t, g.Find(testLaser()))
	})

	t.Run("find returns a copy callers cannot corrupt", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		g.Deposit(laser, 3, 0)

		view := g.Find(laser)
		view[0] = 0
		view[99] = -5

		assert.Equal(t, 3, g.Count(laser))
		assert.Equal(t, map[int]int{0: 3}, g.Find(laser))
	})

	t.Run("min and max wear", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		g.Deposit(laser, 1, 3)
		g.Deposit(laser, 1, 17)
		g.Deposit(laser, 1, 8)

		assert.Equal(t, 3, g.MinWear(laser))
		assert.Equal(t, 17, g.MaxWear(laser))
	})

	t.Run("min and max wear sentinel for absent outfit", func(t *testing.T) {
		g := testGroup()
		assert.Equal(t, WearNone, g.MinWear(testLaser()))
		assert.Equal(t, WearNone, g.MaxWear(testLaser()))
	})

	t.Run("total attribute sums quantity weighted values", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		turret := outfit.New("Blaster Turret", "Turrets", 99000, map[string]float64{"mass": 23})
		g.Deposit(laser, 2, 0)
		g.Deposit(laser, 1, 5)
		g.Deposit(turret, 1, 0)

		assert.InDelta(t, 6*3+23*1, g.TotalAttribute("mass"), 1e-9)
		assert.Zero(t, g.TotalAttribute("no such attribute"))
	})

	t.Run("total cost depreciates per bucket", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		g.Deposit(laser, 2, 0)
		g.Deposit(laser, 1, 1)

		// 2 pristine at 1000 plus 1 at 900
		assert.Equal(t, int64(2900), g.TotalCost())
		assert.Equal(t, int64(2900), g.TotalCostOf(laser))
	})

	t.Run("total cost of restricted to one outfit", func(t *testing.T) {
		g := testGroup()
		laser := testLaser()
		turret := outfit.New("Blaster Turret", "Turrets", 99000, nil)
		g.Deposit(laser, 1, 0)
		g.Deposit(turret, 1, 0)

		assert.Equal(t, int64(1000), g.TotalCostOf(laser))
		assert.Equal(t, int64(100000), g.TotalCost())
	})

	t.Run("clear discards everything", func(t *testing.T) {
		g := testGroup()
		g.Deposit(testLaser(), 5, 2)

		g.Clear()

		assert.True(t, g.Empty())
	})
}

func TestGroupCostOf(t *testing.T) {
	g := testGroup()
	laser := testLaser()
	g.Deposit(laser, 3, 0) // 1000 each
	g.Deposit(laser, 2, 1) // 900 each

	t.Run("most worn first prices worn stock", func(t *testing.T) {
		assert.Equal(t, int64(900), g.CostOf(laser, 1, true))
		assert.Equal(t, int64(2800), g.CostOf(laser, 3, true), "two at 900 then one at 1000")
	})

	t.Run("least worn first prices pristine stock", func(t *testing.T) {
		assert.Equal(t, int64(1000), g.CostOf(laser, 1, false))
		assert.Equal(t, int64(3900), g.CostOf(laser, 4, false), "three at 1000 then one at 900")
	})

	t.Run("caps at available stock", func(t *testing.T) {
		assert.Equal(t, int64(4800), g.CostOf(laser, 100, true))
	})

	t.Run("absent outfit quotes zero", func(t *testing.T) {
		assert.Zero(t, g.CostOf(outfit.New("Ghost", "Guns", 500, nil), 2, true))
	})

	t.Run("quoting does not mutate the store", func(t *testing.T) {
		assert.Equal(t, 5, g.Count(laser))
		assert.Equal(t, map[int]int{0: 3, 1: 2}, g.Find(laser))
	})
}
