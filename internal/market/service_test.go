package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhold/outfitledger/internal/depreciation"
	"github.com/skyhold/outfitledger/internal/outfit"
)

// stubRand always returns a fixed value for deterministic wear
type stubRand struct {
	value int
}

func (s *stubRand) Intn(n int) int {
	return s.value % n
}

func testRegistry(t *testing.T) *outfit.Registry {
	t.Helper()
	loader := outfit.NewLoader()
	config := &outfit.Config{
		Version: "test",
		Outfits: []outfit.Def{
			{Name: "Beam Laser", Category: "Guns", BaseCost: 1000, Attributes: map[string]float64{"mass": 6}},
			{Name: "Meteor Missile", Category: "Ammunition", BaseCost: 100},
			{Name: "Hyperdrive", Category: "Systems", BaseCost: 50000, Attributes: map[string]float64{"ageless": 1}},
		},
	}
	registry, err := loader.BuildRegistry(context.Background(), config)
	require.NoError(t, err)
	return registry
}

func testService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(testRegistry(t), depreciation.DefaultModel(), &stubRand{})
	require.NoError(t, err)
	return svc
}

func TestCreateAndGetHolder(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)

	holder, err := svc.CreateHolder(ctx, "Flagship")
	require.NoError(t, err)
	assert.NotEmpty(t, holder.ID)
	assert.Equal(t, "Flagship", holder.Name)

	got, err := svc.GetHolder(ctx, holder.ID)
	require.NoError(t, err)
	assert.Equal(t, holder.ID, got.ID)

	_, err = svc.GetHolder(ctx, "no-such-holder")
	assert.ErrorIs(t, err, ErrHolderNotFound)
}

func TestBuy(t *testing.T) {
	ctx := context.Background()

	t.Run("new outfits arrive pristine at full price", func(t *testing.T) {
		svc := testService(t)
		holder, _ := svc.CreateHolder(ctx, "Flagship")

		result, err := svc.Buy(ctx, holder.ID, "Beam Laser", 3, false)
		require.NoError(t, err)

		assert.Equal(t, 3, result.Quantity)
		assert.Equal(t, 0, result.Wear)
		assert.Equal(t, int64(3000), result.CreditsSpent)
		assert.Equal(t, 3, holder.Group.Count(mustOutfit(t, svc, "Beam Laser")))
	})

	t.Run("used outfits arrive at randomized wear and discounted price", func(t *testing.T) {
		registry := testRegistry(t)
		// Zero draw lands on the bottom of the used range: wear 50.
		svc, err := NewService(registry, depreciation.DefaultModel(), &stubRand{value: 0})
		require.NoError(t, err)
		holder, _ := svc.CreateHolder(ctx, "Flagship")

		result, err := svc.Buy(ctx, holder.ID, "Beam Laser", 2, true)
		require.NoError(t, err)

		assert.Equal(t, 50, result.Wear)
		// 1000 * (0.90 - 0.0020*49) = 802 per unit
		assert.Equal(t, int64(1604), result.CreditsSpent)
	})

	t.Run("rejects unknown outfit and holder", func(t *testing.T) {
		svc := testService(t)
		holder, _ := svc.CreateHolder(ctx, "Flagship")

		_, err := svc.Buy(ctx, holder.ID, "Ghost Cannon", 1, false)
		assert.ErrorIs(t, err, outfit.ErrOutfitNotFound)

		_, err = svc.Buy(ctx, "nope", "Beam Laser", 1, false)
		assert.ErrorIs(t, err, ErrHolderNotFound)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc := testService(t)
		holder, _ := svc.CreateHolder(ctx, "Flagship")

		_, err := svc.Buy(ctx, holder.ID, "Beam Laser", 0, false)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestSell(t *testing.T) {
	ctx := context.Background()

	t.Run("sells most worn first and proceeds match the quote", func(t *testing.T) {
		svc := testService(t)
		holder, _ := svc.CreateHolder(ctx, "Flagship")
		o := mustOutfit(t, svc, "Beam Laser")
		holder.Group.Deposit(o, 3, 0)
		holder.Group.Deposit(o, 2, 1)

		quote, err := svc.Quote(ctx, holder.ID, "Beam Laser", 3, true)
		require.NoError(t, err)

		result, err := svc.Sell(ctx, holder.ID, "Beam Laser", 3)
		require.NoError(t, err)

		assert.Equal(t, 3, result.Quantity)
		assert.Equal(t, quote.Total, result.CreditsEarned)
		// Both wear-1 units went first, then one pristine.
		assert.Equal(t, int64(900+900+1000), result.CreditsEarned)
		assert.Equal(t, map[int]int{0: 2}, holder.Group.Find(o))
	})

	t.Run("partial sale caps at held stock", func(t *testing.T) {
		svc := testService(t)
		holder, _ := svc.CreateHolder(ctx, "Flagship")
		holder.Group.Deposit(mustOutfit(t, svc, "Beam Laser"), 2, 0)

		result, err := svc.Sell(ctx, holder.ID, "Beam Laser", 10)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Quantity)
	})

	t.Run("selling with no stock is an error", func(t *testing.T) {
		svc := testService(t)
		holder, _ := svc.CreateHolder(ctx, "Flagship")

		_, err := svc.Sell(ctx, holder.ID, "Beam Laser", 1)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	holder, _ := svc.CreateHolder(ctx, "Flagship")

	t.Run("buy quote prices factory new units", func(t *testing.T) {
		quote, err := svc.Quote(ctx, holder.ID, "Beam Laser", 4, false)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), quote.Total)
		assert.Equal(t, 4, quote.Quantity)
	})

	t.Run("sell quote covers only held stock", func(t *testing.T) {
		holder.Group.Deposit(mustOutfit(t, svc, "Beam Laser"), 2, 1)

		quote, err := svc.Quote(ctx, holder.ID, "Beam Laser", 5, true)
		require.NoError(t, err)
		assert.Equal(t, 2, quote.Quantity)
		assert.Equal(t, int64(1800), quote.Total)
	})
}

func TestGive(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	a, _ := svc.CreateHolder(ctx, "Flagship")
	b, _ := svc.CreateHolder(ctx, "Freighter")
	o := mustOutfit(t, svc, "Beam Laser")
	a.Group.Deposit(o, 3, 2)

	t.Run("moves units at their current wear", func(t *testing.T) {
		moved, err := svc.Give(ctx, a.ID, b.ID, "Beam Laser", 2, true)
		require.NoError(t, err)
		assert.Equal(t, 2, moved)
		assert.Equal(t, 1, a.Group.Count(o))
		assert.Equal(t, map[int]int{2: 2}, b.Group.Find(o))
	})

	t.Run("rejects giving to self", func(t *testing.T) {
		_, err := svc.Give(ctx, a.ID, a.ID, "Beam Laser", 1, true)
		assert.ErrorIs(t, err, ErrSameHolder)
	})
}

func TestPlunder(t *testing.T) {
	ctx := context.Background()

	t.Run("conserves units and adds plunder wear to the taken ones", func(t *testing.T) {
		registry := testRegistry(t)
		svc, err := NewService(registry, depreciation.DefaultModel(), &stubRand{value: 0})
		require.NoError(t, err)
		victim, _ := svc.CreateHolder(ctx, "Victim")
		raider, _ := svc.CreateHolder(ctx, "Raider")
		o, err := registry.Get("Beam Laser")
		require.NoError(t, err)
		victim.Group.Deposit(o, 4, 3)

		result, err := svc.Plunder(ctx, victim.ID, raider.ID, "Beam Laser", 3)
		require.NoError(t, err)

		// Zero draw lands on the bottom of the plunder range: wear 175.
		assert.Equal(t, 3, result.Quantity)
		assert.Equal(t, 175, result.WearAdded)
		assert.Equal(t, 1, victim.Group.Count(o), "untaken units keep their wear")
		assert.Equal(t, map[int]int{3: 1}, victim.Group.Find(o))
		assert.Equal(t, map[int]int{178: 3}, raider.Group.Find(o), "taken units aged by plunder wear")
	})

	t.Run("plundering empty stock is an error", func(t *testing.T) {
		svc := testService(t)
		victim, _ := svc.CreateHolder(ctx, "Victim")
		raider, _ := svc.CreateHolder(ctx, "Raider")

		_, err := svc.Plunder(ctx, victim.ID, raider.ID, "Beam Laser", 1)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})
}

func TestAgeFleet(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	a, _ := svc.CreateHolder(ctx, "Flagship")
	b, _ := svc.CreateHolder(ctx, "Freighter")
	o := mustOutfit(t, svc, "Beam Laser")
	a.Group.Deposit(o, 2, 0)
	b.Group.Deposit(o, 1, 5)

	require.NoError(t, svc.AgeFleet(ctx, 3))

	assert.Equal(t, map[int]int{3: 2}, a.Group.Find(o))
	assert.Equal(t, map[int]int{8: 1}, b.Group.Find(o))

	assert.ErrorIs(t, svc.AgeFleet(ctx, 0), ErrInvalidQuantity)
}

func TestHoldings(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	holder, _ := svc.CreateHolder(ctx, "Flagship")
	o := mustOutfit(t, svc, "Beam Laser")
	holder.Group.Deposit(o, 2, 0)
	holder.Group.Deposit(o, 1, 1)

	holdings, err := svc.Holdings(ctx, holder.ID)
	require.NoError(t, err)

	require.Len(t, holdings, 2)
	assert.Equal(t, Holding{
		Outfit:    "Beam Laser",
		Wear:      0,
		Quantity:  2,
		UnitCost:  1000,
		TotalCost: 2000,
		CostRatio: "90%-100%",
	}, holdings[0])
	assert.Equal(t, int64(900), holdings[1].UnitCost)
}

// mustOutfit resolves an outfit through the service's registry for test setup
func mustOutfit(t *testing.T, svc Service, name string) *outfit.Outfit {
	t.Helper()
	o, err := svc.(*service).registry.Get(name)
	require.NoError(t, err)
	return o
}
