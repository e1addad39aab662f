package depreciation

import (
	"errors"
	"fmt"
	"math"

	"github.com/skyhold/outfitledger/internal/outfit"
)

// Default cost-curve constants. An outfit is worth its full base cost at
// wear 0, drops to MaxValue of base cost after the first wear step, then
// loses LossPerWear of base cost per further step until it bottoms out at
// MinValue of base cost.
const (
	DefaultMinValue    = 0.40
	DefaultMaxValue    = 0.90
	DefaultLossPerWear = 0.0020
)

// Wear-range fractions for randomized acquisition scenarios
const (
	usedWearMin    = 0.2
	usedWearMax    = 0.5
	plunderWearMin = 0.7
	plunderWearMax = 0.9
)

// ErrInvalidModel is returned when cost-curve parameters are out of range
var ErrInvalidModel = errors.New("invalid depreciation model")

// Rand is the randomness capability used for randomized wear. *math/rand.Rand
// satisfies it; tests substitute a deterministic stub.
type Rand interface {
	Intn(n int) int
}

// Model is the cost-curve configuration. The zero value is not usable;
// construct with DefaultModel or NewModel.
type Model struct {
	MinValue    float64
	MaxValue    float64
	LossPerWear float64
}

// DefaultModel returns the standard cost curve
func DefaultModel() Model {
	return Model{
		MinValue:    DefaultMinValue,
		MaxValue:    DefaultMaxValue,
		LossPerWear: DefaultLossPerWear,
	}
}

// NewModel creates a validated cost curve
func NewModel(minValue, maxValue, lossPerWear float64) (Model, error) {
	if minValue <= 0 || minValue > 1 {
		return Model{}, fmt.Errorf("%w: min value %v not in (0,1]", ErrInvalidModel, minValue)
	}
	if maxValue < minValue || maxValue > 1 {
		return Model{}, fmt.Errorf("%w: max value %v not in [min,1]", ErrInvalidModel, maxValue)
	}
	if lossPerWear <= 0 {
		return Model{}, fmt.Errorf("%w: loss per wear %v must be positive", ErrInvalidModel, lossPerWear)
	}
	return Model{MinValue: minValue, MaxValue: maxValue, LossPerWear: lossPerWear}, nil
}

// ValueMultiplier returns the fraction of base cost an outfit retains at the
// given wear. Wear 0 is pristine and always worth the full base cost; the
// curve is linear after the first step and clamped at MinValue.
func (m Model) ValueMultiplier(wear int) float64 {
	if wear <= 0 {
		return 1.0
	}
	return math.Max(m.MinValue, m.MaxValue-m.LossPerWear*float64(wear-1))
}

// Cost returns the depreciated cost of one unit of an outfit at a given wear.
// Ageless outfits and ammunition never depreciate.
func (m Model) Cost(o *outfit.Outfit, wear int) int64 {
	if o.Ageless() || o.Category() == outfit.CategoryAmmunition {
		wear = 0
	}
	return int64(float64(o.BaseCost()) * m.ValueMultiplier(wear))
}

// FullDepreciationWear returns the wear level at which the curve reaches the
// MinValue floor.
func (m Model) FullDepreciationWear() float64 {
	return (m.MaxValue-m.MinValue)/m.LossPerWear + 1
}

// RandomWear returns a uniformly random wear level between the two given
// fractions of full depreciation.
func (m Model) RandomWear(rng Rand, minFraction, maxFraction float64) int {
	fullWear := m.FullDepreciationWear()
	minWear := int(fullWear * minFraction)
	maxWear := int(fullWear * maxFraction)
	if maxWear <= minWear {
		return minWear
	}
	return rng.Intn(maxWear-minWear) + minWear
}

// UsedWear returns a random wear between 20% and 50% depreciated, the range
// for outfits bought on the used market.
func (m Model) UsedWear(rng Rand) int {
	return m.RandomWear(rng, usedWearMin, usedWearMax)
}

// PlunderWear returns a random wear between 70% and 90% depreciated.
// Disabling a ship before plundering it adds that much more wear.
func (m Model) PlunderWear(rng Rand) int {
	return m.RandomWear(rng, plunderWearMin, plunderWearMax)
}
