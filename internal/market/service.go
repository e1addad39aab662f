package market

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/skyhold/outfitledger/internal/depreciation"
	"github.com/skyhold/outfitledger/internal/inventory"
	"github.com/skyhold/outfitledger/internal/logger"
	"github.com/skyhold/outfitledger/internal/metrics"
	"github.com/skyhold/outfitledger/internal/outfit"
)

// Common market errors
var (
	ErrHolderNotFound    = errors.New(ErrMsgHolderNotFound)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrInvalidQuantity   = errors.New(ErrMsgInvalidQuantity)
	ErrSameHolder        = errors.New(ErrMsgSameHolder)
)

// QuoteResult prices a prospective trade without committing it
type QuoteResult struct {
	Outfit   string `json:"outfit"`
	Quantity int    `json:"quantity"`
	Total    int64  `json:"total"`
}

// BuyResult is the outcome of a purchase
type BuyResult struct {
	Quantity     int   `json:"quantity"`
	Wear         int   `json:"wear"`
	CreditsSpent int64 `json:"credits_spent"`
}

// SellResult is the outcome of a sale
type SellResult struct {
	Quantity      int   `json:"quantity"`
	CreditsEarned int64 `json:"credits_earned"`
}

// PlunderResult is the outcome of a boarding action
type PlunderResult struct {
	Quantity  int `json:"quantity"`
	WearAdded int `json:"wear_added"`
}

// Service defines the interface for market and fleet operations
type Service interface {
	CreateHolder(ctx context.Context, name string) (*Holder, error)
	GetHolder(ctx context.Context, holderID string) (*Holder, error)
	Holdings(ctx context.Context, holderID string) ([]Holding, error)
	Quote(ctx context.Context, holderID, outfitName string, quantity int, selling bool) (*QuoteResult, error)
	Buy(ctx context.Context, holderID, outfitName string, quantity int, used bool) (*BuyResult, error)
	Sell(ctx context.Context, holderID, outfitName string, quantity int) (*SellResult, error)
	Give(ctx context.Context, fromID, toID, outfitName string, quantity int, mostWornFirst bool) (int, error)
	Plunder(ctx context.Context, fromID, toID, outfitName string, quantity int) (*PlunderResult, error)
	AgeFleet(ctx context.Context, days int) error
}

type unitCostKey struct {
	outfitName string
	wear       int
}

type service struct {
	mu       sync.RWMutex
	registry *outfit.Registry
	model    depreciation.Model
	rng      depreciation.Rand
	holders  map[string]*Holder
	unitCost *lru.Cache[unitCostKey, int64]
}

// NewService creates a new market service. The rng drives randomized wear
// for used purchases and plunder damage; tests pass a deterministic stub.
func NewService(registry *outfit.Registry, model depreciation.Model, rng depreciation.Rand) (Service, error) {
	cache, err := lru.New[unitCostKey, int64](unitCostCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit cost cache: %w", err)
	}
	return &service{
		registry: registry,
		model:    model,
		rng:      rng,
		holders:  make(map[string]*Holder),
		unitCost: cache,
	}, nil
}

func (s *service) CreateHolder(ctx context.Context, name string) (*Holder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	holder := newHolder(name, s.model)
	s.holders[holder.ID] = holder

	logger.FromContext(ctx).Info(LogMsgHolderCreated, "holder_id", holder.ID, "name", name)
	return holder, nil
}

func (s *service) GetHolder(_ context.Context, holderID string) (*Holder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.holder(holderID)
}

// holder looks up a holder; callers must hold the lock
func (s *service) holder(holderID string) (*Holder, error) {
	h, ok := s.holders[holderID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHolderNotFound, holderID)
	}
	return h, nil
}

func (s *service) Holdings(_ context.Context, holderID string) ([]Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.holder(holderID)
	if err != nil {
		return nil, err
	}

	holdings := []Holding{}
	for c := h.Group.All(); c.Next(); {
		holdings = append(holdings, Holding{
			Outfit:    c.Outfit().Name(),
			Wear:      c.Wear(),
			Quantity:  c.Quantity(),
			UnitCost:  s.cachedUnitCost(c.Outfit(), c.Wear()),
			TotalCost: c.TotalCost(),
			CostRatio: c.CostRatioString(),
		})
	}
	return holdings, nil
}

// cachedUnitCost memoizes the depreciated unit cost per (outfit, wear).
// The curve is pure, so entries never invalidate.
func (s *service) cachedUnitCost(o *outfit.Outfit, wear int) int64 {
	key := unitCostKey{outfitName: o.Name(), wear: wear}
	if cost, ok := s.unitCost.Get(key); ok {
		return cost
	}
	cost := s.model.Cost(o, wear)
	s.unitCost.Add(key, cost)
	return cost
}

func (s *service) Quote(_ context.Context, holderID, outfitName string, quantity int, selling bool) (*QuoteResult, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.holder(holderID)
	if err != nil {
		return nil, err
	}
	o, err := s.registry.Get(outfitName)
	if err != nil {
		return nil, err
	}

	if !selling {
		// Buy quotes price factory-new units.
		return &QuoteResult{Outfit: outfitName, Quantity: quantity, Total: o.BaseCost() * int64(quantity)}, nil
	}

	// Sell quotes price the holder's own stock, most-worn drained first, and
	// cover only what the holder actually has.
	held := h.Group.Count(o)
	if held < quantity {
		quantity = held
	}
	return &QuoteResult{
		Outfit:   outfitName,
		Quantity: quantity,
		Total:    h.Group.CostOf(o, quantity, true),
	}, nil
}

func (s *service) Buy(ctx context.Context, holderID, outfitName string, quantity int, used bool) (*BuyResult, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.holder(holderID)
	if err != nil {
		return nil, err
	}
	o, err := s.registry.Get(outfitName)
	if err != nil {
		return nil, err
	}

	wear := 0
	if used {
		wear = s.model.UsedWear(s.rng)
	}
	cost := s.model.Cost(o, wear) * int64(quantity)
	added := h.Group.Deposit(o, quantity, wear)

	metrics.OutfitsBought.WithLabelValues(outfitName).Add(float64(added))
	metrics.CreditsSpent.Add(float64(cost))
	logger.FromContext(ctx).Info(LogMsgOutfitsBought,
		"holder_id", holderID, "outfit", outfitName, "quantity", added, "wear", wear, "cost", cost)

	return &BuyResult{Quantity: added, Wear: wear, CreditsSpent: cost}, nil
}

func (s *service) Sell(ctx context.Context, holderID, outfitName string, quantity int) (*SellResult, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.holder(holderID)
	if err != nil {
		return nil, err
	}
	o, err := s.registry.Get(outfitName)
	if err != nil {
		return nil, err
	}

	if h.Group.Count(o) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, outfitName)
	}

	// Price before removing; the quote and the removal walk buckets in the
	// same most-worn-first order, so proceeds match the committed units.
	proceeds := h.Group.CostOf(o, quantity, true)
	sold := h.Group.Withdraw(o, quantity, true)

	metrics.OutfitsSold.WithLabelValues(outfitName).Add(float64(sold))
	metrics.CreditsEarned.Add(float64(proceeds))
	logger.FromContext(ctx).Info(LogMsgOutfitsSold,
		"holder_id", holderID, "outfit", outfitName, "quantity", sold, "proceeds", proceeds)

	return &SellResult{Quantity: sold, CreditsEarned: proceeds}, nil
}

func (s *service) Give(ctx context.Context, fromID, toID, outfitName string, quantity int, mostWornFirst bool) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if fromID == toID {
		return 0, ErrSameHolder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.holder(fromID)
	if err != nil {
		return 0, err
	}
	to, err := s.holder(toID)
	if err != nil {
		return 0, err
	}
	o, err := s.registry.Get(outfitName)
	if err != nil {
		return 0, err
	}

	moved := from.Group.Move(o, quantity, to.Group, mostWornFirst)
	metrics.OutfitsTransferred.WithLabelValues(outfitName).Add(float64(moved))
	logger.FromContext(ctx).Debug("Outfits transferred",
		"from", fromID, "to", toID, "outfit", outfitName, "quantity", moved)

	return moved, nil
}

func (s *service) Plunder(ctx context.Context, fromID, toID, outfitName string, quantity int) (*PlunderResult, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if fromID == toID {
		return nil, ErrSameHolder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.holder(fromID)
	if err != nil {
		return nil, err
	}
	to, err := s.holder(toID)
	if err != nil {
		return nil, err
	}
	o, err := s.registry.Get(outfitName)
	if err != nil {
		return nil, err
	}

	// Boarders strip the least-worn units first; the disabling fight then
	// adds plunder wear to everything taken. Staging through a scratch group
	// keeps the damage off units that stayed behind.
	loot := inventory.NewGroup(s.model)
	taken := from.Group.Move(o, quantity, loot, false)
	if taken == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, outfitName)
	}

	wearAdded := s.model.PlunderWear(s.rng)
	loot.IncrementWear(wearAdded)
	loot.Move(o, taken, to.Group, false)

	metrics.OutfitsPlundered.WithLabelValues(outfitName).Add(float64(taken))
	logger.FromContext(ctx).Info(LogMsgPlundered,
		"from", fromID, "to", toID, "outfit", outfitName, "quantity", taken, "wear_added", wearAdded)

	return &PlunderResult{Quantity: taken, WearAdded: wearAdded}, nil
}

func (s *service) AgeFleet(ctx context.Context, days int) error {
	if days <= 0 {
		return fmt.Errorf("%w: %d days", ErrInvalidQuantity, days)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.holders {
		h.Group.IncrementWear(days)
	}

	metrics.WearDaysApplied.Add(float64(days))
	logger.FromContext(ctx).Info(LogMsgFleetAged, "days", days, "holders", len(s.holders))
	return nil
}
