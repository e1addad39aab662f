package outfit

// Category labels referenced by the pricing rules
const (
	CategoryAmmunition = "Ammunition"
)

// AttrAgeless is the attribute flag exempting an outfit from depreciation
const AttrAgeless = "ageless"

// Outfit is an immutable equipment definition. Code throughout the system
// compares outfits by pointer identity: the Registry owns the canonical
// instance for each name and everything else holds *Outfit references.
type Outfit struct {
	name       string
	category   string
	baseCost   int64
	attributes map[string]float64
}

// New creates an outfit definition. The attribute map is copied so the
// returned outfit cannot be mutated through the caller's map.
func New(name, category string, baseCost int64, attributes map[string]float64) *Outfit {
	attrs := make(map[string]float64, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}
	return &Outfit{
		name:       name,
		category:   category,
		baseCost:   baseCost,
		attributes: attrs,
	}
}

// Name returns the outfit's unique name
func (o *Outfit) Name() string { return o.name }

// Category returns the outfit's category label
func (o *Outfit) Category() string { return o.category }

// BaseCost returns the undepreciated cost in credits
func (o *Outfit) BaseCost() int64 { return o.baseCost }

// Get returns a named numeric attribute, or 0 when the outfit doesn't have it
func (o *Outfit) Get(attribute string) float64 {
	return o.attributes[attribute]
}

// Ageless reports whether the outfit is flagged as never depreciating
func (o *Outfit) Ageless() bool {
	return o.attributes[AttrAgeless] != 0
}
