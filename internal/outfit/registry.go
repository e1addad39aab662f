package outfit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOutfitNotFound is returned when a name has no registered outfit
var ErrOutfitNotFound = errors.New("outfit not found")

// Registry holds the canonical *Outfit instance for each outfit name.
// It is populated once at startup and read-only afterwards.
type Registry struct {
	byName map[string]*Outfit
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Outfit)}
}

func (r *Registry) add(o *Outfit) {
	r.byName[o.Name()] = o
}

// Get returns the canonical outfit for a name
func (r *Registry) Get(name string) (*Outfit, error) {
	o, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf(ErrFmtOutfitLookupFailed, ErrOutfitNotFound, name)
	}
	return o, nil
}

// Len returns the number of registered outfits
func (r *Registry) Len() int {
	return len(r.byName)
}

// Names returns all registered outfit names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
