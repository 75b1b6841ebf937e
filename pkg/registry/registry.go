// Package registry implements the owner side of the ground overlay
// contract: an id-keyed collection with uniqueness enforcement, set
// serialization and diffing, tap dispatch back into overlay callbacks,
// and an R-Tree index for region queries over overlay extents.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kass/go-map-overlay/pkg/overlay"
)

var (
	// ErrDuplicateID is returned by Add when the registry already holds
	// an overlay with the same identifier.
	ErrDuplicateID = errors.New("duplicate ground overlay id")
	// ErrUnknownID is returned when no overlay with the given
	// identifier is registered.
	ErrUnknownID = errors.New("unknown ground overlay id")
)

// Registry owns a collection of ground overlays keyed by identifier.
// Overlays themselves are immutable and freely shareable; the registry
// is not safe for concurrent mutation.
type Registry struct {
	overlays map[overlay.GroundOverlayID]*overlay.GroundOverlay
	index    *extentIndex
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		overlays: make(map[overlay.GroundOverlayID]*overlay.GroundOverlay),
		index:    newExtentIndex(),
	}
}

// Add registers a new overlay. The identifier must not already be
// present; this is where the id-uniqueness contract is enforced.
func (r *Registry) Add(g *overlay.GroundOverlay) error {
	if g == nil {
		return errors.New("nil ground overlay")
	}
	if _, exists := r.overlays[g.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, g.ID())
	}
	r.overlays[g.ID()] = g
	r.index.insert(g)
	return nil
}

// Update replaces the registered overlay carrying the same identifier.
func (r *Registry) Update(g *overlay.GroundOverlay) error {
	if g == nil {
		return errors.New("nil ground overlay")
	}
	if _, exists := r.overlays[g.ID()]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownID, g.ID())
	}
	r.index.remove(g.ID())
	r.overlays[g.ID()] = g
	r.index.insert(g)
	return nil
}

// Remove unregisters the overlay with the given identifier.
func (r *Registry) Remove(id overlay.GroundOverlayID) error {
	if _, exists := r.overlays[id]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	r.index.remove(id)
	delete(r.overlays, id)
	return nil
}

// Get returns the overlay registered under the identifier.
func (r *Registry) Get(id overlay.GroundOverlayID) (*overlay.GroundOverlay, bool) {
	g, ok := r.overlays[id]
	return g, ok
}

// Len returns the number of registered overlays.
func (r *Registry) Len() int {
	return len(r.overlays)
}

// Overlays returns the registered overlays sorted by identifier.
func (r *Registry) Overlays() []*overlay.GroundOverlay {
	out := make([]*overlay.GroundOverlay, 0, len(r.overlays))
	for _, g := range r.overlays {
		out = append(out, g)
	}
	sortByID(out)
	return out
}

// DispatchTap routes a tap on the identified overlay back into its
// callback. The callback only fires when the overlay consumes tap
// events. Returns true when the tap was consumed, false when it should
// fall through to the map.
func (r *Registry) DispatchTap(id overlay.GroundOverlayID) bool {
	g, ok := r.overlays[id]
	if !ok || !g.ConsumeTapEvents() {
		return false
	}
	if onTap := g.OnTap(); onTap != nil {
		onTap()
	}
	return true
}

// Serialize projects the whole collection into wire form, one JSON
// snapshot per call, sorted by identifier.
func (r *Registry) Serialize() []map[string]any {
	return SerializeSet(r.Overlays())
}

// SerializeSet projects a slice of overlays into wire form in the
// given order.
func SerializeSet(overlays []*overlay.GroundOverlay) []map[string]any {
	out := make([]map[string]any, 0, len(overlays))
	for _, g := range overlays {
		if g == nil {
			continue
		}
		out = append(out, g.ToJSON())
	}
	return out
}

func sortByID(overlays []*overlay.GroundOverlay) {
	sort.Slice(overlays, func(i, j int) bool {
		return overlays[i].ID().String() < overlays[j].ID().String()
	})
}
