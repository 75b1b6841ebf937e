package overlay

import (
	"hash/fnv"
	"reflect"
)

// Equal reports full structural equality: every field participates,
// including the tap callback. Callbacks compare by function identity;
// two overlays with different callbacks are unequal even when the
// callbacks behave identically.
func (g *GroundOverlay) Equal(other *GroundOverlay) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.id != other.id ||
		g.consumeTapEvents != other.consumeTapEvents ||
		g.location != other.location ||
		g.width != other.width ||
		g.height != other.height ||
		g.bearing != other.bearing ||
		g.anchor != other.anchor ||
		g.transparency != other.transparency ||
		g.visible != other.visible ||
		g.zIndex != other.zIndex {
		return false
	}
	if !g.bitmap.Equal(other.bitmap) {
		return false
	}
	if (g.bounds == nil) != (other.bounds == nil) {
		return false
	}
	if g.bounds != nil && *g.bounds != *other.bounds {
		return false
	}
	return sameCallback(g.onTap, other.onTap)
}

// sameCallback compares two callbacks by identity: both nil, or both
// pointing at the same function value.
func sameCallback(a, b func()) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Hash returns a 64-bit hash derived from the identifier alone, never
// from the other fields. This keeps an overlay in the same hash bucket
// across CopyWith revisions while Equal still distinguishes them; see
// the GroundOverlay doc comment.
func (g *GroundOverlay) Hash() uint64 {
	return g.id.Hash()
}

// Hash returns a 64-bit FNV-1a hash of the wrapped identifier.
func (id GroundOverlayID) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(id.value))
	return h.Sum64()
}
