package registry

import (
	"github.com/kass/go-map-overlay/pkg/overlay"
)

// Delta is the difference between two overlay sets, keyed by
// identifier: overlays to add, overlays whose fields changed, and ids
// to remove. The rendering host applies a Delta instead of re-sending
// the whole set.
type Delta struct {
	ToAdd    []*overlay.GroundOverlay
	ToChange []*overlay.GroundOverlay
	ToRemove []overlay.GroundOverlayID
}

// Diff computes the delta that turns the previous overlay set into the
// current one. Later duplicates of an id within a slice win. Change
// detection uses full structural equality, so a CopyWith that touched
// any field marks the overlay as changed.
func Diff(previous, current []*overlay.GroundOverlay) Delta {
	prevByID := keyByID(previous)
	currByID := keyByID(current)

	var d Delta
	for _, g := range current {
		if g == nil || currByID[g.ID()] != g {
			continue
		}
		prev, existed := prevByID[g.ID()]
		switch {
		case !existed:
			d.ToAdd = append(d.ToAdd, g)
		case !prev.Equal(g):
			d.ToChange = append(d.ToChange, g)
		}
	}
	for _, g := range previous {
		if g == nil || prevByID[g.ID()] != g {
			continue
		}
		if _, kept := currByID[g.ID()]; !kept {
			d.ToRemove = append(d.ToRemove, g.ID())
		}
	}
	return d
}

// IsEmpty reports whether applying the delta would be a no-op.
func (d Delta) IsEmpty() bool {
	return len(d.ToAdd) == 0 && len(d.ToChange) == 0 && len(d.ToRemove) == 0
}

// ToJSON projects the delta into its wire form.
func (d Delta) ToJSON() map[string]any {
	ids := make([]string, 0, len(d.ToRemove))
	for _, id := range d.ToRemove {
		ids = append(ids, id.String())
	}
	return map[string]any{
		"groundOverlaysToAdd":      SerializeSet(d.ToAdd),
		"groundOverlaysToChange":   SerializeSet(d.ToChange),
		"groundOverlayIdsToRemove": ids,
	}
}

// keyByID indexes a slice of overlays by identifier; later entries win.
func keyByID(overlays []*overlay.GroundOverlay) map[overlay.GroundOverlayID]*overlay.GroundOverlay {
	byID := make(map[overlay.GroundOverlayID]*overlay.GroundOverlay, len(overlays))
	for _, g := range overlays {
		if g != nil {
			byID[g.ID()] = g
		}
	}
	return byID
}
