package overlay

import "encoding/json"

// ToJSON projects the overlay into its wire form. Value-typed fields
// are always written, including semantically unused defaults such as
// the location field in bounds mode; only genuinely optional fields
// (bounds) are omitted when absent. The tap callback is a local
// concern and never serializes.
func (g *GroundOverlay) ToJSON() map[string]any {
	wire := map[string]any{
		"groundOverlayId":  g.id.value,
		"consumeTapEvents": g.consumeTapEvents,
		"transparency":     g.transparency,
		"bearing":          g.bearing,
		"visible":          g.visible,
		"zIndex":           g.zIndex,
		"height":           g.height,
		"anchor":           g.anchor.ToJSON(),
		"bitmap":           g.bitmap.ToJSON(),
		"width":            g.width,
		"location":         g.location.ToJSON(),
	}
	if g.bounds != nil {
		wire["bounds"] = g.bounds.ToJSON()
	}
	return wire
}

// MarshalJSON encodes the ToJSON projection.
func (g *GroundOverlay) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.ToJSON())
}
