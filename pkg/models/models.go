// Package models holds the geographic and image value types that map
// overlays are composed of. All types are plain comparable values with
// a JSON projection matching the wire shape the rendering host expects.
package models

// Location represents a geographic point with latitude and longitude
// in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToJSON returns the wire form of the location.
func (l Location) ToJSON() map[string]any {
	return map[string]any{
		"latitude":  l.Latitude,
		"longitude": l.Longitude,
	}
}

// BoundingBox represents a geographic rectangle defined by its
// southwest and northeast corners.
type BoundingBox struct {
	Southwest Location `json:"southwest"`
	Northeast Location `json:"northeast"`
}

// ToJSON returns the wire form of the box.
func (b BoundingBox) ToJSON() map[string]any {
	return map[string]any{
		"southwest": b.Southwest.ToJSON(),
		"northeast": b.Northeast.ToJSON(),
	}
}

// Contains reports whether the location lies within the box, edges
// included.
func (b BoundingBox) Contains(l Location) bool {
	return l.Latitude >= b.Southwest.Latitude && l.Latitude <= b.Northeast.Latitude &&
		l.Longitude >= b.Southwest.Longitude && l.Longitude <= b.Northeast.Longitude
}

// Intersects reports whether two boxes overlap, edges included.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Southwest.Latitude <= other.Northeast.Latitude &&
		b.Northeast.Latitude >= other.Southwest.Latitude &&
		b.Southwest.Longitude <= other.Northeast.Longitude &&
		b.Northeast.Longitude >= other.Southwest.Longitude
}

// Offset is a fractional position within an image, (0,0) being the
// top-left corner and (1,1) the bottom-right.
type Offset struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// ToJSON returns the wire form of the offset: an ordered [dx, dy] pair.
func (o Offset) ToJSON() []any {
	return []any{o.DX, o.DY}
}
