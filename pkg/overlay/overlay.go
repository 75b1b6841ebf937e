// Package overlay implements the ground overlay value type: an
// immutable, geo-referenced image placement that a map surface renders.
// Instances are created through validating constructors and never
// mutated; derived instances are produced with CopyWith.
package overlay

import (
	"fmt"

	"github.com/kass/go-map-overlay/pkg/models"
)

// GroundOverlayID identifies a ground overlay within the collection
// that owns it. Uniqueness within that collection is the owner's
// responsibility, not enforced here.
type GroundOverlayID struct {
	value string
}

// NewGroundOverlayID wraps a string identifier.
func NewGroundOverlayID(value string) GroundOverlayID {
	return GroundOverlayID{value: value}
}

// String returns the wrapped identifier.
func (id GroundOverlayID) String() string {
	return id.value
}

// PositionMode names the active positioning variant of an overlay.
// Exactly one mode holds for every constructed overlay.
type PositionMode int

const (
	// PositionUnset leaves all positioning fields at their defaults.
	PositionUnset PositionMode = iota
	// PositionPointSize places the overlay at a location with explicit
	// width and height.
	PositionPointSize
	// PositionPointWidth places the overlay at a location with an
	// explicit width; height is derived by the renderer from the image
	// aspect ratio.
	PositionPointWidth
	// PositionBounds stretches the overlay over a geographic rectangle.
	PositionBounds
)

func (m PositionMode) String() string {
	switch m {
	case PositionPointSize:
		return "point+size"
	case PositionPointWidth:
		return "point+width"
	case PositionBounds:
		return "bounds"
	default:
		return "unset"
	}
}

// settings is the full mutable field set an overlay is built from.
// Options and Patch operations edit a settings value; GroundOverlay
// freezes one.
type settings struct {
	consumeTapEvents bool
	location         models.Location
	width            float64
	height           float64
	bounds           *models.BoundingBox
	bitmap           models.BitmapDescriptor
	bearing          float64
	anchor           models.Offset
	transparency     float64
	visible          bool
	zIndex           int
	onTap            func()
}

func defaultSettings() settings {
	return settings{
		visible: true,
		bitmap:  models.DefaultMarker(),
	}
}

// GroundOverlay is an immutable description of a geo-referenced image
// draped over the map surface.
//
// Identity and equality are deliberately asymmetric: Hash depends on
// the identifier alone, while Equal compares every field. Two overlays
// with the same id but different styling hash identically yet compare
// unequal. Owners bucketing overlays by hash rely on this.
type GroundOverlay struct {
	id   GroundOverlayID
	mode PositionMode
	settings
}

// Option overrides a single field during construction or CopyWith.
type Option func(*settings)

// WithConsumeTapEvents controls whether the overlay consumes tap
// events instead of letting them pass through to the map.
func WithConsumeTapEvents(consume bool) Option {
	return func(s *settings) { s.consumeTapEvents = consume }
}

// WithLocation places the overlay at a geographic point.
func WithLocation(location models.Location) Option {
	return func(s *settings) { s.location = location }
}

// WithWidth sets the overlay width in meters.
func WithWidth(width float64) Option {
	return func(s *settings) { s.width = width }
}

// WithHeight sets the overlay height in meters.
func WithHeight(height float64) Option {
	return func(s *settings) { s.height = height }
}

// WithBounds stretches the overlay over a geographic rectangle.
func WithBounds(bounds models.BoundingBox) Option {
	return func(s *settings) {
		b := bounds
		s.bounds = &b
	}
}

// WithoutBounds clears the bounds field back to absent.
func WithoutBounds() Option {
	return func(s *settings) { s.bounds = nil }
}

// WithBitmap sets the overlay image source.
func WithBitmap(bitmap models.BitmapDescriptor) Option {
	return func(s *settings) { s.bitmap = bitmap }
}

// WithBearing sets the clockwise rotation in degrees about the anchor.
func WithBearing(bearing float64) Option {
	return func(s *settings) { s.bearing = bearing }
}

// WithAnchor sets the fractional image offset used as the rotation and
// placement origin.
func WithAnchor(anchor models.Offset) Option {
	return func(s *settings) { s.anchor = anchor }
}

// WithTransparency sets the overlay transparency, 0.0 opaque through
// 1.0 fully transparent. The value is not range-checked.
func WithTransparency(transparency float64) Option {
	return func(s *settings) { s.transparency = transparency }
}

// WithVisible controls whether the overlay is drawn.
func WithVisible(visible bool) Option {
	return func(s *settings) { s.visible = visible }
}

// WithZIndex sets the draw-order key; lower values render beneath
// higher ones.
func WithZIndex(zIndex int) Option {
	return func(s *settings) { s.zIndex = zIndex }
}

// WithOnTap installs the callback the owner invokes when the overlay
// is tapped and consumes tap events. Callbacks never serialize.
func WithOnTap(onTap func()) Option {
	return func(s *settings) { s.onTap = onTap }
}

// New constructs a validated, immutable ground overlay. The
// positioning fields must match exactly one of the four permitted
// combinations; any other combination returns ErrInvalidPositioning.
func New(id GroundOverlayID, opts ...Option) (*GroundOverlay, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	mode, ok := resolvePositionMode(s)
	if !ok {
		return nil, fmt.Errorf("ground overlay %q: %w", id.value, ErrInvalidPositioning)
	}
	return &GroundOverlay{id: id, mode: mode, settings: s}, nil
}

// NewUnpositioned constructs an overlay with every positioning field
// left at its default.
func NewUnpositioned(id GroundOverlayID, opts ...Option) (*GroundOverlay, error) {
	return New(id, opts...)
}

// NewAtLocation constructs an overlay placed at a point with explicit
// width and height.
func NewAtLocation(id GroundOverlayID, location models.Location, width, height float64, opts ...Option) (*GroundOverlay, error) {
	return New(id, append(opts,
		WithLocation(location),
		WithWidth(width),
		WithHeight(height),
	)...)
}

// NewAtLocationWithWidth constructs an overlay placed at a point with
// an explicit width only; the renderer derives the height.
func NewAtLocationWithWidth(id GroundOverlayID, location models.Location, width float64, opts ...Option) (*GroundOverlay, error) {
	return New(id, append(opts,
		WithLocation(location),
		WithWidth(width),
	)...)
}

// NewWithBounds constructs an overlay stretched over a geographic
// rectangle.
func NewWithBounds(id GroundOverlayID, bounds models.BoundingBox, opts ...Option) (*GroundOverlay, error) {
	return New(id, append(opts, WithBounds(bounds))...)
}

// resolvePositionMode maps the positioning fields onto the single
// permitted mode, or reports failure when the combination is illegal.
// A field counts as set when it differs from its default value.
func resolvePositionMode(s settings) (PositionMode, bool) {
	locationSet := s.location != models.Location{}
	widthSet := s.width != 0
	heightSet := s.height != 0
	boundsSet := s.bounds != nil

	switch {
	case boundsSet && !locationSet && !widthSet && !heightSet:
		return PositionBounds, true
	case locationSet && widthSet && heightSet && !boundsSet:
		return PositionPointSize, true
	case locationSet && widthSet && !heightSet && !boundsSet:
		return PositionPointWidth, true
	case !locationSet && !widthSet && !heightSet && !boundsSet:
		return PositionUnset, true
	default:
		return PositionUnset, false
	}
}

// ID returns the overlay identifier.
func (g *GroundOverlay) ID() GroundOverlayID { return g.id }

// PositionMode returns the positioning variant resolved at construction.
func (g *GroundOverlay) PositionMode() PositionMode { return g.mode }

// ConsumeTapEvents reports whether taps on the overlay are consumed.
func (g *GroundOverlay) ConsumeTapEvents() bool { return g.consumeTapEvents }

// Location returns the placement point. In bounds mode it retains its
// default value and is semantically unused.
func (g *GroundOverlay) Location() models.Location { return g.location }

// Width returns the overlay width in meters.
func (g *GroundOverlay) Width() float64 { return g.width }

// Height returns the overlay height in meters.
func (g *GroundOverlay) Height() float64 { return g.height }

// Bounds returns the geographic rectangle and true when the overlay is
// bounds-positioned, or the zero box and false otherwise.
func (g *GroundOverlay) Bounds() (models.BoundingBox, bool) {
	if g.bounds == nil {
		return models.BoundingBox{}, false
	}
	return *g.bounds, true
}

// Bitmap returns the overlay image source.
func (g *GroundOverlay) Bitmap() models.BitmapDescriptor { return g.bitmap }

// Bearing returns the clockwise rotation in degrees about the anchor.
func (g *GroundOverlay) Bearing() float64 { return g.bearing }

// Anchor returns the fractional image offset used as the placement
// origin.
func (g *GroundOverlay) Anchor() models.Offset { return g.anchor }

// Transparency returns the overlay transparency, 0.0 opaque through
// 1.0 fully transparent.
func (g *GroundOverlay) Transparency() float64 { return g.transparency }

// Visible reports whether the overlay is drawn.
func (g *GroundOverlay) Visible() bool { return g.visible }

// ZIndex returns the draw-order key.
func (g *GroundOverlay) ZIndex() int { return g.zIndex }

// OnTap returns the installed tap callback, or nil.
func (g *GroundOverlay) OnTap() func() { return g.onTap }
