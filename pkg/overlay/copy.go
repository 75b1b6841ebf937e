package overlay

import "fmt"

// CopyWith returns a new overlay that inherits every field from g
// except those overridden by the given options. The identifier is
// always preserved. The result passes through the same positioning
// validation as New, so an override combination that breaks the
// invariant fails with ErrInvalidPositioning and g stays untouched.
func (g *GroundOverlay) CopyWith(opts ...Option) (*GroundOverlay, error) {
	s := g.settings
	if s.bounds != nil {
		b := *s.bounds
		s.bounds = &b
	}
	for _, opt := range opts {
		opt(&s)
	}
	mode, ok := resolvePositionMode(s)
	if !ok {
		return nil, fmt.Errorf("ground overlay %q: %w", g.id.value, ErrInvalidPositioning)
	}
	return &GroundOverlay{id: g.id, mode: mode, settings: s}, nil
}

// Clone returns a distinct instance value-equal to g.
func (g *GroundOverlay) Clone() *GroundOverlay {
	// No overrides, so revalidation of an already-valid overlay cannot
	// fail.
	clone, _ := g.CopyWith()
	return clone
}
