package registry

import (
	"github.com/dhconnelly/rtreego"

	"github.com/kass/go-map-overlay/pkg/models"
	"github.com/kass/go-map-overlay/pkg/overlay"
)

const (
	// pointTolerance pads point-positioned overlays into a small rect,
	// since the R-Tree stores areas rather than exact points.
	pointTolerance = 0.01
	minChildren    = 25
	maxChildren    = 50
	dimensions     = 2
)

// spatialOverlay wraps an overlay to implement rtreego.Spatial.
type spatialOverlay struct {
	g    *overlay.GroundOverlay
	rect *rtreego.Rect
}

func (so *spatialOverlay) Bounds() *rtreego.Rect {
	return so.rect
}

// extentIndex is an R-Tree over the geographic extents of registered
// overlays. Unpositioned overlays carry no extent and are not indexed.
type extentIndex struct {
	tree  *rtreego.Rtree
	items map[overlay.GroundOverlayID]*spatialOverlay
}

func newExtentIndex() *extentIndex {
	return &extentIndex{
		tree:  rtreego.NewTree(dimensions, minChildren, maxChildren),
		items: make(map[overlay.GroundOverlayID]*spatialOverlay),
	}
}

func (x *extentIndex) insert(g *overlay.GroundOverlay) {
	rect, ok := extentRect(g)
	if !ok {
		return
	}
	item := &spatialOverlay{g: g, rect: rect}
	x.tree.Insert(item)
	x.items[g.ID()] = item
}

func (x *extentIndex) remove(id overlay.GroundOverlayID) {
	item, ok := x.items[id]
	if !ok {
		return
	}
	x.tree.Delete(item)
	delete(x.items, id)
}

// extentRect derives the R-Tree rect for an overlay: the bounding box
// in bounds mode, a padded point rect in the point modes, nothing in
// unset mode.
func extentRect(g *overlay.GroundOverlay) (*rtreego.Rect, bool) {
	switch g.PositionMode() {
	case overlay.PositionBounds:
		box, _ := g.Bounds()
		lengths := []float64{
			box.Northeast.Latitude - box.Southwest.Latitude,
			box.Northeast.Longitude - box.Southwest.Longitude,
		}
		for i := range lengths {
			if lengths[i] <= 0 {
				lengths[i] = pointTolerance
			}
		}
		rect, err := rtreego.NewRect(
			rtreego.Point{box.Southwest.Latitude, box.Southwest.Longitude},
			lengths,
		)
		if err != nil {
			return nil, false
		}
		return rect, true
	case overlay.PositionPointSize, overlay.PositionPointWidth:
		loc := g.Location()
		p := rtreego.Point{loc.Latitude, loc.Longitude}
		return p.ToRect(pointTolerance), true
	default:
		return nil, false
	}
}

// QueryRegion returns the overlays whose extent intersects the given
// box, sorted by identifier. Bounds-positioned overlays match when
// their rectangle overlaps the region; point-positioned overlays match
// when their location lies inside it.
func (r *Registry) QueryRegion(box models.BoundingBox) []*overlay.GroundOverlay {
	lengths := []float64{
		box.Northeast.Latitude - box.Southwest.Latitude,
		box.Northeast.Longitude - box.Southwest.Longitude,
	}
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = pointTolerance
		}
	}
	bounds, err := rtreego.NewRect(
		rtreego.Point{box.Southwest.Latitude, box.Southwest.Longitude},
		lengths,
	)
	if err != nil {
		return nil
	}

	results := r.index.tree.SearchIntersect(bounds)

	// The tree pads point rects, so verify each candidate against the
	// exact geometry before returning it.
	matches := make([]*overlay.GroundOverlay, 0, len(results))
	for _, result := range results {
		item, ok := result.(*spatialOverlay)
		if !ok || item.g == nil {
			continue
		}
		switch item.g.PositionMode() {
		case overlay.PositionBounds:
			if gb, ok := item.g.Bounds(); ok && box.Intersects(gb) {
				matches = append(matches, item.g)
			}
		default:
			if box.Contains(item.g.Location()) {
				matches = append(matches, item.g)
			}
		}
	}
	sortByID(matches)
	return matches
}
