package overlay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kass/go-map-overlay/pkg/models"
)

var (
	testLocation = models.Location{Latitude: 10.0, Longitude: 20.0}
	testBounds   = models.BoundingBox{
		Southwest: models.Location{Latitude: 10.0, Longitude: 20.0},
		Northeast: models.Location{Latitude: 30.0, Longitude: 40.0},
	}
)

func TestPositioningCombinations(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []Option
		mode     PositionMode
		wantErr  bool
	}{
		{
			name: "location+width+height",
			opts: []Option{WithLocation(testLocation), WithWidth(5.0), WithHeight(5.0)},
			mode: PositionPointSize,
		},
		{
			name: "location+width",
			opts: []Option{WithLocation(testLocation), WithWidth(5.0)},
			mode: PositionPointWidth,
		},
		{
			name: "bounds only",
			opts: []Option{WithBounds(testBounds)},
			mode: PositionBounds,
		},
		{
			name: "all defaults",
			opts: nil,
			mode: PositionUnset,
		},
		{
			name:    "location only",
			opts:    []Option{WithLocation(testLocation)},
			wantErr: true,
		},
		{
			name:    "width only",
			opts:    []Option{WithWidth(5.0)},
			wantErr: true,
		},
		{
			name:    "height only",
			opts:    []Option{WithHeight(5.0)},
			wantErr: true,
		},
		{
			name:    "location+height without width",
			opts:    []Option{WithLocation(testLocation), WithHeight(5.0)},
			wantErr: true,
		},
		{
			name:    "width+height without location",
			opts:    []Option{WithWidth(5.0), WithHeight(5.0)},
			wantErr: true,
		},
		{
			name:    "bounds with location",
			opts:    []Option{WithBounds(testBounds), WithLocation(testLocation)},
			wantErr: true,
		},
		{
			name:    "bounds with width",
			opts:    []Option{WithBounds(testBounds), WithWidth(5.0)},
			wantErr: true,
		},
		{
			name:    "bounds with height",
			opts:    []Option{WithBounds(testBounds), WithHeight(5.0)},
			wantErr: true,
		},
		{
			name: "bounds with location and size",
			opts: []Option{
				WithBounds(testBounds), WithLocation(testLocation),
				WithWidth(5.0), WithHeight(5.0),
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(NewGroundOverlayID("go1"), tc.opts...)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPositioning)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mode, g.PositionMode())
		})
	}
}

func TestNamedFactories(t *testing.T) {
	id := NewGroundOverlayID("go1")

	g, err := NewAtLocation(id, testLocation, 5.0, 7.5)
	require.NoError(t, err)
	assert.Equal(t, PositionPointSize, g.PositionMode())
	assert.Equal(t, testLocation, g.Location())
	assert.Equal(t, 5.0, g.Width())
	assert.Equal(t, 7.5, g.Height())

	g, err = NewAtLocationWithWidth(id, testLocation, 5.0)
	require.NoError(t, err)
	assert.Equal(t, PositionPointWidth, g.PositionMode())
	assert.Equal(t, 0.0, g.Height())

	g, err = NewWithBounds(id, testBounds)
	require.NoError(t, err)
	assert.Equal(t, PositionBounds, g.PositionMode())
	box, ok := g.Bounds()
	assert.True(t, ok)
	assert.Equal(t, testBounds, box)

	g, err = NewUnpositioned(id)
	require.NoError(t, err)
	assert.Equal(t, PositionUnset, g.PositionMode())
	_, ok = g.Bounds()
	assert.False(t, ok)
}

func TestDefaults(t *testing.T) {
	g, err := NewUnpositioned(NewGroundOverlayID("go1"))
	require.NoError(t, err)

	assert.False(t, g.ConsumeTapEvents())
	assert.True(t, g.Visible())
	assert.Equal(t, 0, g.ZIndex())
	assert.Equal(t, models.Location{}, g.Location())
	assert.Equal(t, models.Offset{}, g.Anchor())
	assert.Equal(t, 0.0, g.Transparency())
	assert.Equal(t, 0.0, g.Bearing())
	assert.Equal(t, models.DefaultMarker(), g.Bitmap())
	assert.Nil(t, g.OnTap())
}

func TestCopyWithPreservesIdentity(t *testing.T) {
	g, err := NewAtLocation(NewGroundOverlayID("go1"), testLocation, 5.0, 5.0)
	require.NoError(t, err)

	copied, err := g.CopyWith(WithZIndex(7), WithVisible(false), WithBearing(90.0))
	require.NoError(t, err)

	assert.Equal(t, g.ID(), copied.ID())
	assert.Equal(t, 7, copied.ZIndex())
	assert.False(t, copied.Visible())
	assert.Equal(t, 90.0, copied.Bearing())

	// Untouched fields inherit from the source.
	assert.Equal(t, g.Location(), copied.Location())
	assert.Equal(t, g.Width(), copied.Width())
	assert.Equal(t, g.Height(), copied.Height())
	assert.Equal(t, g.Bitmap(), copied.Bitmap())
	assert.Equal(t, g.Transparency(), copied.Transparency())

	// The source never mutates.
	assert.Equal(t, 0, g.ZIndex())
	assert.True(t, g.Visible())
}

func TestCopyWithRevalidatesPositioning(t *testing.T) {
	g, err := NewAtLocation(NewGroundOverlayID("go1"), testLocation, 5.0, 5.0)
	require.NoError(t, err)

	// Adding bounds on top of a point placement breaks the invariant.
	_, err = g.CopyWith(WithBounds(testBounds))
	assert.ErrorIs(t, err, ErrInvalidPositioning)

	// Clearing the point fields while adding bounds is fine.
	copied, err := g.CopyWith(
		WithBounds(testBounds),
		WithLocation(models.Location{}),
		WithWidth(0),
		WithHeight(0),
	)
	require.NoError(t, err)
	assert.Equal(t, PositionBounds, copied.PositionMode())
}

func TestClone(t *testing.T) {
	g, err := NewWithBounds(NewGroundOverlayID("go1"), testBounds,
		WithZIndex(3), WithTransparency(0.5), WithOnTap(func() {}))
	require.NoError(t, err)

	clone := g.Clone()
	assert.True(t, g.Equal(clone))
	assert.NotSame(t, g, clone)
}

func TestHashIdentityEqualityAsymmetry(t *testing.T) {
	id := NewGroundOverlayID("go1")
	a, err := NewAtLocation(id, testLocation, 5.0, 5.0)
	require.NoError(t, err)
	b, err := a.CopyWith(WithZIndex(42))
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	other, err := NewAtLocation(NewGroundOverlayID("go2"), testLocation, 5.0, 5.0)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash(), other.Hash())
}

func TestEqualityCoversEveryField(t *testing.T) {
	onTap := func() {}
	build := func() *GroundOverlay {
		g, err := NewAtLocation(NewGroundOverlayID("go1"), testLocation, 5.0, 5.0,
			WithConsumeTapEvents(true),
			WithZIndex(2),
			WithBearing(45.0),
			WithAnchor(models.Offset{DX: 0.5, DY: 0.5}),
			WithTransparency(0.25),
			WithBitmap(models.AssetBitmap("overlay.png")),
			WithOnTap(onTap),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(), build()
	assert.True(t, a.Equal(b))

	mutations := map[string]Option{
		"consumeTapEvents": WithConsumeTapEvents(false),
		"location":         WithLocation(models.Location{Latitude: 11.0, Longitude: 20.0}),
		"width":            WithWidth(6.0),
		"height":           WithHeight(6.0),
		"bitmap":           WithBitmap(models.AssetBitmap("other.png")),
		"bearing":          WithBearing(90.0),
		"anchor":           WithAnchor(models.Offset{DX: 0.25, DY: 0.75}),
		"transparency":     WithTransparency(0.75),
		"visible":          WithVisible(false),
		"zIndex":           WithZIndex(9),
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			changed, err := a.CopyWith(mutate)
			require.NoError(t, err)
			assert.False(t, a.Equal(changed))
		})
	}

	t.Run("onTap", func(t *testing.T) {
		changed, err := a.CopyWith(WithOnTap(func() { _ = 1 }))
		require.NoError(t, err)
		assert.False(t, a.Equal(changed))

		cleared, err := a.CopyWith(WithOnTap(nil))
		require.NoError(t, err)
		assert.False(t, a.Equal(cleared))
	})
}

func TestToJSONShape(t *testing.T) {
	g, err := NewAtLocation(NewGroundOverlayID("go1"), testLocation, 5.0, 5.0)
	require.NoError(t, err)

	wire := g.ToJSON()
	assert.Equal(t, "go1", wire["groundOverlayId"])
	assert.Equal(t, map[string]any{"latitude": 10.0, "longitude": 20.0}, wire["location"])
	assert.Equal(t, 5.0, wire["width"])
	assert.Equal(t, 5.0, wire["height"])
	assert.NotContains(t, wire, "bounds")

	// Present-by-default value fields are always written.
	assert.Equal(t, false, wire["consumeTapEvents"])
	assert.Equal(t, true, wire["visible"])
	assert.Equal(t, 0, wire["zIndex"])
	assert.Equal(t, 0.0, wire["transparency"])
	assert.Equal(t, 0.0, wire["bearing"])
	assert.Equal(t, []any{"defaultMarker"}, wire["bitmap"])
}

func TestToJSONBoundsMode(t *testing.T) {
	g, err := NewWithBounds(NewGroundOverlayID("go1"), testBounds)
	require.NoError(t, err)

	wire := g.ToJSON()
	assert.Equal(t, testBounds.ToJSON(), wire["bounds"])
	// The unused location default still serializes; the wire shape is
	// field-value driven, not positioning-mode aware.
	assert.Equal(t, map[string]any{"latitude": 0.0, "longitude": 0.0}, wire["location"])
}

func TestAnchorSerialization(t *testing.T) {
	g, err := NewUnpositioned(NewGroundOverlayID("go1"),
		WithAnchor(models.Offset{DX: 0.25, DY: 0.75}))
	require.NoError(t, err)

	assert.Equal(t, []any{0.25, 0.75}, g.ToJSON()["anchor"])
}

func TestCallbackNeverSerializes(t *testing.T) {
	g, err := NewUnpositioned(NewGroundOverlayID("go1"), WithOnTap(func() {}))
	require.NoError(t, err)

	wire := g.ToJSON()
	assert.NotContains(t, wire, "onTap")

	raw, err := json.Marshal(g)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "onTap")
}

func TestMarshalJSON(t *testing.T) {
	g, err := NewAtLocation(NewGroundOverlayID("go1"), testLocation, 5.0, 5.0)
	require.NoError(t, err)

	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "go1", decoded["groundOverlayId"])
	assert.Equal(t, 5.0, decoded["width"])
}

func TestGroundOverlayID(t *testing.T) {
	a := NewGroundOverlayID("go1")
	b := NewGroundOverlayID("go1")
	c := NewGroundOverlayID("go2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "go1", a.String())
	assert.Equal(t, a.Hash(), b.Hash())
}
