package models

import (
	"reflect"
	"testing"
)

func TestLocationToJSON(t *testing.T) {
	loc := Location{Latitude: 10.0, Longitude: 20.0}
	got := loc.ToJSON()

	want := map[string]any{"latitude": 10.0, "longitude": 20.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Location.ToJSON() = %v, want %v", got, want)
	}
}

func TestBoundingBoxToJSON(t *testing.T) {
	box := BoundingBox{
		Southwest: Location{Latitude: 10.0, Longitude: 20.0},
		Northeast: Location{Latitude: 30.0, Longitude: 40.0},
	}
	got := box.ToJSON()

	sw, ok := got["southwest"].(map[string]any)
	if !ok || sw["latitude"] != 10.0 || sw["longitude"] != 20.0 {
		t.Errorf("unexpected southwest projection: %v", got["southwest"])
	}
	ne, ok := got["northeast"].(map[string]any)
	if !ok || ne["latitude"] != 30.0 || ne["longitude"] != 40.0 {
		t.Errorf("unexpected northeast projection: %v", got["northeast"])
	}
}

func TestBoundingBoxContains(t *testing.T) {
	box := BoundingBox{
		Southwest: Location{Latitude: 10.0, Longitude: 20.0},
		Northeast: Location{Latitude: 30.0, Longitude: 40.0},
	}

	inside := []Location{
		{Latitude: 20.0, Longitude: 30.0},
		{Latitude: 10.0, Longitude: 20.0}, // southwest corner
		{Latitude: 30.0, Longitude: 40.0}, // northeast corner
	}
	for _, loc := range inside {
		if !box.Contains(loc) {
			t.Errorf("expected box to contain %v", loc)
		}
	}

	outside := []Location{
		{Latitude: 9.9, Longitude: 30.0},
		{Latitude: 20.0, Longitude: 40.1},
		{Latitude: 31.0, Longitude: 41.0},
	}
	for _, loc := range outside {
		if box.Contains(loc) {
			t.Errorf("expected box not to contain %v", loc)
		}
	}
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := BoundingBox{
		Southwest: Location{Latitude: 0, Longitude: 0},
		Northeast: Location{Latitude: 10, Longitude: 10},
	}
	overlapping := BoundingBox{
		Southwest: Location{Latitude: 5, Longitude: 5},
		Northeast: Location{Latitude: 15, Longitude: 15},
	}
	touching := BoundingBox{
		Southwest: Location{Latitude: 10, Longitude: 10},
		Northeast: Location{Latitude: 20, Longitude: 20},
	}
	disjoint := BoundingBox{
		Southwest: Location{Latitude: 11, Longitude: 11},
		Northeast: Location{Latitude: 20, Longitude: 20},
	}

	if !a.Intersects(overlapping) {
		t.Error("expected overlapping boxes to intersect")
	}
	if !a.Intersects(touching) {
		t.Error("expected edge-touching boxes to intersect")
	}
	if a.Intersects(disjoint) {
		t.Error("expected disjoint boxes not to intersect")
	}
}

func TestOffsetToJSON(t *testing.T) {
	got := Offset{DX: 0.25, DY: 0.75}.ToJSON()
	want := []any{0.25, 0.75}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Offset.ToJSON() = %v, want %v", got, want)
	}
}

func TestBitmapDescriptorToJSON(t *testing.T) {
	testCases := []struct {
		name string
		desc BitmapDescriptor
		want []any
	}{
		{"default marker", DefaultMarker(), []any{"defaultMarker"}},
		{"zero value is default marker", BitmapDescriptor{}, []any{"defaultMarker"}},
		{"asset", AssetBitmap("overlay.png"), []any{"asset", "overlay.png"}},
		{"bytes", BytesBitmap([]byte{0x01, 0x02}), []any{"bytes", "AQI="}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.desc.ToJSON(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ToJSON() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBitmapDescriptorEqual(t *testing.T) {
	if !DefaultMarker().Equal(BitmapDescriptor{}) {
		t.Error("expected zero descriptor to equal default marker")
	}
	if !BytesBitmap([]byte{1, 2}).Equal(BytesBitmap([]byte{1, 2})) {
		t.Error("expected byte descriptors with equal content to be equal")
	}
	if BytesBitmap([]byte{1, 2}).Equal(BytesBitmap([]byte{1, 3})) {
		t.Error("expected byte descriptors with different content to differ")
	}
	if AssetBitmap("a.png").Equal(AssetBitmap("b.png")) {
		t.Error("expected different assets to differ")
	}
}
