package models

import (
	"bytes"
	"encoding/base64"
)

// BitmapKind identifies the source of an overlay image.
type BitmapKind int

const (
	// BitmapDefaultMarker is the renderer's built-in placeholder image.
	BitmapDefaultMarker BitmapKind = iota
	// BitmapAsset names an image bundled with the host application.
	BitmapAsset
	// BitmapBytes carries raw encoded image data.
	BitmapBytes
)

// BitmapDescriptor describes where an overlay image comes from. The
// zero value is the default marker.
type BitmapDescriptor struct {
	Kind  BitmapKind
	Asset string
	Data  []byte
}

// DefaultMarker returns the descriptor for the renderer's built-in image.
func DefaultMarker() BitmapDescriptor {
	return BitmapDescriptor{Kind: BitmapDefaultMarker}
}

// AssetBitmap returns a descriptor naming a bundled image asset.
func AssetBitmap(name string) BitmapDescriptor {
	return BitmapDescriptor{Kind: BitmapAsset, Asset: name}
}

// BytesBitmap returns a descriptor carrying raw encoded image data.
func BytesBitmap(data []byte) BitmapDescriptor {
	return BitmapDescriptor{Kind: BitmapBytes, Data: data}
}

// ToJSON returns the tagged-array wire form: ["defaultMarker"],
// ["asset", name] or ["bytes", base64data].
func (d BitmapDescriptor) ToJSON() []any {
	switch d.Kind {
	case BitmapAsset:
		return []any{"asset", d.Asset}
	case BitmapBytes:
		return []any{"bytes", base64.StdEncoding.EncodeToString(d.Data)}
	default:
		return []any{"defaultMarker"}
	}
}

// Equal reports whether two descriptors reference the same image
// source. Raw data is compared by content.
func (d BitmapDescriptor) Equal(other BitmapDescriptor) bool {
	return d.Kind == other.Kind &&
		d.Asset == other.Asset &&
		bytes.Equal(d.Data, other.Data)
}
