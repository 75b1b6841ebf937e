package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kass/go-map-overlay/pkg/overlay"
)

// snapshotData is the serialized form of a registry: the wire
// projection of every overlay plus a count for quick inspection.
type snapshotData struct {
	GroundOverlays []map[string]any `json:"groundOverlays"`
	Count          int              `json:"count"`
}

// WriteSnapshot writes one JSON snapshot of the collection. Snapshots
// are write-only as far as overlays are concerned: the wire form has
// no deserializer, so a snapshot can be inspected or handed to a
// renderer but not turned back into live overlays.
func (r *Registry) WriteSnapshot(w io.Writer) error {
	data := snapshotData{
		GroundOverlays: r.Serialize(),
		Count:          r.Len(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// SaveToFile writes the snapshot to a file.
func (r *Registry) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return r.WriteSnapshot(file)
}

// ReadSnapshotIDs recovers the overlay identifiers recorded in a
// snapshot, for bookkeeping against a live collection.
func ReadSnapshotIDs(rd io.Reader) ([]overlay.GroundOverlayID, error) {
	var data snapshotData
	if err := json.NewDecoder(rd).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	ids := make([]overlay.GroundOverlayID, 0, len(data.GroundOverlays))
	for i, wire := range data.GroundOverlays {
		raw, ok := wire["groundOverlayId"].(string)
		if !ok {
			return nil, fmt.Errorf("snapshot entry %d: missing groundOverlayId", i)
		}
		ids = append(ids, overlay.NewGroundOverlayID(raw))
	}
	return ids, nil
}

// ReadSnapshotFile recovers overlay identifiers from a snapshot file.
func ReadSnapshotFile(filename string) ([]overlay.GroundOverlayID, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadSnapshotIDs(file)
}
