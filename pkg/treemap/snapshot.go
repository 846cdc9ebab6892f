package treemap

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the serialization format for a computed layout. It captures
// the bounding rectangle and, for each item, its size and assigned bounds
// in layout order. The format is human-readable and round-trips losslessly.
type Snapshot struct {
	Bounds Rect           `json:"bounds"`
	Items  []SnapshotItem `json:"items"`
}

// SnapshotItem is one laid-out item in a Snapshot.
type SnapshotItem struct {
	ID     string  `json:"id,omitempty"`
	Size   float64 `json:"size"`
	Bounds Rect    `json:"bounds"`
}

// identified is satisfied by items that carry an identifier, like MapItem.
type identified interface {
	ID() string
}

// TakeSnapshot captures the current state of items against bounds.
// Items that expose an ID (such as MapItem) have it recorded.
func TakeSnapshot(items []Mappable, bounds Rect) Snapshot {
	s := Snapshot{
		Bounds: bounds,
		Items:  make([]SnapshotItem, len(items)),
	}
	for i, item := range items {
		s.Items[i] = SnapshotItem{
			Size:   item.Size(),
			Bounds: item.Bounds(),
		}
		if id, ok := item.(identified); ok {
			s.Items[i].ID = id.ID()
		}
	}
	return s
}

// MarshalSnapshot serializes a Snapshot to pretty-printed JSON bytes.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalSnapshot deserializes JSON bytes into a Snapshot.
// Validates that the bounding rectangle has non-negative extents.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if s.Bounds.W < 0 || s.Bounds.H < 0 {
		return Snapshot{}, fmt.Errorf("snapshot bounds must have non-negative extents")
	}
	return s, nil
}
