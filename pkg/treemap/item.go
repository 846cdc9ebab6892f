package treemap

import "github.com/google/uuid"

// Mappable is the capability contract for anything that can be placed in a
// treemap. Size is the item's non-negative weight: its share of the layout
// area is proportional to Size relative to the total of its siblings.
// Bounds is written exactly once per layout call.
type Mappable interface {
	Size() float64
	Bounds() Rect
	SetBounds(Rect)
}

// MapModel supplies the item collection to the layout engine. How the
// collection is sourced or owned is up to the implementation; the engine
// only requires exclusive access to the returned slice for the duration
// of one layout call.
type MapModel interface {
	Items() []Mappable
}

// SliceModel is the trivial MapModel backed by a slice.
type SliceModel []Mappable

// Items returns the underlying slice.
func (m SliceModel) Items() []Mappable { return m }

// MapItem is the default Mappable implementation. The layout engine reorders
// the caller's slice, so each item carries a stable ID for correlating
// results afterwards.
type MapItem struct {
	id     string
	size   float64
	bounds Rect
}

// NewMapItem creates an item with the given size and a generated UUID.
func NewMapItem(size float64) *MapItem {
	return NewMapItemWithID(uuid.NewString(), size)
}

// NewMapItemWithID creates an item with a caller-chosen ID.
func NewMapItemWithID(id string, size float64) *MapItem {
	return &MapItem{id: id, size: size, bounds: NewRect()}
}

// ID returns the item's identifier.
func (m *MapItem) ID() string { return m.id }

// Size returns the item's weight.
func (m *MapItem) Size() float64 { return m.size }

// SetSize replaces the item's weight.
func (m *MapItem) SetSize(size float64) { m.size = size }

// Bounds returns the item's current bounding rectangle.
func (m *MapItem) Bounds() Rect { return m.bounds }

// SetBounds replaces the item's bounding rectangle.
func (m *MapItem) SetBounds(bounds Rect) { m.bounds = bounds }
