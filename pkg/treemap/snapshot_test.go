package treemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeSnapshot(t *testing.T) {
	bounds := NewRectXYWH(0, 0, 6, 4)
	items := []Mappable{
		NewMapItemWithID("a", 6),
		NewMapItemWithID("b", 2),
	}
	require.NoError(t, New().LayoutItems(items, bounds))

	s := TakeSnapshot(items, bounds)

	assert.Equal(t, bounds, s.Bounds)
	require.Len(t, s.Items, 2)
	assert.Equal(t, "a", s.Items[0].ID)
	assert.Equal(t, 6.0, s.Items[0].Size)
	assert.Equal(t, NewRectXYWH(0, 0, 4.5, 4), s.Items[0].Bounds)
	assert.Equal(t, "b", s.Items[1].ID)
	assert.Equal(t, NewRectXYWH(4.5, 0, 1.5, 4), s.Items[1].Bounds)
}

func TestSnapshotRoundTrip(t *testing.T) {
	bounds := NewRectXYWH(0, 0, 6, 4)
	items := newItems(6, 6, 4, 3, 2, 2, 1)
	require.NoError(t, New().LayoutItems(items, bounds))

	original := TakeSnapshot(items, bounds)
	data, err := MarshalSnapshot(original)
	require.NoError(t, err)

	restored, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestUnmarshalSnapshot_InvalidJSON(t *testing.T) {
	_, err := UnmarshalSnapshot([]byte("{not json"))
	assert.Error(t, err)
}

func TestUnmarshalSnapshot_NegativeBounds(t *testing.T) {
	_, err := UnmarshalSnapshot([]byte(`{"bounds":{"x":0,"y":0,"w":-1,"h":2},"items":[]}`))
	assert.Error(t, err)
}
