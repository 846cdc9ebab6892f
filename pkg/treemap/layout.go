package treemap

import (
	"sort"
	"time"

	"github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/observability"
)

// TreemapLayout arranges Mappable items inside a bounding rectangle using
// the squarified treemap heuristic (Bruls/Huizing/van Wijk): items are
// sorted by descending size and greedily grouped into rows so that each
// item's rectangle stays as close to square as possible.
//
// A layout call sorts the caller's slice in place and writes every item's
// bounds exactly once. The engine holds no state between calls, so a single
// TreemapLayout is safe to use concurrently on disjoint item slices.
type TreemapLayout struct{}

// New creates a layout engine.
func New() *TreemapLayout {
	return &TreemapLayout{}
}

// Layout arranges the items supplied by model to fill bounds.
func (l *TreemapLayout) Layout(model MapModel, bounds Rect) error {
	return l.LayoutItems(model.Items(), bounds)
}

// LayoutItems arranges items to fill bounds. The slice is reordered by
// descending size (equal sizes keep their relative order) and each item's
// bounds is overwritten with its computed rectangle.
//
// Sizes must be non-negative and bounds must have non-negative extents;
// violations fail fast before any item is mutated. An empty slice is a
// no-op. Rows whose items all have zero size receive zero-area bounds at
// the row origin rather than NaN geometry.
func (l *TreemapLayout) LayoutItems(items []Mappable, bounds Rect) error {
	start := time.Now()
	obs := observability.Layout()
	obs.OnLayoutStart(len(items))
	err := l.layoutItems(items, bounds)
	obs.OnLayoutComplete(len(items), time.Since(start), err)
	return err
}

func (l *TreemapLayout) layoutItems(items []Mappable, bounds Rect) error {
	if err := errors.ValidateBounds(bounds.W, bounds.H); err != nil {
		return err
	}
	for i, item := range items {
		if err := errors.ValidateSize(i, item.Size()); err != nil {
			return err
		}
	}
	if len(items) == 0 {
		return nil
	}

	SortDescending(items)
	l.layoutRange(items, 0, len(items)-1, bounds)
	return nil
}

// layoutRange lays out items[start..end] (inclusive) into bounds. It fixes
// one row along the shorter side of bounds, then recurses on the remainder
// against the residual rectangle. Each call consumes at least one item, so
// recursion depth is bounded by the range length.
func (l *TreemapLayout) layoutRange(items []Mappable, start, end int, bounds Rect) {
	if start > end {
		return
	}
	if end-start < 2 {
		l.layoutRow(items, start, end, bounds)
		return
	}

	x, y, w, h := bounds.X, bounds.Y, bounds.W, bounds.H

	// The remaining total sums items[start..end), excluding the last item
	// of the range. This matches the reference arithmetic the golden
	// fixtures were produced with.
	total := totalSize(items, start, end)
	if total <= 0 {
		zeroBounds(items, start, end, bounds)
		return
	}

	mid := start
	a := items[start].Size() / total
	b := a

	if w < h {
		for mid <= end {
			aspect := normAspect(h, w, a, b)
			q := items[mid].Size() / total
			if normAspect(h, w, a, b+q) > aspect {
				break
			}
			mid++
			b += q
		}
		if mid > end {
			// Row absorbed every remaining item.
			mid = end
		}
		l.layoutRow(items, start, mid, NewRectXYWH(x, y, w, h*b))
		l.layoutRange(items, mid+1, end, NewRectXYWH(x, y+h*b, w, h*(1-b)))
	} else {
		for mid <= end {
			aspect := normAspect(w, h, a, b)
			q := items[mid].Size() / total
			if normAspect(w, h, a, b+q) > aspect {
				break
			}
			mid++
			b += q
		}
		if mid > end {
			mid = end
		}
		l.layoutRow(items, start, mid, NewRectXYWH(x, y, w*b, h))
		l.layoutRange(items, mid+1, end, NewRectXYWH(x+w*b, y, w*(1-b), h))
	}
}

// layoutRow distributes items[start..end] (inclusive) across bounds,
// horizontally when the row is wider than tall and vertically otherwise.
// Each item receives a slice proportional to its share of the row total,
// offset by the cumulative share of the items before it, so the row tiles
// bounds exactly.
func (l *TreemapLayout) layoutRow(items []Mappable, start, end int, bounds Rect) {
	observability.Layout().OnRowCommit(start, end, bounds.AspectRatio())

	horizontal := bounds.W > bounds.H
	total := totalSize(items, start, end+1)
	if total <= 0 {
		zeroBounds(items, start, end, bounds)
		return
	}

	a := 0.0
	for i := start; i <= end; i++ {
		b := items[i].Size() / total
		if horizontal {
			items[i].SetBounds(NewRectXYWH(bounds.X+bounds.W*a, bounds.Y, bounds.W*b, bounds.H))
		} else {
			items[i].SetBounds(NewRectXYWH(bounds.X, bounds.Y+bounds.H*a, bounds.W, bounds.H*b))
		}
		a += b
	}
}

// SortDescending reorders items by descending size. The sort is stable so
// equal sizes keep their relative order, giving deterministic output for
// tied inputs.
func SortDescending(items []Mappable) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Size() > items[j].Size()
	})
}

// totalSize sums the sizes of items[start..end) (exclusive end).
func totalSize(items []Mappable, start, end int) float64 {
	var sum float64
	for i := start; i < end; i++ {
		sum += items[i].Size()
	}
	return sum
}

// zeroBounds assigns zero-area bounds at the region origin to
// items[start..end] (inclusive). Used when a row or range has zero total
// size and proportional slicing would divide by zero.
func zeroBounds(items []Mappable, start, end int, bounds Rect) {
	for i := start; i <= end; i++ {
		items[i].SetBounds(NewRectXYWH(bounds.X, bounds.Y, 0, 0))
	}
}

// normAspect folds aspect into the range [1, ∞), where 1.0 is a perfect
// square and larger values are worse. The row-growth loop stops as soon as
// adding the next item would increase this metric.
func normAspect(big, small, a, b float64) float64 {
	x := aspect(big, small, a, b)
	if x < 1 {
		return 1 / x
	}
	return x
}

// aspect estimates the aspect ratio of the first item in a prospective row,
// where a is the first item's share of the remaining total and b is the
// cumulative share of the row so far.
func aspect(big, small, a, b float64) float64 {
	return (big * b) / (small * a / b)
}
