// Package treemap computes squarified treemap layouts.
//
// Given a set of weighted items and a bounding rectangle, [TreemapLayout]
// partitions the rectangle into non-overlapping sub-rectangles whose areas
// are proportional to each item's weight, while keeping every
// sub-rectangle's aspect ratio close to 1. This is the layout technique
// used to visualize weighted data (disk usage, portfolio composition) as
// tiled rectangles.
//
// # Algorithm
//
// The engine sorts items by descending size, then recursively partitions
// the rectangle:
//
//  1. Split along the longer dimension so the next row is as square as
//     possible.
//  2. Greedily grow a row of items, tracking a normalized aspect metric;
//     stop before the item whose addition would worsen the metric.
//  3. Slice the row's rectangle proportionally among its items, then
//     recurse on the remaining items against the residual rectangle.
//
// Sorting is a precondition of the greedy heuristic: placing the largest
// remaining item first in each row keeps its aspect ratio bounded.
//
// # Contract
//
// Items satisfy the [Mappable] interface. A layout call reorders the
// caller's slice by descending size (stable for ties) and writes each
// item's bounds exactly once. Sizes must be non-negative and the bounding
// rectangle must have non-negative extents; violations fail fast with
// structured errors from pkg/errors. Zero-size rows receive zero-area
// bounds instead of NaN geometry.
//
// The engine is stateless: a single [TreemapLayout] may be used from
// multiple goroutines on disjoint item slices.
package treemap
