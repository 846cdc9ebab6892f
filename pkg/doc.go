// Package pkg provides the core libraries for squarified treemap layout.
//
// # Overview
//
// A treemap renders weighted data as a rectangle partitioned into
// sub-rectangles whose areas are proportional to each item's weight. The
// squarified variant (Bruls, Huizing, van Wijk) greedily forms rows so
// that each sub-rectangle stays as close to square as possible.
//
// The pkg directory is organized into four areas:
//
//  1. [treemap] - The layout engine, geometry primitives, and item contract
//  2. [errors] - Structured error codes and input validation
//  3. [observability] - Optional layout instrumentation hooks
//  4. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Lay out a set of weighted items into a rectangle:
//
//	import "github.com/matzehuels/treemap/pkg/treemap"
//
//	items := []treemap.Mappable{
//	    treemap.NewMapItem(6.0),
//	    treemap.NewMapItem(4.0),
//	    treemap.NewMapItem(1.0),
//	}
//
//	engine := treemap.New()
//	if err := engine.Layout(treemap.SliceModel(items), treemap.NewRectXYWH(0, 0, 6, 4)); err != nil {
//	    // sizes or bounds violated a precondition
//	}
//
//	for _, item := range items {
//	    b := item.Bounds() // assigned rectangle, proportional to size
//	    _ = b
//	}
//
// The engine sorts items by descending size in place and writes every
// item's bounds exactly once; the union of all assigned rectangles tiles
// the input rectangle with no gaps or overlaps.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/treemap/...    # Layout engine only
//	go test -run Example         # Examples only
//
// [treemap]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/treemap
// [errors]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/buildinfo
package pkg
