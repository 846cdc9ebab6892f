package errors

import "math"

// ValidateBounds validates the extents of a layout bounding rectangle.
// Negative or NaN extents have no proportional-area interpretation, so they
// are rejected up front rather than producing silently wrong geometry.
// Zero extents are legal: they yield a degenerate (zero-area) layout.
func ValidateBounds(w, h float64) error {
	if math.IsNaN(w) || math.IsNaN(h) {
		return New(ErrCodeInvalidBounds, "bounds extents must not be NaN")
	}
	if w < 0 || h < 0 {
		return New(ErrCodeInvalidBounds, "bounds extents must be non-negative, got %gx%g", w, h)
	}
	return nil
}

// ValidateSize validates a single item weight. Weights must be finite,
// non-NaN, and non-negative; index identifies the offending item in the
// caller's slice.
func ValidateSize(index int, size float64) error {
	if math.IsNaN(size) {
		return New(ErrCodeInvalidSize, "item %d has NaN size", index)
	}
	if math.IsInf(size, 0) {
		return New(ErrCodeInvalidSize, "item %d has infinite size", index)
	}
	if size < 0 {
		return New(ErrCodeInvalidSize, "item %d has negative size %g", index, size)
	}
	return nil
}
