package treemap

// Rect is an axis-aligned rectangle in layout coordinates.
// X and Y locate the top-left corner; W and H are the extents.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewRect returns the unit square at the origin.
func NewRect() Rect {
	return Rect{X: 0, Y: 0, W: 1, H: 1}
}

// NewRectXYWH returns a rectangle with explicit position and extents.
func NewRectXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// AspectRatio returns max(w/h, h/w). A value of 1.0 is a perfect square;
// larger values indicate more elongated shapes. Rectangles with a zero
// dimension are degenerate and report 0 rather than NaN or Inf.
func (r Rect) AspectRatio() float64 {
	if r.W == 0 || r.H == 0 {
		return 0
	}
	if wh := r.W / r.H; wh > r.H/r.W {
		return wh
	}
	return r.H / r.W
}

// Area returns the surface area of the rectangle.
func (r Rect) Area() float64 { return r.W * r.H }
