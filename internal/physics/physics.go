// Package physics provides axis-aligned rectangle geometry for hit testing.
package physics

// Rect is an axis-aligned box in logical units. Y grows downwards, so Top < Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Shrink moves the left and right edges inwards by dx each and the top edge down by dy.
// The bottom edge is kept: obstacles stand on the ground.
func (r Rect) Shrink(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom}
}

// InsetFraction shrinks by fractions of the rectangle's own size.
func (r Rect) InsetFraction(fx, fTop float64) Rect {
	return r.Shrink(r.Width()*fx, r.Height()*fTop)
}

// OverlapsFromAbove reports whether a reaches into b horizontally and from above.
// The bottom edge is deliberately unconstrained since both stand on the same floor.
func OverlapsFromAbove(a, b Rect) bool {
	return a.Right > b.Left && a.Left < b.Right && a.Bottom > b.Top
}

// LeftOf reports whether a lies strictly to the left of b.
func LeftOf(a, b Rect) bool {
	return a.Right < b.Left
}
