// Package geometry computes alert bar frames and content layout.
// All values are abstract points; hosts decide how points map to pixels or cells.
package geometry

// Point is a position in points.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair in points.
type Size struct {
	W float64
	H float64
}

// Rect is an origin plus a size.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Lerp interpolates between a and b, t in [0,1].
func Lerp(a, b Rect, t float64) Rect {
	return Rect{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		W: a.W + (b.W-a.W)*t,
		H: a.H + (b.H-a.H)*t,
	}
}
