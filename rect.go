package graphics

import "math"

// Rect represents an axis-aligned rectangle in x/y/width/height form.
// A canonical Rect has Width >= 0 and Height >= 0. The zero value is the
// zero-size rectangle at the origin.
//
// Rect is a plain value type; copy it freely.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from an origin and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFromPoints computes the bounding rectangle of a flat sequence of
// (x, y) coordinate pairs via a min/max sweep. A trailing unpaired value
// is ignored. An empty sequence yields the zero rectangle.
func RectFromPoints(pts ...float64) Rect {
	if len(pts) < 2 {
		return Rect{}
	}
	minX, minY := pts[0], pts[1]
	maxX, maxY := pts[0], pts[1]
	for i := 2; i+1 < len(pts); i += 2 {
		minX = math.Min(minX, pts[i])
		maxX = math.Max(maxX, pts[i])
		minY = math.Min(minY, pts[i+1])
		maxY = math.Max(maxY, pts[i+1])
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// IsEmpty returns true if the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Union returns the smallest rectangle containing both r and other.
// Union with an empty rectangle is identity.
func (r Rect) Union(other Rect) Rect {
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Inflate expands the rectangle symmetrically by dx on the left and
// right and dy on the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X:      r.X - dx,
		Y:      r.Y - dy,
		Width:  r.Width + 2*dx,
		Height: r.Height + 2*dy,
	}
}

// Contains returns true if the point lies inside or on the edge of the
// rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.MaxX() && y >= r.Y && y <= r.MaxY()
}
