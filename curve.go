package graphics

import "math"

// Cubic Bezier geometry. The axis-extrema computation is closed form:
// it costs O(1) per segment and is exact, which is what lets the drawing
// surface precompute a tight bounding box at authoring time instead of
// flattening curves at query time.

// CubicBez represents a cubic Bezier curve with control points P0, P1,
// P2, P3. P0 is the start point, P1 and P2 are control points, P3 is the
// end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1) in Bernstein form.
func (c CubicBez) Eval(t float64) Point {
	return Point{
		X: bernstein(t, c.P0.X, c.P1.X, c.P2.X, c.P3.X),
		Y: bernstein(t, c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y),
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// BoundingBox returns the tight axis-aligned bounding box of the curve,
// computed from the per-axis extrema.
func (c CubicBez) BoundingBox() Rect {
	minX, maxX := axisExtrema(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	minY, maxY := axisExtrema(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// axisExtrema returns the minimum and maximum value reached by the 1-D
// cubic Bernstein polynomial with control values p0..p3 over t in [0, 1].
//
// The running range is seeded with the endpoints; interior extrema are
// the derivative's quadratic roots strictly inside (0, 1), evaluated in
// Bernstein form and folded in.
func axisExtrema(p0, p1, p2, p3 float64) (min, max float64) {
	min = math.Min(p0, p3)
	max = math.Max(p0, p3)

	a := (p2 - 2*p1 + p0) - (p3 - 2*p2 + p1)
	b := 2*(p1-p0) - 2*(p2-p1)
	c := p0 - p1

	t0, t1, ok := derivRoots(a, b, c)
	if !ok {
		return min, max
	}
	for _, t := range [2]float64{t0, t1} {
		if t <= 0 || t >= 1 {
			continue
		}
		v := bernstein(t, p0, p1, p2, p3)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}

// bernstein evaluates the 1-D cubic Bernstein polynomial at t.
func bernstein(t, p0, p1, p2, p3 float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*t*u*u*p1 + 3*t*t*u*p2 + t*t*t*p3
}
