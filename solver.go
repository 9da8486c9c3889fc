package graphics

import "math"

// Root solving for the derivative of a cubic Bezier segment.
//
// The derivative of a 1-D cubic Bernstein polynomial is a quadratic; its
// roots inside (0, 1) are the parameter values of axis extrema. Rather
// than a general root finder, the solver folds degeneracies into a
// neutral midpoint parameter so a non-finite intermediate never reaches
// the bounding box.

// derivRoots returns both roots of the quadratic a*t^2 + b*t + c = 0 via
// the quadratic formula, and reports whether the discriminant is
// non-negative. A non-finite root (division by a degenerate leading
// coefficient) is replaced with 0.5.
func derivRoots(a, b, c float64) (t0, t1 float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t0 = (-b + sq) / (2 * a)
	t1 = (-b - sq) / (2 * a)
	if !isFinite(t0) {
		t0 = 0.5
	}
	if !isFinite(t1) {
		t1 = 0.5
	}
	return t0, t1, true
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
