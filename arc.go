package graphics

import "math"

const twoPi = 2 * math.Pi

// ArcBounds returns the tight axis-aligned bounding box of a circular
// arc of radius r around (cx, cy), swept from startAngle to endAngle in
// radians. When anticlockwise is true the sweep direction is reversed.
//
// The box is exact: for each axis the extremum is +-r when the swept
// interval covers the corresponding cardinal angle (0, pi/2, pi, 3pi/2),
// and the projection of the nearer endpoint otherwise. A swept angle of
// a full turn or more yields the circle's enclosing square.
func ArcBounds(cx, cy, r, startAngle, endAngle float64, anticlockwise bool) Rect {
	if math.Abs(endAngle-startAngle) >= twoPi {
		return Rect{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r}
	}

	start, end := startAngle, endAngle
	if anticlockwise {
		start, end = end, start
	}
	start = normalizeAngle(start)
	end = normalizeAngle(end)
	for end < start {
		end += twoPi
	}

	cos0, sin0 := math.Cos(start), math.Sin(start)
	cos1, sin1 := math.Cos(end), math.Sin(end)

	var minX, maxX, minY, maxY float64
	if coversAngle(start, end, math.Pi) {
		minX = -r
	} else {
		minX = r * math.Min(cos0, cos1)
	}
	if coversAngle(start, end, 0) {
		maxX = r
	} else {
		maxX = r * math.Max(cos0, cos1)
	}
	if coversAngle(start, end, 3*math.Pi/2) {
		minY = -r
	} else {
		minY = r * math.Min(sin0, sin1)
	}
	if coversAngle(start, end, math.Pi/2) {
		maxY = r
	} else {
		maxY = r * math.Max(sin0, sin1)
	}

	return Rect{X: cx + minX, Y: cy + minY, Width: maxX - minX, Height: maxY - minY}
}

// normalizeAngle maps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// coversAngle reports whether the normalized interval [start, end]
// contains the cardinal angle, including its aliases one full turn up.
// After normalization end may exceed 2*pi, so both the angle and its
// wrapped alias are tested inclusively.
func coversAngle(start, end, angle float64) bool {
	if start <= angle && angle <= end {
		return true
	}
	wrapped := angle + twoPi
	return start <= wrapped && wrapped <= end
}
