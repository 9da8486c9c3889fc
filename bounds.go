package graphics

import "math"

// Bounds analysis: a single forward pass over a command log yields the
// final local bounding rectangle. Geometry commands are inert here; the
// pass consumes only the precomputed Bounds commands, style state, and
// the Fill/Stroke commits, so its cost is linear in log length and
// independent of curve complexity.

// pathAccumulator collects the state of one sub-path span, from a
// BeginPath to the next BeginPath or the end of the log. It is scoped to
// a single analysis pass and never persisted.
type pathAccumulator struct {
	// committed bounds of the span, in min/max sweep form.
	minX, minY float64
	maxX, maxY float64
	hasBounds  bool

	// raw (x, y) point pairs gathered from Bounds commands.
	points []float64

	// stroke state.
	maxLineWidth   float64
	lastLineWidth  float64
	lineMultiplier float64
}

// newPathAccumulator returns an accumulator with default stroke state:
// no width seen yet, round-join inflation factor.
func newPathAccumulator() pathAccumulator {
	return pathAccumulator{lineMultiplier: 0.5}
}

// commitFill unions the raw point bounds into the committed bounds.
func (a *pathAccumulator) commitFill() {
	if len(a.points) < 2 {
		return
	}
	minX, minY, maxX, maxY := sweepPoints(a.points)
	a.union(minX, minY, maxX, maxY)
}

// commitStroke unions the raw point bounds, inflated by the effective
// stroke width, into the committed bounds. A zero effective width is
// treated as one; a single point is not inflated.
func (a *pathAccumulator) commitStroke() {
	if len(a.points) < 2 {
		return
	}
	width := math.Max(a.maxLineWidth, a.lastLineWidth)
	if width == 0 {
		width = 1
	}
	a.maxLineWidth = width
	width *= a.lineMultiplier

	minX, minY, maxX, maxY := sweepPoints(a.points)
	if len(a.points) > 2 {
		minX -= width
		minY -= width
		maxX += width
		maxY += width
	}
	a.union(minX, minY, maxX, maxY)
}

// union folds a min/max box into the committed bounds.
func (a *pathAccumulator) union(minX, minY, maxX, maxY float64) {
	if !a.hasBounds {
		a.minX, a.minY, a.maxX, a.maxY = minX, minY, maxX, maxY
		a.hasBounds = true
		return
	}
	a.minX = math.Min(a.minX, minX)
	a.minY = math.Min(a.minY, minY)
	a.maxX = math.Max(a.maxX, maxX)
	a.maxY = math.Max(a.maxY, maxY)
}

// sweepPoints performs a min/max sweep over a flat (x, y) pair list.
func sweepPoints(pts []float64) (minX, minY, maxX, maxY float64) {
	minX, minY = pts[0], pts[1]
	maxX, maxY = pts[0], pts[1]
	for i := 2; i+1 < len(pts); i += 2 {
		minX = math.Min(minX, pts[i])
		maxX = math.Max(maxX, pts[i])
		minY = math.Min(minY, pts[i+1])
		maxY = math.Max(maxY, pts[i+1])
	}
	return minX, minY, maxX, maxY
}

// AnalyzeBounds computes the local bounding rectangle of a command log
// in a single forward pass. The pass is read-only and deterministic:
// calling it twice on an unchanged log yields identical rectangles.
func AnalyzeBounds(log *Log) Rect {
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		has        bool
	)
	commit := func(a *pathAccumulator) {
		if !a.hasBounds {
			return
		}
		minX = math.Min(minX, a.minX)
		minY = math.Min(minY, a.minY)
		maxX = math.Max(maxX, a.maxX)
		maxY = math.Max(maxY, a.maxY)
		has = true
	}

	acc := newPathAccumulator()
	for _, cmd := range log.Commands() {
		switch c := cmd.(type) {
		case BeginPathCommand:
			commit(&acc)
			acc = newPathAccumulator()
		case BoundsCommand:
			acc.points = append(acc.points, c.X1, c.Y1, c.X2, c.Y2)
		case LineStyleCommand:
			acc.lastLineWidth = c.Style.Width
			acc.lineMultiplier = c.Style.Join.JointMultiplier()
		case FillCommand:
			acc.commitFill()
		case StrokeCommand:
			acc.commitStroke()
		}
		// Geometry and fill-style commands are consumed by the
		// renderer, not this pass.
	}
	commit(&acc)

	if !has {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
