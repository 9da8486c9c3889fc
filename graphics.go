package graphics

import (
	"errors"
	"fmt"
	"math"
)

// Graphics is a drawing surface. It exposes the imperative path-building
// API, owns the command log, and tracks the current pen position.
//
// Every geometry-producing call appends its semantic command together
// with a precomputed Bounds command, so LocalBounds never has to flatten
// curves: bounding boxes for curved primitives are computed once,
// analytically, at authoring time.
//
// Graphics is not safe for concurrent use; a surface and its log belong
// to a single owner.
type Graphics struct {
	log      *Log
	cursor   Point
	renderer Renderer

	// invalidate is notified when Clear discards the geometry, so the
	// owning node can drop transform-dependent cached bounds.
	invalidate func()

	// clip, when set, overrides bounds analysis entirely.
	clip *Rect

	// cached analysis result, valid while boundsValid holds.
	bounds      Rect
	boundsValid bool
}

// Graphics surfaces satisfy the Drawable capability.
var _ Drawable = (*Graphics)(nil)

// ErrNoRenderer is returned by Render when no renderer was injected.
var ErrNoRenderer = errors.New("graphics: no renderer configured")

// New creates an empty drawing surface. Collaborators (renderer,
// invalidation sink, clip rectangle) are injected via options.
func New(opts ...Option) *Graphics {
	var o surfaceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Graphics{
		log:         NewLog(),
		renderer:    o.renderer,
		invalidate:  o.invalidate,
		clip:        o.clip,
		boundsValid: true,
	}
}

// Log returns the surface's command log for read-only replay.
func (g *Graphics) Log() *Log {
	return g.log
}

// Cursor returns the current pen position.
func (g *Graphics) Cursor() Point {
	return g.cursor
}

// SetLineStyle records a stroke style for subsequent geometry. A
// non-positive width is a silent no-op: the recorded style stays
// unchanged.
func (g *Graphics) SetLineStyle(style LineStyle) {
	assertFinite("line style", style.Width, float64(style.Color), style.Alpha, style.MiterLimit)
	if style.Width <= 0 {
		return
	}
	g.appendCommand(LineStyleCommand{Style: style})
}

// SetFillStyle records a fill style for subsequent geometry. It has no
// geometric effect.
func (g *Graphics) SetFillStyle(color Color, alpha float64) {
	assertFinite("fill style", float64(color), alpha)
	g.appendCommand(FillStyleCommand{Color: color, Alpha: alpha})
}

// Clear empties the command log, resets the cursor to the origin and the
// cached bounds to the zero rectangle, re-opens a fresh path, and
// notifies the invalidation sink that the geometry is stale.
func (g *Graphics) Clear() {
	g.log.Clear()
	g.cursor = Point{}
	g.bounds = Rect{}
	g.boundsValid = true
	Logger().Debug("graphics: cleared command log")
	if g.invalidate != nil {
		g.invalidate()
	}
}

// BeginPath marks the start of a new independently-bounded sub-path.
func (g *Graphics) BeginPath() {
	g.appendCommand(BeginPathCommand{})
}

// ClosePath closes the current sub-path.
func (g *Graphics) ClosePath() {
	g.appendCommand(ClosePathCommand{})
}

// MoveTo moves the pen to (x, y) without drawing.
func (g *Graphics) MoveTo(x, y float64) {
	assertFinite("moveTo", x, y)
	g.appendCommand(MoveToCommand{X: x, Y: y})
	g.cursor = Point{X: x, Y: y}
}

// LineTo draws a straight segment from the pen to (x, y). The segment's
// tight box is just its two endpoints, recorded alongside. A zero-length
// segment is a no-op.
func (g *Graphics) LineTo(x, y float64) {
	assertFinite("lineTo", x, y)
	if x == g.cursor.X && y == g.cursor.Y {
		return
	}
	g.appendCommand(LineToCommand{X: x, Y: y})
	g.appendCommand(BoundsCommand{X1: g.cursor.X, Y1: g.cursor.Y, X2: x, Y2: y})
	g.cursor = Point{X: x, Y: y}
}

// DrawRectangle draws an axis-aligned rectangle.
func (g *Graphics) DrawRectangle(x, y, w, h float64) {
	assertFinite("rectangle", x, y, w, h)
	g.appendCommand(RectCommand{X: x, Y: y, Width: w, Height: h})
	g.appendCommand(BoundsCommand{X1: x, Y1: y, X2: x + w, Y2: y + h})
}

// DrawCircle draws a full circle of radius r around (x, y), recorded as
// a full-turn arc with its enclosing square as bounds.
func (g *Graphics) DrawCircle(x, y, r float64) {
	assertFinite("circle", x, y, r)
	g.appendCommand(ArcCommand{X: x, Y: y, Radius: r, StartAngle: 0, EndAngle: twoPi})
	g.appendCommand(BoundsCommand{X1: x - r, Y1: y - r, X2: x + r, Y2: y + r})
}

// DrawArc draws a circular arc of radius r around (x, y) from startAngle
// to endAngle in radians, anticlockwise when requested. Equal angles and
// a zero radius are no-ops.
//
// A sweep of a full turn or more records the circle's enclosing square
// and moves the pen to the circumference point at endAngle + pi/2, so a
// subsequent relative command continues from a deterministic point on
// the circle.
func (g *Graphics) DrawArc(x, y, r, startAngle, endAngle float64, anticlockwise bool) {
	assertFinite("arc", x, y, r, startAngle, endAngle)
	if startAngle == endAngle || r <= 0 {
		return
	}

	bounds := ArcBounds(x, y, r, startAngle, endAngle, anticlockwise)
	g.appendCommand(BoundsCommand{X1: bounds.X, Y1: bounds.Y, X2: bounds.MaxX(), Y2: bounds.MaxY()})
	g.appendCommand(ArcCommand{
		X: x, Y: y, Radius: r,
		StartAngle: startAngle, EndAngle: endAngle,
		Anticlockwise: anticlockwise,
	})

	if math.Abs(endAngle-startAngle) >= twoPi {
		p := circumferencePoint(x, y, r, endAngle+math.Pi/2)
		g.appendCommand(MoveToCommand{X: p.X, Y: p.Y})
		g.cursor = p
	}
}

// CubicTo draws a cubic Bezier segment from the pen through the control
// points (c1x, c1y) and (c2x, c2y) to (x, y). The segment's tight box is
// computed from the closed-form per-axis extrema and recorded alongside.
func (g *Graphics) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	assertFinite("cubicTo", c1x, c1y, c2x, c2y, x, y)
	g.appendCommand(CubicToCommand{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})

	minX, maxX := axisExtrema(g.cursor.X, c1x, c2x, x)
	minY, maxY := axisExtrema(g.cursor.Y, c1y, c2y, y)
	g.appendCommand(BoundsCommand{X1: minX, Y1: minY, X2: maxX, Y2: maxY})
	g.cursor = Point{X: x, Y: y}
}

// Fill commits the accumulated path as a fill.
func (g *Graphics) Fill() {
	g.appendCommand(FillCommand{})
}

// Stroke commits the accumulated path as a stroke.
func (g *Graphics) Stroke() {
	g.appendCommand(StrokeCommand{})
}

// LocalBounds returns the surface's bounding rectangle in local
// coordinates. While a clip rectangle is set it is returned verbatim and
// the log is not analyzed. The result is cached until the log changes.
func (g *Graphics) LocalBounds() Rect {
	if g.clip != nil {
		return *g.clip
	}
	if !g.boundsValid {
		g.bounds = AnalyzeBounds(g.log)
		g.boundsValid = true
	}
	return g.bounds
}

// SetClipRect sets a clip rectangle. Clip always wins: LocalBounds
// returns it verbatim until it is cleared.
func (g *Graphics) SetClipRect(r Rect) {
	clip := r
	g.clip = &clip
}

// ClearClipRect removes the clip rectangle, restoring analyzed bounds.
func (g *Graphics) ClearClipRect() {
	g.clip = nil
}

// Render replays the command log to the injected renderer.
func (g *Graphics) Render() error {
	if g.renderer == nil {
		return ErrNoRenderer
	}
	g.log.Playback(g.renderer)
	return nil
}

// appendCommand records a command and invalidates the cached bounds.
func (g *Graphics) appendCommand(cmd Command) {
	g.log.append(cmd)
	g.boundsValid = false
}

// assertFinite panics in debug builds when any value is NaN or infinite.
// Release builds compile the check out entirely.
func assertFinite(op string, vals ...float64) {
	if !debugChecks {
		return
	}
	for _, v := range vals {
		if !isFinite(v) {
			panic(fmt.Sprintf("graphics: %s: non-finite argument %v", op, v))
		}
	}
}
