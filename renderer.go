package graphics

// Renderer is the contract for the external consumer that turns a
// command log into pixels. A renderer is responsible for applying line
// and fill styles to all geometry appearing between a style command and
// the next Stroke/Fill commit; this core guarantees only bounding
// geometry, never pixel output.
//
// A renderer is supplied to a surface explicitly via WithRenderer; there
// is no process-wide registry.
type Renderer interface {
	// BeginPath starts a new sub-path.
	BeginPath()

	// ClosePath closes the current sub-path.
	ClosePath()

	// MoveTo moves the pen without drawing.
	MoveTo(x, y float64)

	// LineTo draws a straight segment to a point.
	LineTo(x, y float64)

	// Arc draws a circular arc around (x, y).
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)

	// Rect draws an axis-aligned rectangle.
	Rect(x, y, w, h float64)

	// CubicTo draws a cubic Bezier segment.
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)

	// SetLineStyle applies a stroke style to subsequent geometry.
	SetLineStyle(style LineStyle)

	// SetFillStyle applies a fill style to subsequent geometry.
	SetFillStyle(color Color, alpha float64)

	// Fill commits the accumulated path as a fill.
	Fill()

	// Stroke commits the accumulated path as a stroke.
	Stroke()
}

// Drawable is the capability a Graphics surface contributes to a scene
// node: local bounds plus access to the command log. Scene nodes compose
// a Drawable rather than extending a drawing type.
type Drawable interface {
	// LocalBounds returns the surface's bounding rectangle in local
	// coordinates.
	LocalBounds() Rect

	// Log returns the surface's command log for read-only replay.
	Log() *Log
}
