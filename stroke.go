package graphics

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// JointMultiplier returns the stroke-width inflation factor applied at
// path corners during bounds analysis: 1.0 for miter joins, which extend
// further than half the line width, and 0.5 otherwise.
func (j LineJoin) JointMultiplier() float64 {
	if j == LineJoinMiter {
		return 1.0
	}
	return 0.5
}

// LineStyle describes how subsequent geometry is stroked. It mirrors
// the LineStyle command recorded in the log.
type LineStyle struct {
	// Width is the line width. A non-positive width leaves the
	// recorded style unchanged when set on a surface.
	Width float64

	// Color is the stroke color.
	Color Color

	// Alpha is the stroke opacity in [0, 1].
	Alpha float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become
	// bevels.
	MiterLimit float64
}

// NewLineStyle returns a LineStyle of the given width with default
// settings: black, fully opaque, round caps and joins, miter limit 3.
func NewLineStyle(width float64) LineStyle {
	return LineStyle{
		Width:      width,
		Color:      Black,
		Alpha:      1.0,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 3.0,
	}
}

// WithColor returns a copy of the LineStyle with the given color.
func (s LineStyle) WithColor(c Color) LineStyle {
	s.Color = c
	return s
}

// WithAlpha returns a copy of the LineStyle with the given opacity.
func (s LineStyle) WithAlpha(a float64) LineStyle {
	s.Alpha = a
	return s
}

// WithCap returns a copy of the LineStyle with the given line cap.
func (s LineStyle) WithCap(lineCap LineCap) LineStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the LineStyle with the given line join.
func (s LineStyle) WithJoin(join LineJoin) LineStyle {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the LineStyle with the given miter
// limit.
func (s LineStyle) WithMiterLimit(limit float64) LineStyle {
	s.MiterLimit = limit
	return s
}
