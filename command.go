package graphics

// CommandType identifies the type of a command in the log.
type CommandType uint8

const (
	// Path delimiters
	CmdBeginPath CommandType = iota // Start of an independently-bounded sub-path
	CmdClosePath                    // Close the current sub-path

	// Geometry commands
	CmdMoveTo  // Move the pen without drawing
	CmdLineTo  // Straight segment to a point
	CmdArc     // Circular arc around a center
	CmdRect    // Axis-aligned rectangle
	CmdCubicTo // Cubic Bezier segment

	// Style commands
	CmdLineStyle // Set stroke style
	CmdFillStyle // Set fill style

	// Analysis commands
	CmdBounds // Precomputed raw bounds of the preceding primitive

	// Commit markers
	CmdFill   // Fill the accumulated path
	CmdStroke // Stroke the accumulated path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginPath: "BeginPath",
	CmdClosePath: "ClosePath",
	CmdMoveTo:    "MoveTo",
	CmdLineTo:    "LineTo",
	CmdArc:       "Arc",
	CmdRect:      "Rect",
	CmdCubicTo:   "CubicTo",
	CmdLineStyle: "LineStyle",
	CmdFillStyle: "FillStyle",
	CmdBounds:    "Bounds",
	CmdFill:      "Fill",
	CmdStroke:    "Stroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types. Commands
// are immutable records: created once when appended to a Log, never
// mutated, and replayed by independent consumers.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginPathCommand marks the start of a new independently-bounded
// sub-path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// ClosePathCommand closes the current sub-path.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// MoveToCommand moves the pen to a point without drawing.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand draws a straight segment to a point.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcCommand draws a circular arc around a center.
type ArcCommand struct {
	// X, Y is the arc center.
	X, Y float64
	// Radius is the arc radius.
	Radius float64
	// StartAngle and EndAngle bound the sweep, in radians.
	StartAngle, EndAngle float64
	// Anticlockwise reverses the sweep direction.
	Anticlockwise bool
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// RectCommand draws an axis-aligned rectangle.
type RectCommand struct {
	X, Y          float64
	Width, Height float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// CubicToCommand draws a cubic Bezier segment from the current pen
// position through two control points.
type CubicToCommand struct {
	// C1X, C1Y is the first control point.
	C1X, C1Y float64
	// C2X, C2Y is the second control point.
	C2X, C2Y float64
	// X, Y is the segment end point.
	X, Y float64
}

// Type implements Command.
func (CubicToCommand) Type() CommandType { return CmdCubicTo }

// LineStyleCommand sets the stroke style for subsequent geometry.
type LineStyleCommand struct {
	Style LineStyle
}

// Type implements Command.
func (LineStyleCommand) Type() CommandType { return CmdLineStyle }

// FillStyleCommand sets the fill style for subsequent geometry.
type FillStyleCommand struct {
	// Color is the fill color.
	Color Color
	// Alpha is the fill opacity in [0, 1].
	Alpha float64
}

// Type implements Command.
func (FillStyleCommand) Type() CommandType { return CmdFillStyle }

// BoundsCommand carries the precomputed raw bounds of the geometry
// command it accompanies, as two corner points. The bounds analyzer
// consumes these; renderers ignore them.
type BoundsCommand struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Type implements Command.
func (BoundsCommand) Type() CommandType { return CmdBounds }

// FillCommand commits the accumulated path as a fill.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand commits the accumulated path as a stroke.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }
