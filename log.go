package graphics

// Log is an append-only ordered sequence of drawing commands, owned
// exclusively by one Graphics surface. Only the owning surface ever
// appends; consumers (the bounds analyzer, an external renderer) perform
// read-only passes and must treat the log as immutable for the duration
// of a pass.
//
// A Log always starts with a BeginPath command; Clear re-seeds it the
// same way.
type Log struct {
	commands []Command
}

// NewLog creates a command log seeded with an open path.
func NewLog() *Log {
	l := &Log{commands: make([]Command, 0, 64)}
	l.commands = append(l.commands, BeginPathCommand{})
	return l
}

// append records a command. Unexported: the owning Graphics surface is
// the log's single writer.
func (l *Log) append(cmd Command) {
	l.commands = append(l.commands, cmd)
}

// Clear atomically empties the log and re-seeds it with a fresh
// BeginPath, retaining the allocated capacity.
func (l *Log) Clear() {
	l.commands = l.commands[:0]
	l.commands = append(l.commands, BeginPathCommand{})
}

// Commands returns the recorded commands for read-only iteration.
func (l *Log) Commands() []Command {
	return l.commands
}

// Len returns the number of recorded commands.
func (l *Log) Len() int {
	return len(l.commands)
}

// Clone creates a deep copy of the log.
func (l *Log) Clone() *Log {
	clone := &Log{commands: make([]Command, len(l.commands))}
	copy(clone.commands, l.commands)
	return clone
}

// Playback replays the log to the given renderer in recorded order.
// Bounds commands carry no drawable geometry and are skipped.
func (l *Log) Playback(r Renderer) {
	for _, cmd := range l.commands {
		switch c := cmd.(type) {
		case BeginPathCommand:
			r.BeginPath()
		case ClosePathCommand:
			r.ClosePath()
		case MoveToCommand:
			r.MoveTo(c.X, c.Y)
		case LineToCommand:
			r.LineTo(c.X, c.Y)
		case ArcCommand:
			r.Arc(c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle, c.Anticlockwise)
		case RectCommand:
			r.Rect(c.X, c.Y, c.Width, c.Height)
		case CubicToCommand:
			r.CubicTo(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
		case LineStyleCommand:
			r.SetLineStyle(c.Style)
		case FillStyleCommand:
			r.SetFillStyle(c.Color, c.Alpha)
		case FillCommand:
			r.Fill()
		case StrokeCommand:
			r.Stroke()
		}
	}
}
