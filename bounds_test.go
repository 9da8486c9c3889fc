package graphics

import "testing"

func TestAnalyzeBoundsEmptyLog(t *testing.T) {
	got := AnalyzeBounds(NewLog())
	if got != (Rect{}) {
		t.Errorf("AnalyzeBounds(empty) = %+v, want zero rect", got)
	}
}

func TestAnalyzeBoundsUncommittedGeometry(t *testing.T) {
	// Bounds records without a Fill or Stroke commit contribute
	// nothing.
	l := NewLog()
	l.append(BoundsCommand{X1: 0, Y1: 0, X2: 100, Y2: 100})

	got := AnalyzeBounds(l)
	if got != (Rect{}) {
		t.Errorf("AnalyzeBounds(uncommitted) = %+v, want zero rect", got)
	}
}

func TestAnalyzeBoundsFill(t *testing.T) {
	l := NewLog()
	l.append(BoundsCommand{X1: 10, Y1: 20, X2: 30, Y2: 50})
	l.append(FillCommand{})

	got := AnalyzeBounds(l)
	want := NewRect(10, 20, 20, 30)
	if !rectNear(got, want) {
		t.Errorf("AnalyzeBounds = %+v, want %+v", got, want)
	}
}

func TestAnalyzeBoundsZeroAreaFill(t *testing.T) {
	// A degenerate box still has a position; it must survive the pass
	// rather than collapse to the zero rect.
	l := NewLog()
	l.append(BoundsCommand{X1: 5, Y1: 8, X2: 15, Y2: 8})
	l.append(FillCommand{})

	got := AnalyzeBounds(l)
	want := NewRect(5, 8, 10, 0)
	if !rectNear(got, want) {
		t.Errorf("AnalyzeBounds(zero-area) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeBoundsStrokeInflation(t *testing.T) {
	tests := []struct {
		name  string
		style LineStyle
		want  Rect
	}{
		{
			"miter join inflates by the full width",
			NewLineStyle(4).WithJoin(LineJoinMiter),
			NewRect(-4, -4, 18, 8),
		},
		{
			"round join inflates by half the width",
			NewLineStyle(4),
			NewRect(-2, -2, 14, 4),
		},
		{
			"bevel join inflates by half the width",
			NewLineStyle(4).WithJoin(LineJoinBevel),
			NewRect(-2, -2, 14, 4),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLog()
			l.append(LineStyleCommand{Style: tt.style})
			l.append(MoveToCommand{X: 0, Y: 0})
			l.append(LineToCommand{X: 10, Y: 0})
			l.append(BoundsCommand{X1: 0, Y1: 0, X2: 10, Y2: 0})
			l.append(StrokeCommand{})

			got := AnalyzeBounds(l)
			if !rectNear(got, tt.want) {
				t.Errorf("AnalyzeBounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeBoundsStrokeDefaultWidth(t *testing.T) {
	// No style recorded: the effective width is one, halved by the
	// default round-join multiplier.
	l := NewLog()
	l.append(BoundsCommand{X1: 0, Y1: 0, X2: 10, Y2: 10})
	l.append(StrokeCommand{})

	got := AnalyzeBounds(l)
	want := NewRect(-0.5, -0.5, 11, 11)
	if !rectNear(got, want) {
		t.Errorf("AnalyzeBounds = %+v, want %+v", got, want)
	}
}

func TestAnalyzeBoundsStrokeWidthIsSticky(t *testing.T) {
	// Within one sub-path a later, thinner style does not shrink the
	// inflation: the widest stroke committed so far wins.
	l := NewLog()
	l.append(LineStyleCommand{Style: NewLineStyle(8).WithJoin(LineJoinMiter)})
	l.append(BoundsCommand{X1: 0, Y1: 0, X2: 10, Y2: 10})
	l.append(StrokeCommand{})
	l.append(LineStyleCommand{Style: NewLineStyle(2).WithJoin(LineJoinMiter)})
	l.append(BoundsCommand{X1: 0, Y1: 0, X2: 10, Y2: 10})
	l.append(StrokeCommand{})

	got := AnalyzeBounds(l)
	want := NewRect(-8, -8, 26, 26)
	if !rectNear(got, want) {
		t.Errorf("AnalyzeBounds = %+v, want %+v", got, want)
	}
}

func TestAnalyzeBoundsMultiplePaths(t *testing.T) {
	// Each BeginPath starts an independent accumulator; the final
	// rectangle is the union of the committed spans.
	l := NewLog()
	l.append(BoundsCommand{X1: 0, Y1: 0, X2: 10, Y2: 10})
	l.append(FillCommand{})
	l.append(BeginPathCommand{})
	l.append(BoundsCommand{X1: 50, Y1: 50, X2: 60, Y2: 60})
	l.append(FillCommand{})

	got := AnalyzeBounds(l)
	want := NewRect(0, 0, 60, 60)
	if !rectNear(got, want) {
		t.Errorf("AnalyzeBounds = %+v, want %+v", got, want)
	}
}

func TestAnalyzeBoundsStyleResetsPerPath(t *testing.T) {
	// A new sub-path resets stroke state: the wide miter style of the
	// first span must not leak into the second.
	l := NewLog()
	l.append(LineStyleCommand{Style: NewLineStyle(10).WithJoin(LineJoinMiter)})
	l.append(BoundsCommand{X1: 0, Y1: 0, X2: 10, Y2: 10})
	l.append(StrokeCommand{})
	l.append(BeginPathCommand{})
	l.append(BoundsCommand{X1: 0, Y1: 0, X2: 10, Y2: 10})
	l.append(StrokeCommand{})

	got := AnalyzeBounds(l)
	// First span: inflated by 10. Second span: default width one,
	// round multiplier, inflated by 0.5 — inside the first.
	want := NewRect(-10, -10, 30, 30)
	if !rectNear(got, want) {
		t.Errorf("AnalyzeBounds = %+v, want %+v", got, want)
	}
}

func TestAnalyzeBoundsDeterministic(t *testing.T) {
	l := NewLog()
	l.append(LineStyleCommand{Style: NewLineStyle(3)})
	l.append(BoundsCommand{X1: -5, Y1: -5, X2: 25, Y2: 15})
	l.append(StrokeCommand{})

	first := AnalyzeBounds(l)
	second := AnalyzeBounds(l)
	if first != second {
		t.Errorf("repeated analysis differs: %+v vs %+v", first, second)
	}
}
