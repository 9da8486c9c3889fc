package shapescript

import (
	"testing"

	"github.com/gogpu/graphics"
)

const sampleDoc = `
shapes:
  - name: frame
    graphics: "$r #10 #10 #80 #40"
  - name: dot
    graphics: "$c #50 #50 #8"
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if len(doc.Shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2", len(doc.Shapes))
	}
	if doc.Shapes[0].Name != "frame" {
		t.Errorf("Shapes[0].Name = %q, want %q", doc.Shapes[0].Name, "frame")
	}
	if doc.Shapes[1].Graphics != "$c #50 #50 #8" {
		t.Errorf("Shapes[1].Graphics = %q", doc.Shapes[1].Graphics)
	}
}

func TestParseJSONInput(t *testing.T) {
	// YAML is a superset of JSON, so JSON documents parse as-is.
	doc, err := Parse([]byte(`{"shapes": [{"name": "box", "graphics": "$r #0 #0 #5 #5"}]}`))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if len(doc.Shapes) != 1 || doc.Shapes[0].Name != "box" {
		t.Errorf("parsed document = %+v", doc)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("shapes: [unclosed")); err == nil {
		t.Error("Parse of malformed input should fail")
	}
}

func TestDecodeShapeRect(t *testing.T) {
	g := graphics.New()
	DecodeShape(g, Shape{Name: "frame", Graphics: "$r #10 #10 #80 #40"})

	got := g.LocalBounds()
	want := graphics.NewRect(10, 10, 80, 40)
	if got != want {
		t.Errorf("LocalBounds() = %+v, want %+v", got, want)
	}
}

func TestDecodeShapeCircle(t *testing.T) {
	g := graphics.New()
	DecodeShape(g, Shape{Name: "dot", Graphics: "$c #50 #50 #8"})

	got := g.LocalBounds()
	want := graphics.NewRect(42, 42, 16, 16)
	if got != want {
		t.Errorf("LocalBounds() = %+v, want %+v", got, want)
	}
}

func TestDecodeShapeIndirection(t *testing.T) {
	// A '$'-prefixed non-command argument pulls the next literal out of
	// the remaining stream.
	g := graphics.New()
	DecodeShape(g, Shape{Graphics: "$r $x #10 #20 #30 #40"})

	got := g.LocalBounds()
	want := graphics.NewRect(10, 20, 30, 40)
	if got != want {
		t.Errorf("LocalBounds() = %+v, want %+v", got, want)
	}
}

func TestDecodeShapeUnknownCodeSkipped(t *testing.T) {
	g := graphics.New()
	DecodeShape(g, Shape{Graphics: "$z $r #0 #0 #10 #10"})

	got := g.LocalBounds()
	want := graphics.NewRect(0, 0, 10, 10)
	if got != want {
		t.Errorf("LocalBounds() = %+v, want %+v", got, want)
	}
}

func TestDecodeShapeStyleTokenInert(t *testing.T) {
	g := graphics.New()
	DecodeShape(g, Shape{Graphics: "$s $r #0 #0 #10 #10"})

	got := g.LocalBounds()
	want := graphics.NewRect(0, 0, 10, 10)
	if got != want {
		t.Errorf("LocalBounds() = %+v, want %+v", got, want)
	}
}

func TestDecodeShapeMalformedArguments(t *testing.T) {
	tests := []struct {
		name   string
		tokens string
		want   graphics.Rect
	}{
		{
			// Missing arguments resolve to zero dimensions.
			"truncated stream", "$r #10 #10",
			graphics.NewRect(10, 10, 0, 0),
		},
		{
			// A literal with no digits resolves to zero.
			"malformed literal", "$r #x #5 #10 #10",
			graphics.NewRect(0, 5, 10, 10),
		},
		{
			// A command code in argument position is not indirection;
			// it resolves to zero without consuming a literal.
			"command code as argument", "$r $c #1 #2 #3",
			graphics.NewRect(0, 1, 2, 3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graphics.New()
			DecodeShape(g, Shape{Graphics: tt.tokens})
			if got := g.LocalBounds(); got != tt.want {
				t.Errorf("LocalBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeShapeAlwaysFills(t *testing.T) {
	// Even a shape with no recognized commands ends in a Fill commit.
	g := graphics.New()
	DecodeShape(g, Shape{Graphics: "nothing here"})

	cmds := g.Log().Commands()
	last := cmds[len(cmds)-1]
	if _, ok := last.(graphics.FillCommand); !ok {
		t.Errorf("last command is %T, want FillCommand", last)
	}
}

func TestDocumentDecode(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}

	g := graphics.New()
	doc.Decode(g)

	// Frame spans (10, 10)-(90, 50); the dot's enclosing square spans
	// (42, 42)-(58, 58), poking past the frame's bottom edge.
	got := g.LocalBounds()
	want := graphics.NewRect(10, 10, 80, 48)
	if got != want {
		t.Errorf("LocalBounds() = %+v, want %+v", got, want)
	}
}
