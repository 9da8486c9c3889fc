// Package shapescript decodes textual shape documents into a graphics
// command log.
//
// A shape document is a YAML (or JSON) structure carrying a list of
// shapes, each with a space-delimited token stream:
//
//	shapes:
//	  - name: frame
//	    graphics: "$r #10 #10 #80 #40"
//	  - name: dot
//	    graphics: "$c #50 #50 #8"
//
// Tokens are either a two-character command code ($r rectangle,
// $c circle, $s style) or an argument. An argument is a literal — its
// numeric value follows the '#' prefix — or, when it begins with '$'
// and is not a command code, an indirection that consumes the next
// literal from the remaining token stream.
//
// The decoder is a boundary component: it never fails on shape content.
// Unrecognized command codes are skipped, and every shape ends with an
// implicit fill regardless of which command code (or none) was
// recognized.
package shapescript

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/graphics"
)

// Command codes understood by the decoder.
const (
	codeRect   = "$r"
	codeCircle = "$c"
	codeStyle  = "$s" // recognized but inert
)

// literalPrefix marks a literal argument token.
const literalPrefix = '#'

// Document is a parsed shape document.
type Document struct {
	Shapes []Shape `yaml:"shapes"`
}

// Shape is one entry of a shape document: an optional name and the
// space-delimited token stream describing its geometry.
type Shape struct {
	Name     string `yaml:"name,omitempty"`
	Graphics string `yaml:"graphics"`
}

// Parse reads a shape document from YAML or JSON input.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("shapescript: parse document: %w", err)
	}
	return &doc, nil
}

// Decode replays every shape of the document onto the surface.
func (d *Document) Decode(g *graphics.Graphics) {
	for _, shape := range d.Shapes {
		DecodeShape(g, shape)
	}
}

// DecodeShape replays one shape's token stream through the drawing API.
// The style is reset to an opaque white fill and a zero-width line
// before the tokens run, and the shape always closes with an implicit
// fill.
func DecodeShape(g *graphics.Graphics, shape Shape) {
	g.SetFillStyle(graphics.White, 1)
	g.SetLineStyle(graphics.NewLineStyle(0)) // zero width: recorded style unchanged

	ts := tokenStream{tokens: strings.Fields(shape.Graphics)}
	for {
		tok, ok := ts.next()
		if !ok {
			break
		}
		switch tok {
		case codeRect:
			x := ts.arg()
			y := ts.arg()
			w := ts.arg()
			h := ts.arg()
			g.DrawRectangle(x, y, w, h)
		case codeCircle:
			x := ts.arg()
			y := ts.arg()
			r := ts.arg()
			g.DrawCircle(x, y, r)
		case codeStyle:
			// Style tokens carry no effect in the current format.
			graphics.Logger().Debug("shapescript: inert style token",
				"shape", shape.Name)
		default:
			graphics.Logger().Debug("shapescript: skipping token",
				"shape", shape.Name, "token", tok)
		}
	}

	// Every shape fills, even when no command code was recognized.
	g.Fill()
}

// tokenStream walks a shape's tokens with literal-indirection support.
type tokenStream struct {
	tokens []string
	pos    int
}

// next returns the next raw token.
func (ts *tokenStream) next() (string, bool) {
	if ts.pos >= len(ts.tokens) {
		return "", false
	}
	tok := ts.tokens[ts.pos]
	ts.pos++
	return tok, true
}

// arg resolves the next argument: a literal token yields its value; a
// '$'-prefixed token that is not itself a command code consumes the next
// literal from the remaining stream. A missing or malformed argument
// resolves to zero.
func (ts *tokenStream) arg() float64 {
	tok, ok := ts.next()
	if !ok {
		return 0
	}
	if len(tok) > 0 && tok[0] == literalPrefix {
		return parseLiteral(tok)
	}
	switch tok {
	case codeRect, codeCircle, codeStyle:
		graphics.Logger().Debug("shapescript: command code in argument position", "token", tok)
		return 0
	}
	if len(tok) > 0 && tok[0] == '$' {
		return ts.nextLiteral()
	}
	graphics.Logger().Debug("shapescript: malformed argument token", "token", tok)
	return 0
}

// nextLiteral consumes tokens until it finds a literal, returning its
// value, or zero when the stream runs out.
func (ts *tokenStream) nextLiteral() float64 {
	for {
		tok, ok := ts.next()
		if !ok {
			return 0
		}
		if len(tok) > 0 && tok[0] == literalPrefix {
			return parseLiteral(tok)
		}
	}
}

// parseLiteral decodes the numeric value after the literal prefix.
func parseLiteral(tok string) float64 {
	v, n := strconv.ParseDecimal([]byte(tok[1:]))
	if n == 0 {
		graphics.Logger().Debug("shapescript: malformed literal", "token", tok)
		return 0
	}
	return v
}
