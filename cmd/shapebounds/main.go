// Command shapebounds decodes a shape document and prints the local
// bounding box of each shape.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/graphics"
	"github.com/gogpu/graphics/shapescript"
)

func main() {
	var (
		input   = flag.String("input", "", "shape document (YAML or JSON)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *input, err)
	}

	doc, err := shapescript.Parse(data)
	if err != nil {
		log.Fatalf("Failed to parse document: %v", err)
	}

	for i, shape := range doc.Shapes {
		g := graphics.New()
		shapescript.DecodeShape(g, shape)
		b := g.LocalBounds()

		name := shape.Name
		if name == "" {
			name = fmt.Sprintf("shape[%d]", i)
		}
		fmt.Printf("%s: x=%g y=%g width=%g height=%g\n",
			name, b.X, b.Y, b.Width, b.Height)
	}
}
