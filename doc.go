// Package graphics is the geometry core of the GoGPU scene-graph engine.
//
// # Overview
//
// graphics records vector-drawing operations (lines, arcs, circles,
// rectangles, cubic curves, stroke/fill commits) into an ordered command
// log and computes the tight axis-aligned bounding box of the resulting
// shape without re-walking or re-flattening curves at query time.
//
// The central type is [Graphics], a drawing surface with an imperative
// path-building API. Every geometry-producing call appends its semantic
// command to the surface's [Log] together with a precomputed bounds
// command, so a later bounds query is a cheap union of precomputed boxes
// regardless of path complexity:
//
//	g := graphics.New()
//	g.SetLineStyle(graphics.NewLineStyle(4).WithJoin(graphics.LineJoinMiter))
//	g.MoveTo(0, 0)
//	g.LineTo(10, 0)
//	g.Stroke()
//	b := g.LocalBounds() // {-4, -4, 18, 8}
//
// # Command log
//
// The [Log] is an append-only sequence of typed [Command] structs, owned
// exclusively by one Graphics surface. Two independent consumers replay
// it: the bounds analyzer in this package, and an external [Renderer]
// that turns the same log into pixels. Only the owning surface ever
// appends; both readers treat the log as immutable for the duration of
// their pass.
//
// Commands are typed structs rather than a packed binary stream so the
// log stays inspectable and debuggable.
//
// # Collaborators
//
// Rasterization, scene-node transforms, and clipping hierarchies live
// outside this package. A renderer is supplied by the owning context via
// [WithRenderer]; the owning scene node may set a clip rectangle, which
// short-circuits bounds analysis, and receives geometry-invalidation
// signals via [WithInvalidation].
//
// # Shape scripts
//
// The shapescript subpackage decodes textual shape documents into a
// command log through the Graphics API. It is a boundary component; its
// token grammar is not part of this core.
package graphics
