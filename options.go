package graphics

// Option configures a Graphics surface during creation.
// Use functional options to inject collaborators.
//
// Example:
//
//	// Standalone surface
//	g := graphics.New()
//
//	// Surface owned by a scene node
//	g := graphics.New(
//		graphics.WithRenderer(nodeRenderer),
//		graphics.WithInvalidation(node.InvalidateBounds),
//	)
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for surface creation.
type surfaceOptions struct {
	renderer   Renderer
	invalidate func()
	clip       *Rect
}

// WithRenderer injects the renderer that will replay this surface's
// command log. The surface never resolves a renderer through any global
// registry; the owning context supplies one here.
func WithRenderer(r Renderer) Option {
	return func(o *surfaceOptions) {
		o.renderer = r
	}
}

// WithInvalidation sets the invalidation sink notified whenever the
// surface's geometry is cleared, so the owning node can propagate a
// geometry-changed signal upward.
func WithInvalidation(fn func()) Option {
	return func(o *surfaceOptions) {
		o.invalidate = fn
	}
}

// WithClipRect sets an initial clip rectangle. While a clip rectangle is
// set, LocalBounds returns it verbatim.
func WithClipRect(r Rect) Option {
	return func(o *surfaceOptions) {
		clip := r
		o.clip = &clip
	}
}
