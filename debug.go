//go:build !graphicsdebug

package graphics

// debugChecks gates precondition assertions on public numeric
// arguments. In release builds the checks compile out; callers are
// trusted.
const debugChecks = false
