//go:build graphicsdebug

package graphics

// debugChecks enables precondition assertions on public numeric
// arguments. Violations fail fast; they are programming errors, not
// recoverable conditions.
const debugChecks = true
