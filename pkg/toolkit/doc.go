// Package toolkit provides the layout primitives the rest of viewlayout is
// built on: views, native constraints and the engine that tracks which
// constraints are active.
//
// A native [Constraint] is immutable apart from its activation flag and its
// priority. Changing any other term means building a new constraint and
// swapping it in with [Replace], which keeps the engine's slot and never
// exposes a state where both (or neither) are active.
//
// # Threading
//
// Nothing in this package is synchronized. Views, constraints and engines
// belong to the goroutine that owns the UI state; callers from other
// goroutines must serialize access themselves.
//
// # Ownership
//
// Constraints refer to their views through weak pointers. A view is kept
// alive by its parent (or by the caller, for roots), never by the
// constraints that mention it.
package toolkit
