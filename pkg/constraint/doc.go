// Package constraint implements mutable layout constraints.
//
// A native [toolkit.Constraint] cannot change its terms once built. A
// [Mutable] wraps one and exposes setters for everything right of the
// relation: the second view and attribute, the relation itself, the
// multiplier, the constant and the priority. Each setter builds a
// replacement native constraint and swaps it in with [toolkit.Replace], so
// an active constraint stays active (and an inactive one stays inactive)
// without a moment where both or neither are in the engine.
//
// The first term (the constrained view and attribute) is fixed for the life
// of a Mutable.
//
// # Identity
//
// Mutables are compared by pointer. Two constraints built from the same
// terms are different constraints; controllers rely on this to keep their
// constraint lists free of duplicates without merging unrelated entries.
//
// # Self references
//
// A second term pointing back at the constrained view with a non-zero
// constant has no geometric meaning, so it is rewritten when the native
// constraint is built:
//
//   - edges, centers and baselines are re-targeted at the view's parent:
//     top = top + 10 becomes top = parent.top + 10
//   - a size constrained to the same size drops its second term entirely:
//     width = width + 40 becomes width = 40
//
// A width constrained to the same view's height is left alone.
package constraint
