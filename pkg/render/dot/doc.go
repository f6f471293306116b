// Package dot renders a built scene as a Graphviz diagram.
//
// Views become boxes. Dotted grey edges connect parents to their children,
// and every constraint becomes a labelled edge from the constrained view to
// the view it refers to:
//
//	"blue" -> "center" [label="top = bottom ×1 +8 @750"];
//
// Constraints on an absolute value have no second view and are drawn as a
// self-loop. Required constraints use a heavier pen than optional ones.
// Inactive constraints are left out unless [Options.Inactive] is set, in
// which case they are drawn dashed.
//
// [ToDOT] produces the DOT source; [RenderSVG] lays it out in-process with
// [github.com/goccy/go-graphviz].
package dot
