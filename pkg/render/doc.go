// Package render groups the output formats for built scenes.
//
// The [dot] subpackage converts a scene into Graphviz DOT and renders it to
// SVG in-process:
//
//	src := dot.ToDOT(result, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// [dot]: github.com/matzehuels/viewlayout/pkg/render/dot
package render
