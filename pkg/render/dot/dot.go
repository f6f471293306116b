package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/viewlayout/pkg/constraint"
	"github.com/matzehuels/viewlayout/pkg/scene"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

// Options configures DOT generation.
type Options struct {
	// Inactive includes inactive constraints, drawn dashed.
	Inactive bool
}

// ToDOT converts a built scene to Graphviz DOT source.
func ToDOT(r *scene.Result, opts Options) string {
	var buf bytes.Buffer
	name := "scene"
	if r.Name != "" {
		name = r.Name
	}
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	for _, v := range r.Views {
		fmt.Fprintf(&buf, "  %q;\n", v.String())
	}

	buf.WriteString("\n")
	for _, v := range r.Views {
		for _, c := range v.Children() {
			fmt.Fprintf(&buf, "  %q -> %q [style=dotted, color=grey, arrowhead=none];\n", v.String(), c.String())
		}
	}

	buf.WriteString("\n")
	for _, m := range r.Constraints() {
		if !m.Configured() || (!m.IsActive() && !opts.Inactive) {
			continue
		}
		from := m.FirstItem()
		to := m.Item()
		if to == nil {
			to = from
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", from.String(), to.String(), strings.Join(fmtAttrs(m), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Label renders m as "top = bottom ×1 +8 @750", or "width = 40 @1000" when
// it has no second view.
func Label(m *constraint.Mutable) string {
	lhs := fmt.Sprintf("%s %s", m.FirstAttribute(), m.Relation().Symbol())
	prio := "@" + strconv.FormatFloat(float64(m.Priority()), 'g', -1, 32)
	if m.Item() == nil {
		return fmt.Sprintf("%s %s %s", lhs, ftoa(m.Constant()), prio)
	}
	return fmt.Sprintf("%s %s ×%s %s %s", lhs, m.Attribute(), ftoa(m.Multiplier()), signed(m.Constant()), prio)
}

func fmtAttrs(m *constraint.Mutable) []string {
	attrs := []string{fmt.Sprintf("label=%q", Label(m))}
	if m.Priority() == toolkit.Required {
		attrs = append(attrs, "penwidth=2")
	}
	if !m.IsActive() {
		attrs = append(attrs, "style=dashed", "color=grey", "fontcolor=grey")
	}
	return attrs
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func signed(f float64) string {
	if f < 0 {
		return ftoa(f)
	}
	return "+" + ftoa(f)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from its
// viewBox rather than Graphviz's point-based size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
