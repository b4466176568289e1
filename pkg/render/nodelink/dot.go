package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the level and the cumulative path cost to node labels.
	// When false, only the node label is shown.
	Detailed bool

	// Costs labels edges with their cost even when the frame's strategy
	// ignores costs.
	Costs bool
}

var stateFill = map[render.State]string{
	render.StateVisited: "#bfdbfe",
	render.StateCurrent: "#fde68a",
	render.StateTarget:  "#bbf7d0",
}

// ToDOT converts a tree to Graphviz DOT format, coloring nodes by their state
// in f. The resulting DOT string can be rendered with [RenderSVG].
//
// Children are emitted in order so the dot engine keeps left-to-right order.
func ToDOT(t *tree.Tree, f render.Frame, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18, fixedsize=false];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if t == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	for _, n := range t.Nodes() {
		label := fmtLabel(t, n, opts.Detailed)
		attrs := fmtAttrs(label, f.State(n.Label))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Label, strings.Join(attrs, ", "))
	}

	costs := opts.Costs || f.Algorithm.Weighted()
	buf.WriteString("\n")
	for _, n := range t.Nodes() {
		for _, c := range n.Children {
			if costs {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", n.Label, c.Label, strconv.Itoa(c.Cost))
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.Label, c.Label)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(t *tree.Tree, n *tree.Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\nlevel: %d\ncost: %d", n.Label, n.Level, t.PathCost(n.Label))
}

func fmtAttrs(label string, s render.State) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if fill, ok := stateFill[s]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
	}
	if s == render.StateCurrent || s == render.StateTarget {
		attrs = append(attrs, "penwidth=3")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
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

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// one whose viewBox starts at the origin.
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
