package render

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/algoviz/pkg/heuristic"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// DefaultRadius is the node circle radius in canvas units.
const DefaultRadius = 25

// margin is added around the node bounding box when computing the viewBox.
const margin = 80

const treeCSS = `
    .edge { stroke: #94a3b8; stroke-width: 2; }
    .edge-cost { font: 12px sans-serif; fill: #64748b; text-anchor: middle; }
    .node circle { fill: #ffffff; stroke: #334155; stroke-width: 2; }
    .node .label { font: bold 16px sans-serif; text-anchor: middle; dominant-baseline: central; }
    .node .cost-text { font: 10px sans-serif; fill: #475569; text-anchor: middle; }
    .node .cost-text.f { fill: #8b5cf6; }
    .node.visited circle { fill: #bfdbfe; stroke: #2563eb; }
    .node.current circle { fill: #fde68a; stroke: #d97706; stroke-width: 3; }
    .node.target circle { fill: #bbf7d0; stroke: #16a34a; stroke-width: 3; }`

// Options configures SVG output.
type Options struct {
	// Width scales the output to this pixel width, preserving the aspect
	// ratio. Zero keeps the natural canvas size.
	Width float64 `json:"width,omitempty" toml:"width"`

	// Radius overrides [DefaultRadius].
	Radius float64 `json:"radius,omitempty" toml:"radius"`

	// NoStyle omits the embedded stylesheet so callers can supply their own.
	NoStyle bool `json:"no_style,omitempty" toml:"no_style"`
}

// SVG draws t as a node-link diagram highlighted according to f.
//
// Edges are drawn first, then nodes on top. Weighted strategies (ucs, astar)
// label every edge with its cost; astar additionally annotates each node with
// g, h and f.
func SVG(t *tree.Tree, f Frame, opts Options) []byte {
	r := opts.Radius
	if r <= 0 {
		r = DefaultRadius
	}

	minX, minY, w, h := viewBox(t)
	outW, outH := w, h
	if opts.Width > 0 {
		outW, outH = opts.Width, opts.Width*h/w
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, w, h, outW, outH)
	if !opts.NoStyle {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", treeCSS)
	}

	if t != nil && t.Root != nil {
		buf.WriteString("  <g class=\"edges\">\n")
		drawEdges(&buf, t.Root, f.Algorithm.Weighted())
		buf.WriteString("  </g>\n")

		buf.WriteString("  <g class=\"nodes\">\n")
		for _, n := range t.Nodes() {
			drawNode(&buf, t, n, f, r)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func viewBox(t *tree.Tree) (x, y, w, h float64) {
	if t == nil || t.Len() == 0 {
		return 0, 0, tree.CanvasWidth, tree.CanvasHeight(0)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range t.Nodes() {
		minX, maxX = min(minX, n.Pos.X), max(maxX, n.Pos.X)
		minY, maxY = min(minY, n.Pos.Y), max(maxY, n.Pos.Y)
	}
	return minX - margin, minY - margin, maxX - minX + 2*margin, maxY - minY + 2*margin
}

func drawEdges(buf *bytes.Buffer, n *tree.Node, costs bool) {
	for _, c := range n.Children {
		from, to := html.EscapeString(n.Label), html.EscapeString(c.Label)
		fmt.Fprintf(buf, `    <line class="edge" id="edge-%s-%s" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
			from, to, n.Pos.X, n.Pos.Y, c.Pos.X, c.Pos.Y)
		if costs {
			midX, midY := (n.Pos.X+c.Pos.X)/2, (n.Pos.Y+c.Pos.Y)/2
			fmt.Fprintf(buf, `    <text class="edge-cost" id="cost-%s-%s" x="%.1f" y="%.1f">%d</text>`+"\n",
				from, to, midX, midY-5, c.Cost)
		}
		drawEdges(buf, c, costs)
	}
}

func drawNode(buf *bytes.Buffer, t *tree.Tree, n *tree.Node, f Frame, r float64) {
	label := html.EscapeString(n.Label)
	class := "node"
	if s := f.State(n.Label); s != StateIdle {
		class += " " + string(s)
	}

	fmt.Fprintf(buf, `    <g class="%s" id="node-%s">`+"\n", class, label)
	fmt.Fprintf(buf, `      <circle cx="%.1f" cy="%.1f" r="%.0f"/>`+"\n", n.Pos.X, n.Pos.Y, r)
	fmt.Fprintf(buf, `      <text class="label" x="%.1f" y="%.1f">%s</text>`+"\n", n.Pos.X, n.Pos.Y, label)

	if f.Algorithm == search.AStar {
		g, h, total := "-", fmt.Sprint(heuristic.For(t, n, f.Target)), "-"
		if e, ok := f.Entry(n.Label); ok {
			g, h, total = itoa(e.G), itoa(e.H), itoa(e.F)
		}
		fmt.Fprintf(buf, `      <text class="cost-text g" id="g-%s" x="%.1f" y="%.1f">g:%s</text>`+"\n",
			label, n.Pos.X-15, n.Pos.Y+r+10, g)
		fmt.Fprintf(buf, `      <text class="cost-text h" id="h-%s" x="%.1f" y="%.1f">h:%s</text>`+"\n",
			label, n.Pos.X+15, n.Pos.Y+r+10, h)
		fmt.Fprintf(buf, `      <text class="cost-text f" id="f-%s" x="%.1f" y="%.1f">f:%s</text>`+"\n",
			label, n.Pos.X, n.Pos.Y+r+20, total)
	}
	buf.WriteString("    </g>\n")
}

func itoa(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}
