// Package nodelink renders search trees through Graphviz.
//
// # Overview
//
// Where [render.SVG] draws nodes at the positions the generator assigned,
// this package hands layout to Graphviz's dot engine. The result is a
// compact, evenly spaced diagram that suits trees imported from JSON whose
// coordinates are arbitrary.
//
// # Usage
//
// Convert a tree and a frame to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(t, frame, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Graphviz runs in-process (WebAssembly build via go-graphviz), so no system
// installation is needed.
//
// # Options
//
//   - Detailed: node labels include the level and cumulative path cost
//   - Costs: label edges with their cost for every strategy
//
// Node fill colors follow the frame state: visited is blue, current is amber
// and target is green.
package nodelink
