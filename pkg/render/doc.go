// Package render draws search trees and replayed visit logs.
//
// # Overview
//
// Rendering takes a tree plus a [Frame], which is a visit log replayed up to
// a given step, and produces a visual artifact:
//
//   - [SVG]: hand-laid node-link SVG using the tree's own canvas positions
//   - Graphviz layouts (in the [nodelink] subpackage)
//   - PDF and PNG conversion of any SVG via [ToPDF] and [ToPNG]
//
// # Frames
//
// A frame assigns each node one of four states:
//
//	idle     not yet reached
//	visited  reached on an earlier step
//	current  reached on the latest step
//	target   the entry that found the search target
//
// Build frames with [NewFrame]; sessions produce them for every step:
//
//	log := search.Run(t, "F", search.AStar, search.Options{})
//	svg := render.SVG(t, render.NewFrame(log, 3), render.Options{})
//
// # Cost Annotations
//
// Uniform cost and A* frames label every edge with its cost. A* frames also
// show g, h and f under each node; nodes not yet expanded show only h.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg):
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
package render
