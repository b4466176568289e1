// Package tree provides the synthetic rooted trees that algoviz searches.
//
// # Overview
//
// A [Tree] is an ordered, rooted tree of labeled [Node] values. Every node
// carries a layout position used for drawing and by the distance heuristic,
// a depth level (root = 0), and an integer edge cost in [1, 10] for the edge
// that connects it to its parent. Labels are generated in creation order
// with [Labels]: A..Z, then AA, AB, ... (bijective base 26).
//
// # Generation
//
// [Generate] validates [Params] and dispatches to one of two shapes:
//
//   - [ModeFlexible]: built level by level, distributing the remaining labels
//     across the parents of the current level as evenly as possible. Node x
//     positions are spread evenly across the canvas for each level.
//   - [ModeRandom]: built breadth first, giving each parent a random number
//     of children and spreading them around the parent's x position.
//
// Both shapes draw edge costs and child counts from a seeded PCG source, so
// the same [Params] (including Seed) always produce the same tree.
//
// A flexible tree never grows beyond its level count, so requesting more
// nodes than the levels can hold places fewer nodes than requested. Callers
// compare [Tree.Len] with the requested count when that matters.
//
// # Queries
//
// [Tree.Nodes] returns nodes in pre-order, the canonical display order.
// [Tree.Find] and [Tree.Contains] look labels up in O(1); use [Tree.Contains]
// to pre-check a search target before running an algorithm.
//
// # Concurrency
//
// A Tree is immutable once built. Read methods are safe for concurrent use.
package tree
