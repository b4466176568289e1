package graph

import (
	"fmt"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// =============================================================================
// Graph - Tree Serialization
// =============================================================================

// Graph is the canonical serialization format for search trees.
// Used for API requests and responses, files, and caching.
//
// Nodes are listed in pre-order and edges in parent-then-child order, so
// ToTree(FromTree(t)) reproduces t exactly, including child order.
type Graph struct {
	Levels      int       `json:"levels" yaml:"levels" bson:"levels"`
	MaxChildren int       `json:"max_children" yaml:"max_children" bson:"max_children"`
	Mode        tree.Mode `json:"mode,omitempty" yaml:"mode,omitempty" bson:"mode,omitempty"`
	Seed        uint64    `json:"seed,omitempty" yaml:"seed,omitempty" bson:"seed,omitempty"`
	Width       float64   `json:"width" yaml:"width" bson:"width"`
	Height      float64   `json:"height" yaml:"height" bson:"height"`
	Nodes       []Node    `json:"nodes" yaml:"nodes" bson:"nodes"`
	Edges       []Edge    `json:"edges" yaml:"edges" bson:"edges"`
}

// =============================================================================
// Node - Positioned Vertex
// =============================================================================

// Node is a serialized tree vertex. Cost is the cost of the edge from
// Parent; Parent is empty for the root.
type Node struct {
	ID     string  `json:"id" yaml:"id" bson:"id"`
	Level  int     `json:"level" yaml:"level" bson:"level"`
	X      float64 `json:"x" yaml:"x" bson:"x"`
	Y      float64 `json:"y" yaml:"y" bson:"y"`
	Cost   int     `json:"cost" yaml:"cost" bson:"cost"`
	Parent string  `json:"parent,omitempty" yaml:"parent,omitempty" bson:"parent,omitempty"`
}

// =============================================================================
// Edge - Parent to Child
// =============================================================================

// Edge is a directed parent → child edge.
type Edge struct {
	From string `json:"from" yaml:"from" bson:"from"`
	To   string `json:"to" yaml:"to" bson:"to"`
	Cost int    `json:"cost" yaml:"cost" bson:"cost"`
}

// =============================================================================
// Tree ↔ Graph Conversion
// =============================================================================

// FromTree converts a tree to its serialization format.
func FromTree(t *tree.Tree) Graph {
	out := Graph{
		Levels:      t.Levels,
		MaxChildren: t.MaxChildren,
		Mode:        t.Mode,
		Seed:        t.Seed,
		Width:       t.Width,
		Height:      t.Height,
		Nodes:       make([]Node, 0, t.Len()),
		Edges:       make([]Edge, 0, t.EdgeCount()),
	}
	for _, n := range t.Nodes() {
		node := Node{ID: n.Label, Level: n.Level, X: n.Pos.X, Y: n.Pos.Y, Cost: n.Cost}
		if p := t.Parent(n.Label); p != nil {
			node.Parent = p.Label
		}
		out.Nodes = append(out.Nodes, node)
		for _, c := range n.Children {
			out.Edges = append(out.Edges, Edge{From: n.Label, To: c.Label, Cost: c.Cost})
		}
	}
	return out
}

// ToTree rebuilds a tree from its serialization format and validates it.
//
// Edges define the structure. When a graph has no edges, the Parent fields
// of its nodes are used instead, in node order. Missing Levels, Width and
// Height are derived from the nodes.
func ToTree(g Graph) (*tree.Tree, error) {
	if len(g.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTree, "tree has no nodes")
	}

	nodes := make(map[string]*tree.Node, len(g.Nodes))
	for _, gn := range g.Nodes {
		if gn.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidTree, "node without id")
		}
		if _, dup := nodes[gn.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidTree, "duplicate node %s", gn.ID)
		}
		nodes[gn.ID] = &tree.Node{
			Label: gn.ID,
			Level: gn.Level,
			Pos:   tree.Point{X: gn.X, Y: gn.Y},
			Cost:  gn.Cost,
		}
	}

	edges := g.Edges
	if len(edges) == 0 {
		for _, gn := range g.Nodes {
			if gn.Parent != "" {
				edges = append(edges, Edge{From: gn.Parent, To: gn.ID, Cost: gn.Cost})
			}
		}
	}

	hasParent := make(map[string]bool, len(edges))
	for _, e := range edges {
		from, to := nodes[e.From], nodes[e.To]
		if from == nil || to == nil {
			return nil, errors.New(errors.ErrCodeInvalidTree, "edge %s→%s references unknown node", e.From, e.To)
		}
		if hasParent[e.To] {
			return nil, errors.New(errors.ErrCodeInvalidTree, "node %s has more than one parent", e.To)
		}
		hasParent[e.To] = true
		if e.Cost != 0 {
			to.Cost = e.Cost
		}
		from.Children = append(from.Children, to)
	}

	var root *tree.Node
	for _, gn := range g.Nodes {
		if hasParent[gn.ID] {
			continue
		}
		if root != nil {
			return nil, errors.New(errors.ErrCodeInvalidTree, "tree has more than one root (%s, %s)", root.Label, gn.ID)
		}
		root = nodes[gn.ID]
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidTree, "tree has no root")
	}

	levels, maxChildren := g.Levels, g.MaxChildren
	for _, n := range nodes {
		levels = max(levels, n.Level+1)
		maxChildren = max(maxChildren, len(n.Children))
	}

	t := tree.New(root, levels, maxChildren)
	if t.Len() != len(nodes) {
		return nil, errors.New(errors.ErrCodeInvalidTree, "%d of %d nodes are unreachable from root %s",
			len(nodes)-t.Len(), len(nodes), root.Label)
	}
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "invalid tree")
	}

	t.Mode = g.Mode
	t.Seed = g.Seed
	if g.Width > 0 {
		t.Width = g.Width
	}
	if g.Height > 0 {
		t.Height = g.Height
	}
	return t, nil
}

// String returns a one-line summary for logs.
func (g Graph) String() string {
	return fmt.Sprintf("tree(%d nodes, %d levels, mode=%s)", len(g.Nodes), g.Levels, g.Mode)
}
