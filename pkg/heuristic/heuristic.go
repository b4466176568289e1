// Package heuristic estimates the remaining search cost between tree nodes.
//
// The estimate combines level distance and canvas distance:
//
//	h(n) = round(2·|level(n) − level(t)| + |x(n) − x(t)|/50 + |y(n) − y(t)|/50)
//
// It is the only heuristic used by A* and greedy best-first search. The
// estimate is not guaranteed to be admissible; [Audit] reports the nodes
// where it overestimates the true remaining cost.
package heuristic

import (
	"math"

	"github.com/matzehuels/algoviz/pkg/tree"
)

const (
	levelWeight   = 2.0
	distanceScale = 50.0
)

// Estimate returns the heuristic distance from n to target. Halves round up.
func Estimate(n, target *tree.Node) int {
	v := levelWeight*math.Abs(float64(n.Level-target.Level)) +
		math.Abs(n.Pos.X-target.Pos.X)/distanceScale +
		math.Abs(n.Pos.Y-target.Pos.Y)/distanceScale
	return int(math.Floor(v + 0.5))
}

// For returns the estimate from n to the node labeled target in t, or 0 when
// no such node exists.
func For(t *tree.Tree, n *tree.Node, target string) int {
	tn := t.Find(target)
	if tn == nil {
		return 0
	}
	return Estimate(n, tn)
}

// Row is one entry of a heuristic table.
type Row struct {
	Label string `json:"label" yaml:"label"`
	H     int    `json:"h" yaml:"h"`
}

// Table holds h(n) for every node of a tree against one target, in tree
// pre-order.
type Table struct {
	Target string `json:"target" yaml:"target"`
	Rows   []Row  `json:"rows" yaml:"rows"`
}

// NewTable computes the heuristic for every node. Values are all 0 when the
// target is not in the tree.
func NewTable(t *tree.Tree, target string) Table {
	tn := t.Find(target)
	tbl := Table{Target: target, Rows: make([]Row, 0, t.Len())}
	for _, n := range t.Nodes() {
		h := 0
		if tn != nil {
			h = Estimate(n, tn)
		}
		tbl.Rows = append(tbl.Rows, Row{Label: n.Label, H: h})
	}
	return tbl
}

// Get returns h for a label and whether it is present.
func (tb Table) Get(label string) (int, bool) {
	for _, r := range tb.Rows {
		if r.Label == label {
			return r.H, true
		}
	}
	return 0, false
}

// Map returns the table as a label → h map.
func (tb Table) Map() map[string]int {
	m := make(map[string]int, len(tb.Rows))
	for _, r := range tb.Rows {
		m[r.Label] = r.H
	}
	return m
}
