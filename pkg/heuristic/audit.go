package heuristic

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/matzehuels/algoviz/pkg/tree"
)

// Overestimate records a node whose estimate exceeds its true remaining cost.
type Overestimate struct {
	Label    string `json:"label" yaml:"label"`
	Estimate int    `json:"estimate" yaml:"estimate"`
	TrueCost int    `json:"true_cost" yaml:"true_cost"`
}

// Report is the result of an admissibility audit.
type Report struct {
	Target string `json:"target" yaml:"target"`

	// Reachable counts nodes that have a downward path to the target,
	// including the target itself.
	Reachable int `json:"reachable" yaml:"reachable"`

	// Admissible is true when no reachable node is overestimated.
	Admissible    bool           `json:"admissible" yaml:"admissible"`
	Overestimates []Overestimate `json:"overestimates,omitempty" yaml:"overestimates,omitempty"`
}

// Audit compares every node's estimate against the cheapest downward path
// cost to target. Edges only run parent → child, so only ancestors of the
// target (and the target itself) have a finite true cost; all other nodes
// are skipped. An unknown target yields an empty, admissible report.
func Audit(t *tree.Tree, target string) Report {
	rep := Report{Target: target, Admissible: true}
	tn := t.Find(target)
	if tn == nil {
		return rep
	}

	// Edges are reversed (child → parent) so one Dijkstra run from the
	// target yields every node's cost to reach it.
	nodes := t.Nodes()
	ids := make(map[*tree.Node]int64, len(nodes))
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i, n := range nodes {
		ids[n] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for _, n := range nodes {
		for _, c := range n.Children {
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(ids[c]), simple.Node(ids[n]), float64(c.Cost)))
		}
	}

	shortest := path.DijkstraFrom(simple.Node(ids[tn]), g)
	for _, n := range nodes {
		w := shortest.WeightTo(ids[n])
		if math.IsInf(w, 1) {
			continue
		}
		rep.Reachable++
		trueCost := int(w)
		if est := Estimate(n, tn); est > trueCost {
			rep.Admissible = false
			rep.Overestimates = append(rep.Overestimates, Overestimate{
				Label:    n.Label,
				Estimate: est,
				TrueCost: trueCost,
			})
		}
	}
	return rep
}
