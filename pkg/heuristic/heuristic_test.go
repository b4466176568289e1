package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algoviz/pkg/tree"
)

// sevenNodeTree returns the default 3-level binary tree with every edge cost
// set to cost.
func sevenNodeTree(cost int) *tree.Tree {
	t := tree.BuildFlexible(tree.Labels(7), 3, 2, tree.NewRand(1))
	for _, n := range t.Nodes() {
		n.Cost = cost
	}
	return t
}

func TestEstimate(t *testing.T) {
	tr := sevenNodeTree(1)
	want := map[string]int{"A": 9, "B": 6, "C": 4, "D": 4, "E": 2, "F": 0, "G": 2}

	target := tr.Find("F")
	for label, h := range want {
		assert.Equal(t, h, Estimate(tr.Find(label), target), "h(%s)", label)
		assert.Equal(t, h, For(tr, tr.Find(label), "F"), "For(%s)", label)
	}
}

func TestEstimateRoundsHalfUp(t *testing.T) {
	a := &tree.Node{Label: "A"}
	b := &tree.Node{Label: "B", Pos: tree.Point{X: 25}}
	assert.Equal(t, 1, Estimate(a, b))

	c := &tree.Node{Label: "C", Pos: tree.Point{X: 24}}
	assert.Equal(t, 0, Estimate(a, c))
}

func TestForMissingTarget(t *testing.T) {
	tr := sevenNodeTree(1)
	assert.Equal(t, 0, For(tr, tr.Root, "Z"))
}

func TestTable(t *testing.T) {
	tr := sevenNodeTree(1)
	tbl := NewTable(tr, "F")

	require.Len(t, tbl.Rows, 7)
	assert.Equal(t, "F", tbl.Target)
	assert.Equal(t, Row{Label: "A", H: 9}, tbl.Rows[0])

	h, ok := tbl.Get("C")
	assert.True(t, ok)
	assert.Equal(t, 4, h)

	_, ok = tbl.Get("Z")
	assert.False(t, ok)

	assert.Equal(t, map[string]int{"A": 9, "B": 6, "D": 4, "E": 2, "C": 4, "F": 0, "G": 2}, tbl.Map())

	for _, r := range NewTable(tr, "Z").Rows {
		assert.Zero(t, r.H, "h(%s) for missing target", r.Label)
	}
}

func TestAudit(t *testing.T) {
	t.Run("overestimates with cheap edges", func(t *testing.T) {
		rep := Audit(sevenNodeTree(1), "F")
		assert.Equal(t, 3, rep.Reachable)
		assert.False(t, rep.Admissible)
		assert.Equal(t, []Overestimate{
			{Label: "A", Estimate: 9, TrueCost: 2},
			{Label: "C", Estimate: 4, TrueCost: 1},
		}, rep.Overestimates)
	})

	t.Run("admissible with expensive edges", func(t *testing.T) {
		rep := Audit(sevenNodeTree(10), "F")
		assert.Equal(t, 3, rep.Reachable)
		assert.True(t, rep.Admissible)
		assert.Empty(t, rep.Overestimates)
	})

	t.Run("missing target", func(t *testing.T) {
		rep := Audit(sevenNodeTree(1), "Z")
		assert.Zero(t, rep.Reachable)
		assert.True(t, rep.Admissible)
	})
}
