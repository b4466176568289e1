package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

func sampleTree() *tree.Tree {
	return tree.BuildFlexible(tree.Labels(7), 3, 2, tree.NewRand(1))
}

func TestNewFrame(t *testing.T) {
	l := search.Run(sampleTree(), "F", search.BFS, search.Options{})
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, l.Labels())

	tests := []struct {
		step   int
		states map[string]State
		path   string
	}{
		{0, map[string]State{}, ""},
		{1, map[string]State{"A": StateCurrent}, "A"},
		{3, map[string]State{"A": StateVisited, "B": StateVisited, "C": StateCurrent}, "A → B → C"},
		{6, map[string]State{
			"A": StateVisited, "B": StateVisited, "C": StateVisited,
			"D": StateVisited, "E": StateVisited, "F": StateTarget,
		}, "A → B → C → D → E → F"},
		{99, nil, "A → B → C → D → E → F"},
		{-4, map[string]State{}, ""},
	}
	for _, tt := range tests {
		f := NewFrame(l, tt.step)
		if tt.states != nil {
			assert.Equal(t, tt.states, f.States, "step %d", tt.step)
		}
		assert.Equal(t, tt.path, f.Path, "step %d", tt.step)
		assert.Equal(t, 6, f.Total)
	}

	f := NewFrame(l, 99)
	assert.Equal(t, 6, f.Step)
	assert.True(t, f.Done())
	assert.Equal(t, StateIdle, f.State("G"))
	assert.Equal(t, StateTarget, f.State("F"))
}

func TestNewFrameMissingTarget(t *testing.T) {
	l := search.Run(sampleTree(), "Z", search.DFS, search.Options{})
	f := NewFrame(l, l.Len())
	for label, s := range f.States {
		if label == l.Entries[l.Len()-1].Node {
			assert.Equal(t, StateCurrent, s)
			continue
		}
		assert.Equal(t, StateVisited, s, label)
	}
}

func TestZeroFrame(t *testing.T) {
	var f Frame
	assert.Equal(t, StateIdle, f.State("A"))
	_, ok := f.Entry("A")
	assert.False(t, ok)
	assert.True(t, f.Done())
}

func TestSVG(t *testing.T) {
	tr := sampleTree()
	svg := string(SVG(tr, Frame{}, Options{}))

	require.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="20.0 7.5 460.0 335.0" width="460" height="335">`), svg)
	assert.Equal(t, 7, strings.Count(svg, "<circle"))
	assert.Equal(t, 6, strings.Count(svg, `<line class="edge"`))
	assert.Contains(t, svg, `id="edge-A-B"`)
	assert.Contains(t, svg, `<g class="node" id="node-G">`)
	assert.Contains(t, svg, "<style>")
	assert.Zero(t, strings.Count(svg, `class="edge-cost"`))
	assert.NotContains(t, svg, `class="cost-text g"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestSVGFrameClasses(t *testing.T) {
	tr := sampleTree()
	l := search.Run(tr, "F", search.BFS, search.Options{})
	svg := string(SVG(tr, NewFrame(l, l.Len()), Options{NoStyle: true}))

	assert.Contains(t, svg, `<g class="node visited" id="node-A">`)
	assert.Contains(t, svg, `<g class="node target" id="node-F">`)
	assert.Contains(t, svg, `<g class="node" id="node-G">`)
	assert.NotContains(t, svg, "<style>")

	svg = string(SVG(tr, NewFrame(l, 2), Options{NoStyle: true}))
	assert.Contains(t, svg, `<g class="node current" id="node-B">`)
}

func TestSVGCosts(t *testing.T) {
	tr := sampleTree()

	ucs := search.Run(tr, "F", search.UCS, search.Options{})
	svg := string(SVG(tr, NewFrame(ucs, 0), Options{}))
	assert.Equal(t, 6, strings.Count(svg, `class="edge-cost"`))
	assert.NotContains(t, svg, `class="cost-text g"`)

	astar := search.Run(tr, "F", search.AStar, search.Options{})
	svg = string(SVG(tr, NewFrame(astar, 1), Options{}))
	assert.Equal(t, 6, strings.Count(svg, `class="edge-cost"`))
	assert.Contains(t, svg, `id="g-A" x="235.0" y="122.5">g:0</text>`)
	assert.Contains(t, svg, `id="h-A" x="265.0" y="122.5">h:9</text>`)
	assert.Contains(t, svg, `id="f-A" x="250.0" y="132.5">f:9</text>`)
	assert.Contains(t, svg, `id="g-F" x="285.0" y="297.5">g:-</text>`)
	assert.Contains(t, svg, `id="h-F" x="315.0" y="297.5">h:0</text>`)

	greedy := search.Run(tr, "F", search.Greedy, search.Options{})
	svg = string(SVG(tr, NewFrame(greedy, 0), Options{}))
	assert.Zero(t, strings.Count(svg, `class="edge-cost"`))
	assert.Contains(t, svg, ".edge-cost {", "stylesheet still defines the class")
}

func TestSVGWidth(t *testing.T) {
	svg := string(SVG(sampleTree(), Frame{}, Options{Width: 920, Radius: 10}))
	assert.Contains(t, svg, `width="920" height="670"`)
	assert.Contains(t, svg, `r="10"`)
}

func TestSVGEmpty(t *testing.T) {
	svg := string(SVG(nil, Frame{}, Options{}))
	assert.Contains(t, svg, `viewBox="0.0 0.0 500.0 350.0"`)
	assert.NotContains(t, svg, "<circle")
}

func TestSVGEscapesLabels(t *testing.T) {
	root := &tree.Node{Label: "<A>", Pos: tree.Point{X: 10, Y: 10}}
	svg := string(SVG(tree.New(root, 1, 2), Frame{}, Options{}))
	assert.Contains(t, svg, "&lt;A&gt;")
	assert.NotContains(t, svg, "<A>")
}
