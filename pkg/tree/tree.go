package tree

import (
	"errors"
	"fmt"
)

// Edge cost bounds, inclusive.
const (
	MinCost = 1
	MaxCost = 10
)

var (
	// ErrNoRoot is returned by [Tree.Validate] when the tree has no root.
	ErrNoRoot = errors.New("tree has no root")

	// ErrDuplicateLabel is returned by [Tree.Validate] when two nodes share a label.
	ErrDuplicateLabel = errors.New("duplicate node label")

	// ErrLevelMismatch is returned by [Tree.Validate] when a child's level is
	// not its parent's level plus one.
	ErrLevelMismatch = errors.New("child level must be parent level + 1")

	// ErrCostRange is returned by [Tree.Validate] when an edge cost is outside
	// [MinCost, MaxCost].
	ErrCostRange = errors.New("edge cost out of range")
)

// Point is a layout position in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// Node is a tree vertex. Children are ordered and owned by their parent.
type Node struct {
	Label    string
	Pos      Point
	Level    int
	Cost     int // cost of the edge from the parent; meaningless on the root
	Children []*Node
}

// Child returns the i-th child or nil when there is none.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is an immutable rooted tree together with the parameters it was
// generated from.
//
// The zero value is not usable; build trees with [Generate] or [New].
type Tree struct {
	Root        *Node
	Levels      int
	MaxChildren int
	Mode        Mode
	Seed        uint64
	Width       float64
	Height      float64

	order   []*Node
	byLabel map[string]*Node
	parent  map[string]*Node
}

// New wraps root into a Tree and builds its lookup indexes. Width and Height
// default to the canvas size for the given level count.
func New(root *Node, levels, maxChildren int) *Tree {
	t := &Tree{
		Root:        root,
		Levels:      levels,
		MaxChildren: maxChildren,
		Width:       CanvasWidth,
		Height:      CanvasHeight(levels),
	}
	t.index()
	return t
}

func (t *Tree) index() {
	t.order = t.order[:0]
	t.byLabel = make(map[string]*Node)
	t.parent = make(map[string]*Node)
	var walk func(n, p *Node)
	walk = func(n, p *Node) {
		t.order = append(t.order, n)
		if _, ok := t.byLabel[n.Label]; !ok {
			t.byLabel[n.Label] = n
			t.parent[n.Label] = p
		}
		for _, c := range n.Children {
			walk(c, n)
		}
	}
	if t.Root != nil {
		walk(t.Root, nil)
	}
}

// Nodes returns all nodes in pre-order. The returned slice must not be modified.
func (t *Tree) Nodes() []*Node { return t.order }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.order) }

// Labels returns node labels in pre-order.
func (t *Tree) Labels() []string {
	out := make([]string, len(t.order))
	for i, n := range t.order {
		out[i] = n.Label
	}
	return out
}

// Find returns the node with the given label, or nil.
func (t *Tree) Find(label string) *Node { return t.byLabel[label] }

// Contains reports whether a node with the given label exists.
func (t *Tree) Contains(label string) bool {
	_, ok := t.byLabel[label]
	return ok
}

// Parent returns the parent of the labeled node, or nil for the root and
// for unknown labels.
func (t *Tree) Parent(label string) *Node { return t.parent[label] }

// Depth returns the deepest level present in the tree, or -1 if empty.
func (t *Tree) Depth() int {
	d := -1
	for _, n := range t.order {
		d = max(d, n.Level)
	}
	return d
}

// EdgeCount returns the number of parent-child edges.
func (t *Tree) EdgeCount() int {
	if len(t.order) == 0 {
		return 0
	}
	return len(t.order) - 1
}

// PathTo returns the nodes from the root down to the labeled node, or nil
// if the label is unknown.
func (t *Tree) PathTo(label string) []*Node {
	n := t.byLabel[label]
	if n == nil {
		return nil
	}
	var path []*Node
	for ; n != nil; n = t.parent[n.Label] {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost returns the sum of edge costs from the root to the labeled node.
// The root's own cost is not counted. Unknown labels return -1.
func (t *Tree) PathCost(label string) int {
	path := t.PathTo(label)
	if path == nil {
		return -1
	}
	total := 0
	for _, n := range path[1:] {
		total += n.Cost
	}
	return total
}

// LevelNodes returns the nodes on the given level in left-to-right order.
func (t *Tree) LevelNodes(level int) []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Level == level {
			out = append(out, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if t.Root != nil {
		walk(t.Root)
	}
	return out
}

// Validate checks the structural invariants: a root exists, labels are
// unique, every child sits exactly one level below its parent, and every
// non-root edge cost lies in [MinCost, MaxCost].
func (t *Tree) Validate() error {
	if t == nil || t.Root == nil {
		return ErrNoRoot
	}
	seen := make(map[string]bool, len(t.order))
	var check func(n *Node, isRoot bool) error
	check = func(n *Node, isRoot bool) error {
		if seen[n.Label] {
			return fmt.Errorf("%w: %s", ErrDuplicateLabel, n.Label)
		}
		seen[n.Label] = true
		if !isRoot && (n.Cost < MinCost || n.Cost > MaxCost) {
			return fmt.Errorf("%w: %s has cost %d", ErrCostRange, n.Label, n.Cost)
		}
		for _, c := range n.Children {
			if c.Level != n.Level+1 {
				return fmt.Errorf("%w: %s (level %d) under %s (level %d)",
					ErrLevelMismatch, c.Label, c.Level, n.Label, n.Level)
			}
			if err := check(c, false); err != nil {
				return err
			}
		}
		return nil
	}
	return check(t.Root, true)
}
