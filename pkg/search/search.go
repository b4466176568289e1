// Package search runs the visualizer's search strategies over a tree and
// records the order in which nodes are visited.
//
// # Overview
//
// [Run] takes a tree, a target label and an [Algorithm] and returns a [Log]:
// one [Entry] per visited node, in visit order. The run stops at the first
// node whose label equals the target; that entry is marked Found and is
// always the last one. If the target is absent the log simply has no found
// entry.
//
// # Strategies
//
// Traversals (pre-, in- and post-order) recurse; in- and post-order only
// look at the first two children of each node. BFS and DFS use a queue and
// a stack with a visited set. BST search walks one branch by comparing
// labels. DLS recurses up to [Options.DepthLimit]; IDDFS repeats it with
// growing limits and merges the logs. UCS, A* and greedy best-first search
// share a priority frontier that breaks ties by insertion order.
//
// # Determinism
//
// Runs are pure: the same tree, target, algorithm and options always
// produce the same log, and the tree is never modified.
package search

import (
	"github.com/matzehuels/algoviz/pkg/heuristic"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// Defaults for [Options].
const (
	DefaultDepthLimit        = 3
	DefaultMaxIterativeDepth = 10
)

// Options tunes the depth-bounded strategies.
type Options struct {
	// DepthLimit bounds DLS. Values ≤ 0 select DefaultDepthLimit.
	DepthLimit int `json:"depth_limit,omitempty" toml:"depth_limit"`

	// MaxIterativeDepth is the deepest limit IDDFS tries. Values ≤ 0 select
	// DefaultMaxIterativeDepth.
	MaxIterativeDepth int `json:"max_iterative_depth,omitempty" toml:"max_iterative_depth"`
}

// SetDefaults replaces non-positive fields with their defaults.
func (o *Options) SetDefaults() {
	if o.DepthLimit <= 0 {
		o.DepthLimit = DefaultDepthLimit
	}
	if o.MaxIterativeDepth <= 0 {
		o.MaxIterativeDepth = DefaultMaxIterativeDepth
	}
}

// ParseDepthLimit reads a depth limit from user input. Like a browser's
// parseInt it accepts a leading integer and ignores trailing text; anything
// that does not start with a positive integer yields DefaultDepthLimit.
func ParseDepthLimit(s string) int {
	v, ok := leadingInt(s)
	if !ok || v <= 0 {
		return DefaultDepthLimit
	}
	return v
}

func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start, v := i, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if v > 1<<20 {
			continue
		}
		v = v*10 + int(s[i]-'0')
	}
	if i == start {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// Run searches t for the node labeled target using algo. Unknown algorithms
// and nil trees produce an empty log.
func Run(t *tree.Tree, target string, algo Algorithm, opts Options) Log {
	opts.SetDefaults()
	log := Log{Algorithm: algo, Target: target}
	if t == nil || t.Root == nil {
		return log
	}

	r := &recorder{target: target}
	root := t.Root
	switch algo {
	case Preorder:
		r.preorder(root)
	case Inorder:
		r.inorder(root)
	case Postorder:
		r.postorder(root)
	case BFS:
		r.bfs(root)
	case DFS:
		r.dfs(root)
	case BST:
		r.bst(root)
	case DLS:
		r.dls(root, 0, opts.DepthLimit)
	case IDDFS:
		r.iddfs(root, opts.MaxIterativeDepth)
	case UCS:
		r.ucs(root)
	case AStar:
		r.astar(root, t.Find(target))
	case Greedy:
		r.greedy(root, t.Find(target))
	}
	log.Entries = r.entries
	return log
}

// recorder accumulates entries for one run.
type recorder struct {
	target  string
	entries []Entry
	found   bool
}

// visit records e and reports whether it is the target.
func (r *recorder) visit(e Entry) bool {
	e.Action = ActionVisit
	e.Found = e.Node == r.target
	r.entries = append(r.entries, e)
	if e.Found {
		r.found = true
	}
	return e.Found
}

func at(n *tree.Node) Entry { return Entry{Node: n.Label, Depth: n.Level} }

func estimate(n, target *tree.Node) int {
	if target == nil {
		return 0
	}
	return heuristic.Estimate(n, target)
}
