package search

import (
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// Algorithm names a search strategy.
type Algorithm string

const (
	Preorder  Algorithm = "preorder"
	Inorder   Algorithm = "inorder"
	Postorder Algorithm = "postorder"
	BFS       Algorithm = "bfs"
	DFS       Algorithm = "dfs"
	BST       Algorithm = "bst"
	DLS       Algorithm = "dls"
	IDDFS     Algorithm = "iddfs"
	UCS       Algorithm = "ucs"
	AStar     Algorithm = "astar"
	Greedy    Algorithm = "greedy"
)

// DefaultAlgorithm is the strategy used when none is given.
const DefaultAlgorithm = BFS

// Algorithms returns every supported strategy in catalog order.
func Algorithms() []Algorithm {
	return []Algorithm{Preorder, Inorder, Postorder, BFS, DFS, BST, DLS, IDDFS, UCS, AStar, Greedy}
}

// ParseAlgorithm parses a strategy name case-insensitively. An empty string
// yields [DefaultAlgorithm].
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if a == "" {
		return DefaultAlgorithm, nil
	}
	if _, ok := catalog[a]; ok {
		return a, nil
	}
	names := make([]string, 0, len(catalog))
	for _, x := range Algorithms() {
		names = append(names, string(x))
	}
	return "", errors.New(errors.ErrCodeInvalidAlgorithm,
		"unknown algorithm: %q (must be one of: %s)", s, strings.Join(names, ", "))
}

// Informed reports whether the strategy consults the heuristic.
func (a Algorithm) Informed() bool { return a == AStar || a == Greedy }

// Weighted reports whether the strategy accounts for edge costs, in which
// case renderers show them.
func (a Algorithm) Weighted() bool { return a == UCS || a == AStar }

// Info returns the catalog entry for a, or a zero Info for unknown names.
func (a Algorithm) Info() Info { return catalog[a] }

// Info is the human-readable description of a strategy.
type Info struct {
	Name          Algorithm `json:"name" yaml:"name"`
	Title         string    `json:"title" yaml:"title"`
	DataStructure string    `json:"data_structure" yaml:"data_structure"`
	Time          string    `json:"time_complexity" yaml:"time_complexity"`
	Space         string    `json:"space_complexity" yaml:"space_complexity"`
	Description   string    `json:"description" yaml:"description"`
	Category      string    `json:"category" yaml:"category"`
}

// Catalog returns the info for every strategy in catalog order.
func Catalog() []Info {
	out := make([]Info, 0, len(catalog))
	for _, a := range Algorithms() {
		out = append(out, catalog[a])
	}
	return out
}

const (
	categoryTraversal  = "Tree Traversal"
	categoryUninformed = "Uninformed Search"
	categoryTreeSearch = "Tree Search"
	categoryInformed   = "Informed Search"
)

var catalog = map[Algorithm]Info{
	Preorder: {
		Name:          Preorder,
		Title:         "Pre-order Traversal",
		DataStructure: "Stack/Recursion",
		Time:          "O(n)",
		Space:         "O(h)",
		Description:   "Visit root first, then left subtree, then right subtree (Root → Left → Right). Useful for creating tree copies and prefix expressions.",
		Category:      categoryTraversal,
	},
	Inorder: {
		Name:          Inorder,
		Title:         "In-order Traversal",
		DataStructure: "Stack/Recursion",
		Time:          "O(n)",
		Space:         "O(h)",
		Description:   "Visit left subtree, then root, then right subtree (Left → Root → Right). For BST, gives sorted sequence.",
		Category:      categoryTraversal,
	},
	Postorder: {
		Name:          Postorder,
		Title:         "Post-order Traversal",
		DataStructure: "Stack/Recursion",
		Time:          "O(n)",
		Space:         "O(h)",
		Description:   "Visit left subtree, then right subtree, then root (Left → Right → Root). Useful for deleting nodes and calculating sizes.",
		Category:      categoryTraversal,
	},
	BFS: {
		Name:          BFS,
		Title:         "Breadth-First Search",
		DataStructure: "Queue (FIFO)",
		Time:          "O(V + E)",
		Space:         "O(V)",
		Description:   "Explores nodes level by level, guaranteeing shortest path in unweighted graphs. Uses queue for frontier management.",
		Category:      categoryUninformed,
	},
	DFS: {
		Name:          DFS,
		Title:         "Depth-First Search",
		DataStructure: "Stack (LIFO)",
		Time:          "O(V + E)",
		Space:         "O(V)",
		Description:   "Goes deep into each branch before backtracking. Uses stack for implementation.",
		Category:      categoryUninformed,
	},
	BST: {
		Name:          BST,
		Title:         "Binary Search Tree Search",
		DataStructure: "Tree Structure",
		Time:          "O(log n) avg, O(n) worst",
		Space:         "O(log n) avg, O(n) worst",
		Description:   "Efficient search in sorted binary tree by comparing values and choosing left/right path.",
		Category:      categoryTreeSearch,
	},
	DLS: {
		Name:          DLS,
		Title:         "Depth-Limited Search",
		DataStructure: "Stack with depth limit",
		Time:          "O(b^l)",
		Space:         "O(bl)",
		Description:   "DFS with maximum depth limit to avoid infinite paths. Useful when solution depth is known.",
		Category:      categoryUninformed,
	},
	IDDFS: {
		Name:          IDDFS,
		Title:         "Iterative Deepening DFS",
		DataStructure: "Stack with iterative limits",
		Time:          "O(b^d)",
		Space:         "O(bd)",
		Description:   "Combines DFS space efficiency with BFS completeness by gradually increasing depth limit.",
		Category:      categoryUninformed,
	},
	UCS: {
		Name:          UCS,
		Title:         "Uniform Cost Search",
		DataStructure: "Priority Queue",
		Time:          "O(b^(1+⌊C*/ε⌋))",
		Space:         "O(b^(1+⌊C*/ε⌋))",
		Description:   "Expands nodes in order of path cost. Optimal for finding least-cost path.",
		Category:      categoryUninformed,
	},
	AStar: {
		Name:          AStar,
		Title:         "A* Search",
		DataStructure: "Priority Queue",
		Time:          "O(b^d)",
		Space:         "O(b^d)",
		Description:   "Uses f(n) = g(n) + h(n) where g is path cost and h is heuristic. Optimal if heuristic is admissible.",
		Category:      categoryInformed,
	},
	Greedy: {
		Name:          Greedy,
		Title:         "Greedy Best-First Search",
		DataStructure: "Priority Queue",
		Time:          "O(b^m)",
		Space:         "O(b^m)",
		Description:   "Uses only heuristic h(n) to guide search. Fast but not optimal.",
		Category:      categoryInformed,
	},
}
