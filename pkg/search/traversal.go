package search

import "github.com/matzehuels/algoviz/pkg/tree"

func (r *recorder) preorder(n *tree.Node) {
	if r.visit(at(n)) {
		return
	}
	for _, c := range n.Children {
		if r.found {
			return
		}
		r.preorder(c)
	}
}

// inorder treats the first child as the left subtree and the second as the
// right one. Further children are never visited.
func (r *recorder) inorder(n *tree.Node) {
	if left := n.Child(0); left != nil && !r.found {
		r.inorder(left)
	}
	if r.found || r.visit(at(n)) {
		return
	}
	if right := n.Child(1); right != nil {
		r.inorder(right)
	}
}

func (r *recorder) postorder(n *tree.Node) {
	if left := n.Child(0); left != nil && !r.found {
		r.postorder(left)
	}
	if right := n.Child(1); right != nil && !r.found {
		r.postorder(right)
	}
	if !r.found {
		r.visit(at(n))
	}
}

// bst walks a single branch, going left when the target sorts before the
// current label and right otherwise. Labels compare byte-wise.
func (r *recorder) bst(root *tree.Node) {
	for n := root; n != nil; {
		if r.visit(at(n)) {
			return
		}
		if r.target < n.Label {
			n = n.Child(0)
		} else {
			n = n.Child(1)
		}
	}
}

// dls visits nodes down to depth limit. Nodes at the limit are recorded but
// not expanded.
func (r *recorder) dls(n *tree.Node, depth, limit int) bool {
	if n == nil || depth > limit {
		return false
	}
	e := at(n)
	e.Depth = depth
	if r.visit(e) {
		return true
	}
	if depth < limit {
		for _, c := range n.Children {
			if r.dls(c, depth+1, limit) {
				return true
			}
		}
	}
	return false
}

// iddfs runs dls with limits 0 through maxDepth and keeps the first entry
// seen for every node. It stops after the first iteration that finds the
// target.
func (r *recorder) iddfs(root *tree.Node, maxDepth int) {
	seen := make(map[string]bool)
	for limit := 0; limit <= maxDepth; limit++ {
		pass := &recorder{target: r.target}
		pass.dls(root, 0, limit)
		for _, e := range pass.entries {
			if seen[e.Node] {
				continue
			}
			seen[e.Node] = true
			r.entries = append(r.entries, e)
		}
		if pass.found {
			r.found = true
			return
		}
	}
}
