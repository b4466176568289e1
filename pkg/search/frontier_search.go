package search

import "github.com/matzehuels/algoviz/pkg/tree"

func (r *recorder) bfs(root *tree.Node) {
	queue := []*tree.Node{root}
	visited := make(map[string]bool)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n.Label] {
			continue
		}
		visited[n.Label] = true
		if r.visit(at(n)) {
			return
		}
		for _, c := range n.Children {
			if !visited[c.Label] {
				queue = append(queue, c)
			}
		}
	}
}

// dfs pushes children in reverse so the leftmost child is expanded first.
func (r *recorder) dfs(root *tree.Node) {
	stack := []*tree.Node{root}
	visited := make(map[string]bool)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n.Label] {
			continue
		}
		visited[n.Label] = true
		if r.visit(at(n)) {
			return
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			if c := n.Children[i]; !visited[c.Label] {
				stack = append(stack, c)
			}
		}
	}
}

// best drains a priority frontier seeded with root. expand returns the
// (g, h) pair of a child given its parent's item; record turns a popped
// item into an entry.
func (r *recorder) best(root *tree.Node, first item, key func(a, b item) int,
	expand func(parent item, child *tree.Node) (g, h int), record func(it item) Entry) {
	fr := newFrontier(key)
	fr.push(root, first.g, first.h)
	visited := make(map[string]bool)
	for fr.Len() > 0 {
		cur := fr.pop()
		if visited[cur.node.Label] {
			continue
		}
		visited[cur.node.Label] = true
		if r.visit(record(cur)) {
			return
		}
		for _, c := range cur.node.Children {
			if !visited[c.Label] {
				g, h := expand(cur, c)
				fr.push(c, g, h)
			}
		}
	}
}

// ucs orders the frontier by path cost. The root's own cost is not counted.
func (r *recorder) ucs(root *tree.Node) {
	r.best(root, item{}, byCost,
		func(p item, c *tree.Node) (int, int) { return p.g + c.Cost, 0 },
		func(it item) Entry {
			e := at(it.node)
			e.Cost = ptr(it.g)
			return e
		})
}

// astar orders the frontier by f = g + h, then by h. A nil target makes
// every estimate 0.
func (r *recorder) astar(root, target *tree.Node) {
	r.best(root, item{h: estimate(root, target)}, byTotal,
		func(p item, c *tree.Node) (int, int) { return p.g + c.Cost, estimate(c, target) },
		func(it item) Entry {
			e := at(it.node)
			e.G, e.H, e.F = ptr(it.g), ptr(it.h), ptr(it.f())
			return e
		})
}

// greedy orders the frontier by h alone.
func (r *recorder) greedy(root, target *tree.Node) {
	r.best(root, item{h: estimate(root, target)}, byHeuristic,
		func(_ item, c *tree.Node) (int, int) { return 0, estimate(c, target) },
		func(it item) Entry {
			e := at(it.node)
			e.H = ptr(it.h)
			return e
		})
}
