package search

import (
	"container/heap"

	"github.com/matzehuels/algoviz/pkg/tree"
)

type item struct {
	node *tree.Node
	g, h int
	seq  int
}

func (it item) f() int { return it.g + it.h }

// frontier is a priority queue ordered by key. Items with equal keys leave
// in insertion order.
type frontier struct {
	items []item
	key   func(a, b item) int
	seq   int
}

func newFrontier(key func(a, b item) int) *frontier {
	return &frontier{key: key}
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	if c := f.key(f.items[i], f.items[j]); c != 0 {
		return c < 0
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(item)) }

func (f *frontier) Pop() any {
	n := len(f.items)
	it := f.items[n-1]
	f.items = f.items[:n-1]
	return it
}

func (f *frontier) push(n *tree.Node, g, h int) {
	heap.Push(f, item{node: n, g: g, h: h, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() item { return heap.Pop(f).(item) }

func byCost(a, b item) int { return a.g - b.g }

func byHeuristic(a, b item) int { return a.h - b.h }

func byTotal(a, b item) int {
	if d := a.f() - b.f(); d != 0 {
		return d
	}
	return a.h - b.h
}
