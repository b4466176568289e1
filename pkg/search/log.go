package search

import (
	"strconv"
	"strings"
)

// ActionVisit is the only action the engine records.
const ActionVisit = "visit"

// PathSeparator joins labels in a display path.
const PathSeparator = " → "

// Entry is one step of a visit log.
//
// Cost is set by uniform-cost search; G, H and F by A*; H alone by greedy
// best-first search. They are nil for every other strategy.
type Entry struct {
	Node   string `json:"node" yaml:"node"`
	Action string `json:"action" yaml:"action"`
	Found  bool   `json:"found" yaml:"found"`
	Depth  int    `json:"depth" yaml:"depth"`
	Cost   *int   `json:"cost,omitempty" yaml:"cost,omitempty"`
	G      *int   `json:"g,omitempty" yaml:"g,omitempty"`
	H      *int   `json:"h,omitempty" yaml:"h,omitempty"`
	F      *int   `json:"f,omitempty" yaml:"f,omitempty"`
}

// Log is the ordered record of a search run. At most one entry has Found
// set, and when present it is the last one.
type Log struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Target    string    `json:"target" yaml:"target"`
	Entries   []Entry   `json:"entries" yaml:"entries"`
}

// Len returns the number of entries.
func (l Log) Len() int { return len(l.Entries) }

// Found reports whether the target was reached.
func (l Log) Found() bool { return l.FoundAt() >= 0 }

// FoundAt returns the index of the found entry, or -1.
func (l Log) FoundAt() int {
	if n := len(l.Entries); n > 0 && l.Entries[n-1].Found {
		return n - 1
	}
	return -1
}

// Labels returns the visited labels in order.
func (l Log) Labels() []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Node
	}
	return out
}

// Path returns the display path of the whole log.
func (l Log) Path() string { return l.PathUntil(len(l.Entries)) }

// PathUntil returns the display path of the first n entries. UCS paths show
// the path cost of each node and A* paths its f value.
func (l Log) PathUntil(n int) string {
	n = max(0, min(n, len(l.Entries)))
	parts := make([]string, n)
	for i, e := range l.Entries[:n] {
		parts[i] = l.label(e)
	}
	return strings.Join(parts, PathSeparator)
}

func (l Log) label(e Entry) string {
	switch l.Algorithm {
	case UCS:
		return e.Node + "(" + strconv.Itoa(deref(e.Cost)) + ")"
	case AStar:
		return e.Node + "(f:" + strconv.Itoa(deref(e.F)) + ")"
	}
	return e.Node
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func ptr(v int) *int { return &v }
