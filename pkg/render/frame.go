package render

import "github.com/matzehuels/algoviz/pkg/search"

// State is the highlight state of one node in a [Frame].
type State string

// Node highlight states. They double as CSS class names in SVG output.
const (
	StateIdle    State = "idle"
	StateVisited State = "visited"
	StateCurrent State = "current"
	StateTarget  State = "target"
)

// Frame is a snapshot of a visit log replayed up to some step. Renderers use
// it to color nodes and annotate costs.
//
// The zero Frame renders a plain tree with every node idle.
type Frame struct {
	Algorithm search.Algorithm        `json:"algorithm,omitempty"`
	Target    string                  `json:"target,omitempty"`
	Step      int                     `json:"step"`
	Total     int                     `json:"total"`
	Path      string                  `json:"path"`
	States    map[string]State        `json:"states,omitempty"`
	Entries   map[string]search.Entry `json:"entries,omitempty"`
}

// NewFrame replays the first step entries of l. Step is clamped to
// [0, l.Len()].
//
// The entry applied last is current unless it found the target, the found
// entry is target, and every other applied entry is visited.
func NewFrame(l search.Log, step int) Frame {
	step = max(0, min(step, l.Len()))
	f := Frame{
		Algorithm: l.Algorithm,
		Target:    l.Target,
		Step:      step,
		Total:     l.Len(),
		Path:      l.PathUntil(step),
		States:    make(map[string]State, step),
		Entries:   make(map[string]search.Entry, step),
	}
	for i, e := range l.Entries[:step] {
		s := StateVisited
		switch {
		case e.Found:
			s = StateTarget
		case i == step-1:
			s = StateCurrent
		}
		f.States[e.Node] = s
		f.Entries[e.Node] = e
	}
	return f
}

// State returns the highlight state of label. Unknown labels are idle.
func (f Frame) State(label string) State {
	if s, ok := f.States[label]; ok {
		return s
	}
	return StateIdle
}

// Entry returns the most recent log entry applied for label.
func (f Frame) Entry(label string) (search.Entry, bool) {
	e, ok := f.Entries[label]
	return e, ok
}

// Done reports whether the whole log has been replayed.
func (f Frame) Done() bool { return f.Step >= f.Total }
