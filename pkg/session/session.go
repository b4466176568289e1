// Package session replays visit logs one step at a time.
//
// A [Session] pairs a tree with the visit log of one search over it and a
// cursor into that log. Callers drive the cursor explicitly: the terminal UI
// advances it on key presses, the HTTP API on POST requests. There is no
// timer-driven playback.
//
// # Usage
//
//	log := search.Run(t, "F", search.BFS, search.Options{})
//	sess := session.New(t, log)
//
//	for !sess.Done() {
//	    e, _ := sess.Next()
//	    fmt.Println(e.Node, sess.Status())
//	}
//
//	svg := render.SVG(t, sess.Frame(), render.Options{})
//
// # Storage
//
// Sessions live in a [Store]. The only implementation is [MemoryStore], an
// in-process map bounded by a TTL; sessions do not survive a restart.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = 30 * time.Minute

// Session is a visit log being replayed over its tree.
//
// A Session is not safe for concurrent use; stores hand out copies.
type Session struct {
	ID        string           `json:"id"`
	Tree      *tree.Tree       `json:"-"`
	Algorithm search.Algorithm `json:"algorithm"`
	Target    string           `json:"target"`
	Log       search.Log       `json:"log"`
	Step      int              `json:"step"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// New starts a session at step zero with a fresh random ID.
func New(t *tree.Tree, l search.Log) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Tree:      t,
		Algorithm: l.Algorithm,
		Target:    l.Target,
		Log:       l,
		CreatedAt: now,
		ExpiresAt: now.Add(DefaultTTL),
	}
}

// IsExpired reports whether the session has outlived its TTL.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Next applies the next log entry and returns it. It returns false once the
// log is exhausted.
func (s *Session) Next() (search.Entry, bool) {
	if s.Done() {
		return search.Entry{}, false
	}
	e := s.Log.Entries[s.Step]
	s.Step++
	return e, true
}

// Prev undoes the latest step. It returns false at step zero.
func (s *Session) Prev() bool {
	if s.Step == 0 {
		return false
	}
	s.Step--
	return true
}

// Seek moves the cursor to step, clamped to [0, Len].
func (s *Session) Seek(step int) {
	s.Step = max(0, min(step, s.Log.Len()))
}

// Reset rewinds to step zero.
func (s *Session) Reset() { s.Step = 0 }

// Current returns the entry applied last.
func (s *Session) Current() (search.Entry, bool) {
	if s.Step == 0 {
		return search.Entry{}, false
	}
	return s.Log.Entries[s.Step-1], true
}

// Done reports whether every entry has been applied.
func (s *Session) Done() bool { return s.Step >= s.Log.Len() }

// Found reports whether the entry applied last found the target.
func (s *Session) Found() bool {
	e, ok := s.Current()
	return ok && e.Found
}

// Visited returns the labels applied so far, in visit order.
func (s *Session) Visited() []string {
	return s.Log.Labels()[:s.Step]
}

// Path is the display path of the applied entries.
func (s *Session) Path() string { return s.Log.PathUntil(s.Step) }

// Frame returns the highlight state for the current step.
func (s *Session) Frame() render.Frame {
	return render.NewFrame(s.Log, s.Step)
}

// Status is a one-line description of where playback stands.
func (s *Session) Status() string {
	switch {
	case s.Found():
		return fmt.Sprintf("Found target: %s!", s.Target)
	case s.Done():
		return fmt.Sprintf("Completed traversal - %s not found", s.Target)
	case s.Step == 0:
		return fmt.Sprintf("Ready: %s search for %s", s.Algorithm, s.Target)
	}
	return fmt.Sprintf("Step %d of %d", s.Step, s.Log.Len())
}

// clone returns a copy whose cursor can move independently. The tree and log
// are shared; neither is mutated after creation.
func (s *Session) clone() *Session {
	c := *s
	return &c
}
