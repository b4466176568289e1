package server

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/session"
)

type sessionView struct {
	ID        string           `json:"id"`
	Algorithm search.Algorithm `json:"algorithm"`
	Target    string           `json:"target"`
	Step      int              `json:"step"`
	Total     int              `json:"total"`
	Done      bool             `json:"done"`
	Found     bool             `json:"found"`
	Status    string           `json:"status"`
	Path      string           `json:"path"`
	Visited   []string         `json:"visited"`
	Current   *search.Entry    `json:"current,omitempty"`
	Frame     render.Frame     `json:"frame"`
	Tree      graph.Graph      `json:"tree"`
	ExpiresAt time.Time        `json:"expires_at"`
}

func newSessionView(s *session.Session) sessionView {
	v := sessionView{
		ID:        s.ID,
		Algorithm: s.Algorithm,
		Target:    s.Target,
		Step:      s.Step,
		Total:     s.Log.Len(),
		Done:      s.Done(),
		Found:     s.Found(),
		Status:    s.Status(),
		Path:      s.Path(),
		Visited:   s.Visited(),
		Frame:     s.Frame(),
		Tree:      graph.FromTree(s.Tree),
		ExpiresAt: s.ExpiresAt,
	}
	if e, ok := s.Current(); ok {
		v.Current = &e
	}
	return v
}

// Step directions.
const (
	dirNext = "next"
	dirPrev = "prev"
)

type stepRequest struct {
	Direction string `json:"direction,omitempty"` // next (default) or prev
	To        *int   `json:"to,omitempty"`        // seek instead of stepping
}

func (s *Server) loadSession(r *http.Request) (*session.Session, error) {
	return s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
}

// POST /api/sessions
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	t, l, err := s.runSearch(r, &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sess := session.New(t, l)
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.fail(w, r, err)
		return
	}
	// Re-read so ExpiresAt reflects the store's TTL.
	if stored, err := s.sessions.Get(r.Context(), sess.ID); err == nil {
		sess = stored
	}
	w.Header().Set("Location", "/api/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, newSessionView(sess))
}

// GET /api/sessions/{id}
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess))
}

// DELETE /api/sessions/{id}
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/sessions/{id}/step
func (s *Server) handleStepSession(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.updateSession(w, r, func(sess *session.Session) error {
		if req.To != nil {
			sess.Seek(*req.To)
			return nil
		}
		switch strings.ToLower(req.Direction) {
		case "", dirNext:
			sess.Next()
		case dirPrev:
			sess.Prev()
		default:
			return errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q (must be next or prev)", req.Direction)
		}
		return nil
	})
}

// POST /api/sessions/{id}/reset
func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	s.updateSession(w, r, func(sess *session.Session) error {
		sess.Reset()
		return nil
	})
}

// updateSession applies fn to the stored session and writes it back. Updates
// to one session run one at a time so concurrent steps are not lost.
func (s *Server) updateSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	unlock := s.updates.lock(chi.URLParam(r, "id"))
	defer unlock()

	sess, err := s.loadSession(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := fn(sess); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess))
}

// GET /api/sessions/{id}/frame.svg
func (s *Server) handleSessionFrame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeBytes(w, "image/svg+xml", render.SVG(sess.Tree, sess.Frame(), render.Options{}))
}

// keyedMutex hands out one mutex per key. Entries are dropped once nobody
// holds or waits on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		if m.refs--; m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
