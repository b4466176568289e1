package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/algoviz/pkg/cipher"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/observability"
)

type cipherRequest struct {
	Text string `json:"text"`
	Key  string `json:"key,omitempty"`
}

// POST /api/ciphers/{name}/{mode}
func (s *Server) handleCipher(w http.ResponseWriter, r *http.Request) {
	c, err := cipher.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	mode, err := cipher.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		s.fail(w, r, notFound("no route for %s %s", r.Method, r.URL.Path))
		return
	}

	var req cipherRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := errors.ValidateText(req.Text); err != nil {
		s.fail(w, r, err)
		return
	}

	start := time.Now()
	trace, err := cipher.Apply(c.Name(), mode, req.Text, req.Key)
	observability.Cipher().OnCipher(r.Context(), c.Name(), string(mode), len(trace.Steps), time.Since(start), err)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trace)
}
