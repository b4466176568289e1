package server

import (
	"net/http"

	"github.com/matzehuels/algoviz/pkg/buildinfo"
	"github.com/matzehuels/algoviz/pkg/cipher"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/heuristic"
	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// treeRequest carries either an explicit tree or generation parameters,
// plus search and render options.
type treeRequest struct {
	Tree *graph.Graph `json:"tree,omitempty"`
	pipeline.Options
}

// resolveTree decodes the request tree or generates one.
func (s *Server) resolveTree(r *http.Request, req *treeRequest) (*tree.Tree, error) {
	if req.Tree != nil {
		return graph.ToTree(*req.Tree)
	}
	return s.runner.Generate(r.Context(), req.Options)
}

// runSearch resolves the tree and runs the requested search over it.
func (s *Server) runSearch(r *http.Request, req *treeRequest) (*tree.Tree, search.Log, error) {
	t, err := s.resolveTree(r, req)
	if err != nil {
		return nil, search.Log{}, err
	}
	if req.Target == "" {
		return nil, search.Log{}, errors.ValidateTarget(req.Target)
	}
	l, err := s.runner.Search(r.Context(), t, req.Options)
	if err != nil {
		return nil, search.Log{}, err
	}
	return t, l, nil
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, search.Catalog())
}

func (s *Server) handleCiphers(w http.ResponseWriter, r *http.Request) {
	ciphers := cipher.All()
	infos := make([]cipher.Info, 0, len(ciphers))
	for _, c := range ciphers {
		infos = append(infos, c.Info())
	}
	writeJSON(w, http.StatusOK, infos)
}

// POST /api/trees
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeJSON(r, &opts); err != nil {
		s.fail(w, r, err)
		return
	}
	t, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, graph.FromTree(t))
}

// POST /api/search
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
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
	h := heuristic.NewTable(t, l.Target)
	writeJSON(w, http.StatusOK, graph.NewSnapshot(graph.FromTree(t), l, &h))
}

type heuristicsResponse struct {
	Table heuristic.Table  `json:"table"`
	Audit heuristic.Report `json:"audit"`
}

// POST /api/heuristics
func (s *Server) handleHeuristics(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	target := errors.NormalizeTarget(req.Target)
	if err := errors.ValidateTarget(target); err != nil {
		s.fail(w, r, err)
		return
	}
	t, err := s.resolveTree(r, &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !t.Contains(target) && !req.AllowMissing {
		s.fail(w, r, errors.New(errors.ErrCodeTargetNotFound, "Target %s not in tree", target))
		return
	}
	writeJSON(w, http.StatusOK, heuristicsResponse{
		Table: heuristic.NewTable(t, target),
		Audit: heuristic.Audit(t, target),
	})
}

// POST /api/render
//
// Exactly one format is rendered per request; the body is the artifact
// itself. Without a target the plain tree is drawn.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if len(req.Formats) > 1 {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidFormat, "render one format per request, got %d", len(req.Formats)))
		return
	}
	if err := req.ValidateForRender(); err != nil {
		s.fail(w, r, err)
		return
	}
	format := req.Formats[0]
	if (format == pipeline.FormatPNG || format == pipeline.FormatPDF) && !render.CanConvert() {
		s.fail(w, r, errors.New(errors.ErrCodeUnsupported, "%s output needs rsvg-convert on the server", format))
		return
	}

	var (
		t   *tree.Tree
		l   search.Log
		err error
	)
	if req.Target != "" {
		t, l, err = s.runSearch(r, &req)
	} else {
		t, err = s.resolveTree(r, &req)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	frame := render.NewFrame(l, req.FrameStep(l))
	artifacts, err := s.runner.Render(r.Context(), t, frame, req.Options)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeBytes(w, pipeline.ContentTypes[format], artifacts[format])
}
