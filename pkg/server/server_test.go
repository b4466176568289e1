package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algoviz/pkg/cipher"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/observability"
	"github.com/matzehuels/algoviz/pkg/search"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	opts = append([]Option{WithLogger(logger)}, opts...)
	srv := httptest.NewServer(New(nil, Config{}, opts...).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func requireError(t *testing.T, resp *http.Response, status int, code string) errorDetail {
	t.Helper()
	require.Equal(t, status, resp.StatusCode)
	body := decode[errorBody](t, resp)
	assert.Equal(t, code, string(body.Error.Code))
	return body.Error
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp := do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	h := decode[healthResponse](t, resp)
	assert.Equal(t, "ok", h.Status)
	assert.NotEmpty(t, h.Build.Version)
	assert.Equal(t, runtime.Version(), h.Build.GoVersion)
}

func TestCatalogs(t *testing.T) {
	srv := newTestServer(t)

	algos := decode[[]search.Info](t, do(t, srv, http.MethodGet, "/api/algorithms", ""))
	assert.Len(t, algos, len(search.Algorithms()))
	assert.Equal(t, search.Preorder, algos[0].Name)

	ciphers := decode[[]cipher.Info](t, do(t, srv, http.MethodGet, "/api/ciphers", ""))
	require.Len(t, ciphers, len(cipher.Names()))
	assert.Equal(t, cipher.Names()[0], ciphers[0].Name)
}

func TestGenerate(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/trees", `{"nodes": 10, "levels": 4, "seed": 7}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	g := decode[graph.Graph](t, resp)
	assert.Len(t, g.Nodes, 10)
	assert.Len(t, g.Edges, 9)
	assert.Equal(t, uint64(7), g.Seed)

	resp = do(t, srv, http.MethodPost, "/api/trees", `{"levels": 42}`)
	e := requireError(t, resp, http.StatusBadRequest, "INVALID_PARAMS")
	assert.Equal(t, "Levels must be between 2 and 10", e.Message)

	resp = do(t, srv, http.MethodPost, "/api/trees", `{"colour": "red"}`)
	requireError(t, resp, http.StatusBadRequest, "INVALID_INPUT")

	// An empty body generates the default tree.
	resp = do(t, srv, http.MethodPost, "/api/trees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[graph.Graph](t, resp).Nodes, 7)
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/search", `{"seed": 1, "algorithm": "bfs", "target": "f"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decode[graph.Snapshot](t, resp)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, snap.Log.Labels())
	assert.True(t, snap.Log.Entries[5].Found)
	assert.Equal(t, "A → B → C → D → E → F", snap.Path)
	assert.Nil(t, snap.Heuristics)
	assert.Len(t, snap.Tree.Nodes, 7)

	resp = do(t, srv, http.MethodPost, "/api/search", `{"seed": 1, "algorithm": "astar", "target": "F"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap = decode[graph.Snapshot](t, resp)
	require.NotNil(t, snap.Heuristics)
	h, ok := snap.Heuristics.Get("F")
	assert.True(t, ok)
	assert.Equal(t, 0, h)
}

func TestSearchExplicitTree(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"tree": {"nodes": [
			{"id": "A"},
			{"id": "B", "parent": "A", "level": 1, "cost": 4},
			{"id": "C", "parent": "A", "level": 1, "cost": 1}
		]},
		"algorithm": "ucs",
		"target": "B"
	}`
	resp := do(t, srv, http.MethodPost, "/api/search", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decode[graph.Snapshot](t, resp)
	assert.Equal(t, []string{"A", "C", "B"}, snap.Log.Labels())
}

func TestSearchErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"missing target", `{"seed": 1, "algorithm": "bfs"}`, http.StatusBadRequest, "INVALID_TARGET"},
		{"bad target", `{"seed": 1, "target": "F1"}`, http.StatusBadRequest, "INVALID_TARGET"},
		{"bad algorithm", `{"seed": 1, "target": "F", "algorithm": "dijkstra"}`, http.StatusBadRequest, "INVALID_ALGORITHM"},
		{"absent target", `{"seed": 1, "target": "Z"}`, http.StatusNotFound, "TARGET_NOT_FOUND"},
		{"bad tree", `{"tree": {"nodes": []}, "target": "A"}`, http.StatusBadRequest, "INVALID_TREE"},
		{"malformed", `{"target": `, http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireError(t, do(t, srv, http.MethodPost, "/api/search", tt.body), tt.status, tt.code)
		})
	}

	resp := do(t, srv, http.MethodPost, "/api/search", `{"seed": 1, "target": "Z"}`)
	e := requireError(t, resp, http.StatusNotFound, "TARGET_NOT_FOUND")
	assert.Equal(t, "Target Z not in tree. Available: A, B, D, E, C, F, G", e.Message)
}

func TestHeuristics(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/heuristics", `{"seed": 1, "target": "F"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[heuristicsResponse](t, resp)
	assert.Equal(t, "F", got.Table.Target)
	assert.Len(t, got.Table.Rows, 7)
	h, ok := got.Table.Get("F")
	assert.True(t, ok)
	assert.Equal(t, 0, h)
	assert.Equal(t, "F", got.Audit.Target)

	requireError(t, do(t, srv, http.MethodPost, "/api/heuristics", `{"seed": 1, "target": "Q"}`),
		http.StatusNotFound, "TARGET_NOT_FOUND")
}

func TestRender(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/render", `{"seed": 1, "algorithm": "bfs", "target": "F", "step": 2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("<svg")))
	assert.Contains(t, string(body), `class="node current" id="node-B"`)

	resp = do(t, srv, http.MethodPost, "/api/render", `{"seed": 1, "formats": ["dot"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/vnd.graphviz", resp.Header.Get("Content-Type"))

	requireError(t, do(t, srv, http.MethodPost, "/api/render", `{"formats": ["svg", "dot"]}`),
		http.StatusBadRequest, "INVALID_FORMAT")
	requireError(t, do(t, srv, http.MethodPost, "/api/render", `{"formats": ["gif"]}`),
		http.StatusBadRequest, "INVALID_FORMAT")
}

func TestSessions(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/sessions", `{"seed": 1, "algorithm": "bfs", "target": "F"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	v := decode[sessionView](t, resp)
	require.NotEmpty(t, v.ID)
	assert.Equal(t, "/api/sessions/"+v.ID, resp.Header.Get("Location"))
	assert.Equal(t, 0, v.Step)
	assert.Equal(t, 6, v.Total)
	assert.Equal(t, "Ready: bfs search for F", v.Status)
	assert.Nil(t, v.Current)

	base := "/api/sessions/" + v.ID
	do(t, srv, http.MethodPost, base+"/step", "")
	v = decode[sessionView](t, do(t, srv, http.MethodPost, base+"/step", `{"direction": "next"}`))
	assert.Equal(t, 2, v.Step)
	require.NotNil(t, v.Current)
	assert.Equal(t, "B", v.Current.Node)
	assert.Equal(t, []string{"A", "B"}, v.Visited)

	v = decode[sessionView](t, do(t, srv, http.MethodPost, base+"/step", `{"direction": "prev"}`))
	assert.Equal(t, 1, v.Step)

	v = decode[sessionView](t, do(t, srv, http.MethodGet, base, ""))
	assert.Equal(t, 1, v.Step, "stepping should persist")

	v = decode[sessionView](t, do(t, srv, http.MethodPost, base+"/step", `{"to": 99}`))
	assert.Equal(t, 6, v.Step)
	assert.True(t, v.Done)
	assert.True(t, v.Found)
	assert.Equal(t, "Found target: F!", v.Status)

	resp = do(t, srv, http.MethodGet, base+"/frame.svg", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	svg, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(svg), `class="node target" id="node-F"`)

	v = decode[sessionView](t, do(t, srv, http.MethodPost, base+"/reset", ""))
	assert.Equal(t, 0, v.Step)

	requireError(t, do(t, srv, http.MethodPost, base+"/step", `{"direction": "sideways"}`),
		http.StatusBadRequest, "INVALID_INPUT")

	resp = do(t, srv, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	requireError(t, do(t, srv, http.MethodGet, base, ""), http.StatusNotFound, "SESSION_NOT_FOUND")
}

func TestConcurrentSessionSteps(t *testing.T) {
	srv := newTestServer(t)
	v := decode[sessionView](t, do(t, srv, http.MethodPost, "/api/sessions", `{"seed": 1, "algorithm": "bfs", "target": "F"}`))
	base := "/api/sessions/" + v.ID

	const steps = 5
	var wg sync.WaitGroup
	errs := make(chan error, steps)
	for range steps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := srv.Client().Post(srv.URL+base+"/step", "application/json", nil)
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	v = decode[sessionView](t, do(t, srv, http.MethodGet, base, ""))
	assert.Equal(t, steps, v.Step)
}

func TestKeyedMutex(t *testing.T) {
	var k keyedMutex
	unlockA := k.lock("a")
	unlockB := k.lock("b")
	assert.Equal(t, 2, k.len())

	acquired := make(chan struct{})
	go func() {
		unlock := k.lock("a")
		close(acquired)
		unlock()
	}()
	select {
	case <-acquired:
		t.Fatal("second lock on the same key should wait")
	case <-time.After(20 * time.Millisecond):
	}

	unlockA()
	<-acquired
	unlockB()
	assert.Equal(t, 0, k.len())
}

func TestCiphers(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/ciphers/caesar/encrypt", `{"text": "HELLO", "key": "3"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	trace := decode[cipher.Trace](t, resp)
	assert.Equal(t, "KHOOR", trace.Output)
	assert.Equal(t, cipher.Encrypt, trace.Mode)
	assert.NotEmpty(t, trace.Steps)

	resp = do(t, srv, http.MethodPost, "/api/ciphers/vigenere/decrypt", `{"text": "RIJVS", "key": "KEY"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "HELLO", decode[cipher.Trace](t, resp).Output)

	requireError(t, do(t, srv, http.MethodPost, "/api/ciphers/enigma/encrypt", `{"text": "A"}`),
		http.StatusBadRequest, "INVALID_CIPHER")
	requireError(t, do(t, srv, http.MethodPost, "/api/ciphers/caesar/scramble", `{"text": "A"}`),
		http.StatusNotFound, "NOT_FOUND")
	requireError(t, do(t, srv, http.MethodPost, "/api/ciphers/caesar/encrypt", `{"text": ""}`),
		http.StatusBadRequest, "INVALID_INPUT")
	requireError(t, do(t, srv, http.MethodPost, "/api/ciphers/vigenere/encrypt", `{"text": "HI", "key": "123"}`),
		http.StatusBadRequest, "INVALID_KEY")
}

func TestNotFoundRoute(t *testing.T) {
	srv := newTestServer(t)
	requireError(t, do(t, srv, http.MethodGet, "/api/nope", ""), http.StatusNotFound, "NOT_FOUND")
}

func TestBodyLimit(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(New(nil, Config{MaxBodyBytes: 16}, WithLogger(logger)).Handler())
	defer srv.Close()

	resp := do(t, srv, http.MethodPost, "/api/trees", `{"nodes": 10, "levels": 4, "seed": 7}`)
	e := requireError(t, resp, http.StatusBadRequest, "INVALID_INPUT")
	assert.Contains(t, e.Message, "16 bytes")
}

func TestMetrics(t *testing.T) {
	t.Cleanup(observability.Reset)
	prom := observability.NewPrometheusHooks(prometheus.NewRegistry())
	observability.SetHTTPHooks(prom)
	observability.SetCipherHooks(prom)

	srv := newTestServer(t, WithMetrics(prom.Handler()))
	do(t, srv, http.MethodPost, "/api/ciphers/atbash/encrypt", `{"text": "ABC"}`)
	do(t, srv, http.MethodGet, "/healthz", "")

	resp := do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `algoviz_http_requests_total`)
	assert.Contains(t, string(body), `route="/healthz"`)
	assert.Contains(t, string(body), `cipher="atbash"`)
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(nil, Config{ShutdownTimeout: time.Second}, WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
