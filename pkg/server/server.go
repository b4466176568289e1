// Package server exposes the tree search visualizer and cipher engine over
// HTTP.
//
// # Routes
//
//	GET    /healthz
//	GET    /metrics                        (when a metrics handler is set)
//	GET    /api/algorithms
//	GET    /api/ciphers
//	POST   /api/trees
//	POST   /api/search
//	POST   /api/heuristics
//	POST   /api/render
//	POST   /api/sessions
//	GET    /api/sessions/{id}
//	DELETE /api/sessions/{id}
//	POST   /api/sessions/{id}/step
//	POST   /api/sessions/{id}/reset
//	GET    /api/sessions/{id}/frame.svg
//	POST   /api/ciphers/{name}/{mode}
//
// Request and response bodies are JSON. Failures are reported as
//
//	{"error": {"code": "TARGET_NOT_FOUND", "message": "..."}}
//
// with the status derived from the error code.
//
// # Lifecycle
//
// [Server.Run] serves until its context is cancelled, then shuts down
// gracefully. Expired sessions are swept on a ticker while the server runs.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/session"
)

// Defaults for zero Config fields.
const (
	DefaultAddr            = "localhost:8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
)

// Config holds listener and limit settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	MaxBodyBytes    int64

	// SweepInterval is how often expired sessions are dropped.
	// Defaults to half the session TTL.
	SweepInterval time.Duration
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = session.DefaultTTL
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = c.SessionTTL / 2
	}
}

// Server serves the HTTP API.
type Server struct {
	cfg      Config
	runner   *pipeline.Runner
	sessions session.Store
	logger   *log.Logger
	metrics  http.Handler

	// updates serializes read-modify-write cycles per session ID.
	updates keyedMutex
}

// Option customizes a Server.
type Option func(*Server)

// WithSessionStore replaces the default in-memory session store.
func WithSessionStore(s session.Store) Option {
	return func(srv *Server) { srv.sessions = s }
}

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(srv *Server) { srv.metrics = h }
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *log.Logger) Option {
	return func(srv *Server) { srv.logger = l }
}

// New creates a server. A nil runner gets an uncached one.
func New(runner *pipeline.Runner, cfg Config, opts ...Option) *Server {
	cfg.setDefaults()
	s := &Server{cfg: cfg, runner: runner}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.sessions == nil {
		s.sessions = session.NewMemoryStore(cfg.SessionTTL)
	}
	return s
}

// Handler returns the router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(s.limitBody)

		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/ciphers", s.handleCiphers)
		r.Post("/ciphers/{name}/{mode}", s.handleCipher)

		r.Post("/trees", s.handleGenerate)
		r.Post("/search", s.handleSearch)
		r.Post("/heuristics", s.handleHeuristics)
		r.Post("/render", s.handleRender)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/{id}", s.handleGetSession)
			r.Delete("/{id}", s.handleDeleteSession)
			r.Post("/{id}/step", s.handleStepSession)
			r.Post("/{id}/reset", s.handleResetSession)
			r.Get("/{id}/frame.svg", s.handleSessionFrame)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, notFound("no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		s.sweepSessions(gctx)
		return nil
	})
	return g.Wait()
}

func (s *Server) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sessions.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "err", err)
			}
		}
	}
}
