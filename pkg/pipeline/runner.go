package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/heuristic"
	"github.com/matzehuels/algoviz/pkg/observability"
	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// Key types reported to cache hooks.
const (
	keyTypeTree     = "tree"
	keyTypeSearch   = "search"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-kind cache lifetimes when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → search → render pipeline with caching.
// Without a target the search stage is skipped and the plain tree is drawn.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Generate
	start := time.Now()
	t, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Tree = t
	result.TreeHash = TreeHash(t)
	result.Stats.GenerateTime = time.Since(start)
	result.Stats.NodeCount = t.Len()
	result.Stats.EdgeCount = t.EdgeCount()
	result.CacheInfo.GenerateHit = hit

	r.Logger.Info("generated tree",
		"mode", t.Mode,
		"nodes", t.Len(),
		"seed", t.Seed,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Search
	if opts.Target != "" {
		start = time.Now()
		l, hit, err := r.SearchWithCacheInfo(ctx, t, opts)
		if err != nil {
			return nil, err
		}
		result.Log = l
		result.Stats.SearchTime = time.Since(start)
		result.Stats.Visited = l.Len()
		result.CacheInfo.SearchHit = hit
		if l.Algorithm.Informed() {
			h := heuristic.NewTable(t, l.Target)
			result.Heuristics = &h
		}

		r.Logger.Info("searched tree",
			"algorithm", l.Algorithm,
			"target", l.Target,
			"visited", l.Len(),
			"found", l.Found(),
			"duration", result.Stats.SearchTime)
	}

	// Stage 3: Render
	start = time.Now()
	result.Frame = render.NewFrame(result.Log, opts.FrameStep(result.Log))
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, t, result.Frame, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"step", result.Frame.Step,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds a tree and reports whether it came from the
// cache. Only seeded generation is cached; an unseeded tree is new every run.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (t *tree.Tree, hit bool, err error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Mode, opts.Nodes)
	start := time.Now()
	defer func() {
		n := 0
		if t != nil {
			n = t.Len()
		}
		hooks.OnGenerateComplete(ctx, opts.Mode, n, time.Since(start), err)
	}()

	var key string
	if opts.deterministic() {
		key = r.Keyer.TreeKey(opts.TreeKeyOpts())
		if data, ok := r.lookup(ctx, key, keyTypeTree, opts.Refresh); ok {
			if cached, err := graph.UnmarshalTree(data); err == nil {
				return cached, true, nil
			}
			// Undecodable entry: fall through and regenerate
		}
	}

	t, err = tree.Generate(opts.TreeParams())
	if err != nil {
		return nil, false, err
	}
	opts.Logger.Debug("generated", "params", opts.describe(), "seed", t.Seed)

	if key != "" {
		if data, err := graph.MarshalTree(t); err == nil {
			r.store(ctx, key, keyTypeTree, data, cache.TTLTree)
		}
	}
	return t, false, nil
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*tree.Tree, error) {
	t, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return t, err
}

// SearchWithCacheInfo runs one search over t and reports whether the log came
// from the cache. The target must be a node of t unless opts.AllowMissing is
// set; otherwise the error has code errors.ErrCodeTargetNotFound.
func (r *Runner) SearchWithCacheInfo(ctx context.Context, t *tree.Tree, opts Options) (l search.Log, hit bool, err error) {
	if t == nil {
		return search.Log{}, false, errors.New(errors.ErrCodeInvalidInput, "Please generate a tree first")
	}
	if err := opts.ValidateForSearch(); err != nil {
		return search.Log{}, false, err
	}
	if !opts.AllowMissing && !t.Contains(opts.Target) {
		return search.Log{}, false, errors.New(errors.ErrCodeTargetNotFound,
			"Target %s not in tree. Available: %s", opts.Target, strings.Join(t.Labels(), ", "))
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnSearchStart(ctx, opts.Algorithm, opts.Target)
	start := time.Now()
	defer func() {
		hooks.OnSearchComplete(ctx, opts.Algorithm, l.Len(), l.Found(), time.Since(start), err)
	}()

	key := r.Keyer.SearchKey(TreeHash(t), opts.SearchKeyOpts())
	if data, ok := r.lookup(ctx, key, keyTypeSearch, opts.Refresh); ok {
		if cached, err := graph.UnmarshalLog(data); err == nil {
			return cached, true, nil
		}
	}

	l = search.Run(t, opts.Target, search.Algorithm(opts.Algorithm), opts.SearchOptions())
	opts.Logger.Debug("search finished", "algorithm", l.Algorithm, "path", l.Path())

	if data, err := graph.MarshalLog(l, graph.FormatJSON); err == nil {
		r.store(ctx, key, keyTypeSearch, data, cache.TTLSearch)
	}
	return l, false, nil
}

// Search is a convenience wrapper that discards the cache hit info.
func (r *Runner) Search(ctx context.Context, t *tree.Tree, opts Options) (search.Log, error) {
	l, _, err := r.SearchWithCacheInfo(ctx, t, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every format came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, t *tree.Tree, f render.Frame, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	treeHash := TreeHash(t)
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(treeHash, opts.ArtifactKeyOpts(format, f))
		if data, ok := r.lookup(ctx, key, keyTypeArtifact, opts.Refresh); ok {
			artifacts[format] = data
			continue
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	for _, format := range missing {
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		one := opts
		one.Formats = []string{format}
		rendered, err := Render(ctx, t, f, one)
		hooks.OnRenderComplete(ctx, format, time.Since(start), err)
		if err != nil {
			return nil, false, err
		}

		data := rendered[format]
		artifacts[format] = data
		r.store(ctx, r.Keyer.ArtifactKey(treeHash, opts.ArtifactKeyOpts(format, f)), keyTypeArtifact, data, cache.TTLArtifact)
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, t *tree.Tree, f render.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, t, f, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// TreeHash is the content hash of t's canonical JSON form.
func TreeHash(t *tree.Tree) string {
	data, err := graph.MarshalTree(t)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

func (r *Runner) lookup(ctx context.Context, key, keyType string, refresh bool) ([]byte, bool) {
	if refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
