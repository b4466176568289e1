// Package pipeline runs the generate → search → render pipeline shared by
// the CLI and the HTTP API.
//
// By centralizing this logic, both entry points validate, cache, log and
// emit metrics the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: build a tree from generation parameters
//  2. Search: run one strategy toward a target, producing a visit log
//  3. Render: draw a frame of the log in one or more formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Nodes:     12,
//	    Levels:    4,
//	    Seed:      7,
//	    Algorithm: "astar",
//	    Target:    "K",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	t, err := runner.Generate(ctx, opts)
//	l, err := runner.Search(ctx, t, opts)
//	artifacts, err := runner.Render(ctx, t, render.NewFrame(l, 3), opts)
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/heuristic"
	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"      // hand-laid SVG at generator positions
	FormatDOT      = "dot"      // Graphviz source
	FormatGraphviz = "graphviz" // SVG laid out by Graphviz
	FormatJSON     = "json"     // tree plus frame
	FormatPNG      = "png"
	FormatPDF      = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatDOT:      true,
	FormatGraphviz: true,
	FormatJSON:     true,
	FormatPNG:      true,
	FormatPDF:      true,
}

// ContentTypes maps formats to HTTP content types.
var ContentTypes = map[string]string{
	FormatSVG:      "image/svg+xml",
	FormatDOT:      "text/vnd.graphviz",
	FormatGraphviz: "image/svg+xml",
	FormatJSON:     "application/json",
	FormatPNG:      "image/png",
	FormatPDF:      "application/pdf",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Levels      int    `json:"levels,omitempty"`
	Nodes       int    `json:"nodes,omitempty"`
	MaxChildren int    `json:"max_children,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Seed        uint64 `json:"seed,omitempty"`

	// Search options
	Algorithm         string `json:"algorithm,omitempty"`
	Target            string `json:"target,omitempty"`
	DepthLimit        int    `json:"depth_limit,omitempty"`
	MaxIterativeDepth int    `json:"max_iterative_depth,omitempty"`
	AllowMissing      bool   `json:"allow_missing,omitempty"` // search even when the target is not in the tree

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Step     int      `json:"step,omitempty"` // frame to draw; <= 0 draws the whole log
	Width    float64  `json:"width,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	Refresh bool `json:"refresh,omitempty"` // bypass cache reads

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the generated tree.
	Tree *tree.Tree

	// TreeHash is the content hash of the serialized tree.
	TreeHash string

	// Log is the visit log; empty when no target was given.
	Log search.Log

	// Heuristics is the h table toward the target, for informed strategies.
	Heuristics *heuristic.Table

	// Frame is the rendered frame.
	Frame render.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	Visited      int
	GenerateTime time.Duration
	SearchTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the tree came from cache
	SearchHit   bool // Whether the visit log came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, dot, graphviz, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults fills defaults and validates every stage.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if o.Target != "" {
		if err := o.ValidateForSearch(); err != nil {
			return err
		}
	}
	return o.ValidateForRender()
}

// ValidateForGenerate fills generation defaults and checks bounds.
func (o *Options) ValidateForGenerate() error {
	p := o.TreeParams()
	p.SetDefaults()
	if err := p.Validate(); err != nil {
		return err
	}
	o.Levels, o.Nodes, o.MaxChildren, o.Mode = p.Levels, p.Nodes, p.MaxChildren, string(p.Mode)
	return nil
}

// ValidateForSearch normalizes the target and algorithm and fills search
// defaults.
func (o *Options) ValidateForSearch() error {
	o.Target = errors.NormalizeTarget(o.Target)
	if err := errors.ValidateTarget(o.Target); err != nil {
		return err
	}
	algo, err := search.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return err
	}
	o.Algorithm = string(algo)

	so := o.SearchOptions()
	so.SetDefaults()
	o.DepthLimit, o.MaxIterativeDepth = so.DepthLimit, so.MaxIterativeDepth
	return nil
}

// ValidateForRender fills render defaults and checks formats.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidParams, "width must not be negative")
	}
	return ValidateFormats(o.Formats)
}

// TreeParams converts the generation options.
func (o *Options) TreeParams() tree.Params {
	return tree.Params{
		Levels:      o.Levels,
		Nodes:       o.Nodes,
		MaxChildren: o.MaxChildren,
		Mode:        tree.Mode(o.Mode),
		Seed:        o.Seed,
	}
}

// SearchOptions converts the search options.
func (o *Options) SearchOptions() search.Options {
	return search.Options{DepthLimit: o.DepthLimit, MaxIterativeDepth: o.MaxIterativeDepth}
}

// TreeKeyOpts returns the cache key inputs for generation.
func (o *Options) TreeKeyOpts() cache.TreeKeyOpts {
	return cache.TreeKeyOpts{
		Levels:      o.Levels,
		Nodes:       o.Nodes,
		MaxChildren: o.MaxChildren,
		Mode:        o.Mode,
		Seed:        o.Seed,
	}
}

// SearchKeyOpts returns the cache key inputs for a search.
func (o *Options) SearchKeyOpts() cache.SearchKeyOpts {
	return cache.SearchKeyOpts{
		Algorithm:         o.Algorithm,
		Target:            o.Target,
		DepthLimit:        o.DepthLimit,
		MaxIterativeDepth: o.MaxIterativeDepth,
	}
}

// ArtifactKeyOpts returns the cache key inputs for one rendered format.
func (o *Options) ArtifactKeyOpts(format string, f render.Frame) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:            format,
		Algorithm:         string(f.Algorithm),
		Target:            f.Target,
		Step:              f.Step,
		DepthLimit:        o.DepthLimit,
		MaxIterativeDepth: o.MaxIterativeDepth,
		Width:             o.Width,
		Detailed:          o.Detailed,
	}
}

// FrameStep resolves Options.Step against a log.
func (o *Options) FrameStep(l search.Log) int {
	if o.Step <= 0 || o.Step > l.Len() {
		return l.Len()
	}
	return o.Step
}

// deterministic reports whether generation output depends only on options.
func (o *Options) deterministic() bool { return o.Seed != 0 }

// describe is used in log lines.
func (o *Options) describe() string {
	return fmt.Sprintf("%s %d/%d/%d", o.Mode, o.Levels, o.Nodes, o.MaxChildren)
}
