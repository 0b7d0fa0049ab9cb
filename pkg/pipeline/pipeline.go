// Package pipeline runs the load → rewire → render workflow with caching.
//
// The CLI (and anything else driving experiments) goes through a [Runner]
// so that repeated runs of the same graph with the same options are served
// from the cache instead of being recomputed.
//
// # Stages
//
//  1. Rewire: move the graph's assortativity toward the target on a copy of
//     the input graph
//  2. Render: draw the rewired graph in the requested formats (optional)
//
// Each stage can be run on its own.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Rewire:  rewire.Options{Target: -0.3},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Rewire.Final)
//	svg := result.Artifacts["svg"]
//
// # Caching
//
// Rewiring results are keyed by the content hash of the input graph and
// every option that affects the outcome. Runs that timed out or were
// cancelled are not cached, since a rerun with more time may do better.
// Rendered artifacts are keyed by the hash of the rewired graph and format.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assortwire/pkg/cache"
	apperr "github.com/matzehuels/assortwire/pkg/errors"
	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/render"
	"github.com/matzehuels/assortwire/pkg/rewire"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization so runs can be described in files.
type Options struct {
	// Rewire configures the rewiring stage.
	Rewire rewire.Options `json:"rewire"`

	// Refresh bypasses cached results (they are still written).
	Refresh bool `json:"refresh,omitempty"`

	// Render options. No formats means no rendering.
	Formats    []string `json:"formats,omitempty"`
	Engine     string   `json:"engine,omitempty"`
	ShowDegree bool     `json:"show_degree,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the rewired graph. The input graph is never modified.
	Graph *graph.Graph

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Rewire is the outcome of the rewiring stage.
	Rewire *rewire.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	RewireTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RewireHit bool // Whether the rewiring result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !render.ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg, png)", format)
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

// ValidateEngine checks that a layout engine is valid. Empty selects the
// default engine.
func ValidateEngine(engine string) error {
	if engine != "" && !render.ValidEngines[engine] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid engine: %q (must be one of: neato, sfdp, circo, dot)", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Rewire.Logger == nil {
		o.Rewire.Logger = o.Logger
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	if err := o.Rewire.ValidateAndSetDefaults(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if o.Engine == "" {
		o.Engine = render.EngineNeato
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// RewireKeyOpts returns cache key options for the rewiring stage.
// Call after ValidateAndSetDefaults so defaults are part of the key.
func (o *Options) RewireKeyOpts() cache.RewireKeyOpts {
	r := o.Rewire
	return cache.RewireKeyOpts{
		Target:           r.Target,
		SampleSize:       r.SampleSize,
		Method:           string(r.Method),
		TimeLimit:        r.TimeLimit,
		RepairTimeLimit:  r.RepairTimeLimit,
		MaxIterations:    r.MaxIterations,
		MaxDonorAttempts: r.MaxDonorAttempts,
		Seed:             r.Seed,
		Verbosity:        string(r.Verbosity),
	}
}

// RenderKey returns the cache key component for a rendered format.
func (o *Options) RenderKey(format string) string {
	if format == render.FormatDOT {
		return fmt.Sprintf("%s:degree=%t", format, o.ShowDegree)
	}
	return fmt.Sprintf("%s:%s:degree=%t", format, o.Engine, o.ShowDegree)
}
