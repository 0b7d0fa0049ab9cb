package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assortwire/pkg/cache"
	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/io"
	"github.com/matzehuels/assortwire/pkg/observability"
	"github.com/matzehuels/assortwire/pkg/render"
	"github.com/matzehuels/assortwire/pkg/rewire"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options and graphs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-stage cache lifetimes when positive.
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

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// cachedRun is the cache representation of a rewiring stage.
type cachedRun struct {
	Graph  json.RawMessage `json:"graph"`
	Result *rewire.Result  `json:"result"`
}

// Execute runs the rewire → render pipeline on a copy of g.
func (r *Runner) Execute(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	// Stage 1: Rewire
	rewireStart := time.Now()
	rewired, res, hit, err := r.RewireWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("rewire: %w", err)
	}
	result.Graph = rewired
	result.Rewire = res
	result.Stats.RewireTime = time.Since(rewireStart)
	result.CacheInfo.RewireHit = hit
	if data, err := io.MarshalGraph(g); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("rewired graph",
		"initial", res.Initial,
		"final", res.Final,
		"target", res.Target,
		"preserved", res.Preserved,
		"cached", hit,
		"duration", result.Stats.RewireTime)

	// Stage 2: Render
	if len(opts.Formats) == 0 || res.Cancelled {
		return result, nil
	}
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, rewired, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RewireWithCacheInfo rewires a copy of g with caching and returns the
// rewired graph, the run result and whether it came from the cache.
func (r *Runner) RewireWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (*graph.Graph, *rewire.Result, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, false, err
	}

	// Compute cache key
	graphData, err := io.MarshalGraph(g)
	if err != nil {
		return nil, nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	cacheKey := r.Keyer.RewireKey(cache.Hash(graphData), opts.RewireKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if rewired, res, ok := r.loadRun(ctx, cacheKey); ok {
			relabel(res, opts.Rewire.Name)
			observability.Cache().OnCacheHit(ctx, "rewire")
			r.Logger.Debug("rewire cache hit", "key", cacheKey)
			return rewired, res, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "rewire")
	}

	// Rewire on a copy; every run draws from a fresh source seeded by Seed.
	work := g.Clone()
	runOpts := opts.Rewire
	runOpts.Rand = rand.New(rand.NewPCG(runOpts.Seed, runOpts.Seed))
	res, err := rewire.Rewire(ctx, work, runOpts)
	if err != nil {
		return nil, nil, false, err
	}

	// Cache the result
	if res.TimedOut || res.Cancelled {
		r.Logger.Debug("not caching incomplete run", "timed_out", res.TimedOut, "cancelled", res.Cancelled)
		return work, res, false, nil
	}
	if data, err := encodeRun(work, res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLRewire)); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "rewire", len(data))
		}
	}

	return work, res, false, nil
}

// Rewire is a convenience wrapper that calls RewireWithCacheInfo and discards the cache hit info.
func (r *Runner) Rewire(ctx context.Context, g *graph.Graph, opts Options) (*graph.Graph, *rewire.Result, error) {
	rewired, res, _, err := r.RewireWithCacheInfo(ctx, g, opts)
	return rewired, res, err
}

// RenderWithCacheInfo renders g in every requested format with caching and
// reports whether all artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	graphData, err := io.MarshalGraph(g)
	if err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	graphHash := cache.Hash(graphData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	var dot string
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.RenderKey(graphHash, opts.RenderKey(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
				observability.Cache().OnCacheHit(ctx, "render")
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "render")
		}
		allCached = false

		if dot == "" {
			dot = render.ToDOT(g, render.Options{ShowDegree: opts.ShowDegree})
		}
		data, err := render.Render(ctx, dot, format, opts.Engine)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLRender)); err == nil {
			observability.Cache().OnCacheSet(ctx, "render", len(data))
		}
	}

	return artifacts, allCached, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func (r *Runner) loadRun(ctx context.Context, key string) (*graph.Graph, *rewire.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return nil, nil, false
	}
	if !hit {
		return nil, nil, false
	}
	var run cachedRun
	if err := json.Unmarshal(data, &run); err != nil || run.Result == nil {
		return nil, nil, false
	}
	g, err := io.UnmarshalGraph(run.Graph)
	if err != nil {
		return nil, nil, false
	}
	return g, run.Result, true
}

func encodeRun(g *graph.Graph, res *rewire.Result) ([]byte, error) {
	graphData, err := io.MarshalGraph(g)
	if err != nil {
		return nil, err
	}
	return json.Marshal(cachedRun{Graph: graphData, Result: res})
}

// relabel stamps a cached result with the current run name.
func relabel(res *rewire.Result, name string) {
	res.Name = name
	res.Summary.Name = name
	for i := range res.Records {
		res.Records[i].Name = name
	}
}
