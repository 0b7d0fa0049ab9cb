package rewire

import (
	"context"
	"time"

	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/observability"
)

// Result is the outcome of a rewiring run.
type Result struct {
	Name      string        `json:"name"`
	Method    Method        `json:"method"`
	Direction string        `json:"direction"`
	Target    float64       `json:"target"`
	Initial   float64       `json:"initial_r"`
	Final     float64       `json:"final_r"`
	Elapsed   time.Duration `json:"elapsed"`

	EdgesRewired int        `json:"edges_rewired"`
	Rejections   Rejections `json:"rejections"`

	// Preserved reports whether the final degree sequence equals the input's.
	Preserved bool `json:"preserved"`
	// TargetReached reports whether the final coefficient is on or past the
	// target in the run's direction.
	TargetReached bool `json:"target_reached"`
	TimedOut      bool `json:"timed_out"`
	Stalled       bool `json:"stalled"`
	Cancelled     bool `json:"cancelled"`

	// Records holds every iteration record followed by the summary, or only
	// the summary when verbosity is summary.
	Records []Record `json:"records"`
	Summary Record   `json:"summary"`
}

// Rewire moves g's assortativity toward opts.Target in place, keeping every
// node's degree. The only error is invalid options; running out of time,
// stalling or cancellation are reported through the result instead.
func Rewire(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	start := time.Now()
	before := graph.DegreeSequence(g)
	initial := graph.Assortativity(g)
	dir := DirectionFor(initial, opts.Target)

	observability.Rewire().OnRewireStart(ctx, string(opts.Method), opts.Target, g.EdgeCount())
	logger.Info("rewiring",
		"name", opts.Name,
		"method", opts.Method,
		"direction", dir,
		"initial", initial,
		"target", opts.Target,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())

	var l Log
	var phases []PhaseResult
	switch opts.Method {
	case MethodReconstructTune:
		rec := NewReconstructor(opts).Reconstruct(ctx, g, dir.Extreme().Opposite(), &l)
		phases = append(phases, rec)
		if !rec.Cancelled {
			phases = append(phases, NewTuner(opts).Tune(ctx, g, opts.Target, dir, &l))
		}
	case MethodTune:
		phases = append(phases, NewTuner(opts).Tune(ctx, g, opts.Target, dir, &l))
	case MethodReconstruct:
		phases = append(phases, NewReconstructor(opts).Reconstruct(ctx, g, dir.Extreme(), &l))
	}

	res := &Result{
		Name:      opts.Name,
		Method:    opts.Method,
		Direction: dir.String(),
		Target:    opts.Target,
		Initial:   initial,
		Final:     graph.Assortativity(g),
		Elapsed:   time.Since(start),
		Preserved: graph.SameDegreeSequence(before, graph.DegreeSequence(g)),
	}
	res.TargetReached = dir.reached(res.Final, opts.Target)
	for _, p := range phases {
		res.EdgesRewired += p.Rewired
		res.Rejections.Add(p.Rejections)
		res.TimedOut = res.TimedOut || p.TimedOut
		res.Stalled = res.Stalled || p.Stalled
		res.Cancelled = res.Cancelled || p.Cancelled
	}

	sum := opts.runInfo().record(PhaseSummary)
	sum.Iteration = l.Len() - 1
	sum.Elapsed = res.Elapsed
	sum.R = res.Final
	sum.Rewired = res.EdgesRewired
	sum.TotalRewired = res.EdgesRewired
	sum.Rejections = res.Rejections
	sum.Preserved = res.Preserved
	sum.Summary = true
	res.Summary = sum

	if opts.Verbosity == VerbosityFull {
		res.Records = append(l.Records(), sum)
	} else {
		res.Records = []Record{sum}
	}

	logger.Info("rewiring finished",
		"final", res.Final,
		"target_reached", res.TargetReached,
		"preserved", res.Preserved,
		"rewired", res.EdgesRewired,
		"duration", res.Elapsed)
	if !res.Preserved {
		logger.Warn("degree sequence not preserved", "timed_out", res.TimedOut, "stalled", res.Stalled)
	}
	observability.Rewire().OnRewireComplete(ctx, string(opts.Method), res.Final, res.Preserved, res.Elapsed)
	return res, nil
}
