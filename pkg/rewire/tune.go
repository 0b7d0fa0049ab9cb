package rewire

import (
	"cmp"
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/observability"
)

// Tuner nudges assortativity toward a target by repeatedly removing a small
// random sample of edges and reconnecting their endpoints. Raising pairs
// endpoints of similar degree; lowering pairs the smallest with the largest.
// An iteration only commits when every proposed edge is valid, so each
// committed step keeps every node's degree.
type Tuner struct {
	Rand          *rand.Rand
	Logger        *log.Logger
	SampleSize    int
	TimeLimit     time.Duration
	MaxIterations int

	run runInfo
}

// NewTuner returns a Tuner configured from validated options.
func NewTuner(opts Options) *Tuner {
	return &Tuner{
		Rand:          opts.Rand,
		Logger:        opts.Logger,
		SampleSize:    opts.SampleSize,
		TimeLimit:     opts.TimeLimit,
		MaxIterations: opts.MaxIterations,
		run:           opts.runInfo(),
	}
}

func (t *Tuner) setDefaults() {
	if t.Rand == nil {
		t.Rand = rand.New(rand.NewPCG(DefaultSeed, DefaultSeed))
	}
	if t.Logger == nil {
		t.Logger = discardLogger()
	}
	if t.SampleSize <= 0 {
		t.SampleSize = DefaultSampleSize
	}
}

// endpoint is a node id with the degree it had when its edge was sampled.
type endpoint struct {
	id     string
	degree int
}

// Tune runs iterations until the coefficient is on or past target in the
// given direction, or a limit stops it. If the graph already satisfies the
// target, no iteration runs. One record per iteration is appended to l; an
// empty log is first seeded with the initial state.
func (t *Tuner) Tune(ctx context.Context, g *graph.Graph, target float64, dir Direction, l *Log) PhaseResult {
	t.setDefaults()
	start := time.Now()
	before := graph.DegreeSequence(g)
	seedLog(l, g, t.run)

	res := PhaseResult{Preserved: true}
	r := graph.Assortativity(g)
	for dir.needsMove(r, target) {
		if t.MaxIterations > 0 && res.Iterations >= t.MaxIterations {
			break
		}
		if ctx.Err() != nil {
			res.Cancelled = true
			break
		}

		iterStart := time.Now()
		rewired, rej, preserved, ok := t.step(g, dir)
		if !ok {
			break
		}
		r = graph.Assortativity(g)

		res.Iterations++
		res.Rewired += rewired
		res.Rejections.Add(rej)

		rec := t.run.record(PhaseTune)
		rec.Elapsed = time.Since(iterStart)
		rec.R = r
		rec.Rewired = rewired
		rec.Rejections = rej
		rec.Preserved = preserved
		l.Append(rec)

		if res.Iterations%1000 == 0 {
			t.Logger.Debug("tuning", "iteration", res.Iterations, "r", r, "target", target)
		}
		if t.TimeLimit > 0 && time.Since(start) > t.TimeLimit {
			res.TimedOut = true
			t.Logger.Warn("tuning time limit exceeded", "limit", t.TimeLimit, "r", r)
			break
		}
	}

	res.Elapsed = time.Since(start)
	res.R = r
	res.Reached = dir.reached(r, target)
	res.Preserved = graph.SameDegreeSequence(before, graph.DegreeSequence(g))
	t.Logger.Info("tuning finished",
		"iterations", res.Iterations,
		"rewired", res.Rewired,
		"r", r,
		"reached", res.Reached,
		"duration", res.Elapsed)
	observability.Rewire().OnPhaseComplete(ctx, string(PhaseTune), res.Iterations, r, res.Elapsed)
	return res
}

// step performs one remove-and-reconnect iteration. ok is false when the
// graph has no edges left to sample.
func (t *Tuner) step(g *graph.Graph, dir Direction) (rewired int, rej Rejections, preserved bool, ok bool) {
	k := min(t.SampleSize, g.EdgeCount())
	if k == 0 {
		return 0, Rejections{}, true, false
	}
	sample := sampleEdges(g, k, t.Rand)

	ends := make([]endpoint, 0, 2*k)
	for _, e := range sample {
		ends = append(ends,
			endpoint{id: e.U, degree: g.Degree(e.U)},
			endpoint{id: e.V, degree: g.Degree(e.V)})
	}
	for _, e := range sample {
		_ = g.RemoveEdge(e.U, e.V)
	}

	accepted, rej := ValidateCandidates(g, pairEndpoints(ends, dir))
	if len(accepted) == k {
		for _, e := range accepted {
			_ = g.AddEdge(e.U, e.V)
		}
		rewired = k
	} else {
		for _, e := range sample {
			_ = g.AddEdge(e.U, e.V)
		}
	}

	preserved = true
	for _, p := range ends {
		if g.Degree(p.id) != p.degree {
			preserved = false
			break
		}
	}
	return rewired, rej, preserved, true
}

// sampleEdges picks k distinct edges of g uniformly using Floyd's
// algorithm over edge indices, so the cost depends on k and not on the
// edge count.
func sampleEdges(g *graph.Graph, k int, rng *rand.Rand) []graph.Edge {
	n := g.EdgeCount()
	picked := make(map[int]struct{}, k)
	sample := make([]graph.Edge, 0, k)
	for j := n - k; j < n; j++ {
		i := rng.IntN(j + 1)
		if _, dup := picked[i]; dup {
			i = j
		}
		picked[i] = struct{}{}
		sample = append(sample, g.EdgeAt(i))
	}
	return sample
}

// pairEndpoints sorts endpoints by degree and pairs them: adjacent
// neighbours when raising, opposite ends when lowering.
func pairEndpoints(ends []endpoint, dir Direction) []graph.Edge {
	slices.SortStableFunc(ends, func(a, b endpoint) int {
		return cmp.Compare(a.degree, b.degree)
	})
	n := len(ends)
	pairs := make([]graph.Edge, 0, n/2)
	if dir == DirectionRaise {
		for i := 0; i+1 < n; i += 2 {
			pairs = append(pairs, graph.Edge{U: ends[i].id, V: ends[i+1].id})
		}
		return pairs
	}
	for i := range n / 2 {
		pairs = append(pairs, graph.Edge{U: ends[i].id, V: ends[n-1-i].id})
	}
	return pairs
}
