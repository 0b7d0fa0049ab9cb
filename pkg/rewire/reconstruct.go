package rewire

import (
	"cmp"
	"context"
	"maps"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/observability"
)

// PhaseResult summarises one reconstruction or tuning phase.
type PhaseResult struct {
	Iterations int
	Rewired    int
	Rejections Rejections
	Elapsed    time.Duration
	R          float64

	// Preserved reports whether the degree sequence at the end of the phase
	// equals the one at its start.
	Preserved bool
	// Reached reports whether the tuner ended on or past its target.
	Reached bool
	// TimedOut reports that the phase stopped because its budget elapsed.
	TimedOut bool
	// Stalled reports that the repair loop could not change the graph any more.
	Stalled bool
	// Cancelled reports that the context ended the phase.
	Cancelled bool
}

// Reconstructor rebuilds a graph's whole edge set toward an assortativity
// extreme while keeping every node's degree. A greedy construction pass is
// followed by a repair loop that trades stubs with randomly chosen donor
// edges until every degree matches again or the budget runs out.
type Reconstructor struct {
	Rand             *rand.Rand
	Logger           *log.Logger
	RepairTimeLimit  time.Duration
	MaxDonorAttempts int

	run runInfo
}

// NewReconstructor returns a Reconstructor configured from validated options.
func NewReconstructor(opts Options) *Reconstructor {
	return &Reconstructor{
		Rand:             opts.Rand,
		Logger:           opts.Logger,
		RepairTimeLimit:  opts.RepairTimeLimit,
		MaxDonorAttempts: opts.MaxDonorAttempts,
		run:              opts.runInfo(),
	}
}

func (r *Reconstructor) setDefaults() {
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewPCG(DefaultSeed, DefaultSeed))
	}
	if r.Logger == nil {
		r.Logger = discardLogger()
	}
	if r.RepairTimeLimit <= 0 {
		r.RepairTimeLimit = DefaultRepairTimeLimit
	}
}

// Reconstruct replaces every edge of g. It never fails: when the repair loop
// cannot restore every degree in time, the graph is left as it is and the
// result reports Preserved=false. One record per pass is appended to l; an
// empty log is first seeded with the initial state.
func (r *Reconstructor) Reconstruct(ctx context.Context, g *graph.Graph, extreme Extreme, l *Log) PhaseResult {
	r.setDefaults()
	start := time.Now()
	before := graph.DegreeSequence(g)
	seedLog(l, g, r.run)

	original := g.Edges()
	nodes, d0 := snapshotDegrees(g, original)
	plan := buildPlan(nodes, d0, extreme)

	for _, e := range original {
		_ = g.RemoveEdge(e.U, e.V)
	}
	accepted, rej := ValidateCandidates(g, plan)
	for _, e := range accepted {
		_ = g.AddEdge(e.U, e.V)
	}

	res := PhaseResult{Iterations: 1, Rewired: len(accepted), Rejections: rej}
	rec := r.run.record(PhaseReconstruct)
	rec.Elapsed = time.Since(start)
	rec.R = graph.Assortativity(g)
	rec.Rewired = len(accepted)
	rec.Rejections = rej
	rec.Preserved = graph.SameDegreeSequence(before, graph.DegreeSequence(g))
	l.Append(rec)

	r.Logger.Info("reconstructed edge set",
		"extreme", extreme,
		"edges", len(accepted),
		"r", rec.R,
		"preserved", rec.Preserved,
		"duration", rec.Elapsed)

	r.repair(ctx, g, nodes, d0, extreme, start, before, l, &res)

	res.Elapsed = time.Since(start)
	res.R = graph.Assortativity(g)
	res.Preserved = graph.SameDegreeSequence(before, graph.DegreeSequence(g))
	observability.Rewire().OnPhaseComplete(ctx, string(PhaseReconstruct), res.Iterations, res.R, res.Elapsed)
	return res
}

// repair runs stub-matching passes until no node is short of its original
// degree. Each pass is one iteration; limits are checked between passes.
func (r *Reconstructor) repair(ctx context.Context, g *graph.Graph, nodes []string, d0 map[string]int,
	extreme Extreme, start time.Time, before []int, l *Log, res *PhaseResult) {
	for {
		missing := deficits(g, nodes, d0)
		if len(missing) == 0 {
			return
		}
		if ctx.Err() != nil {
			res.Cancelled = true
			return
		}

		passStart := time.Now()
		stubs := make([]string, 0)
		for _, n := range nodes {
			for range missing[n] {
				stubs = append(stubs, n)
			}
		}
		donors, exhausted := r.drawDonors(g, missing, len(stubs))

		sortByDegree(stubs, d0, true)
		sortByDegree(donors, d0, extreme == ExtremeMax)
		pairs := make([]graph.Edge, 0, min(len(stubs), len(donors)))
		for i := range min(len(stubs), len(donors)) {
			pairs = append(pairs, graph.Edge{U: stubs[i], V: donors[i]})
		}
		accepted, rej := ValidateCandidates(g, pairs)
		for _, e := range accepted {
			_ = g.AddEdge(e.U, e.V)
		}

		res.Iterations++
		res.Rewired += len(accepted)
		res.Rejections.Add(rej)

		rec := r.run.record(PhaseRepair)
		rec.Elapsed = time.Since(passStart)
		rec.R = graph.Assortativity(g)
		rec.Rewired = len(accepted)
		rec.Rejections = rej
		rec.Preserved = graph.SameDegreeSequence(before, graph.DegreeSequence(g))
		l.Append(rec)

		r.Logger.Debug("repair pass",
			"pass", res.Iterations-1,
			"short_nodes", len(missing),
			"stubs", len(stubs),
			"donors", len(donors),
			"added", len(accepted))

		if len(donors) == 0 && exhausted {
			res.Stalled = true
			r.Logger.Warn("repair stalled: every remaining edge touches a short node", "short_nodes", len(missing))
			return
		}
		if time.Since(start) > r.RepairTimeLimit && len(deficits(g, nodes, d0)) > 0 {
			res.TimedOut = true
			r.Logger.Warn("repair time limit exceeded", "limit", r.RepairTimeLimit)
			return
		}
	}
}

// drawDonors removes up to want/2 edges whose endpoints are both at full
// degree and returns their endpoints. Candidates are drawn uniformly from the
// edges present when the pass starts, each at most once. exhausted is true
// when the candidate list ran out before enough donors were found.
func (r *Reconstructor) drawDonors(g *graph.Graph, missing map[string]int, want int) (donors []string, exhausted bool) {
	candidates := g.Edges()
	limit := r.MaxDonorAttempts
	if limit <= 0 {
		limit = len(candidates)
	}

	for attempts := 0; len(donors) < want; attempts++ {
		if len(candidates) == 0 {
			return donors, true
		}
		if attempts >= limit {
			return donors, false
		}
		i := r.Rand.IntN(len(candidates))
		e := candidates[i]
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]

		_, shortU := missing[e.U]
		_, shortV := missing[e.V]
		if shortU || shortV || !g.HasEdge(e.U, e.V) {
			continue
		}
		_ = g.RemoveEdge(e.U, e.V)
		donors = append(donors, e.U, e.V)
	}
	return donors, false
}

// snapshotDegrees returns every node touched by an edge, in order of first
// appearance, with its current degree.
func snapshotDegrees(g *graph.Graph, edges []graph.Edge) ([]string, map[string]int) {
	d0 := make(map[string]int)
	var nodes []string
	for _, e := range edges {
		for _, n := range [2]string{e.U, e.V} {
			if _, seen := d0[n]; !seen {
				d0[n] = g.Degree(n)
				nodes = append(nodes, n)
			}
		}
	}
	return nodes, d0
}

// buildPlan greedily pairs stubs so that every node gets exactly d0 edges
// where possible. Sources are visited once each; after each visit the target
// list is re-sorted by remaining degree, ties keeping their previous order.
func buildPlan(nodes []string, d0 map[string]int, extreme Extreme) []graph.Edge {
	remaining := maps.Clone(d0)
	sources := slices.Clone(nodes)
	sortByDegree(sources, d0, extreme == ExtremeMin)

	targets := slices.Clone(sources)
	if extreme == ExtremeMin {
		slices.Reverse(targets)
	}

	linked := make(map[graph.Edge]struct{})
	var plan []graph.Edge
	for _, n := range sources {
		for _, t := range targets {
			if remaining[n] == 0 {
				break
			}
			if n == t || remaining[t] == 0 {
				continue
			}
			e := graph.Edge{U: n, V: t}
			if _, ok := linked[e.Key()]; ok {
				continue
			}
			linked[e.Key()] = struct{}{}
			plan = append(plan, e)
			remaining[n]--
			remaining[t]--
		}
		sortByDegree(targets, remaining, false)
	}
	return plan
}

// sortByDegree stably sorts ids by their value in deg, ascending or
// descending. The map is read, never captured for later use.
func sortByDegree(ids []string, deg map[string]int, ascending bool) {
	slices.SortStableFunc(ids, func(a, b string) int {
		if ascending {
			return cmp.Compare(deg[a], deg[b])
		}
		return cmp.Compare(deg[b], deg[a])
	})
}

// deficits returns, for each node below its original degree, how many edges
// it is short.
func deficits(g *graph.Graph, nodes []string, d0 map[string]int) map[string]int {
	missing := make(map[string]int)
	for _, n := range nodes {
		if d := d0[n] - g.Degree(n); d > 0 {
			missing[n] = d
		}
	}
	return missing
}

// seedLog appends the initial-state record to an empty log.
func seedLog(l *Log, g *graph.Graph, run runInfo) {
	if l.Len() > 0 {
		return
	}
	rec := run.record(PhaseInitial)
	rec.R = graph.Assortativity(g)
	l.Append(rec)
}
