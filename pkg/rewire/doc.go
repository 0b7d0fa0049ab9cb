// Package rewire changes a graph's degree assortativity toward a target
// value while keeping every node's degree.
//
// # Overview
//
// Assortativity measures whether high-degree nodes tend to connect to other
// high-degree nodes (r > 0) or to low-degree nodes (r < 0). Rewiring moves r
// by replacing edges, never by adding or dropping stubs, so the degree
// sequence of the input survives every committed step.
//
// The entry point is [Rewire]:
//
//	res, err := rewire.Rewire(ctx, g, rewire.Options{Target: -0.3})
//	if err != nil {
//	    return err // invalid options only
//	}
//	fmt.Println(res.Final, res.Preserved)
//
// # Components
//
// [ValidateCandidates] filters proposed edges: self-pairs, pairs already in
// the graph and pairs duplicated within the batch are refused and tallied in
// [Rejections].
//
// [Reconstructor] replaces the whole edge set with a greedy plan that pushes
// r toward an [Extreme], then runs a repair loop that trades missing stubs
// with random donor edges until every degree matches again. The loop stops
// early when its time budget runs out or when no donor edge is left.
//
// [Tuner] removes a small random sample of edges per iteration and
// reconnects the endpoints by degree. An iteration commits only when every
// proposed edge is valid; otherwise the sample is restored.
//
// # Methods
//
// [MethodReconstructTune] reconstructs toward the extreme opposite to the
// needed [Direction] and then tunes back, approaching the target from the
// far side. [MethodTune] only tunes. [MethodReconstruct] only reconstructs
// toward the extreme in the needed direction.
//
// # Records
//
// Every pass appends a [Record] to a [Log]. [Result.Records] holds the full
// trace followed by a summary record, or only the summary when
// [VerbositySummary] is selected.
//
// # Randomness
//
// All random choices draw from [Options.Rand], which defaults to a PCG source
// seeded from [Options.Seed]. The same input graph, options and seed produce
// the same result.
//
// # Concurrency
//
// A run mutates its graph and random source and is not safe for concurrent
// use. Independent runs on separate graphs may proceed in parallel.
package rewire
