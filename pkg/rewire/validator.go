package rewire

import "github.com/matzehuels/assortwire/pkg/graph"

// ValidateCandidates filters a batch of proposed edges against g and returns
// the accepted edges in batch order, plus tallies of what was refused.
//
// Each candidate is checked against the graph as it is now, so callers that
// replace edges remove the old ones first. Per candidate, in order:
//   - a self-pair counts one Self rejection
//   - a pair already in g counts one Existing rejection
//   - a pair whose mirror or exact repeat is also in the batch counts 0.5
//     Duplicate, so both occurrences together count 1.0
//   - anything else is accepted
func ValidateCandidates(g *graph.Graph, batch []graph.Edge) ([]graph.Edge, Rejections) {
	counts := make(map[graph.Edge]int, len(batch))
	for _, e := range batch {
		counts[e]++
	}

	var rej Rejections
	accepted := make([]graph.Edge, 0, len(batch))
	for _, e := range batch {
		switch {
		case e.IsLoop():
			rej.Self++
		case g.HasEdge(e.U, e.V):
			rej.Existing++
		case counts[e.Reversed()] > 0 || counts[e] > 1:
			rej.Duplicate += 0.5
		default:
			accepted = append(accepted, e)
		}
	}
	return accepted, rej
}
