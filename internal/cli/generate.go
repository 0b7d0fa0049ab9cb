package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/assortwire/pkg/errors"
	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/io"
	"github.com/matzehuels/assortwire/pkg/rewire"
)

// generateCommand creates the generate command for sampling random graphs.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		n      int
		p      float64
		seed   uint64
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample an Erdős–Rényi random graph",
		Long: `Sample a G(n, p) random graph: n nodes, each of the n(n-1)/2 possible
edges present independently with probability p. Nodes are named 0..n-1.

The graph is written as JSON or as an edge list, depending on the extension
of --output. Without --output the edge list goes to stdout.`,
		Example: `  assortwire generate -n 100 -p 0.05 -o graph.json
  assortwire generate -n 1000 -p 0.01 --seed 7 > edges.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apperr.ValidateProbability(p); err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			g, err := graph.RandomGNP(n, p, rand.New(rand.NewPCG(seed, seed)))
			if err != nil {
				return err
			}
			prog.done("generated graph", "n", n, "p", p, "edges", g.EdgeCount())

			if output == "" {
				return io.WriteEdgeList(g, cmd.OutOrStdout())
			}
			if err := io.Export(g, output); err != nil {
				return err
			}
			printSuccess("Generated graph")
			printStats(g.NodeCount(), g.EdgeCount(), false)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "nodes", "n", 100, "number of nodes")
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.05, "edge probability in [0, 1]")
	cmd.Flags().Uint64Var(&seed, "seed", rewire.DefaultSeed, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or edge list)")

	return cmd
}
