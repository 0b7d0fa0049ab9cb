package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/io"
)

// graphStats summarizes a graph's size and degree distribution.
type graphStats struct {
	Nodes         int      `json:"nodes"`
	Edges         int      `json:"edges"`
	MinDegree     int      `json:"min_degree"`
	MaxDegree     int      `json:"max_degree"`
	MeanDegree    float64  `json:"mean_degree"`
	Assortativity *float64 `json:"assortativity"`
}

// computeStats summarizes g. Assortativity is nil when undefined.
func computeStats(g *graph.Graph) graphStats {
	s := graphStats{Nodes: g.NodeCount(), Edges: g.EdgeCount()}
	if degs := graph.DegreeSequence(g); len(degs) > 0 {
		s.MinDegree = slices.Min(degs)
		s.MaxDegree = slices.Max(degs)
		s.MeanDegree = 2 * float64(s.Edges) / float64(s.Nodes)
	}
	if r := graph.Assortativity(g); !math.IsNaN(r) {
		s.Assortativity = &r
	}
	return s
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [graph]",
		Short: "Print size, degree and assortativity of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := io.Import(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}
			s := computeStats(g)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			fmt.Println(StyleTitle.Render(args[0]))
			printKeyValue("Nodes", fmt.Sprintf("%d", s.Nodes))
			printKeyValue("Edges", fmt.Sprintf("%d", s.Edges))
			printKeyValue("Degree", fmt.Sprintf("min %d · max %d · mean %.2f", s.MinDegree, s.MaxDegree, s.MeanDegree))
			printKeyValue("r", formatR(s.Assortativity))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

// formatR formats an assortativity value, printing "undefined" for nil.
func formatR(r *float64) string {
	if r == nil {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", *r)
}
