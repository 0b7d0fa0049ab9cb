package render

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/matzehuels/assortwire/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// ShowDegree appends the node degree to each label.
	ShowDegree bool

	// Plain disables degree shading.
	Plain bool
}

// degreePalette runs from light to dark; higher degrees get darker fills.
var degreePalette = []string{
	"#eff3ff", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#084594",
}

// ToDOT converts g to undirected Graphviz DOT source. Nodes and edges appear
// in the graph's own order, so equal graphs produce equal output.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.3];\n")
	buf.WriteString("  edge [color=\"#888888\"];\n")
	buf.WriteString("\n")

	minDeg, maxDeg := degreeRange(g)
	for _, n := range g.Nodes() {
		d := g.Degree(n)
		label := n
		if opts.ShowDegree {
			label = fmt.Sprintf("%s\n%d", n, d)
		}
		if opts.Plain {
			fmt.Fprintf(&buf, "  %q [label=%q];\n", n, label)
			continue
		}
		fill := shade(d, minDeg, maxDeg)
		font := "black"
		if fill == degreePalette[len(degreePalette)-1] || fill == degreePalette[len(degreePalette)-2] {
			font = "white"
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=%s];\n", n, label, fill, font)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func degreeRange(g *graph.Graph) (lo, hi int) {
	degrees := graph.DegreeSequence(g)
	if len(degrees) == 0 {
		return 0, 0
	}
	return degrees[0], slices.Max(degrees)
}

// shade maps d onto the palette linearly between lo and hi.
func shade(d, lo, hi int) string {
	if hi <= lo {
		return degreePalette[0]
	}
	i := (d - lo) * (len(degreePalette) - 1) / (hi - lo)
	return degreePalette[i]
}
