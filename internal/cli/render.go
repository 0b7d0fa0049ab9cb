package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/assortwire/pkg/io"
	"github.com/matzehuels/assortwire/pkg/pipeline"
)

// renderCommand creates the render command for drawing a graph file.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph]",
		Short: "Draw a graph with Graphviz",
		Long: `Draw a graph file as DOT source, SVG or PNG.

Layout is done by Graphviz; neato works well for small graphs and sfdp for
large ones. With --show-degree, nodes are shaded from light to dark by degree.

Rendered outputs are cached locally for faster subsequent runs.`,
		Example: `  assortwire render rewired.json -f svg
  assortwire render graph.json -f svg,png --engine sfdp -o out/graph`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if len(opts.Formats) == 0 {
				opts.Formats = []string{"svg"}
			}
			if !cmd.Flags().Changed("engine") {
				opts.Engine = c.cfg.Render.Engine
			}
			if !cmd.Flags().Changed("show-degree") {
				opts.ShowDegree = c.cfg.Render.ShowDegree
			}
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.Engine, "engine", "", "graphviz layout engine: neato (default), sfdp, circo, dot")
	cmd.Flags().BoolVar(&opts.ShowDegree, "show-degree", false, "shade nodes by degree")

	return cmd
}

// runRender loads the graph and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := io.Import(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d nodes...", g.NodeCount()))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	printSuccess("Rendered graph")
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	return writeArtifacts(artifacts, opts.Formats, input, output)
}

// writeArtifacts writes rendered outputs next to the input, or to output.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(input, output, format, len(formats) > 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
