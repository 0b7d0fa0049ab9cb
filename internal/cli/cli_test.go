package cli

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	apperr "github.com/matzehuels/assortwire/pkg/errors"
	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/io"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"svg", []string{"svg"}},
		{"svg,png", []string{"svg", "png"}},
		{" svg , dot ,", []string{"svg", "dot"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		output   string
		ext      string
		multiple bool
		want     string
	}{
		{"derived", "data/graph.json", "", "svg", false, "graph.svg"},
		{"derived multiple", "edges.txt", "", "png", true, "edges.png"},
		{"explicit single", "graph.json", "out/picture.svg", "svg", false, "out/picture.svg"},
		{"explicit base", "graph.json", "out/picture.svg", "png", true, "out/picture.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.input, tt.output, tt.ext, tt.multiple); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"rewire", "generate", "stats", "render", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestComputeStats(t *testing.T) {
	g, err := graph.FromEdges([]graph.Edge{{U: "a", V: "b"}, {U: "a", V: "c"}, {U: "a", V: "d"}})
	if err != nil {
		t.Fatal(err)
	}
	s := computeStats(g)
	if s.Nodes != 4 || s.Edges != 3 {
		t.Errorf("size = %d/%d, want 4/3", s.Nodes, s.Edges)
	}
	if s.MinDegree != 1 || s.MaxDegree != 3 || s.MeanDegree != 1.5 {
		t.Errorf("degrees = %d/%d/%v, want 1/3/1.5", s.MinDegree, s.MaxDegree, s.MeanDegree)
	}
	if s.Assortativity == nil || *s.Assortativity != -1 {
		t.Errorf("assortativity = %v, want -1", s.Assortativity)
	}

	empty := computeStats(graph.New())
	if empty.Assortativity != nil {
		t.Error("empty graph assortativity should be undefined")
	}
	if formatR(empty.Assortativity) != "undefined" {
		t.Errorf("formatR(nil) = %q", formatR(empty.Assortativity))
	}
}

// writeFixture writes a random graph and a cache-less config into a temp dir.
func writeFixture(t *testing.T, config string) (graphPath, configPath string) {
	t.Helper()
	dir := t.TempDir()

	g, err := graph.RandomGNP(40, 0.15, rand.New(rand.NewPCG(3, 3)))
	if err != nil {
		t.Fatal(err)
	}
	graphPath = filepath.Join(dir, "graph.json")
	if err := io.ExportJSON(g, graphPath); err != nil {
		t.Fatal(err)
	}

	configPath = filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte("[cache]\nbackend = \"none\"\n"+config), 0o644); err != nil {
		t.Fatal(err)
	}
	return graphPath, configPath
}

func TestRewireCommand(t *testing.T) {
	input, cfg := writeFixture(t, "")
	dir := filepath.Dir(input)
	output := filepath.Join(dir, "rewired.json")
	logPath := filepath.Join(dir, "trace.csv")

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{
		"rewire", input,
		"--config", cfg,
		"--target", "0.1",
		"--time-limit", "10s",
		"-o", output,
		"--log", logPath,
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("rewire: %v", err)
	}

	before, err := io.ImportJSON(input)
	if err != nil {
		t.Fatal(err)
	}
	after, err := io.ImportJSON(output)
	if err != nil {
		t.Fatalf("rewired graph not written: %v", err)
	}
	if !graph.SameDegreeSequence(graph.DegreeSequence(before), graph.DegreeSequence(after)) {
		t.Error("rewired graph changed the degree sequence")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log not written: %v", err)
	}
}

func TestRewireCommandTarget(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr apperr.Code
	}{
		{"missing", "", nil, apperr.ErrCodeInvalidTarget},
		{"from config", "[rewire]\ntarget = -0.2\nverbosity = \"summary\"\n", nil, ""},
		{"out of range", "", []string{"--target", "1.5"}, apperr.ErrCodeInvalidTarget},
		{"bad method", "", []string{"--target", "0", "--method", "sideways"}, apperr.ErrCodeInvalidMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, cfg := writeFixture(t, tt.config)
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs(append([]string{"rewire", input, "--config", cfg, "--max-iterations", "50"}, tt.args...))

			err := root.Execute()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !apperr.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want code %s", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	output := filepath.Join(t.TempDir(), "gnp.txt")
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"generate", "-n", "25", "-p", "0.2", "--seed", "9", "-o", output})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	g, err := io.ImportEdgeList(output)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := graph.RandomGNP(25, 0.2, rand.New(rand.NewPCG(9, 9)))
	if g.EdgeCount() != want.EdgeCount() {
		t.Errorf("edges = %d, want %d", g.EdgeCount(), want.EdgeCount())
	}
}

func TestGenerateCommandInvalidProbability(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"generate", "-p", "1.5", "-o", filepath.Join(t.TempDir(), "g.json")})
	if err := root.Execute(); !apperr.Is(err, apperr.ErrCodeInvalidProbability) {
		t.Errorf("error = %v, want INVALID_PROBABILITY", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !bytes.Contains(out.Bytes(), []byte(appName)) {
				t.Errorf("completion %s output does not mention %s", shell, appName)
			}
		})
	}
}
