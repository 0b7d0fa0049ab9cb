package rewire

import (
	"math/rand/v2"
	"testing"
	"time"

	apperr "github.com/matzehuels/assortwire/pkg/errors"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Target: 0.2}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.SampleSize != DefaultSampleSize {
		t.Errorf("SampleSize = %d, want %d", opts.SampleSize, DefaultSampleSize)
	}
	if opts.Method != DefaultMethod {
		t.Errorf("Method = %s, want %s", opts.Method, DefaultMethod)
	}
	if opts.Verbosity != DefaultVerbosity {
		t.Errorf("Verbosity = %s, want %s", opts.Verbosity, DefaultVerbosity)
	}
	if opts.RepairTimeLimit != DefaultRepairTimeLimit {
		t.Errorf("RepairTimeLimit = %v, want %v", opts.RepairTimeLimit, DefaultRepairTimeLimit)
	}
	if opts.Seed != DefaultSeed || opts.Rand == nil || opts.Logger == nil {
		t.Error("seed, random source and logger should be defaulted")
	}
	if opts.Name == "" {
		t.Error("Name should default to a generated id")
	}
}

func TestOptionsSeed(t *testing.T) {
	tests := []struct {
		name string
		seed uint64
		want uint64
	}{
		{"ZeroSelectsDefault", 0, DefaultSeed},
		{"Default", DefaultSeed, DefaultSeed},
		{"Explicit", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Target: 0.2, Seed: tt.seed}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				t.Fatal(err)
			}
			if opts.Seed != tt.want {
				t.Fatalf("Seed = %d, want %d", opts.Seed, tt.want)
			}
			ref := rand.New(rand.NewPCG(tt.want, tt.want))
			for i := range 5 {
				if got, want := opts.Rand.Uint64(), ref.Uint64(); got != want {
					t.Fatalf("draw %d = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestOptionsIdempotent(t *testing.T) {
	opts := Options{Target: 0.2}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	name, rng := opts.Name, opts.Rand
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Name != name || opts.Rand != rng {
		t.Error("second call should not change defaults")
	}
}

func TestOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperr.Code
	}{
		{"target too high", Options{Target: 1.01}, apperr.ErrCodeInvalidTarget},
		{"target too low", Options{Target: -2}, apperr.ErrCodeInvalidTarget},
		{"negative sample", Options{SampleSize: -3}, apperr.ErrCodeInvalidSampleSize},
		{"unknown method", Options{Method: "fast"}, apperr.ErrCodeInvalidMethod},
		{"unknown verbosity", Options{Verbosity: "debug"}, apperr.ErrCodeInvalidVerbosity},
		{"negative time limit", Options{TimeLimit: -time.Minute}, apperr.ErrCodeInvalidDuration},
		{"negative repair limit", Options{RepairTimeLimit: -time.Second}, apperr.ErrCodeInvalidDuration},
		{"negative iterations", Options{MaxIterations: -1}, apperr.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperr.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"reconstruct-tune", MethodReconstructTune, false},
		{"tune", MethodTune, false},
		{"reconstruct", MethodReconstruct, false},
		{"new", MethodReconstructTune, false},
		{"original", MethodTune, false},
		{"max", MethodReconstruct, false},
		{" TUNE ", MethodTune, false},
		{"", "", true},
		{"min", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMethod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVerbosity(t *testing.T) {
	if v, err := ParseVerbosity("Summary"); err != nil || v != VerbositySummary {
		t.Errorf("ParseVerbosity(Summary) = %q, %v", v, err)
	}
	if _, err := ParseVerbosity("quiet"); err == nil {
		t.Error("ParseVerbosity(quiet) should fail")
	}
}
