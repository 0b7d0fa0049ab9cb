package rewire

import (
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	apperr "github.com/matzehuels/assortwire/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSampleSize is the number of edges swapped per tuning iteration.
	DefaultSampleSize = 2

	// DefaultRepairTimeLimit bounds the reconstruction repair loop, measured
	// from the start of reconstruction.
	DefaultRepairTimeLimit = 10 * time.Minute

	// DefaultSeed is the default random seed for reproducibility. It is also
	// used when Seed is 0.
	DefaultSeed = uint64(42)

	// DefaultMethod is the default rewiring method.
	DefaultMethod = MethodReconstructTune

	// DefaultVerbosity is the default log verbosity.
	DefaultVerbosity = VerbosityFull
)

// =============================================================================
// Method & Verbosity
// =============================================================================

// Method selects how the orchestrator sequences reconstruction and tuning.
type Method string

const (
	// MethodReconstructTune rebuilds the edge set toward the extreme opposite
	// to the needed direction, then tunes back toward the target.
	MethodReconstructTune Method = "reconstruct-tune"
	// MethodTune only runs the edge-swap tuner from the current graph.
	MethodTune Method = "tune"
	// MethodReconstruct only rebuilds the edge set toward the extreme in the
	// needed direction.
	MethodReconstruct Method = "reconstruct"
)

// methodAliases maps the historical method names to their methods.
var methodAliases = map[string]Method{
	"new":      MethodReconstructTune,
	"original": MethodTune,
	"max":      MethodReconstruct,
}

// ValidMethods is the set of supported method names, aliases excluded.
var ValidMethods = map[Method]bool{
	MethodReconstructTune: true,
	MethodTune:            true,
	MethodReconstruct:     true,
}

// ParseMethod resolves a method name or alias. Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if m := Method(name); ValidMethods[m] {
		return m, nil
	}
	if m, ok := methodAliases[name]; ok {
		return m, nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidMethod,
		"invalid method: %q (must be one of: reconstruct-tune, tune, reconstruct)", s)
}

// Verbosity selects which records a run returns.
type Verbosity string

const (
	// VerbosityFull returns every iteration record followed by the summary.
	VerbosityFull Verbosity = "full"
	// VerbositySummary returns only the summary record.
	VerbositySummary Verbosity = "summary"
)

// ParseVerbosity resolves a verbosity name.
func ParseVerbosity(s string) (Verbosity, error) {
	switch v := Verbosity(strings.ToLower(strings.TrimSpace(s))); v {
	case VerbosityFull, VerbositySummary:
		return v, nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidVerbosity,
		"invalid verbosity: %q (must be one of: full, summary)", s)
}

// =============================================================================
// Options
// =============================================================================

// Options configures a rewiring run.
// This struct supports JSON serialization so runs can be described in files.
type Options struct {
	// Name labels every record of the run. Defaults to a random UUID.
	Name string `json:"name,omitempty"`

	// Target is the desired assortativity, in [-1, 1].
	Target float64 `json:"target"`

	// SampleSize is the number of edges swapped per tuning iteration.
	SampleSize int `json:"sample_size,omitempty"`

	// Method selects the phase sequence.
	Method Method `json:"method,omitempty"`

	// TimeLimit bounds the tuning phase. Zero means no limit.
	TimeLimit time.Duration `json:"time_limit,omitempty"`

	// RepairTimeLimit bounds the reconstruction repair loop.
	RepairTimeLimit time.Duration `json:"repair_time_limit,omitempty"`

	// MaxIterations caps tuning iterations. Zero means no cap.
	MaxIterations int `json:"max_iterations,omitempty"`

	// MaxDonorAttempts caps random edge draws per repair pass. Zero means one
	// attempt per edge present when the pass starts.
	MaxDonorAttempts int `json:"max_donor_attempts,omitempty"`

	// Seed seeds the shared random source when Rand is nil. Zero means unset
	// and is replaced by DefaultSeed, so seed 0 itself cannot be selected;
	// pass Rand to use an arbitrary source.
	Seed uint64 `json:"seed,omitempty"`

	// Verbosity selects full trace or summary-only output.
	Verbosity Verbosity `json:"verbosity,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	Rand   *rand.Rand  `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := apperr.ValidateTarget(o.Target); err != nil {
		return err
	}

	if o.SampleSize == 0 {
		o.SampleSize = DefaultSampleSize
	}
	if err := apperr.ValidateSampleSize(o.SampleSize); err != nil {
		return err
	}

	if o.Method == "" {
		o.Method = DefaultMethod
	}
	m, err := ParseMethod(string(o.Method))
	if err != nil {
		return err
	}
	o.Method = m

	if o.Verbosity == "" {
		o.Verbosity = DefaultVerbosity
	}
	v, err := ParseVerbosity(string(o.Verbosity))
	if err != nil {
		return err
	}
	o.Verbosity = v

	if err := apperr.ValidateDuration("time limit", o.TimeLimit); err != nil {
		return err
	}
	if err := apperr.ValidateDuration("repair time limit", o.RepairTimeLimit); err != nil {
		return err
	}
	if o.RepairTimeLimit == 0 {
		o.RepairTimeLimit = DefaultRepairTimeLimit
	}
	if o.MaxIterations < 0 || o.MaxDonorAttempts < 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "iteration and attempt caps must not be negative")
	}

	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(o.Seed, o.Seed))
	}
	if o.Name == "" {
		o.Name = uuid.NewString()
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	o.validated = true
	return nil
}

// runInfo returns the fields stamped on every record of the run.
func (o *Options) runInfo() runInfo {
	return runInfo{
		Name:       o.Name,
		Method:     string(o.Method),
		Target:     o.Target,
		SampleSize: o.SampleSize,
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
