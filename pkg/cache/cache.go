package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
//
// Implementations must be safe for concurrent use. Get reports a miss with
// (nil, false, nil); an error means the backend itself failed.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default time-to-live values for cached entries.
const (
	// TTLRewire is how long a completed rewiring run stays cached.
	TTLRewire = 7 * 24 * time.Hour

	// TTLRender is how long a rendered graph image stays cached.
	TTLRender = 7 * 24 * time.Hour
)

// Keyer derives cache keys from the inputs that determine an entry.
// Two calls with equal inputs always produce the same key.
type Keyer interface {
	// RewireKey identifies a rewiring run of the graph with the given content
	// hash under the given options.
	RewireKey(graphHash string, opts RewireKeyOpts) string

	// RenderKey identifies a rendering of the graph with the given content
	// hash in the given format.
	RenderKey(graphHash, format string) string
}

// RewireKeyOpts holds every option that changes the outcome of a run.
// The run name is absent; callers relabel cached results instead.
type RewireKeyOpts struct {
	Target           float64       `json:"target"`
	SampleSize       int           `json:"sample_size"`
	Method           string        `json:"method"`
	TimeLimit        time.Duration `json:"time_limit"`
	RepairTimeLimit  time.Duration `json:"repair_time_limit"`
	MaxIterations    int           `json:"max_iterations"`
	MaxDonorAttempts int           `json:"max_donor_attempts"`
	Seed             uint64        `json:"seed"`
	Verbosity        string        `json:"verbosity"`
}

// DefaultKeyer produces unprefixed keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RewireKey generates a key for a rewiring result.
func (DefaultKeyer) RewireKey(graphHash string, opts RewireKeyOpts) string {
	return hashKey("rewire", graphHash, opts)
}

// RenderKey generates a key for a rendered image.
func (DefaultKeyer) RenderKey(graphHash, format string) string {
	return hashKey("render", graphHash, format)
}
