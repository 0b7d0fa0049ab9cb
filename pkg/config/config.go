// Package config loads assortwire's optional TOML configuration file.
//
// A configuration file supplies defaults for command-line flags; any flag
// given explicitly wins. Unknown keys are rejected so that typos do not
// silently fall back to defaults.
//
//	[rewire]
//	target = -0.3
//	sample_size = 4
//	method = "reconstruct-tune"
//	time_limit = "2m"
//	seed = 7
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "72h"
//
//	[render]
//	engine = "sfdp"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/assortwire/pkg/errors"
	"github.com/matzehuels/assortwire/pkg/rewire"
)

// FileName is the configuration file looked up in the user config directory.
const FileName = "config.toml"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the decoded configuration file.
type Config struct {
	Rewire Rewire `toml:"rewire"`
	Cache  Cache  `toml:"cache"`
	Render Render `toml:"render"`
}

// Rewire holds defaults for rewiring runs. Zero values mean "not set".
type Rewire struct {
	// Target is a pointer because zero is a meaningful target.
	Target           *float64      `toml:"target"`
	SampleSize       int           `toml:"sample_size"`
	Method           string        `toml:"method"`
	TimeLimit        time.Duration `toml:"time_limit"`
	RepairTimeLimit  time.Duration `toml:"repair_time_limit"`
	MaxIterations    int           `toml:"max_iterations"`
	MaxDonorAttempts int           `toml:"max_donor_attempts"`
	Seed             uint64        `toml:"seed"`
	Verbosity        string        `toml:"verbosity"`
}

// Cache selects and configures the result cache.
type Cache struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	Prefix        string        `toml:"prefix"`
	TTL           time.Duration `toml:"ttl"`
}

// Render holds defaults for graph rendering.
type Render struct {
	Engine     string `toml:"engine"`
	ShowDegree bool   `toml:"show_degree"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Cache: Cache{Backend: BackendFile}}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	if err := apperr.ValidatePath(path); err != nil {
		return nil, err
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperr.New(apperr.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath] if it exists and returns
// [Default] otherwise.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns the config file location following the XDG standard
// (~/.config/assortwire/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "assortwire", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "assortwire", FileName), nil
}

// Validate checks values that can be checked without a graph.
func (c *Config) Validate() error {
	r := c.Rewire
	if r.Target != nil {
		if err := apperr.ValidateTarget(*r.Target); err != nil {
			return err
		}
	}
	if r.SampleSize != 0 {
		if err := apperr.ValidateSampleSize(r.SampleSize); err != nil {
			return err
		}
	}
	if r.Method != "" {
		if _, err := rewire.ParseMethod(r.Method); err != nil {
			return err
		}
	}
	if r.Verbosity != "" {
		if _, err := rewire.ParseVerbosity(r.Verbosity); err != nil {
			return err
		}
	}
	for name, d := range map[string]time.Duration{
		"rewire.time_limit":        r.TimeLimit,
		"rewire.repair_time_limit": r.RepairTimeLimit,
		"cache.ttl":                c.Cache.TTL,
	} {
		if err := apperr.ValidateDuration(name, d); err != nil {
			return err
		}
	}
	if r.MaxIterations < 0 || r.MaxDonorAttempts < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "rewire iteration and attempt caps must not be negative")
	}

	switch c.Cache.Backend {
	case "", BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return apperr.New(apperr.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return apperr.New(apperr.ErrCodeInvalidConfig,
			"invalid cache.backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	return nil
}

// RewireOptions returns rewire options filled from the file. Fields the file
// leaves unset stay zero so that option defaults apply.
func (c *Config) RewireOptions() rewire.Options {
	r := c.Rewire
	opts := rewire.Options{
		SampleSize:       r.SampleSize,
		Method:           rewire.Method(r.Method),
		TimeLimit:        r.TimeLimit,
		RepairTimeLimit:  r.RepairTimeLimit,
		MaxIterations:    r.MaxIterations,
		MaxDonorAttempts: r.MaxDonorAttempts,
		Seed:             r.Seed,
		Verbosity:        rewire.Verbosity(r.Verbosity),
	}
	if r.Target != nil {
		opts.Target = *r.Target
	}
	return opts
}
