package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/assortwire/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCLICacheDirFromConfig(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.cfg.Cache.Dir = "/tmp/custom-cache"

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != "/tmp/custom-cache" {
		t.Errorf("cacheDir() = %q, want config dir", dir)
	}
}

func TestNewCacheBackends(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		noCache  bool
		wantFile bool
	}{
		{"file", config.BackendFile, false, true},
		{"default backend", "", false, true},
		{"none", config.BackendNone, false, false},
		{"no-cache flag", config.BackendFile, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(os.Stderr, LogInfo)
			c.cfg.Cache.Backend = tt.backend
			c.cfg.Cache.Dir = t.TempDir()

			store, err := c.newCache(t.Context(), tt.noCache)
			if err != nil {
				t.Fatalf("newCache() error: %v", err)
			}
			defer store.Close()

			_, isFile := store.(interface{ Dir() string })
			if isFile != tt.wantFile {
				t.Errorf("file cache = %v, want %v (got %T)", isFile, tt.wantFile, store)
			}
		})
	}
}
