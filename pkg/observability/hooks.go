// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks at
// startup to receive events about rewiring runs and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRewireHooks(&myRewireHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Rewire().OnRewireStart(ctx, method, target, edgeCount)
//	// ... rewire ...
//	observability.Rewire().OnRewireComplete(ctx, method, r, preserved, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Rewire Hooks
// =============================================================================

// RewireHooks receives events from the rewiring engine.
type RewireHooks interface {
	// OnRewireStart fires once per run, before any edge is touched.
	OnRewireStart(ctx context.Context, method string, target float64, edgeCount int)

	// OnPhaseComplete fires when a reconstruction or tuning phase ends.
	OnPhaseComplete(ctx context.Context, phase string, iterations int, r float64, duration time.Duration)

	// OnRewireComplete fires once per run with the final coefficient and the
	// degree-preservation verdict.
	OnRewireComplete(ctx context.Context, method string, r float64, preserved bool, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRewireHooks is a no-op implementation of RewireHooks.
type NoopRewireHooks struct{}

func (NoopRewireHooks) OnRewireStart(context.Context, string, float64, int) {}
func (NoopRewireHooks) OnPhaseComplete(context.Context, string, int, float64, time.Duration) {
}
func (NoopRewireHooks) OnRewireComplete(context.Context, string, float64, bool, time.Duration) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	rewireHooks RewireHooks = NoopRewireHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetRewireHooks registers custom rewire hooks.
// This should be called once at application startup before any rewiring.
func SetRewireHooks(h RewireHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		rewireHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Rewire returns the registered rewire hooks.
func Rewire() RewireHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return rewireHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	rewireHooks = NoopRewireHooks{}
	cacheHooks = NoopCacheHooks{}
}
