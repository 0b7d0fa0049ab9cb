package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Rewire hooks
	r := NoopRewireHooks{}
	r.OnRewireStart(ctx, "reconstruct-tune", -0.4, 250)
	r.OnPhaseComplete(ctx, "tune", 42, -0.41, time.Second)
	r.OnRewireComplete(ctx, "reconstruct-tune", -0.41, true, time.Second)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "rewire")
	c.OnCacheMiss(ctx, "rewire")
	c.OnCacheSet(ctx, "rewire", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Rewire().(NoopRewireHooks); !ok {
		t.Error("Rewire() should return NoopRewireHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customRewire := &testRewireHooks{}
	SetRewireHooks(customRewire)
	if Rewire() != customRewire {
		t.Error("SetRewireHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Rewire().(NoopRewireHooks); !ok {
		t.Error("Reset() should restore NoopRewireHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRewireHooks{}
	SetRewireHooks(custom)

	// Setting nil should be ignored
	SetRewireHooks(nil)

	if Rewire() != custom {
		t.Error("SetRewireHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testRewireHooks struct{ NoopRewireHooks }
type testCacheHooks struct{ NoopCacheHooks }
