package cache

// ScopedKeyer wraps a Keyer with a prefix so that several callers can share
// one backend without seeing each other's entries.
//
// Example usage:
//
//	// Keys for experiments that must not reuse production results
//	expKeyer := NewScopedKeyer(NewDefaultKeyer(), "exp:degree-study:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RewireKey generates a prefixed key for a rewiring result.
func (k *ScopedKeyer) RewireKey(graphHash string, opts RewireKeyOpts) string {
	return k.prefix + k.inner.RewireKey(graphHash, opts)
}

// RenderKey generates a prefixed key for a rendered image.
func (k *ScopedKeyer) RenderKey(graphHash, format string) string {
	return k.prefix + k.inner.RenderKey(graphHash, format)
}
