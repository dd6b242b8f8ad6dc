package cssonce

import "sync"

// KeyedTracker is a per-key once-latch: the first TryConsume for each
// distinct key wins, later calls for that key lose. Keys are typically
// component names, letting visually distinct components share one tracker
// for a scope while each still emits its own style block exactly once.
type KeyedTracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewKeyed creates a KeyedTracker with no keys consumed.
func NewKeyed() *KeyedTracker {
	return &KeyedTracker{
		seen: make(map[string]struct{}),
	}
}

// TryConsume reports whether the caller is the first to ask for key,
// marking it consumed if so.
func (t *KeyedTracker) TryConsume(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[key]; ok {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

// Emitted reports whether key has already been claimed.
func (t *KeyedTracker) Emitted(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.seen[key]
	return ok
}

// KeyedConsumer is the per-key gate queried by StyledKeyed components.
// *KeyedTracker implements it.
type KeyedConsumer interface {
	TryConsume(key string) bool
}
