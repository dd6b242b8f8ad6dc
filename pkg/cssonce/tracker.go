package cssonce

import "sync/atomic"

// Tracker is a one-way latch that gates repeated style emission within a
// single rendering scope. It starts pending; the first TryConsume call
// flips it to emitted and wins, every later call loses. The transition
// never reverses for the lifetime of the tracker.
//
// Construct one tracker per scope (page, request, session) and share it
// across every render of the component whose style it gates. Sharing a
// tracker across unrelated scopes suppresses styles the second scope
// still needs; creating a fresh tracker per render emits them every time.
// Neither misuse is detectable from inside the tracker.
type Tracker struct {
	emitted atomic.Bool
}

// New creates a pending tracker.
func New() *Tracker {
	return &Tracker{}
}

// TryConsume reports whether the caller is the first to ask, flipping the
// tracker to emitted if so. The check-and-flip is a single compare-and-swap,
// so at most one caller wins even when a tracker is shared across
// goroutines without external locking.
func (t *Tracker) TryConsume() bool {
	return t.emitted.CompareAndSwap(false, true)
}

// Emitted reports whether the style block has already been claimed.
// It does not change state.
func (t *Tracker) Emitted() bool {
	return t.emitted.Load()
}

// Consumer is the gate queried by Styled components. *Tracker implements
// it; wrappers (e.g. package metrics) may decorate it.
type Consumer interface {
	TryConsume() bool
}
