package core

import "sync/atomic"

// LifecycleToken tracks whether a component is still part of a live tree.
//
// Host callbacks that complete on other threads capture the token and check
// it before touching component state. The token is safe for concurrent use.
type LifecycleToken struct {
	cancelled atomic.Bool
}

// NewLifecycleToken returns a live token.
func NewLifecycleToken() *LifecycleToken {
	return &LifecycleToken{}
}

// Cancel marks the token dead. Cancelling twice is harmless.
func (t *LifecycleToken) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
}

// Alive reports whether the token has not been cancelled. A nil token is dead.
func (t *LifecycleToken) Alive() bool {
	return t != nil && !t.cancelled.Load()
}

// Run calls fn only while the token is alive and reports whether it ran.
func (t *LifecycleToken) Run(fn func()) bool {
	if !t.Alive() {
		return false
	}
	fn()
	return true
}
