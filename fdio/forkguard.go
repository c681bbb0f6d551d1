// File: fdio/forkguard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ForkGuard serializes descriptor creation against process forking. It is
// an explicit, reference-counted resource injected into every Factory
// rather than an implicit process-wide variable; fork-side callers take the
// same lock around fork(), closing the window in which a child could copy a
// descriptor before its close-on-exec bit is applied.

package fdio

import (
	"sync"
	"sync/atomic"
)

// ForkGuard is the mutual-exclusion resource covering the interval between
// OS resource creation and flag-setting. One instance is shared process-wide
// in the common case (DefaultGuard), but embedders may construct and inject
// their own.
type ForkGuard struct {
	mu   sync.Mutex
	refs atomic.Int64
}

// NewForkGuard creates a guard with a zero reference count.
func NewForkGuard() *ForkGuard {
	return &ForkGuard{}
}

// Retain records another user of the guard.
func (g *ForkGuard) Retain() {
	g.refs.Add(1)
}

// Release drops a user reference. The guard itself is never destroyed; the
// count exists so embedders can assert quiescence before forking.
func (g *ForkGuard) Release() {
	if g.refs.Add(-1) < 0 {
		g.refs.Store(0)
	}
}

// Refs returns the current reference count.
func (g *ForkGuard) Refs() int64 {
	return g.refs.Load()
}

// Lock acquires the guard exclusively. Held across create-then-set-cloexec
// by the factory and across fork() by fork-side callers.
func (g *ForkGuard) Lock() {
	g.mu.Lock()
}

// Unlock releases the guard.
func (g *ForkGuard) Unlock() {
	g.mu.Unlock()
}

var (
	defaultGuardOnce sync.Once
	defaultGuard     *ForkGuard
)

// DefaultGuard returns the process-wide guard, initialized on first use and
// never destroyed.
func DefaultGuard() *ForkGuard {
	defaultGuardOnce.Do(func() {
		defaultGuard = NewForkGuard()
	})
	return defaultGuard
}
