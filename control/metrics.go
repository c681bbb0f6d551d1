// File: control/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime metrics registry. Thread-safe map of named int64 counters with
// dynamic registration; a process-wide Default registry collects the
// primitives' own counters.

package control

import (
	"sync"
	"time"
)

// Counter names incremented by the primitives themselves.
const (
	MetricThreadsSpawned   = "thread.spawned"
	MetricThreadsActive    = "thread.active"
	MetricWakeupSignals    = "thread.wakeup_signals"
	MetricWritesIncomplete = "fdio.write.incomplete"
	MetricLockTimeouts     = "concurrency.lock_timeouts"
	MetricCondTimeouts     = "concurrency.cond_timeouts"
)

// Registry holds mutable named counters.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]int64
	updated  time.Time
}

// Default is the process-wide registry the primitives report into.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]int64),
	}
}

// Inc increments a counter by one, registering it on first use.
func (r *Registry) Inc(key string) {
	r.Add(key, 1)
}

// Add adds delta (possibly negative) to a counter.
func (r *Registry) Add(key string, delta int64) {
	r.mu.Lock()
	r.counters[key] += delta
	r.updated = time.Now()
	r.mu.Unlock()
}

// Set overwrites a counter value.
func (r *Registry) Set(key string, value int64) {
	r.mu.Lock()
	r.counters[key] = value
	r.updated = time.Now()
	r.mu.Unlock()
}

// Get returns the current value of a counter (zero if never touched).
func (r *Registry) Get(key string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[key]
}

// GetSnapshot returns a copy of all counters.
func (r *Registry) GetSnapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64, len(r.counters))
	for k, v := range r.counters {
		out[k] = v
	}
	return out
}

// Updated reports when any counter last changed.
func (r *Registry) Updated() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updated
}
