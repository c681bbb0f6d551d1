// File: concurrency/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Timed mutex acquisition. Go exposes no kernel-assisted timed lock, so the
// acquisition polls TryLock against a monotonic deadline; the polling
// interval bounds the worst-case overshoot and is configurable.

package concurrency

import (
	"github.com/momentics/hioload-runtime/api"
	"github.com/momentics/hioload-runtime/clock"
	"github.com/momentics/hioload-runtime/control"
)

// DefaultPollInterval is the pause between TryLock attempts, in
// microseconds. It bounds how far past the requested timeout LockTimeout can
// return.
const DefaultPollInterval int64 = 10_000

// TryLocker is the mutex surface LockTimeout needs. *sync.Mutex satisfies
// it. The mutex is externally owned; this package never manages its
// lifetime.
type TryLocker interface {
	TryLock() bool
	Unlock()
}

type lockConfig struct {
	interval int64
	clk      api.Clock
	cancel   <-chan struct{}
}

// LockOption adjusts LockTimeout behavior.
type LockOption func(*lockConfig)

// WithPollInterval overrides the TryLock polling interval (microseconds).
func WithPollInterval(us int64) LockOption {
	return func(c *lockConfig) { c.interval = us }
}

// WithLockClock substitutes the monotonic clock source.
func WithLockClock(clk api.Clock) LockOption {
	return func(c *lockConfig) { c.clk = clk }
}

// WithLockCancel attaches a cancellation channel checked between polls.
func WithLockCancel(cancel <-chan struct{}) LockOption {
	return func(c *lockConfig) { c.cancel = cancel }
}

// LockTimeout attempts to acquire mu within usec microseconds measured on
// the monotonic clock. Returns nil once acquired, api.ErrTimeout after the
// deadline (no later than timeout plus one polling interval), or
// api.ErrCanceled when the cancellation channel fires first.
func LockTimeout(mu TryLocker, usec int64, opts ...LockOption) error {
	cfg := lockConfig{
		interval: DefaultPollInterval,
		clk:      clock.Mono,
	}
	for _, o := range opts {
		o(&cfg)
	}
	deadline := cfg.clk() + usec
	for !mu.TryLock() {
		if cfg.clk() >= deadline {
			control.Default.Inc(control.MetricLockTimeouts)
			return api.ErrTimeout
		}
		if cfg.cancel != nil {
			select {
			case <-cfg.cancel:
				return api.ErrCanceled
			default:
			}
		}
		clock.SafeSleep(cfg.interval)
	}
	return nil
}
