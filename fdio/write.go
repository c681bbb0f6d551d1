// File: fdio/write.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deadline-bounded blocking write. Best-effort bounded send: the caller
// learns complete vs incomplete, nothing acknowledges delivery.

package fdio

import (
	"github.com/momentics/hioload-runtime/api"
	"github.com/momentics/hioload-runtime/clock"
)

// Defaults for WriteFull, in microseconds.
const (
	// DefaultWriteDeadline bounds how long WriteFull keeps retrying a
	// would-block descriptor.
	DefaultWriteDeadline int64 = 25_000_000

	// DefaultWriteRetry is the pause between would-block retries.
	DefaultWriteRetry int64 = 100
)

type writeConfig struct {
	deadline int64
	retry    int64
	clk      api.Clock
	cancel   <-chan struct{}
}

// WriteOption adjusts WriteFull behavior.
type WriteOption func(*writeConfig)

// WithWriteDeadline overrides the retry deadline (microseconds).
func WithWriteDeadline(us int64) WriteOption {
	return func(c *writeConfig) { c.deadline = us }
}

// WithWriteRetry overrides the would-block retry pause (microseconds).
func WithWriteRetry(us int64) WriteOption {
	return func(c *writeConfig) { c.retry = us }
}

// WithWriteClock substitutes the monotonic clock source.
func WithWriteClock(clk api.Clock) WriteOption {
	return func(c *writeConfig) { c.clk = clk }
}

// WithWriteCancel attaches a cancellation channel checked on every retry.
func WithWriteCancel(cancel <-chan struct{}) WriteOption {
	return func(c *writeConfig) { c.cancel = cancel }
}

func newWriteConfig(opts []WriteOption) writeConfig {
	cfg := writeConfig{
		deadline: DefaultWriteDeadline,
		retry:    DefaultWriteRetry,
		clk:      clock.Mono,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WriteFull writes all of p to fd, retrying partial writes immediately and
// would-block conditions every retry interval until the monotonic deadline
// passes. Returns nil when every byte was written; api.ErrWriteIncomplete
// when the deadline expired with bytes outstanding; api.ErrCanceled when the
// cancellation channel fired; any other write failure wrapped, immediately.
// Signal interruption of the write syscall is absorbed and retried.
func WriteFull(fd api.Descriptor, p []byte, opts ...WriteOption) error {
	cfg := newWriteConfig(opts)
	return writeFull(fd, p, &cfg)
}
