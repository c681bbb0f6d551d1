// File: thread/signal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide shutdown-signal policy. Go delivers signals per process, not
// per thread, so the policy installs once (on first Spawn) and covers every
// worker: SIGTERM drives the registered exit path and closes the shutdown
// channel; SIGQUIT is absorbed — it wakes blocking syscalls without
// terminating anything, and each delivery is counted in control metrics so
// callers that care can observe it.

package thread

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/momentics/hioload-runtime/control"
)

var (
	policyOnce   sync.Once
	shutdownOnce sync.Once
	shutdownCh   = make(chan struct{})

	hookMu sync.Mutex
	hooks  []func()
)

// ShutdownChan returns the channel closed when shutdown begins. Blocking
// loops in this layer (deadline write, timed lock, cancellable sleep) accept
// it as their cancellation channel.
func ShutdownChan() <-chan struct{} {
	return shutdownCh
}

// OnShutdown registers fn to run when shutdown is triggered, by signal or by
// an explicit Shutdown call. Hooks run once, in registration order, after
// the shutdown channel closes.
func OnShutdown(fn func()) {
	hookMu.Lock()
	hooks = append(hooks, fn)
	hookMu.Unlock()
}

// Shutdown triggers the process exit path: closes the shutdown channel, then
// runs the registered hooks. Safe to call more than once.
func Shutdown() {
	shutdownOnce.Do(func() {
		close(shutdownCh)
		hookMu.Lock()
		fns := append([]func(){}, hooks...)
		hookMu.Unlock()
		for _, fn := range fns {
			fn()
		}
	})
}

// installSignalPolicy wires the two coordination signals. Idempotent.
func installSignalPolicy() {
	policyOnce.Do(func() {
		term := make(chan os.Signal, 1)
		signal.Notify(term, syscall.SIGTERM)
		go func() {
			<-term
			Shutdown()
		}()

		wake := make(chan os.Signal, 8)
		signal.Notify(wake, syscall.SIGQUIT)
		go func() {
			for range wake {
				control.Default.Inc(control.MetricWakeupSignals)
			}
		}()
	})
}
