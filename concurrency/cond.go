// File: concurrency/cond.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cond is a condition variable whose timed waits are measured on the
// monotonic clock. Waiters queue FIFO; each waiter resolves exactly once
// (signaled or timed out) through an atomic state transition, so a signal
// racing a timeout is never lost: the losing side hands the wakeup to the
// next queued waiter.

package concurrency

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-runtime/api"
	"github.com/momentics/hioload-runtime/clock"
	"github.com/momentics/hioload-runtime/control"
)

const (
	waiterWaiting int32 = iota
	waiterSignaled
	waiterTimedOut
)

type waiter struct {
	state atomic.Int32
	ch    chan struct{}
}

// Cond coordinates threads on an externally owned mutex. Callers must hold
// that mutex when calling Wait or TimedWait; it is released while blocked
// and re-acquired before return, on every path. A Cond must not be reused
// or discarded while any thread is waiting on it.
type Cond struct {
	clk api.Clock

	mu sync.Mutex // guards waiters
	q  *queue.Queue
}

// NewCond creates a condition variable measuring timed waits against clk;
// nil selects the package clock (clock.Mono). The monotonic capability of
// the package clock is verified fatally at clock init, so a constructed
// Cond always honors its timing guarantee.
func NewCond(clk api.Clock) *Cond {
	if clk == nil {
		clk = clock.Mono
	}
	return &Cond{
		clk: clk,
		q:   queue.New(),
	}
}

// push enqueues a fresh waiter. Expired waiters parked at the front are
// reclaimed opportunistically; the wake path skips any others.
func (c *Cond) push() *waiter {
	w := &waiter{ch: make(chan struct{})}
	c.mu.Lock()
	for c.q.Length() > 0 {
		front := c.q.Peek().(*waiter)
		if front.state.Load() == waiterWaiting {
			break
		}
		c.q.Remove()
	}
	c.q.Add(w)
	c.mu.Unlock()
	return w
}

// Wait blocks until signaled. l must be held on entry; it is unlocked while
// waiting and re-locked before return.
func (c *Cond) Wait(l sync.Locker) {
	w := c.push()
	l.Unlock()
	<-w.ch
	l.Lock()
}

// TimedWait blocks until signaled or until the monotonic clock reaches the
// absolute deadline (microseconds, same epoch as the Cond's clock). Returns
// nil when signaled, api.ErrTimeout on expiry — never before the deadline.
// l must be held on entry and is re-acquired on every return path.
func (c *Cond) TimedWait(l sync.Locker, deadline int64) error {
	w := c.push()
	l.Unlock()
	defer l.Lock()
	for {
		rel := deadline - c.clk()
		if rel <= 0 {
			if w.state.CompareAndSwap(waiterWaiting, waiterTimedOut) {
				control.Default.Inc(control.MetricCondTimeouts)
				return api.ErrTimeout
			}
			// Signal won the race; consume it.
			<-w.ch
			return nil
		}
		t := time.NewTimer(time.Duration(rel) * time.Microsecond)
		select {
		case <-w.ch:
			t.Stop()
			return nil
		case <-t.C:
			// Re-check against the injected clock before claiming timeout.
		}
	}
}

// Signal wakes the longest-waiting thread, if any.
func (c *Cond) Signal() {
	c.wake(false)
}

// Broadcast wakes every waiting thread.
func (c *Cond) Broadcast() {
	c.wake(true)
}

func (c *Cond) wake(all bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.q.Length() > 0 {
		w := c.q.Remove().(*waiter)
		if w.state.CompareAndSwap(waiterWaiting, waiterSignaled) {
			close(w.ch)
			if !all {
				return
			}
		}
		// Already timed out: skip and deliver to the next waiter.
	}
}
