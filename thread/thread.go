// File: thread/thread.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread launcher. Spawn packages entry/argument/name into a one-shot task
// and runs it through a fixed trampoline on a dedicated OS thread.

package thread

import (
	"runtime"

	"github.com/momentics/hioload-runtime/api"
	"github.com/momentics/hioload-runtime/control"
)

// NamePrefix is prepended to every spawned thread's OS-visible name.
const NamePrefix = "hio:"

// maxNameLen is the longest OS-visible thread name, prefix included
// (the Linux comm limit).
const maxNameLen = 15

// task is the one-shot record owned by the launcher between submission and
// thread start; it is released when the entry function returns.
type task struct {
	entry func(arg any)
	arg   any
	name  string
}

// Thread is the handle returned by Spawn.
type Thread struct {
	name string
	done chan struct{}
}

// Name returns the composed OS-visible thread name.
func (t *Thread) Name() string {
	return t.name
}

// Join blocks until the entry function has returned.
func (t *Thread) Join() {
	<-t.done
}

// Done exposes the completion channel for select loops.
func (t *Thread) Done() <-chan struct{} {
	return t.done
}

// composeName prefixes and truncates a worker name to the platform limit.
func composeName(name string) string {
	s := NamePrefix + name
	if len(s) > maxNameLen {
		s = s[:maxNameLen]
	}
	return s
}

// Spawn runs entry(arg) on a dedicated OS thread named NamePrefix+name
// (truncated to the platform limit). The trampoline locks the goroutine to
// its thread, installs the process shutdown-signal policy (first spawn
// only), sets the thread name, and releases the task when entry returns.
// The thread is discarded on return, so the installed name never leaks back
// into the scheduler pool. Cancellation of the worker is the caller's
// responsibility via shared state or ShutdownChan.
func Spawn(entry func(arg any), arg any, name string) (*Thread, error) {
	if entry == nil {
		return nil, api.ErrInvalidArgument
	}
	installSignalPolicy()
	ts := &task{entry: entry, arg: arg, name: composeName(name)}
	th := &Thread{name: ts.name, done: make(chan struct{})}
	go trampoline(ts, th)
	return th, nil
}

// trampoline is the fixed entry of every spawned thread.
func trampoline(ts *task, th *Thread) {
	// No matching Unlock: the locked thread terminates with the goroutine.
	runtime.LockOSThread()
	setThreadName(ts.name)
	control.Default.Inc(control.MetricThreadsSpawned)
	control.Default.Add(control.MetricThreadsActive, 1)
	defer func() {
		control.Default.Add(control.MetricThreadsActive, -1)
		close(th.done)
	}()
	ts.entry(ts.arg)
}
