//go:build linux
// +build linux

// File: thread/thread_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux thread naming and priority. Both operate on the calling thread and
// assume it is locked (the trampoline guarantees that for spawned workers).

package thread

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// setThreadName sets the OS-visible name of the calling thread via
// prctl(PR_SET_NAME). Failures are ignored: the name is a debugging aid.
func setThreadName(name string) {
	b := make([]byte, len(name)+1)
	copy(b, name)
	_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&b[0])), 0, 0, 0)
}

// Renice adjusts the calling thread's scheduling priority, Linux style
// (-19 .. 20). Must run on a locked thread, typically inside a spawned
// entry.
func Renice(value int) error {
	tid := unix.Gettid()
	if err := unix.Setpriority(unix.PRIO_PROCESS, tid, value); err != nil {
		return fmt.Errorf("thread: setpriority tid %d: %w", tid, err)
	}
	return nil
}
