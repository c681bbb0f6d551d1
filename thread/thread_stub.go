//go:build !linux
// +build !linux

// File: thread/thread_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub naming/priority for platforms without prctl/setpriority. Workers
// still run; they just stay anonymous to OS tooling.

package thread

import "github.com/momentics/hioload-runtime/api"

func setThreadName(_ string) {}

// Renice reports unsupported on this platform.
func Renice(_ int) error {
	return api.ErrNotSupported
}
