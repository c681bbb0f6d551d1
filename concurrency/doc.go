// File: concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package concurrency provides monotonic-clock synchronization primitives:
// timed mutex acquisition by bounded polling, and a condition variable whose
// timed waits are measured against the monotonic clock rather than wall
// time. Timeouts are expected outcomes reported as api.ErrTimeout, never
// panics or wall-clock artifacts.
package concurrency
