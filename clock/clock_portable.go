//go:build !linux
// +build !linux

// File: clock/clock_portable.go
// Author: momentics <momentics@gmail.com>
//
// Fallback monotonic reading for platforms without a direct
// clock_gettime path. time.Since carries the Go runtime's monotonic
// component, so the non-decreasing guarantee holds.

package clock

import "time"

var monoStart = time.Now()

func monoNow() int64 {
	return time.Since(monoStart).Microseconds()
}
