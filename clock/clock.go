// File: clock/clock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral monotonic clock surface. The platform-specific reading
// lives in clock_linux.go / clock_portable.go.

package clock

// Mono returns the current monotonic clock reading in microseconds. The
// epoch is arbitrary; readings are non-decreasing and immune to wall-clock
// adjustments. Mono satisfies api.Clock.
func Mono() int64 {
	return monoNow()
}
