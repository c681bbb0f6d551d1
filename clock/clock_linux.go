//go:build linux
// +build linux

// File: clock/clock_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux monotonic clock reading via clock_gettime(CLOCK_MONOTONIC).
// The init probe is fatal on failure: no component of this layer can
// operate with wall-clock timeouts.

package clock

import (
	"log"

	"golang.org/x/sys/unix"
)

func init() {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		log.Fatalf("clock: unable to read CLOCK_MONOTONIC: %v", err)
	}
}

// monoNow reads CLOCK_MONOTONIC and converts to microseconds.
func monoNow() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		log.Fatalf("clock: CLOCK_MONOTONIC read failed: %v", err)
	}
	return int64(ts.Sec)*1_000_000 + int64(ts.Nsec)/1_000
}
