//go:build linux
// +build linux

// File: clock/sleep_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux sleep primitives via clock_nanosleep on CLOCK_MONOTONIC. EINTR is
// not an error at this level: the kernel reports the remaining time and the
// caller decides whether to resume.

package clock

import (
	"golang.org/x/sys/unix"
)

// sleepRel performs a relative monotonic nanosleep. On interruption the
// remaining time comes from the kernel-updated timespec, rounded to the
// nearest microsecond.
func sleepRel(us int64) (int64, error) {
	req := unix.NsecToTimespec(us * 1_000)
	var rem unix.Timespec
	err := unix.ClockNanosleep(unix.CLOCK_MONOTONIC, 0, &req, &rem)
	if err == nil {
		return 0, nil
	}
	if err == unix.EINTR {
		return (unix.TimespecToNsec(rem) + 500) / 1_000, nil
	}
	return us, err
}

// sleepAbs performs an absolute monotonic nanosleep (TIMER_ABSTIME). The
// kernel does not fill the remain argument for absolute sleeps, so the
// remaining time is recomputed from the clock.
func sleepAbs(abs int64) (int64, error) {
	req := unix.NsecToTimespec(abs * 1_000)
	err := unix.ClockNanosleep(unix.CLOCK_MONOTONIC, unix.TIMER_ABSTIME, &req, nil)
	if err == nil {
		return 0, nil
	}
	rem := abs - Mono()
	if rem < 0 {
		rem = 0
	}
	if err == unix.EINTR {
		return rem, nil
	}
	return rem, err
}
