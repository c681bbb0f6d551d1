//go:build !linux
// +build !linux

// File: clock/sleep_portable.go
// Author: momentics <momentics@gmail.com>
//
// Fallback sleep for platforms without clock_nanosleep. Go timer sleeps are
// not interrupted by signal delivery, so the remaining time is always zero.

package clock

import "time"

func sleepRel(us int64) (int64, error) {
	time.Sleep(time.Duration(us) * time.Microsecond)
	return 0, nil
}

func sleepAbs(abs int64) (int64, error) {
	rel := abs - Mono()
	if rel > 0 {
		time.Sleep(time.Duration(rel) * time.Microsecond)
	}
	return 0, nil
}
