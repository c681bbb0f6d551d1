// File: clock/sleep.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interruption-tolerant sleep on the monotonic clock. Relative and absolute
// variants report remaining unslept time on early interruption; SafeSleep
// absorbs interruptions and re-sleeps the remainder; SleepCancel adds an
// explicit cooperative cancellation channel.

package clock

import (
	"time"

	"github.com/momentics/hioload-runtime/api"
)

// Sleep suspends the calling goroutine for us microseconds measured on the
// monotonic clock. When interrupted early it returns the remaining unslept
// microseconds and a nil error; a non-interruption failure returns the
// remaining time with the underlying error. Non-positive durations return
// immediately with no side effects.
func Sleep(us int64) (remaining int64, err error) {
	if us <= 0 {
		return 0, nil
	}
	return sleepRel(us)
}

// SleepUntil suspends until the monotonic clock reaches abs (microseconds,
// same epoch as Mono). Intended for periodic wakeups without cumulative
// drift. Returns like Sleep.
func SleepUntil(abs int64) (remaining int64, err error) {
	if abs <= 0 {
		return 0, nil
	}
	return sleepAbs(abs)
}

// SafeSleep sleeps for us microseconds, re-sleeping the remainder after any
// interruption until the full duration has elapsed or a non-interruption
// failure occurs, at which point it stops early.
func SafeSleep(us int64) {
	for us > 0 {
		rem, err := sleepRel(us)
		if err != nil {
			return
		}
		us = rem
	}
}

// SleepCancel sleeps for us microseconds or until cancel fires, whichever
// comes first. On cancellation it returns the remaining microseconds and
// api.ErrCanceled. A nil cancel channel degrades to SafeSleep.
func SleepCancel(us int64, cancel <-chan struct{}) (remaining int64, err error) {
	if us <= 0 {
		return 0, nil
	}
	if cancel == nil {
		SafeSleep(us)
		return 0, nil
	}
	deadline := Mono() + us
	t := time.NewTimer(time.Duration(us) * time.Microsecond)
	defer t.Stop()
	select {
	case <-t.C:
		return 0, nil
	case <-cancel:
		rem := deadline - Mono()
		if rem < 0 {
			rem = 0
		}
		return rem, api.ErrCanceled
	}
}
