// File: clock/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package clock provides the monotonic clock reader (microsecond ticks) and
// the interruption-tolerant sleep utility built on it. All timeout
// measurements in hioload-runtime go through this package; wall-clock time
// is never consulted. A platform that cannot produce a monotonic reading
// aborts at startup, because silently falling back to wall time would
// corrupt every timeout guarantee layered on top.
package clock
