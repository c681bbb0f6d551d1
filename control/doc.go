// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package control exposes runtime metrics for the primitives layer:
// spawned/active thread counts, lock and condition timeouts, incomplete
// deadline writes, and wakeup-signal deliveries. Counters register
// dynamically; readers take consistent snapshots.
package control
