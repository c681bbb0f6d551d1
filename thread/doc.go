// File: thread/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package thread launches named workers on dedicated OS threads. Every
// spawned worker gets a human-readable, prefixed thread name visible to OS
// tooling and a consistent process-wide shutdown-signal policy: the primary
// shutdown signal triggers the registered exit path, the secondary signal
// only wakes blocking syscalls (its deliveries are counted, not acted on).
// Cancellation is cooperative via ShutdownChan; signals merely unblock
// syscalls that are about to check it anyway.
package thread
