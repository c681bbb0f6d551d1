// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sentinel errors shared by the primitives. Timeouts and incomplete writes
// are expected outcomes that callers branch on with errors.Is, never panics.

package api

import "errors"

var (
	// ErrTimeout indicates a timed lock or timed wait expired before the
	// resource became available or the condition was signaled.
	ErrTimeout = errors.New("operation timed out")

	// ErrWriteIncomplete indicates a deadline-bounded write gave up with
	// bytes still outstanding.
	ErrWriteIncomplete = errors.New("write incomplete")

	// ErrCanceled indicates an explicit cancellation channel fired while a
	// blocking primitive was retrying.
	ErrCanceled = errors.New("operation canceled")

	// ErrInvalidArgument indicates a malformed request (nil entry function,
	// unknown stream mode, and similar).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported indicates the operation has no implementation on this
	// platform.
	ErrNotSupported = errors.New("operation not supported on this platform")
)
