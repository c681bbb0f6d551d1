// File: api/types.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared handle and clock types used across the primitives layer.

package api

// Descriptor is an opaque integer handle to an OS resource (file, socket,
// pipe end). Every Descriptor produced by the fdio factory has its
// close-on-exec flag set before it is handed to the caller. The caller owns
// the descriptor from creation until it closes it.
type Descriptor int

// NoDescriptor marks an invalid or already-released descriptor slot.
const NoDescriptor Descriptor = -1

// Pipe holds the two ends of a pipe created atomically together. Both ends
// share the close-on-exec guarantee; optional status flags requested at
// creation are applied to both ends identically.
type Pipe struct {
	RD Descriptor
	WR Descriptor
}

// Clock reads a monotonic clock and returns microsecond ticks. The epoch is
// unspecified; the only contract is that readings never decrease and are
// immune to wall-clock adjustments. Components take a Clock so tests and
// embedders can substitute their own source.
type Clock func() int64
