// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the shared types and error contracts of the
// hioload-runtime primitives layer: descriptor handles, pipe pairs,
// the injected monotonic clock reader, and the sentinel errors every
// component reports through.
package api
