// File: fdio/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package fdio creates file, socket, pipe, and stream descriptors with
// close-on-exec guaranteed before any concurrent fork can observe them, and
// provides a deadline-bounded blocking write. Descriptor creation serializes
// on a shared ForkGuard: the same guard held by fork-side callers, so no
// descriptor ever leaks into a child process without its close-on-exec bit.
package fdio
