// File: sortx/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package sortx sorts in place with a comparator that also receives an
// opaque context value, normalizing the calling convention over the
// platform sort. The context travels in a call-scoped capture (or the
// adapter struct for the untyped form), never in thread-local state, so
// nested and concurrent sorts cannot interfere. Ordering and stability
// semantics are exactly those of the underlying library sort.
package sortx
