// File: sortx/sortx.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Context-carrying sort variants. The typed forms capture {cmp, ctx} in a
// closure for the duration of one call; the untyped form routes through a
// small adapter struct implementing sort.Interface.

package sortx

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// CompareFunc orders two untyped elements, consulting ctx. Negative means
// a < b, zero equal, positive a > b.
type CompareFunc func(a, b, ctx any) int

// contextSorter adapts a CompareFunc plus its context to sort.Interface.
// It lives for exactly one sort call.
type contextSorter struct {
	items []any
	cmp   CompareFunc
	ctx   any
}

func (s contextSorter) Len() int           { return len(s.items) }
func (s contextSorter) Less(i, j int) bool { return s.cmp(s.items[i], s.items[j], s.ctx) < 0 }
func (s contextSorter) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

// Sort sorts items in place using cmp with the supplied context. Not
// guaranteed stable (same contract as the platform sort).
func Sort[T any](items []T, cmp func(a, b T, ctx any) int, ctx any) {
	sort.Slice(items, func(i, j int) bool {
		return cmp(items[i], items[j], ctx) < 0
	})
}

// Stable is Sort with the platform's stable ordering guarantee.
func Stable[T any](items []T, cmp func(a, b T, ctx any) int, ctx any) {
	sort.SliceStable(items, func(i, j int) bool {
		return cmp(items[i], items[j], ctx) < 0
	})
}

// SortAny sorts an untyped slice through the adapter struct. This is the
// normalized form of the C-style (base, count, size, cmp, ctx) call.
func SortAny(items []any, cmp CompareFunc, ctx any) {
	sort.Sort(contextSorter{items: items, cmp: cmp, ctx: ctx})
}

// StableAny is SortAny with stable ordering.
func StableAny(items []any, cmp CompareFunc, ctx any) {
	sort.Stable(contextSorter{items: items, cmp: cmp, ctx: ctx})
}

// Ordered sorts naturally comparable elements ascending.
func Ordered[T constraints.Ordered](items []T) {
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
}
