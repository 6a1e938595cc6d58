package sortgo

import (
	"cmp"

	"github.com/hupe1980/sortgo/bsearch"
	"github.com/hupe1980/sortgo/quick"
)

// SortOptions configures Sort.
type SortOptions struct {
	// InsertionThreshold is the subarray size at or below which the sort
	// switches to insertion sort. Values below 1 select the default.
	InsertionThreshold int
}

// Sort sorts s in place in non-decreasing order.
func Sort[T cmp.Ordered](s []T, optFns ...func(o *SortOptions)) {
	opts := SortOptions{
		InsertionThreshold: quick.DefaultInsertionThreshold,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	quick.SortThreshold(s, opts.InsertionThreshold)
}

// Sorted returns a new slice with the elements of s in non-decreasing
// order. The input is never mutated.
func Sorted[T cmp.Ordered](s []T) []T {
	return quick.Sorted(s)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T cmp.Ordered](s []T) bool {
	return quick.IsSorted(s)
}

// Search locates target in a sorted slice and returns its index and true,
// or (-1, false) if the target is absent. The input must be sorted in
// non-decreasing order; this is not checked.
func Search[T cmp.Ordered](sorted []T, target T) (int, bool) {
	return bsearch.Find(sorted, target)
}

// SearchIndex locates target in a sorted slice and returns its index, or
// -1 if the target is absent.
func SearchIndex[T cmp.Ordered](sorted []T, target T) int {
	return bsearch.Index(sorted, target)
}

// Contains reports whether target occurs in a sorted slice.
func Contains[T cmp.Ordered](sorted []T, target T) bool {
	return bsearch.Contains(sorted, target)
}
