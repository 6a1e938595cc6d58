// Package quick provides comparison-based quicksort for slices of ordered elements.
//
// Two entry points cover the common cases:
//
//   - Sorted: out-of-place three-way quicksort. Returns a new slice and never
//     mutates its input. Simple and allocation-heavy; best for small inputs or
//     when the original order must be preserved.
//   - Sort: in-place hybrid quicksort (introsort). Three-way partitioning
//     around the middle element, insertion sort below a size threshold, and a
//     heapsort fallback when recursion degenerates, giving an O(n log n)
//     worst-case bound.
//
// # Duplicates
//
// Both variants use three-way partitioning, so inputs with many equal elements
// (all-equal, few-unique) do not trigger quadratic behavior: equal runs are
// placed once and never recursed into.
//
// # Example Usage
//
//	data := []int{64, 34, 25, 12, 22, 11, 90}
//	out := quick.Sorted(data)   // data unchanged
//	quick.Sort(data)            // data now sorted in place
package quick
