// Package psort provides a parallel in-place quicksort for large slices.
//
// Partitioning follows the same three-way middle-pivot scheme as package
// quick; independent subranges are handed to an errgroup-bounded worker set.
// Subranges below the grain size are sorted sequentially, so small inputs
// pay no goroutine overhead.
//
// Sort takes a context: cancellation is observed between partitioning steps
// and aborts the remaining work. A canceled sort leaves the slice in a
// partially sorted (but multiset-preserving) state.
//
//	err := psort.Sort(ctx, data, func(o *psort.Options) {
//	    o.Parallelism = 8
//	})
package psort
