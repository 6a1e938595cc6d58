// Package sortgo provides generic sorting and searching for slices of
// ordered elements.
//
// The root package is a thin facade over the algorithm packages:
//
//   - quick: sequential quicksort (out-of-place three-way, in-place hybrid)
//   - bsearch: binary search over sorted slices
//   - psort: parallel quicksort for large slices
//
// Supporting packages build a reproducible benchmark pipeline on top:
// dataset generates and encodes benchmark inputs, datastore persists them
// (memory, local disk, S3, MinIO), and benchrun times registered algorithms
// against them.
//
// # Quick Start
//
//	data := []int{64, 34, 25, 12, 22, 11, 90}
//
//	sorted := sortgo.Sorted(data) // new slice, input untouched
//	sortgo.Sort(data)             // in place
//
//	if i, ok := sortgo.Search(sorted, 25); ok {
//	    fmt.Println("found at", i)
//	}
//
// Search requires its input sorted in non-decreasing order; that
// precondition is not checked.
//
// # Tuning
//
// Sort accepts functional options:
//
//	sortgo.Sort(data, func(o *sortgo.SortOptions) {
//	    o.InsertionThreshold = 5
//	})
package sortgo
