package quick

import "cmp"

// DefaultInsertionThreshold is the subarray size at or below which Sort
// switches to insertion sort.
const DefaultInsertionThreshold = 16

// Sort sorts s in place in non-decreasing order using the default insertion
// threshold.
func Sort[T cmp.Ordered](s []T) {
	SortThreshold(s, DefaultInsertionThreshold)
}

// SortThreshold sorts s in place, switching to insertion sort for subarrays
// of length threshold or less. A threshold below 1 falls back to
// DefaultInsertionThreshold.
//
// The sort is a hybrid quicksort: three-way partitioning around the middle
// element, with a heapsort fallback once recursion depth exceeds
// 2*floor(log2(n)). This bounds the worst case at O(n log n) regardless of
// input pattern.
func SortThreshold[T cmp.Ordered](s []T, threshold int) {
	n := len(s)
	if n <= 1 {
		return
	}

	if threshold < 1 {
		threshold = DefaultInsertionThreshold
	}

	// Max recursion depth: 2 * floor(log2(n))
	depth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		depth++
	}
	depth *= 2

	sortImpl(s, threshold, depth)
}

func sortImpl[T cmp.Ordered](s []T, threshold, depth int) {
	for len(s) > threshold {
		if depth == 0 {
			heapSort(s)
			return
		}
		depth--

		lt, gt := partition(s)

		// Recurse into the smaller side, iterate on the larger one to keep
		// stack depth logarithmic.
		if lt < len(s)-gt {
			sortImpl(s[:lt], threshold, depth)
			s = s[gt:]
		} else {
			sortImpl(s[gt:], threshold, depth)
			s = s[:lt]
		}
	}

	insertionSort(s)
}

// partition reorders s around the middle element and returns (lt, gt) such
// that s[:lt] < pivot, s[lt:gt] == pivot and s[gt:] > pivot.
func partition[T cmp.Ordered](s []T) (lt, gt int) {
	pivot := s[len(s)/2]

	lo, mid, hi := 0, 0, len(s)
	for mid < hi {
		switch {
		case s[mid] < pivot:
			s[lo], s[mid] = s[mid], s[lo]
			lo++
			mid++
		case s[mid] > pivot:
			hi--
			s[mid], s[hi] = s[hi], s[mid]
		default:
			mid++
		}
	}

	return lo, hi
}

func insertionSort[T cmp.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
