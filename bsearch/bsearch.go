package bsearch

import "cmp"

// NotFound is the sentinel index returned by Index when the target is
// absent.
const NotFound = -1

// Find locates target in sorted and returns its index and true, or
// (NotFound, false) if the target is absent.
//
// Runs in O(log n) time and O(1) space over the closed interval [0, n-1].
func Find[T cmp.Ordered](sorted []T, target T) (int, bool) {
	left, right := 0, len(sorted)-1

	for left <= right {
		mid := (left + right) / 2
		switch {
		case sorted[mid] == target:
			return mid, true
		case sorted[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound, false
}

// Index locates target in sorted and returns its index, or NotFound (-1)
// if the target is absent.
func Index[T cmp.Ordered](sorted []T, target T) int {
	i, _ := Find(sorted, target)
	return i
}

// Contains reports whether target occurs in sorted.
func Contains[T cmp.Ordered](sorted []T, target T) bool {
	_, ok := Find(sorted, target)
	return ok
}
