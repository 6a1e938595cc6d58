package quick

import "cmp"

// Sorted returns a new slice containing the elements of s in non-decreasing
// order. The input is never mutated.
//
// The implementation is a textbook three-way quicksort: the pivot is the
// element at the middle index, the remaining elements are split into
// less/equal/greater groups, and the less and greater groups are sorted
// recursively. Every level allocates fresh slices, so peak extra space is
// O(n) per level. Average time is O(n log n); adversarial inputs can still
// degrade to O(n^2).
func Sorted[T cmp.Ordered](s []T) []T {
	if len(s) <= 1 {
		return append(make([]T, 0, len(s)), s...)
	}

	pivot := s[len(s)/2]

	var less, equal, greater []T
	for _, v := range s {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := make([]T, 0, len(s))
	out = append(out, Sorted(less)...)
	out = append(out, equal...)
	out = append(out, Sorted(greater)...)

	return out
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
