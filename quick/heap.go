package quick

import "cmp"

// heapSort is the fallback for pathological partitioning. In-place,
// O(n log n) worst case, no recursion.
func heapSort[T cmp.Ordered](s []T) {
	n := len(s)

	// Build max-heap.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}

	// Repeatedly move the max to the end.
	for i := n - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDown(s, 0, i)
	}
}

func siftDown[T cmp.Ordered](s []T, root, end int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end && s[child] < s[child+1] {
			child++
		}
		if s[root] >= s[child] {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
