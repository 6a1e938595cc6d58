package quick

import (
	"slices"
	"testing"

	"github.com/hupe1980/sortgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedBasic(t *testing.T) {
	in := []int{64, 34, 25, 12, 22, 11, 90}

	out := Sorted(in)

	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, out)
	assert.Equal(t, []int{64, 34, 25, 12, 22, 11, 90}, in, "input must not be mutated")
}

func TestSortedEmpty(t *testing.T) {
	out := Sorted([]int{})
	assert.Empty(t, out)
}

func TestSortedSingle(t *testing.T) {
	assert.Equal(t, []int{42}, Sorted([]int{42}))
}

func TestSortedAllEqual(t *testing.T) {
	assert.Equal(t, []int{5, 5, 5}, Sorted([]int{5, 5, 5}))
}

func TestSortedDuplicates(t *testing.T) {
	in := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	out := Sorted(in)

	assert.True(t, IsSorted(out))
	assert.True(t, testutil.SameMultiset(in, out))
}

func TestSortedIdempotent(t *testing.T) {
	in := []int{9, 7, 7, 3, 1, 8}

	once := Sorted(in)
	twice := Sorted(once)

	assert.Equal(t, once, twice)
}

func TestSortedStrings(t *testing.T) {
	out := Sorted([]string{"pear", "apple", "fig", "apple"})
	assert.Equal(t, []string{"apple", "apple", "fig", "pear"}, out)
}

func TestSortedPermutationProperty(t *testing.T) {
	rng := testutil.NewRNG(4711)

	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 100, 1000}
	for _, n := range sizes {
		in := rng.Int64Slice(n, 50)

		out := Sorted(in)

		require.True(t, IsSorted(out), "n=%d", n)
		require.True(t, testutil.SameMultiset(in, out), "n=%d", n)
	}
}

func TestSortBasic(t *testing.T) {
	data := []int{64, 34, 25, 12, 22, 11, 90}
	Sort(data)
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, data)
}

func TestSortEmptyAndSingle(t *testing.T) {
	var empty []int
	Sort(empty)
	assert.Empty(t, empty)

	one := []int{7}
	Sort(one)
	assert.Equal(t, []int{7}, one)
}

func TestSortAlreadySorted(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Sort(data)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, data)
}

func TestSortReverse(t *testing.T) {
	data := make([]int, 500)
	for i := range data {
		data[i] = len(data) - i
	}

	Sort(data)

	assert.True(t, IsSorted(data))
}

func TestSortAllEqual(t *testing.T) {
	data := []int{5, 5, 5, 5, 5, 5, 5, 5}
	Sort(data)
	assert.Equal(t, []int{5, 5, 5, 5, 5, 5, 5, 5}, data)
}

func TestSortThresholdVariants(t *testing.T) {
	rng := testutil.NewRNG(99)

	for _, threshold := range []int{-1, 0, 1, 2, 5, 16, 64, 10000} {
		in := rng.Int64Slice(2000, 300)
		want := slices.Clone(in)
		slices.Sort(want)

		got := slices.Clone(in)
		SortThreshold(got, threshold)

		require.Equal(t, want, got, "threshold=%d", threshold)
	}
}

func TestSortMatchesStdlib(t *testing.T) {
	rng := testutil.NewRNG(12345)

	sizes := []int{0, 1, 7, 8, 15, 16, 17, 63, 64, 100, 256, 1000, 5000}
	for _, n := range sizes {
		in := rng.Int64Slice(n, 10000)
		want := slices.Clone(in)
		slices.Sort(want)

		got := slices.Clone(in)
		Sort(got)

		require.Equal(t, want, got, "n=%d", n)
	}
}

func TestSortAdversarialPatterns(t *testing.T) {
	// Patterns known to degrade naive middle-pivot quicksort. The depth
	// limit must kick in and hand off to heapsort.
	n := 4096

	patterns := map[string]func(i int) int64{
		"sorted":   func(i int) int64 { return int64(i) },
		"reverse":  func(i int) int64 { return int64(n - i) },
		"sawtooth": func(i int) int64 { return int64(i % 8) },
		"organ":    func(i int) int64 { return int64(min(i, n-i)) },
	}

	for name, gen := range patterns {
		t.Run(name, func(t *testing.T) {
			data := make([]int64, n)
			for i := range data {
				data[i] = gen(i)
			}
			want := slices.Clone(data)
			slices.Sort(want)

			Sort(data)

			assert.Equal(t, want, data)
		})
	}
}

func TestHeapSort(t *testing.T) {
	rng := testutil.NewRNG(7)

	for _, n := range []int{0, 1, 2, 3, 15, 64, 1000} {
		in := rng.Int64Slice(n, 100)
		want := slices.Clone(in)
		slices.Sort(want)

		heapSort(in)

		require.Equal(t, want, in, "n=%d", n)
	}
}

func TestPartition(t *testing.T) {
	data := []int{5, 1, 5, 9, 2, 5, 7, 0, 5}
	pivot := data[len(data)/2]

	lt, gt := partition(data)

	for _, v := range data[:lt] {
		assert.Less(t, v, pivot)
	}
	for _, v := range data[lt:gt] {
		assert.Equal(t, pivot, v)
	}
	for _, v := range data[gt:] {
		assert.Greater(t, v, pivot)
	}
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int{}))
	assert.True(t, IsSorted([]int{1}))
	assert.True(t, IsSorted([]int{1, 1, 2, 3}))
	assert.False(t, IsSorted([]int{2, 1}))
	assert.False(t, IsSorted([]int{1, 3, 2}))
}
