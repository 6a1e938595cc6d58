package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64Slice returns a slice of n pseudo-random values in [0, max).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Int64Slice(n int, max int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := make([]int64, n)
	for i := range s {
		s[i] = r.rand.Int63n(max)
	}
	return s
}

// IntSlice returns a slice of n pseudo-random values in [0, max).
func (r *RNG) IntSlice(n, max int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := make([]int, n)
	for i := range s {
		s[i] = r.rand.Intn(max)
	}
	return s
}

// Shuffled returns a pseudo-random permutation of the integers [0, n).
func (r *RNG) Shuffled(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// SameMultiset reports whether a and b contain exactly the same elements
// with the same multiplicities, regardless of order.
func SameMultiset[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
