// Package testutil provides testing utilities for sortgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator for building
// input slices with known distributions, and multiset helpers for verifying
// that a sort preserved its input elements.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Int64Slice(1000, 10000) // 1000 values in [0, 10000)
//	perm := rng.Shuffled(1000)          // permutation of 0..999
//
// # Multiset Verification
//
//	if !testutil.SameMultiset(got, want) {
//	    t.Fatal("sort dropped or invented elements")
//	}
package testutil
