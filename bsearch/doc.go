// Package bsearch provides binary search over slices sorted in
// non-decreasing order.
//
// Find is the primary API and returns (index, ok). Index keeps the classic
// -1 sentinel contract for callers porting code that expects it.
//
// The input must already be sorted ascending by the natural order of the
// element type. This precondition is not checked; results on unsorted input
// are unspecified.
//
// When the target occurs more than once there is no guarantee which
// occurrence is returned — the bisection stops at the first index it lands
// on.
package bsearch
