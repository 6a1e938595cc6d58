package psort

import (
	"cmp"
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sortgo/quick"
)

// DefaultGrain is the subrange size below which sorting proceeds
// sequentially.
const DefaultGrain = 4096

// Options configures Sort.
type Options struct {
	// Parallelism is the maximum number of concurrent sorting goroutines.
	// Defaults to runtime.GOMAXPROCS(0).
	Parallelism int

	// Grain is the subrange size below which a range is sorted
	// sequentially instead of being split further. Defaults to
	// DefaultGrain.
	Grain int
}

// Sort sorts s in place in non-decreasing order, partitioning concurrently
// across at most Parallelism goroutines.
//
// The only error condition is context cancellation. On cancellation the
// slice still holds the same multiset of elements but may be only partially
// sorted.
func Sort[T cmp.Ordered](ctx context.Context, s []T, optFns ...func(o *Options)) error {
	opts := Options{
		Parallelism: runtime.GOMAXPROCS(0),
		Grain:       DefaultGrain,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	if opts.Grain < 1 {
		opts.Grain = DefaultGrain
	}

	if len(s) <= opts.Grain || opts.Parallelism == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		quick.Sort(s)
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	var walk func(part []T) error
	walk = func(part []T) error {
		for len(part) > opts.Grain {
			if err := ctx.Err(); err != nil {
				return err
			}

			lt, gt := partition(part)

			left, right := part[:lt], part[gt:]
			if len(left) < len(right) {
				left, right = right, left
			}

			// Hand the smaller side to the group if a slot is free,
			// otherwise sort it inline. TryGo never blocks, so workers
			// spawning workers cannot deadlock the group.
			sub := right
			if !g.TryGo(func() error { return walk(sub) }) {
				if err := walk(sub); err != nil {
					return err
				}
			}

			part = left
		}

		quick.Sort(part)
		return nil
	}

	g.Go(func() error { return walk(s) })

	return g.Wait()
}

// partition reorders part around its middle element and returns (lt, gt)
// such that part[:lt] < pivot, part[lt:gt] == pivot and part[gt:] > pivot.
func partition[T cmp.Ordered](part []T) (lt, gt int) {
	pivot := part[len(part)/2]

	lo, mid, hi := 0, 0, len(part)
	for mid < hi {
		switch {
		case part[mid] < pivot:
			part[lo], part[mid] = part[mid], part[lo]
			lo++
			mid++
		case part[mid] > pivot:
			hi--
			part[mid], part[hi] = part[hi], part[mid]
		default:
			mid++
		}
	}

	return lo, hi
}
