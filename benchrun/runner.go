package benchrun

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/sortgo"
	"github.com/hupe1980/sortgo/dataset"
	"github.com/hupe1980/sortgo/psort"
	"github.com/hupe1980/sortgo/quick"
)

// ErrNoAlgorithms is returned by Run when nothing was registered.
var ErrNoAlgorithms = errors.New("benchrun: no algorithms registered")

// VerificationError indicates an algorithm produced incorrect output.
type VerificationError struct {
	Algorithm string
	Dataset   string
	Reason    string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("benchrun: %s on %s: %s", e.Algorithm, e.Dataset, e.Reason)
}

// SortFunc sorts s in place. Implementations may use ctx for cancellation.
type SortFunc func(ctx context.Context, s []int64) error

// Options configures a Runner.
type Options struct {
	// Warmup is the number of untimed rounds per algorithm/dataset pair.
	Warmup int

	// Repetitions is the number of timed rounds. Best and mean of these
	// are reported.
	Repetitions int

	// Verify re-checks every timed output (sorted + multiset preserved).
	Verify bool

	// Logger receives per-pair progress. Defaults to a noop logger.
	Logger *sortgo.Logger
}

// Result is the timing outcome of one algorithm on one dataset.
type Result struct {
	Algorithm string
	Dataset   string
	N         int
	Best      time.Duration
	Mean      time.Duration
}

type algorithm struct {
	name string
	fn   SortFunc
}

// Runner times named sorting algorithms against datasets.
type Runner struct {
	opts  Options
	algos []algorithm
}

// NewRunner creates a Runner.
func NewRunner(optFns ...func(o *Options)) *Runner {
	opts := Options{
		Warmup:      1,
		Repetitions: 5,
		Verify:      true,
		Logger:      sortgo.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Warmup < 0 {
		opts.Warmup = 0
	}
	if opts.Repetitions < 1 {
		opts.Repetitions = 1
	}
	if opts.Logger == nil {
		opts.Logger = sortgo.NoopLogger()
	}

	return &Runner{opts: opts}
}

// Register adds a named algorithm.
func (r *Runner) Register(name string, fn SortFunc) {
	r.algos = append(r.algos, algorithm{name: name, fn: fn})
}

// RegisterStandard registers the built-in algorithm set: the out-of-place
// three-way quicksort, the in-place hybrid quicksort, the parallel sort and
// the standard library's sort as baseline.
func (r *Runner) RegisterStandard() {
	r.Register("quicksort", func(_ context.Context, s []int64) error {
		out := quick.Sorted(s)
		copy(s, out)
		return nil
	})
	r.Register("introsort", func(_ context.Context, s []int64) error {
		quick.Sort(s)
		return nil
	})
	r.Register("parallel", func(ctx context.Context, s []int64) error {
		return psort.Sort(ctx, s)
	})
	r.Register("stdlib", func(_ context.Context, s []int64) error {
		slices.Sort(s)
		return nil
	})
}

// Run executes every registered algorithm against every dataset and
// returns one Result per pair, grouped by dataset in input order.
func (r *Runner) Run(ctx context.Context, datasets []*dataset.Dataset) ([]Result, error) {
	if len(r.algos) == 0 {
		return nil, ErrNoAlgorithms
	}

	results := make([]Result, 0, len(r.algos)*len(datasets))

	for _, ds := range datasets {
		for _, algo := range r.algos {
			res, err := r.runPair(ctx, algo, ds)
			if err != nil {
				return nil, err
			}
			results = append(results, res)

			r.opts.Logger.Info("benchmark pair done",
				"algorithm", algo.name,
				"dataset", ds.Name,
				"n", ds.Len(),
				"best", res.Best,
				"mean", res.Mean,
			)
		}
	}

	return results, nil
}

func (r *Runner) runPair(ctx context.Context, algo algorithm, ds *dataset.Dataset) (Result, error) {
	for i := 0; i < r.opts.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := algo.fn(ctx, ds.Clone()); err != nil {
			return Result{}, err
		}
	}

	var best, total time.Duration
	for i := 0; i < r.opts.Repetitions; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		input := ds.Clone()

		start := time.Now()
		if err := algo.fn(ctx, input); err != nil {
			return Result{}, err
		}
		elapsed := time.Since(start)

		if r.opts.Verify {
			if err := verify(algo.name, ds, input); err != nil {
				return Result{}, err
			}
		}

		total += elapsed
		if i == 0 || elapsed < best {
			best = elapsed
		}
	}

	return Result{
		Algorithm: algo.name,
		Dataset:   ds.Name,
		N:         ds.Len(),
		Best:      best,
		Mean:      total / time.Duration(r.opts.Repetitions),
	}, nil
}

func verify(name string, ds *dataset.Dataset, out []int64) error {
	if len(out) != ds.Len() {
		return &VerificationError{Algorithm: name, Dataset: ds.Name, Reason: "output length changed"}
	}
	if !quick.IsSorted(out) {
		return &VerificationError{Algorithm: name, Dataset: ds.Name, Reason: "output not sorted"}
	}
	if !sameMultiset(ds.Values, out) {
		return &VerificationError{Algorithm: name, Dataset: ds.Name, Reason: "output is not a permutation of the input"}
	}
	return nil
}

func sameMultiset(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int64]int, len(a))
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
