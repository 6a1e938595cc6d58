// Package benchrun times registered sorting algorithms against benchmark
// datasets.
//
// A Runner holds a set of named algorithms. Run executes every algorithm
// against every dataset: warmup rounds first, then timed repetitions, each
// on a fresh copy of the input. After every timed rep the output is
// verified (sorted, same multiset as the input); a bad algorithm fails the
// run with a VerificationError instead of producing a fast-but-wrong
// ranking.
//
//	r := benchrun.NewRunner()
//	r.RegisterStandard()
//
//	results, err := r.Run(ctx, dataset.NewGenerator(seed).GenerateAll(100_000))
//	if err != nil { ... }
//
//	fmt.Print(benchrun.Report(results))
package benchrun
