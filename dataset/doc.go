// Package dataset generates and persists benchmark input datasets.
//
// A Dataset is a named slice of int64 values drawn from a known
// distribution (uniform, sorted, reversed, all-equal, sawtooth,
// few-unique). Generation is deterministic for a given seed, so benchmark
// runs are reproducible.
//
// Datasets can be encoded to a compact self-describing binary format with
// optional block compression (Zstandard or LZ4) and stored through a
// datastore.Store:
//
//	gen := dataset.NewGenerator(4711)
//	ds := gen.Generate(dataset.Uniform, 100000)
//
//	err := dataset.Save(ctx, store, "uniform-100k", ds, dataset.CompressionZSTD)
//	ds2, err := dataset.Load(ctx, store, "uniform-100k")
package dataset
