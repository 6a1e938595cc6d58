package dataset

import (
	"fmt"
	"math/rand"
	"sync"
)

// Kind identifies the value distribution of a dataset.
type Kind uint8

const (
	// Uniform is independent values drawn uniformly from [0, n*10).
	Uniform Kind = iota
	// Sorted is 0..n-1 in ascending order (best case for adaptive sorts).
	Sorted
	// Reversed is n-1..0 in descending order.
	Reversed
	// AllEqual is n copies of the same value.
	AllEqual
	// Sawtooth is the repeating ramp 0..7,0..7,...
	Sawtooth
	// FewUnique is uniform values restricted to 16 distinct keys.
	FewUnique
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Sorted:
		return "sorted"
	case Reversed:
		return "reversed"
	case AllEqual:
		return "all-equal"
	case Sawtooth:
		return "sawtooth"
	case FewUnique:
		return "few-unique"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Kinds lists all built-in distributions.
func Kinds() []Kind {
	return []Kind{Uniform, Sorted, Reversed, AllEqual, Sawtooth, FewUnique}
}

// Dataset is a named benchmark input.
type Dataset struct {
	Name   string
	Kind   Kind
	Values []int64
}

// Len returns the number of values.
func (d *Dataset) Len() int { return len(d.Values) }

// Clone returns a copy of the values. Sort algorithms mutate their input,
// so benchmark reps always run on a clone.
func (d *Dataset) Clone() []int64 {
	out := make([]int64, len(d.Values))
	copy(out, d.Values)
	return out
}

// Generator produces deterministic datasets from a seed.
// It is thread-safe.
type Generator struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewGenerator creates a Generator with the specified seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (g *Generator) Seed() int64 { return g.seed }

// Generate builds a dataset of n values with the given distribution.
// The dataset name encodes kind and size, e.g. "uniform-1000".
func (g *Generator) Generate(kind Kind, n int) *Dataset {
	g.mu.Lock()
	defer g.mu.Unlock()

	values := make([]int64, n)
	switch kind {
	case Uniform:
		bound := int64(n) * 10
		if bound < 1 {
			bound = 1
		}
		for i := range values {
			values[i] = g.rand.Int63n(bound)
		}
	case Sorted:
		for i := range values {
			values[i] = int64(i)
		}
	case Reversed:
		for i := range values {
			values[i] = int64(n - 1 - i)
		}
	case AllEqual:
		for i := range values {
			values[i] = 42
		}
	case Sawtooth:
		for i := range values {
			values[i] = int64(i % 8)
		}
	case FewUnique:
		for i := range values {
			values[i] = g.rand.Int63n(16)
		}
	}

	return &Dataset{
		Name:   fmt.Sprintf("%s-%d", kind, n),
		Kind:   kind,
		Values: values,
	}
}

// GenerateAll builds one dataset of n values per built-in distribution.
func (g *Generator) GenerateAll(n int) []*Dataset {
	kinds := Kinds()
	out := make([]*Dataset, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, g.Generate(k, n))
	}
	return out
}
