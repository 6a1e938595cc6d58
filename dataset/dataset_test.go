package dataset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator(4711).Generate(Uniform, 1000)
	b := NewGenerator(4711).Generate(Uniform, 1000)

	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, "uniform-1000", a.Name)
	assert.Equal(t, Uniform, a.Kind)
}

func TestGeneratorDistributions(t *testing.T) {
	gen := NewGenerator(1)
	n := 256

	t.Run("sorted", func(t *testing.T) {
		d := gen.Generate(Sorted, n)
		require.Len(t, d.Values, n)
		assert.True(t, slices.IsSorted(d.Values))
		assert.Equal(t, int64(0), d.Values[0])
		assert.Equal(t, int64(n-1), d.Values[n-1])
	})

	t.Run("reversed", func(t *testing.T) {
		d := gen.Generate(Reversed, n)
		assert.Equal(t, int64(n-1), d.Values[0])
		assert.Equal(t, int64(0), d.Values[n-1])
	})

	t.Run("all-equal", func(t *testing.T) {
		d := gen.Generate(AllEqual, n)
		for _, v := range d.Values {
			require.Equal(t, int64(42), v)
		}
	})

	t.Run("sawtooth", func(t *testing.T) {
		d := gen.Generate(Sawtooth, n)
		for i, v := range d.Values {
			require.Equal(t, int64(i%8), v)
		}
	})

	t.Run("few-unique", func(t *testing.T) {
		d := gen.Generate(FewUnique, n)
		distinct := make(map[int64]bool)
		for _, v := range d.Values {
			distinct[v] = true
		}
		assert.LessOrEqual(t, len(distinct), 16)
	})

	t.Run("uniform-bounds", func(t *testing.T) {
		d := gen.Generate(Uniform, n)
		for _, v := range d.Values {
			require.GreaterOrEqual(t, v, int64(0))
			require.Less(t, v, int64(n)*10)
		}
	})
}

func TestGenerateEmpty(t *testing.T) {
	gen := NewGenerator(1)

	for _, k := range Kinds() {
		d := gen.Generate(k, 0)
		assert.Empty(t, d.Values, k.String())
	}
}

func TestGenerateAll(t *testing.T) {
	all := NewGenerator(9).GenerateAll(100)

	require.Len(t, all, len(Kinds()))
	for i, d := range all {
		assert.Equal(t, Kinds()[i], d.Kind)
		assert.Equal(t, 100, d.Len())
	}
}

func TestClone(t *testing.T) {
	d := NewGenerator(5).Generate(Uniform, 10)

	c := d.Clone()
	require.Equal(t, d.Values, c)

	c[0] = -1
	assert.NotEqual(t, d.Values[0], int64(-1))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "uniform", Uniform.String())
	assert.Equal(t, "few-unique", FewUnique.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
