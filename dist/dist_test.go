package dist_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/dist"
)

func TestKeyOrder(t *testing.T) {
	keys := []dist.Key{
		dist.Tuple(1, 2, 0, 3),
		dist.Scalar(2),
		dist.Tuple(0, 5),
		dist.Scalar(-1),
		dist.Tuple(0, 1),
		dist.Tuple(1, 0),
		dist.Tuple(7),
	}
	d := dist.New()
	for _, k := range keys {
		d.Inc(k)
	}
	want := []string{"-1", "2", "(7)", "(0, 1)", "(0, 5)", "(1, 0)", "(1, 2, 0, 3)"}
	var got []string
	for _, k := range d.Keys() {
		got = append(got, k.String())
	}
	assert.Equal(t, want, got)
	assert.Panics(t, func() { dist.Tuple() })
	assert.Panics(t, func() { dist.Tuple(1, 2, 3, 4, 5) })
}

func TestAddGetMerge(t *testing.T) {
	a := dist.New()
	a.Add(dist.Scalar(1), 2)
	a.Add(dist.Scalar(1), 3)
	assert.Equal(t, 5.0, a.Get(dist.Scalar(1)))
	assert.Equal(t, 0.0, a.Get(dist.Scalar(9)))
	assert.False(t, a.Has(dist.Scalar(9)))

	b := dist.FromMap(map[float64]float64{1: 1, 2: 4})
	m := dist.Merge(a, b)
	assert.Equal(t, 6.0, m.Get(dist.Scalar(1)))
	assert.Equal(t, 4.0, m.Get(dist.Scalar(2)))
	assert.Equal(t, 10.0, m.Total())
	assert.Equal(t, 5.0, a.Get(dist.Scalar(1)), "Merge must not mutate its inputs")
}

func TestEqual(t *testing.T) {
	a := dist.FromMap(map[float64]float64{1: 0.25, 2: 0.75})
	b := dist.FromMap(map[float64]float64{1: 0.25 + 1e-12, 2: 0.75})
	c := dist.FromMap(map[float64]float64{1: 0.3, 2: 0.7})
	d := dist.FromMap(map[float64]float64{1: 0.25, 3: 0.75})
	e := dist.FromMap(map[float64]float64{1: 0.25})

	assert.True(t, a.Equal(b, 1e-9))
	assert.False(t, a.Equal(b, 0))
	assert.False(t, a.Equal(c, 1e-9))
	assert.True(t, a.Equal(c, 0.1))
	assert.False(t, a.Equal(d, 1), "keys differ")
	assert.False(t, a.Equal(e, 1), "lengths differ")
}

func TestNormalizeScaleRoundTrip(t *testing.T) {
	const trials = 7.0
	counts := dist.New()
	counts.Add(dist.Scalar(2), 3)
	counts.Add(dist.Scalar(3), 11)
	counts.Add(dist.Tuple(1, 2), 5)

	norm, err := dist.Normalize(counts, trials)
	require.NoError(t, err)
	back := dist.Scale(norm, trials)

	// Integer counts come back exactly once rounded.
	back.Each(func(k dist.Key, v float64) {
		assert.Equal(t, counts.Get(k), math.Round(v))
	})
	assert.True(t, counts.Equal(back, 1e-9))

	_, err = dist.Normalize(counts, 0)
	assert.ErrorIs(t, err, dist.ErrDivisor)
}

func TestCumulative(t *testing.T) {
	p := dist.FromMap(map[float64]float64{2: 0.25, 3: 0.5, 5: 0.25})
	c, err := dist.Cumulative(p, 1)
	require.NoError(t, err)

	want := map[float64]float64{2: 1, 3: 0.75, 4: 0.25, 5: 0.25, 6: 0}
	require.Equal(t, len(want), c.Len())
	for k, v := range want {
		assert.InDelta(t, v, c.Get(dist.Scalar(k)), 1e-12, "x=%v", k)
	}

	// Non-increasing in the key.
	vals := c.Values()
	for i := 1; i < len(vals); i++ {
		assert.LessOrEqual(t, vals[i], vals[i-1])
	}
}

func TestCumulative_HalfStep(t *testing.T) {
	p := dist.FromMap(map[float64]float64{1.5: 0.5, 2: 0.5})
	c, err := dist.Cumulative(p, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0}, c.Values())
	k, _ := c.Max()
	assert.Equal(t, 2.5, k.Value())
}

func TestCumulative_Errors(t *testing.T) {
	p := dist.New()
	p.Inc(dist.Tuple(1, 1))
	_, err := dist.Cumulative(p, 1)
	assert.ErrorIs(t, err, dist.ErrKeyKind)

	_, err = dist.Cumulative(dist.New(), 0)
	assert.ErrorIs(t, err, dist.ErrStep)

	empty, err := dist.Cumulative(dist.New(), 1)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestFill(t *testing.T) {
	d := dist.FromMap(map[float64]float64{1: 0.5, 2.5: 0.5})
	f, err := dist.Fill(d, 0, 3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 7, f.Len())
	assert.Equal(t, 0.5, f.Get(dist.Scalar(1)))
	assert.True(t, f.Has(dist.Scalar(3)))
	assert.Equal(t, 2, d.Len(), "Fill must copy")
}

func TestFlattenHalfIntegral(t *testing.T) {
	table := dist.New()
	table.Add(dist.Tuple(2, 1), 3) // weight 2
	table.Add(dist.Tuple(0, 2), 1) // weight 2
	table.Add(dist.Tuple(1, 1), 4) // weight 1.5
	flat, err := dist.FlattenHalfIntegral(table)
	require.NoError(t, err)
	assert.Equal(t, 4.0, flat.Get(dist.Scalar(2)))
	assert.Equal(t, 4.0, flat.Get(dist.Scalar(1.5)))

	_, err = dist.FlattenHalfIntegral(dist.FromMap(map[float64]float64{1: 1}))
	assert.ErrorIs(t, err, dist.ErrKeyKind)
}

func TestRoundToAndBucket(t *testing.T) {
	assert.Equal(t, 2.5, dist.RoundTo(2.4999999999, 1))
	assert.Equal(t, 3.0, dist.RoundTo(2.96, 1))
	assert.Equal(t, dist.Scalar(1.5), dist.Bucket(1.50000000002))
}

func TestWriteAndPrint(t *testing.T) {
	d := dist.FromMap(map[float64]float64{0.5: 0.25, 2: 1})
	var buf bytes.Buffer
	require.NoError(t, dist.Write(&buf, d))
	assert.Equal(t, "0.5 0.25\n2 1\n", buf.String())

	buf.Reset()
	require.NoError(t, dist.Print(&buf, d, 5))
	assert.Equal(t, "  0.5: 0.25\n    2: 1\n", buf.String())
}
