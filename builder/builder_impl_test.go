// Package builder_test contains functional tests for the constructors in the
// builder package, verifying topology, counts, determinism and error paths.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/core"
)

func multiOpts() []core.GraphOption {
	return []core.GraphOption{core.WithLoops(), core.WithMultiEdges()}
}

// TestBuilders_Functional runs table-driven topology checks for each deterministic builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "missing %d-%d", i, (i+1)%5)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					assert.True(t, g.HasEdge(i, i+1))
				}
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				assert.Equal(t, 4, d)
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, e := range g.Edges() {
					assert.Equal(t, core.DefaultWeight, e.Weight)
				}
			},
		},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
		{name: "RandomSparse(p=0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0},
		{name: "RandomSparse(p=1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15},
		{name: "RandomNM(full)", ctor: builder.RandomNM(5, 10), wantV: 5, wantE: 10},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		gopts []core.GraphOption
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path(1)", nil, nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, nil, builder.Star(1), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", nil, nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomNM(m too big)", nil, nil, builder.RandomNM(4, 7), builder.ErrTooManyEdges},
		{"RandomNM(no rng)", nil, nil, builder.RandomNM(4, 3), builder.ErrNeedRandSource},
		{"RandomMulti(simple graph)", nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomMulti(3, 2), builder.ErrUnsupportedGraphMode},
		{"Configuration(odd)", multiOpts(), []builder.BuilderOption{builder.WithSeed(1)}, builder.ConfigurationModel([]int{0, 1, 1}), builder.ErrInvalidDegreeDist},
		{"Configuration(negative)", multiOpts(), []builder.BuilderOption{builder.WithSeed(1)}, builder.ConfigurationModel([]int{2, -1}), builder.ErrInvalidDegreeDist},
		{"Configuration(empty)", multiOpts(), []builder.BuilderOption{builder.WithSeed(1)}, builder.ConfigurationModel(nil), builder.ErrInvalidDegreeDist},
		{"Configuration(no rng)", multiOpts(), nil, builder.ConfigurationModel([]int{0, 2}), builder.ErrNeedRandSource},
		{"Configuration(simple graph)", nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.ConfigurationModel([]int{0, 2}), builder.ErrUnsupportedGraphMode},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 5))
	assert.False(t, g.HasEdge(2, 3))
}

func TestRandomNM_SimpleAndExact(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomNM(7, 9))
		require.NoError(t, err)
		assert.Equal(t, 9, g.EdgeCount())
		assert.True(t, g.IsSimple())
	}
}

func TestRandomMulti_Counts(t *testing.T) {
	g, err := builder.BuildGraph(multiOpts(), []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomMulti(4, 25))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 25, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, g.HasNode(e.From) && g.HasNode(e.To))
	}
}

func TestConfigurationModel_Degrees(t *testing.T) {
	dd := []int{1, 2, 3, 0, 2}
	for seed := int64(0); seed < 25; seed++ {
		g, err := builder.BuildGraph(multiOpts(), []builder.BuilderOption{builder.WithSeed(seed)}, builder.ConfigurationModel(dd))
		require.NoError(t, err)
		require.Equal(t, 8, g.NodeCount())
		require.Equal(t, builder.StubCount(dd)/2, g.EdgeCount())

		// The realised degree sequence always matches the requested histogram.
		hist := make([]int, len(dd))
		for _, v := range g.Nodes() {
			d, err := g.Degree(v)
			require.NoError(t, err)
			require.Less(t, d, len(hist))
			hist[d]++
		}
		assert.Equal(t, dd, hist)
	}
}

func TestConfigurationModel_AllIsolated(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.ConfigurationModel([]int{5}))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestDeterminism_SameSeed(t *testing.T) {
	build := func() []core.Edge {
		g, err := builder.BuildGraph(multiOpts(), []builder.BuilderOption{builder.WithSeed(42)},
			builder.ConfigurationModel([]int{0, 4, 4, 2}))
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, build(), build())
}

func TestWeightFns(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(5),
		builder.WithWeightFn(builder.IntegerWeightFn(2, 4)),
	}, builder.Complete(5))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.LessOrEqual(t, e.Weight, 4.0)
		assert.Equal(t, float64(int(e.Weight)), e.Weight)
	}

	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(nil))
	assert.Equal(t, core.DefaultWeight, builder.UniformWeightFn(1, 2)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestValidateDegreeDist(t *testing.T) {
	require.NoError(t, builder.ValidateDegreeDist([]int{0, 2, 1, 0}))
	assert.Equal(t, 3, builder.NodeCount([]int{0, 2, 1, 0}))
	assert.Equal(t, 4, builder.StubCount([]int{0, 2, 1, 0}))
	assert.Equal(t, 0, builder.MaxSimpleEdges(1))
	assert.Equal(t, 10, builder.MaxSimpleEdges(5))
}
