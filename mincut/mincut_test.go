package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/flow"
	"github.com/katalvlaran/graphstat/mincut"
)

func multigraph(t *testing.T, n int, edges ...[3]float64) *core.Graph {
	t.Helper()
	g := core.NewMultigraph(core.WithNodes(n))
	for _, e := range edges {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}
	return g
}

func TestGlobalMinCut(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		want float64
	}{
		{"triangle", multigraph(t, 3, [3]float64{0, 1, 1}, [3]float64{1, 2, 1}, [3]float64{2, 0, 1}), 2},
		{"pendant", multigraph(t, 4, [3]float64{0, 1, 5}, [3]float64{1, 2, 5}, [3]float64{2, 0, 5}, [3]float64{2, 3, 1}), 1},
		{"parallel summed", multigraph(t, 2, [3]float64{0, 1, 1}, [3]float64{0, 1, 1}, [3]float64{1, 0, 1}), 3},
		{"loops ignored", multigraph(t, 2, [3]float64{0, 0, 9}, [3]float64{0, 1, 2}), 2},
		{"disconnected", multigraph(t, 4, [3]float64{0, 1, 3}, [3]float64{2, 3, 3}), 0},
		{"isolated node", multigraph(t, 3, [3]float64{0, 1, 3}), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mincut.GlobalMinCut(tc.g)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)

			ek, err := mincut.GlobalMinCut(tc.g, mincut.WithAlgorithm(flow.AlgorithmEdmondsKarp))
			require.NoError(t, err)
			assert.InDelta(t, got, ek, 1e-9)
		})
	}
}

func TestGlobalMinCut_CompleteAndCycle(t *testing.T) {
	k5, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	w, err := mincut.GlobalMinCut(k5)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, w, 1e-9)

	c7, err := builder.BuildGraph(nil, nil, builder.Cycle(7))
	require.NoError(t, err)
	w, err = mincut.GlobalMinCut(c7)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-9)
}

func TestGlobalMinCutDetail_Side(t *testing.T) {
	g := multigraph(t, 4, [3]float64{0, 1, 5}, [3]float64{1, 2, 5}, [3]float64{2, 0, 5}, [3]float64{2, 3, 1})
	r, err := mincut.GlobalMinCutDetail(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, r.SourceSide)

	d := multigraph(t, 3, [3]float64{0, 2, 1})
	r, err = mincut.GlobalMinCutDetail(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, r.SourceSide)
}

func TestGlobalMinCut_TooFewNodes(t *testing.T) {
	_, err := mincut.GlobalMinCut(core.NewGraph(core.WithNodes(1)))
	assert.ErrorIs(t, err, mincut.ErrTooFewNodes)
}

func TestSTMinCut(t *testing.T) {
	g := multigraph(t, 4,
		[3]float64{0, 1, 2}, [3]float64{0, 1, 1}, [3]float64{1, 3, 4},
		[3]float64{0, 2, 2}, [3]float64{2, 3, 1}, [3]float64{3, 3, 7})
	w, err := mincut.STMinCut(g, 0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, w, 1e-9)

	_, err = mincut.STMinCut(g, 0, 0)
	assert.ErrorIs(t, err, flow.ErrSameTerminals)
	_, err = mincut.STMinCut(g, 0, 8)
	assert.ErrorIs(t, err, flow.ErrSinkNotFound)
}
