package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/core"
)

func TestAddEdge_Policies(t *testing.T) {
	tests := []struct {
		name    string
		opts    []core.GraphOption
		u, v    int
		w       float64
		prepare func(g *core.Graph)
		wantErr error
	}{
		{name: "simple edge", opts: nil, u: 0, v: 1, w: 1},
		{name: "unknown node", u: 0, v: 7, w: 1, wantErr: core.ErrNodeNotFound},
		{name: "negative node", u: -1, v: 0, w: 1, wantErr: core.ErrNodeNotFound},
		{name: "negative weight", u: 0, v: 1, w: -2, wantErr: core.ErrNegativeWeight},
		{name: "NaN weight", u: 0, v: 1, w: math.NaN(), wantErr: core.ErrNegativeWeight},
		{name: "loop disabled", u: 2, v: 2, w: 1, wantErr: core.ErrLoopNotAllowed},
		{name: "loop enabled", opts: []core.GraphOption{core.WithLoops()}, u: 2, v: 2, w: 1},
		{
			name:    "parallel disabled",
			u:       1,
			v:       0,
			w:       1,
			prepare: func(g *core.Graph) { _, _ = g.AddEdge(0, 1, 1) },
			wantErr: core.ErrMultiEdgeNotAllowed,
		},
		{
			name:    "parallel enabled",
			opts:    []core.GraphOption{core.WithMultiEdges()},
			u:       1,
			v:       0,
			w:       1,
			prepare: func(g *core.Graph) { _, _ = g.AddEdge(0, 1, 1) },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(append([]core.GraphOption{core.WithNodes(3)}, tc.opts...)...)
			if tc.prepare != nil {
				tc.prepare(g)
			}
			_, err := g.AddEdge(tc.u, tc.v, tc.w)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, g.HasEdge(tc.u, tc.v))
			assert.True(t, g.HasEdge(tc.v, tc.u))
		})
	}
}

func TestEdges_InsertionOrderAndMultiplicity(t *testing.T) {
	g := core.NewMultigraph(core.WithNodes(3))
	pairs := [][2]int{{0, 1}, {0, 1}, {2, 2}, {1, 2}}
	for i, p := range pairs {
		id, err := g.AddEdge(p[0], p[1], float64(i+1))
		require.NoError(t, err)
		require.Equal(t, i, id)
	}

	edges := g.Edges()
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
		assert.Equal(t, pairs[i][0], e.From)
		assert.Equal(t, pairs[i][1], e.To)
	}
	assert.Equal(t, []int{0, 1}, g.EdgesBetween(1, 0))
	assert.True(t, edges[2].IsLoop())
	assert.Equal(t, 10.0, g.TotalWeight())

	stats := g.Stats()
	assert.Equal(t, 1, stats.LoopCount)
	assert.Equal(t, 1, stats.ParallelCount)
	assert.False(t, g.IsSimple())
}

func TestDegreeAndNeighbors(t *testing.T) {
	g := core.NewMultigraph(core.WithNodes(3))
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 0, 1)

	d0, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, d0, "two parallel edges plus a loop counted twice")

	d2, err := g.Degree(2)
	require.NoError(t, err)
	assert.Zero(t, d2)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, nbrs)

	inc, err := g.IncidentEdges(0)
	require.NoError(t, err)
	assert.Len(t, inc, 3)

	_, err = g.Degree(5)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	// Degree sum equals twice the edge count.
	sum := 0
	for _, v := range g.Nodes() {
		d, _ := g.Degree(v)
		sum += d
	}
	assert.Equal(t, 2*g.EdgeCount(), sum)
}

func TestSimplify(t *testing.T) {
	g := core.NewMultigraph(core.WithNodes(4))
	_, _ = g.AddEdge(2, 1, 1.5)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(3, 3, 9)
	_, _ = g.AddEdge(0, 1, 1)

	s := g.Simplify()
	assert.Equal(t, 4, s.NodeCount())
	assert.False(t, s.Looped())
	assert.False(t, s.Multigraph())
	assert.True(t, s.IsSimple())

	edges := s.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge{ID: 0, From: 0, To: 1, Weight: 1}, edges[0])
	assert.Equal(t, core.Edge{ID: 1, From: 1, To: 2, Weight: 3.5}, edges[1])

	// The source graph is untouched.
	assert.Equal(t, 4, g.EdgeCount())
}

func TestClone(t *testing.T) {
	g := core.NewMultigraph(core.WithNodes(2))
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 1, 1)

	c := g.Clone()
	_, err := c.AddEdge(0, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())
	assert.Equal(t, g.Edges(), c.Edges()[:2])

	empty := g.CloneEmpty()
	assert.Equal(t, 2, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())
	assert.True(t, empty.Looped())
}

func TestAddNodes(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.AddNode())
	assert.Equal(t, 1, g.AddNodes(3))
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.AddNodes(0))
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(4))
	assert.Equal(t, []int{0, 1, 2, 3}, g.Nodes())
}
