package vertexcover_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/linprog"
	"github.com/katalvlaran/graphstat/vertexcover"
)

func build(t *testing.T, c builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, c)
	require.NoError(t, err)
	return g
}

func TestSolve(t *testing.T) {
	loop := core.NewMultigraph(core.WithNodes(1))
	_, err := loop.AddEdge(0, 0, 1)
	require.NoError(t, err)

	tests := []struct {
		name     string
		g        *core.Graph
		lp, ip   float64
		lpValues []float64
		halves   int
	}{
		{"path3", build(t, builder.Path(3)), 1, 1, []float64{0, 1, 0}, 0},
		{"K4", build(t, builder.Complete(4)), 2, 3, []float64{0.5, 0.5, 0.5, 0.5}, 4},
		{"C5", build(t, builder.Cycle(5)), 2.5, 3, []float64{0.5, 0.5, 0.5, 0.5, 0.5}, 5},
		{"self-loop", loop, 0.5, 1, []float64{0.5}, 1},
	}
	for _, method := range []vertexcover.Method{vertexcover.MethodFlow, vertexcover.MethodSimplex} {
		s := vertexcover.Solver{Method: method}
		for _, tc := range tests {
			t.Run(method.String()+"/"+tc.name, func(t *testing.T) {
				lp, err := s.LPSolve(tc.g)
				require.NoError(t, err)
				assert.InDelta(t, tc.lp, lp.OptValue(), 1e-9)
				assert.Equal(t, tc.lpValues, lp.Values())
				assert.Equal(t, tc.halves, lp.CountHalves())

				ip, err := s.IPSolve(tc.g)
				require.NoError(t, err)
				assert.InDelta(t, tc.ip, ip.OptValue(), 1e-9)
				assert.Zero(t, ip.CountHalves())
				assert.GreaterOrEqual(t, ip.OptValue(), lp.OptValue()-1e-9)
			})
		}
	}
}

func TestSolve_MethodsAgree(t *testing.T) {
	flow := vertexcover.Solver{Method: vertexcover.MethodFlow}
	simplex := vertexcover.Solver{Method: vertexcover.MethodSimplex}
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
			[]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomMulti(10, 13))
		require.NoError(t, err)

		for _, mode := range []vertexcover.Mode{vertexcover.ModeLP, vertexcover.ModeIP} {
			a, err := flow.Solve(g, mode)
			require.NoError(t, err)
			b, err := simplex.Solve(g, mode)
			require.NoError(t, err)
			assert.InDelta(t, b.OptValue(), a.OptValue(), 1e-9, "seed %d %s", seed, mode)
			assertCovers(t, g, a)
		}
	}
}

func TestSolve_Components(t *testing.T) {
	// K4, an isolated node, C5 and a looped node, in one graph.
	g := core.NewMultigraph(core.WithNodes(11))
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			_, err := g.AddEdge(u, v, 1)
			require.NoError(t, err)
		}
	}
	for i := 0; i < 5; i++ {
		_, err := g.AddEdge(5+i, 5+(i+1)%5, 1)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(10, 10, 1)
	require.NoError(t, err)

	var s vertexcover.Solver
	ip, err := s.IPSolve(g)
	require.NoError(t, err)
	assert.InDelta(t, 3+3+1, ip.OptValue(), 1e-9)
	assert.Zero(t, ip.ValuesDict()[4])
	assertCovers(t, g, ip)

	lp, err := s.LPSolve(g)
	require.NoError(t, err)
	assert.InDelta(t, 2+2.5+0.5, lp.OptValue(), 1e-9)
	assert.Equal(t, 10, lp.CountHalves())
}

func TestSolve_ConfigurationModelScale(t *testing.T) {
	// 70 nodes, ten of each degree 1..7.
	degrees := []int{0, 10, 10, 10, 10, 10, 10, 10}
	var s vertexcover.Solver
	start := time.Now()
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
			[]builder.BuilderOption{builder.WithSeed(seed)}, builder.ConfigurationModel(degrees))
		require.NoError(t, err)
		require.Equal(t, 70, g.NodeCount())

		lp, err := s.LPSolve(g)
		require.NoError(t, err)
		ip, err := s.IPSolve(g)
		require.NoError(t, err)
		assertCovers(t, g, ip)
		assert.GreaterOrEqual(t, ip.OptValue(), math.Ceil(lp.OptValue()-1e-9))
		assert.LessOrEqual(t, ip.OptValue(), 2*lp.OptValue())
	}
	assert.Less(t, time.Since(start), 30*time.Second)
}

func assertCovers(t *testing.T, g *core.Graph, sol *vertexcover.Solution) {
	t.Helper()
	x := sol.ValuesDict()
	for _, e := range g.Edges() {
		if e.IsLoop() {
			assert.GreaterOrEqual(t, 2*x[e.From], 1.0, "loop at %d uncovered", e.From)
			continue
		}
		assert.GreaterOrEqual(t, x[e.From]+x[e.To], 1.0, "edge %d-%d uncovered", e.From, e.To)
	}
}

func TestSolve_CoverIsValid(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomMulti(8, 14))
	require.NoError(t, err)

	sol, err := new(vertexcover.Solver).IPSolve(g)
	require.NoError(t, err)
	x := sol.ValuesDict()
	for _, e := range g.Edges() {
		assert.True(t, x[e.From] == 1 || x[e.To] == 1, "edge %d-%d uncovered", e.From, e.To)
	}
	assert.Len(t, sol.Cover(), int(sol.OptValue()))
}

func TestSolve_EmptyGraph(t *testing.T) {
	g := core.NewGraph(core.WithNodes(3))
	sol, err := new(vertexcover.Solver).Solve(g, vertexcover.ModeIP)
	require.NoError(t, err)
	assert.Zero(t, sol.OptValue())
	assert.Equal(t, []int{0, 1, 2}, sol.Nodes())
	assert.Empty(t, sol.Cover())
}

func TestProgram(t *testing.T) {
	g := build(t, builder.Path(3))
	p, err := vertexcover.Program(g, vertexcover.ModeIP)
	require.NoError(t, err)
	require.Len(t, p.Variables, 3)
	require.Len(t, p.Constraints, 2)
	assert.Equal(t, linprog.Binary, p.Variables[0].Type)
	assert.Equal(t, linprog.GE, p.Constraints[0].Relation)

	_, err = vertexcover.Program(g, vertexcover.Mode(7))
	assert.ErrorIs(t, err, vertexcover.ErrUnknownMode)
	_, err = new(vertexcover.Solver).Solve(g, vertexcover.Mode(7))
	assert.ErrorIs(t, err, vertexcover.ErrUnknownMode)
	_, err = (&vertexcover.Solver{Method: vertexcover.Method(5)}).Solve(g, vertexcover.ModeIP)
	assert.ErrorIs(t, err, vertexcover.ErrUnknownMethod)
	assert.Equal(t, "Method(5)", vertexcover.Method(5).String())
	assert.Equal(t, "Mode(7)", vertexcover.Mode(7).String())
	assert.Equal(t, "LP", vertexcover.ModeLP.String())
}
