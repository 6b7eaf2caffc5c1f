package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/ensemble"
)

type EnsembleSuite struct {
	suite.Suite
	src *ensemble.Source
}

func (s *EnsembleSuite) SetupTest() {
	s.src = ensemble.NewSource(2013)
}

func TestEnsembleSuite(t *testing.T) {
	suite.Run(t, new(EnsembleSuite))
}

func (s *EnsembleSuite) TestSpecifiedDegreeDist_NodeCountAndMeanDegree() {
	dd := []int{0, 4, 3, 2, 1}
	e, err := ensemble.NewSpecifiedDegreeDist(dd, s.src)
	s.Require().NoError(err)
	s.Equal(10, e.NodeCount())
	m, err := e.EdgeCount()
	s.Require().NoError(err)
	s.Equal(10, m)
	s.InDelta(2.0, e.MeanDegree(), 1e-12)

	var degreeSum, nodeSum int
	for i := 0; i < 200; i++ {
		g, err := e.GenerateGraph()
		s.Require().NoError(err)
		s.Require().Equal(10, g.NodeCount())
		for _, v := range g.Nodes() {
			d, err := g.Degree(v)
			s.Require().NoError(err)
			degreeSum += d
		}
		nodeSum += g.NodeCount()
	}
	s.InDelta(e.MeanDegree(), float64(degreeSum)/float64(nodeSum), 1e-9)
}

func (s *EnsembleSuite) TestSpecifiedDegreeDist_OddStubSumFailsUpFront() {
	_, err := ensemble.NewSpecifiedDegreeDist([]int{0, 1, 1}, s.src)
	s.ErrorIs(err, ensemble.ErrDegreeDist)
	s.True(ensemble.IsConfigError(err))

	_, err = ensemble.NewSpecifiedDegreeDist([]int{0, 3}, s.src)
	s.ErrorIs(err, ensemble.ErrDegreeDist)
}

func (s *EnsembleSuite) TestSpecifiedDegreeDist_CopiesInput() {
	dd := []int{0, 2}
	e, err := ensemble.NewSpecifiedDegreeDist(dd, s.src)
	s.Require().NoError(err)
	dd[1] = 7
	s.Equal([]int{0, 2}, e.DegreeDist())
	s.Equal("SpecifiedDegreeDistEnsemble(degree_dist=[0, 2])", e.String())
}

func (s *EnsembleSuite) TestErdosRenyi() {
	e, err := ensemble.NewErdosRenyi(8, 0.4, s.src)
	s.Require().NoError(err)
	_, err = e.EdgeCount()
	s.ErrorIs(err, ensemble.ErrEdgeCountNotFixed)

	for i := 0; i < 50; i++ {
		g, err := e.GenerateGraph()
		s.Require().NoError(err)
		s.Equal(8, g.NodeCount())
		s.True(g.IsSimple())
	}

	_, err = ensemble.NewErdosRenyi(8, 1.2, s.src)
	s.ErrorIs(err, builder.ErrInvalidProbability)
}

func (s *EnsembleSuite) TestNM() {
	e, err := ensemble.NewNM(6, 9, s.src)
	s.Require().NoError(err)
	g, err := e.GenerateGraph()
	s.Require().NoError(err)
	s.Equal(9, g.EdgeCount())
	s.True(g.IsSimple())

	_, err = ensemble.NewNM(4, 7, s.src)
	s.ErrorIs(err, builder.ErrTooManyEdges)
}

func (s *EnsembleSuite) TestMultiGraph() {
	e, err := ensemble.NewMultiGraph(3, 20, s.src)
	s.Require().NoError(err)
	g, err := e.GenerateGraph()
	s.Require().NoError(err)
	s.Equal(3, g.NodeCount())
	s.Equal(20, g.EdgeCount())
}

func (s *EnsembleSuite) TestNilSource() {
	_, err := ensemble.NewMultiGraph(3, 2, nil)
	s.ErrorIs(err, ensemble.ErrNilSource)
}

func (s *EnsembleSuite) TestReseedReproduces() {
	e, err := ensemble.NewSpecifiedDegreeDist([]int{0, 2, 4, 2}, s.src)
	s.Require().NoError(err)

	first, err := e.GenerateGraph()
	s.Require().NoError(err)
	s.src.Reseed(2013)
	again, err := e.GenerateGraph()
	s.Require().NoError(err)
	s.Equal(first.Edges(), again.Edges())
	s.Equal(int64(2013), s.src.Seed())
}

func TestParseKind(t *testing.T) {
	for _, k := range ensemble.Kinds() {
		got, err := ensemble.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ensemble.ParseKind("RegularGraphEnsemble")
	assert.ErrorIs(t, err, ensemble.ErrUnknownEnsemble)
}

func TestParseSeed(t *testing.T) {
	assert.Equal(t, int64(42), ensemble.ParseSeed("42"))
	assert.Equal(t, int64(-3), ensemble.ParseSeed(" -3 "))
	assert.Equal(t, ensemble.ParseSeed("hello"), ensemble.ParseSeed("hello"))
	assert.NotEqual(t, ensemble.ParseSeed("hello"), ensemble.ParseSeed("world"))
}

func TestWithDegreeBump(t *testing.T) {
	base := []int{0, 10, 10}
	got, err := ensemble.WithDegreeBump(base, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 10, 0, 3}, got)
	assert.Equal(t, []int{0, 10, 10}, base)

	_, err = ensemble.WithDegreeBump(base, 1, -11)
	assert.ErrorIs(t, err, ensemble.ErrDegreeDist)
}

func TestLoad(t *testing.T) {
	src := ensemble.NewSource(1)

	tests := []struct {
		file  string
		kind  ensemble.Kind
		nodes int
	}{
		{"testdata/degree.json", ensemble.KindSpecifiedDegreeDist, 4},
		{"testdata/er.yaml", ensemble.KindErdosRenyi, 6},
		{"testdata/nm.json", ensemble.KindNM, 5},
		{"testdata/multi.json", ensemble.KindMultiGraph, 4},
		{"testdata/nm", ensemble.KindNM, 7},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			e, err := ensemble.Load(tc.file, src)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, e.Kind())
			assert.Equal(t, tc.nodes, e.NodeCount())
		})
	}

	def, err := ensemble.LoadDefinition("testdata/er.yaml")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, def.Params.EdgeProb, 1e-12)

	_, err = ensemble.Load("testdata/unknown.json", src)
	assert.ErrorIs(t, err, ensemble.ErrUnknownEnsemble)

	_, err = ensemble.Load("testdata/odd.json", src)
	assert.ErrorIs(t, err, ensemble.ErrDegreeDist)

	_, err = ensemble.Load("testdata/missing.json", src)
	assert.Error(t, err)
}
