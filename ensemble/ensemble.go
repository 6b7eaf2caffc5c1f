// SPDX-License-Identifier: MIT

package ensemble

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/core"
)

// Ensemble produces independent random graphs on demand.
type Ensemble interface {
	// Kind reports the ensemble family.
	Kind() Kind
	// NodeCount is the node count shared by every sample.
	NodeCount() int
	// EdgeCount is the edge count shared by every sample, or
	// ErrEdgeCountNotFixed when samples differ.
	EdgeCount() (int, error)
	// GenerateGraph draws a fresh graph from the ensemble's Source.
	GenerateGraph() (*core.Graph, error)
	// String describes the ensemble and its parameters.
	String() string
}

const (
	methodNewSpecifiedDegreeDist = "NewSpecifiedDegreeDist"
	methodNewErdosRenyi          = "NewErdosRenyi"
	methodNewNM                  = "NewNM"
	methodNewMultiGraph          = "NewMultiGraph"
)

// -----------------------------------------------------------------------------
// SpecifiedDegreeDist
// -----------------------------------------------------------------------------

// SpecifiedDegreeDist is the configuration-model ensemble.
type SpecifiedDegreeDist struct {
	degreeDist []int
	src        *Source
}

// NewSpecifiedDegreeDist validates degreeDist and returns the ensemble.
// degreeDist[d] is the number of nodes of degree d; the slice is copied.
func NewSpecifiedDegreeDist(degreeDist []int, src *Source) (*SpecifiedDegreeDist, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodNewSpecifiedDegreeDist, ErrNilSource)
	}
	if err := builder.ValidateDegreeDist(degreeDist); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodNewSpecifiedDegreeDist, err, ErrDegreeDist)
	}

	return &SpecifiedDegreeDist{degreeDist: append([]int(nil), degreeDist...), src: src}, nil
}

func (e *SpecifiedDegreeDist) Kind() Kind { return KindSpecifiedDegreeDist }

func (e *SpecifiedDegreeDist) NodeCount() int { return builder.NodeCount(e.degreeDist) }

func (e *SpecifiedDegreeDist) EdgeCount() (int, error) { return builder.StubCount(e.degreeDist) / 2, nil }

// DegreeDist returns a copy of the degree histogram.
func (e *SpecifiedDegreeDist) DegreeDist() []int { return append([]int(nil), e.degreeDist...) }

// MeanDegree is Σ d·dd[d] / Σ dd[d], the average degree of every sample.
func (e *SpecifiedDegreeDist) MeanDegree() float64 {
	return float64(builder.StubCount(e.degreeDist)) / float64(e.NodeCount())
}

func (e *SpecifiedDegreeDist) GenerateGraph() (*core.Graph, error) {
	return builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithRand(e.src.Rand())},
		builder.ConfigurationModel(e.degreeDist),
	)
}

func (e *SpecifiedDegreeDist) String() string {
	return fmt.Sprintf("%s(degree_dist=%s)", e.Kind(), formatInts(e.degreeDist))
}

// -----------------------------------------------------------------------------
// ErdosRenyi
// -----------------------------------------------------------------------------

// ErdosRenyi is the G(n,p) ensemble.
type ErdosRenyi struct {
	n   int
	p   float64
	src *Source
}

// NewErdosRenyi validates n ≥ 1 and p ∈ [0,1].
func NewErdosRenyi(n int, p float64, src *Source) (*ErdosRenyi, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodNewErdosRenyi, ErrNilSource)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewErdosRenyi, n, builder.ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodNewErdosRenyi, p, builder.ErrInvalidProbability)
	}

	return &ErdosRenyi{n: n, p: p, src: src}, nil
}

func (e *ErdosRenyi) Kind() Kind { return KindErdosRenyi }

func (e *ErdosRenyi) NodeCount() int { return e.n }

func (e *ErdosRenyi) EdgeCount() (int, error) {
	return 0, fmt.Errorf("%s.EdgeCount: %w", e.Kind(), ErrEdgeCountNotFixed)
}

// EdgeProb returns p.
func (e *ErdosRenyi) EdgeProb() float64 { return e.p }

func (e *ErdosRenyi) GenerateGraph() (*core.Graph, error) {
	return builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(e.src.Rand())},
		builder.RandomSparse(e.n, e.p),
	)
}

func (e *ErdosRenyi) String() string {
	return fmt.Sprintf("%s(num_of_nodes=%d, edge_prob=%g)", e.Kind(), e.n, e.p)
}

// -----------------------------------------------------------------------------
// NM
// -----------------------------------------------------------------------------

// NM is the G(n,m) ensemble.
type NM struct {
	n, m int
	src  *Source
}

// NewNM validates n ≥ 1 and 0 ≤ m ≤ n(n-1)/2.
func NewNM(n, m int, src *Source) (*NM, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodNewNM, ErrNilSource)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewNM, n, builder.ErrTooFewVertices)
	}
	if limit := builder.MaxSimpleEdges(n); m < 0 || m > limit {
		return nil, fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodNewNM, m, limit, builder.ErrTooManyEdges)
	}

	return &NM{n: n, m: m, src: src}, nil
}

func (e *NM) Kind() Kind { return KindNM }

func (e *NM) NodeCount() int { return e.n }

func (e *NM) EdgeCount() (int, error) { return e.m, nil }

func (e *NM) GenerateGraph() (*core.Graph, error) {
	return builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(e.src.Rand())},
		builder.RandomNM(e.n, e.m),
	)
}

func (e *NM) String() string {
	return fmt.Sprintf("%s(num_of_nodes=%d, num_of_edges=%d)", e.Kind(), e.n, e.m)
}

// -----------------------------------------------------------------------------
// MultiGraph
// -----------------------------------------------------------------------------

// MultiGraph draws m edges with independently uniform endpoints.
type MultiGraph struct {
	n, m int
	src  *Source
}

// NewMultiGraph validates n ≥ 1 and m ≥ 0.
func NewMultiGraph(n, m int, src *Source) (*MultiGraph, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodNewMultiGraph, ErrNilSource)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewMultiGraph, n, builder.ErrTooFewVertices)
	}
	if m < 0 {
		return nil, fmt.Errorf("%s: m=%d: %w", methodNewMultiGraph, m, builder.ErrTooManyEdges)
	}

	return &MultiGraph{n: n, m: m, src: src}, nil
}

func (e *MultiGraph) Kind() Kind { return KindMultiGraph }

func (e *MultiGraph) NodeCount() int { return e.n }

func (e *MultiGraph) EdgeCount() (int, error) { return e.m, nil }

func (e *MultiGraph) GenerateGraph() (*core.Graph, error) {
	return builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithRand(e.src.Rand())},
		builder.RandomMulti(e.n, e.m),
	)
}

func (e *MultiGraph) String() string {
	return fmt.Sprintf("%s(num_of_nodes=%d, num_of_edges=%d)", e.Kind(), e.n, e.m)
}

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

// WithDegreeBump returns a copy of degreeDist with plus extra nodes of the
// given degree, growing the slice when degree is past its end.
func WithDegreeBump(degreeDist []int, degree, plus int) ([]int, error) {
	if degree < 0 {
		return nil, fmt.Errorf("WithDegreeBump: degree=%d: %w", degree, ErrDegreeDist)
	}
	out := make([]int, max(len(degreeDist), degree+1))
	copy(out, degreeDist)
	out[degree] += plus
	if out[degree] < 0 {
		return nil, fmt.Errorf("WithDegreeBump: degreeDist[%d]=%d: %w", degree, out[degree], ErrDegreeDist)
	}

	return out, nil
}

// IsConfigError reports whether err is a parameter validation failure from
// any ensemble constructor.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrDegreeDist) ||
		errors.Is(err, ErrUnknownEnsemble) ||
		errors.Is(err, builder.ErrTooFewVertices) ||
		errors.Is(err, builder.ErrInvalidProbability) ||
		errors.Is(err, builder.ErrTooManyEdges)
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
