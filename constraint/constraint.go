// SPDX-License-Identifier: MIT
//
// Package constraint turns a full node assignment into one check value per
// edge, the primitive every exact enumeration calculator is built on.
//
// For each edge (u,v), in the graph's edge order, the check value is
// check(a[u], a[v]). Parallel edges contribute one value each; a self-loop
// contributes a single value check(a[u], a[u]).
package constraint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

// ErrSizeMismatch indicates an assignment whose length differs from the node count.
var ErrSizeMismatch = errors.New("constraint: assignment size mismatch")

// CheckFunc combines the values of an edge's two endpoints.
type CheckFunc func(a, b float64) float64

// Sum is the vertex-cover check: a + b.
func Sum(a, b float64) float64 { return a + b }

// NotEqual is the cut indicator: 1 when the endpoints differ, else 0.
func NotEqual(a, b float64) float64 {
	if a != b {
		return 1
	}
	return 0
}

// Graph pairs a core.Graph with a CheckFunc. The edge list is captured at
// construction; later mutations of the underlying graph are not observed.
type Graph struct {
	g     *core.Graph
	edges []core.Edge
	n     int
	check CheckFunc
}

// New wraps g. A nil check defaults to Sum.
func New(g *core.Graph, check CheckFunc) *Graph {
	if check == nil {
		check = Sum
	}

	return &Graph{g: g, edges: g.Edges(), n: g.NodeCount(), check: check}
}

// Graph returns the wrapped graph.
func (c *Graph) Graph() *core.Graph { return c.g }

// Edges returns the captured edges in check-value order.
func (c *Graph) Edges() []core.Edge { return c.edges }

// CheckValues returns one check value per edge for assignment.
func (c *Graph) CheckValues(assignment []float64) ([]float64, error) {
	return c.CheckValuesInto(nil, assignment)
}

// CheckValuesInto is CheckValues writing into dst, which is grown as needed
// and returned. Enumeration loops pass the previous result back to avoid an
// allocation per assignment.
func (c *Graph) CheckValuesInto(dst, assignment []float64) ([]float64, error) {
	if len(assignment) != c.n {
		return nil, fmt.Errorf("CheckValues: len(assignment)=%d, nodes=%d: %w", len(assignment), c.n, ErrSizeMismatch)
	}
	dst = dst[:0]
	for _, e := range c.edges {
		dst = append(dst, c.check(assignment[e.From], assignment[e.To]))
	}

	return dst, nil
}
