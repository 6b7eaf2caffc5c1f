// SPDX-License-Identifier: MIT

package enumerate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstat/constraint"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/dist"
)

// ErrTerminal indicates an s-t terminal outside the node set, or s == t.
var ErrTerminal = errors.New("enumerate: invalid terminal")

// CutSetDist counts every bipartition label of g.
// Key Tuple(|side 1|, cut weight). Each cut is seen twice, once per labeling.
func CutSetDist(g *core.Graph) (*dist.Distribution, error) {
	return cutDist(g, nil)
}

// STCutSetDist is CutSetDist restricted to labelings that put s and t on
// different sides.
func STCutSetDist(g *core.Graph, s, t int) (*dist.Distribution, error) {
	n := g.NodeCount()
	if s < 0 || s >= n || t < 0 || t >= n || s == t {
		return nil, fmt.Errorf("STCutSetDist: s=%d t=%d n=%d: %w", s, t, n, ErrTerminal)
	}

	return cutDist(g, func(a []float64) bool { return a[s] != a[t] })
}

func cutDist(g *core.Graph, keep func([]float64) bool) (*dist.Distribution, error) {
	cg := constraint.New(g, constraint.NotEqual)
	edges := cg.Edges()
	out := dist.New()

	var (
		checks []float64
		err    error
	)
	ForEachAssignment(g.NodeCount(), BinaryDomain, func(a []float64) {
		if err != nil || (keep != nil && !keep(a)) {
			return
		}
		if checks, err = cg.CheckValuesInto(checks, a); err != nil {
			return
		}
		var ones float64
		for _, x := range a {
			ones += x
		}
		out.Inc(dist.Tuple(ones, cutWeight(edges, checks)))
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func cutWeight(edges []core.Edge, checks []float64) float64 {
	var w float64
	for i, c := range checks {
		w += edges[i].Weight * c
	}
	return w
}
