// SPDX-License-Identifier: MIT

package enumerate

import (
	"github.com/katalvlaran/graphstat/constraint"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/dist"
)

// VertexCoverDist counts vertex covers of g by size.
// Key Scalar(|cover|), value the number of covers of that size.
// A loop on v is covered only when v is in the cover.
func VertexCoverDist(g *core.Graph) (*dist.Distribution, error) {
	return coverDist(g, BinaryDomain, func(a []float64) dist.Key {
		var s float64
		for _, x := range a {
			s += x
		}
		return dist.Scalar(s)
	})
}

// HalfIntegralVertexCoverDist counts half-integral covers of g.
// Key Tuple(#halves, #ones); dist.FlattenHalfIntegral folds it to the cover weight.
func HalfIntegralVertexCoverDist(g *core.Graph) (*dist.Distribution, error) {
	return coverDist(g, HalfIntegralDomain, func(a []float64) dist.Key {
		var halves, ones int
		for _, x := range a {
			switch x {
			case 0.5:
				halves++
			case 1:
				ones++
			}
		}
		return dist.Tuple(float64(halves), float64(ones))
	})
}

func coverDist(g *core.Graph, d Domain, key func([]float64) dist.Key) (*dist.Distribution, error) {
	cg := constraint.New(g, constraint.Sum)
	out := dist.New()

	var (
		checks []float64
		err    error
	)
	ForEachAssignment(g.NodeCount(), d, func(a []float64) {
		if err != nil {
			return
		}
		if checks, err = cg.CheckValuesInto(checks, a); err != nil {
			return
		}
		for _, c := range checks {
			if c < 1 {
				return
			}
		}
		out.Inc(key(a))
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
