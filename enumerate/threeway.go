// SPDX-License-Identifier: MIT

package enumerate

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/graphstat/constraint"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/dist"
)

// CutSet is the ascending list of ids of the edges crossing a partition.
type CutSet []int

func (c CutSet) String() string {
	parts := make([]string, len(c))
	for i, id := range c {
		parts[i] = fmt.Sprint(id)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// compareCutSets orders by size, then lexicographically.
func compareCutSets(a, b interface{}) int {
	x, y := a.(CutSet), b.(CutSet)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// DetailedThreeWayCutSetDist counts every ternary labeling of g.
// Key Tuple(|g0|, |g1|, |g2|, cut weight).
func DetailedThreeWayCutSetDist(g *core.Graph) (*dist.Distribution, error) {
	cg := constraint.New(g, constraint.NotEqual)
	edges := cg.Edges()
	out := dist.New()

	var (
		checks []float64
		err    error
	)
	ForEachAssignment(g.NodeCount(), TernaryDomain, func(a []float64) {
		if err != nil {
			return
		}
		if checks, err = cg.CheckValuesInto(checks, a); err != nil {
			return
		}
		var size [3]float64
		for _, x := range a {
			size[int(x)]++
		}
		out.Inc(dist.Tuple(size[0], size[1], size[2], cutWeight(edges, checks)))
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AllThreeWayCutSets returns the distinct edge sets cut by partitions of g
// into three non-empty groups, ordered by size then lexicographically.
// Relabelings of the same partition, and distinct partitions cutting the
// same edges, collapse to one CutSet.
func AllThreeWayCutSets(g *core.Graph) ([]CutSet, error) {
	cg := constraint.New(g, constraint.NotEqual)
	edges := cg.Edges()
	seen := treeset.NewWith(compareCutSets)

	var (
		checks []float64
		err    error
	)
	ForEachAssignment(g.NodeCount(), TernaryDomain, func(a []float64) {
		if err != nil || !usesAllLabels(a) {
			return
		}
		if checks, err = cg.CheckValuesInto(checks, a); err != nil {
			return
		}
		cs := CutSet{}
		for i, c := range checks {
			if c == 1 {
				cs = append(cs, edges[i].ID)
			}
		}
		seen.Add(cs)
	})
	if err != nil {
		return nil, err
	}

	out := make([]CutSet, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(CutSet))
	}

	return out, nil
}

// ThreeWayCutSetDist counts distinct 3-way cut sets by edge count.
// Key Scalar(|cut set|); every size 0..m is present, zero when unseen.
func ThreeWayCutSetDist(g *core.Graph) (*dist.Distribution, error) {
	sets, err := AllThreeWayCutSets(g)
	if err != nil {
		return nil, err
	}
	out := dist.New()
	for k := 0; k <= g.EdgeCount(); k++ {
		out.Set(dist.Scalar(float64(k)), 0)
	}
	for _, cs := range sets {
		out.Inc(dist.Scalar(float64(len(cs))))
	}

	return out, nil
}

func usesAllLabels(a []float64) bool {
	var used [3]bool
	for _, x := range a {
		used[int(x)] = true
	}
	return used[0] && used[1] && used[2]
}
