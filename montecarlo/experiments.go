// SPDX-License-Identifier: MIT

package montecarlo

import (
	"math"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/dist"
	"github.com/katalvlaran/graphstat/enumerate"
	"github.com/katalvlaran/graphstat/mincut"
)

// optTol decides LP == IP.
const optTol = 1e-9

// AverageVertexCoverDist averages enumerate.VertexCoverDist.
func (a *Aggregator) AverageVertexCoverDist() (*dist.Distribution, error) {
	return a.averageDist("ave_vertex_cover_dist", enumerate.VertexCoverDist)
}

// AverageHalfIntegralVertexCoverDist averages
// enumerate.HalfIntegralVertexCoverDist; keys stay (halves, ones) tuples.
func (a *Aggregator) AverageHalfIntegralVertexCoverDist() (*dist.Distribution, error) {
	return a.averageDist("ave_half_integral_vertex_cover_dist", enumerate.HalfIntegralVertexCoverDist)
}

// AverageCutSetDist averages enumerate.CutSetDist.
func (a *Aggregator) AverageCutSetDist() (*dist.Distribution, error) {
	return a.averageDist("ave_cutset_dist", enumerate.CutSetDist)
}

// AverageThreeWayCutSetDist averages enumerate.ThreeWayCutSetDist.
func (a *Aggregator) AverageThreeWayCutSetDist() (*dist.Distribution, error) {
	return a.averageDist("ave_3way_cutset_dist", enumerate.ThreeWayCutSetDist)
}

// ProbDistMinVertexCover is the distribution of the minimum vertex cover size.
func (a *Aggregator) ProbDistMinVertexCover() (*dist.Distribution, error) {
	return a.probDist("prob_dist_min_vertex_cover", func(g *core.Graph) (float64, error) {
		sol, err := a.solver.IPSolve(g)
		if err != nil {
			return 0, err
		}
		return sol.OptValue(), nil
	})
}

// ProbDistLPMinVertexCover is the distribution of the LP relaxation optimum.
func (a *Aggregator) ProbDistLPMinVertexCover() (*dist.Distribution, error) {
	return a.probDist("prob_dist_lp_min_vertex_cover", func(g *core.Graph) (float64, error) {
		sol, err := a.solver.LPSolve(g)
		if err != nil {
			return 0, err
		}
		return sol.OptValue(), nil
	})
}

// ProbDistGlobalMinCut is the distribution of the global min cut weight.
func (a *Aggregator) ProbDistGlobalMinCut() (*dist.Distribution, error) {
	return a.probDist("prob_dist_global_min_cut", func(g *core.Graph) (float64, error) {
		return mincut.GlobalMinCut(g, a.cutOpts...)
	})
}

// ProbDistSTMinCut is the distribution of the min cut separating the first
// and the last node.
func (a *Aggregator) ProbDistSTMinCut() (*dist.Distribution, error) {
	return a.probDist("prob_dist_st_min_cut", func(g *core.Graph) (float64, error) {
		return mincut.STMinCut(g, 0, g.NodeCount()-1, a.cutOpts...)
	})
}

// IPLPReport compares the LP relaxation with the integral optimum.
type IPLPReport struct {
	// AveHalves is the mean number of LP values equal to 1/2.
	AveHalves float64
	// AveHalvesRatio is AveHalves over the ensemble's node count.
	AveHalvesRatio float64
	// AveOptRatio is the mean of LP/IP per trial; 1 when both are 0.
	AveOptRatio float64
	AveLPOpt    float64
	AveIPOpt    float64
	// LPEqualIPProb is the fraction of trials where the optima coincide.
	LPEqualIPProb float64
}

// CompareIPLP solves both programs on every sample.
func (a *Aggregator) CompareIPLP() (IPLPReport, error) {
	var halves, ratio, lpSum, ipSum, equal float64
	err := a.run("ip_lp_ensemble", func(g *core.Graph) error {
		lp, err := a.solver.LPSolve(g)
		if err != nil {
			return err
		}
		ip, err := a.solver.IPSolve(g)
		if err != nil {
			return err
		}
		lv, iv := lp.OptValue(), ip.OptValue()

		halves += float64(lp.CountHalves())
		if iv == 0 {
			ratio++
		} else {
			ratio += lv / iv
		}
		lpSum += lv
		ipSum += iv
		if math.Abs(lv-iv) <= optTol {
			equal++
		}
		return nil
	})
	if err != nil {
		return IPLPReport{}, err
	}

	t := float64(a.trials)
	r := IPLPReport{
		AveHalves:     halves / t,
		AveOptRatio:   ratio / t,
		AveLPOpt:      lpSum / t,
		AveIPOpt:      ipSum / t,
		LPEqualIPProb: equal / t,
	}
	if n := a.ens.NodeCount(); n > 0 {
		r.AveHalvesRatio = r.AveHalves / float64(n)
	}

	return r, nil
}
