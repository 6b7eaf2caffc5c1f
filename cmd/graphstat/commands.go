// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/graphstat/dist"
	"github.com/katalvlaran/graphstat/montecarlo"
)

// -----------------------------------------------------------------------------
// vc-dist
// -----------------------------------------------------------------------------

type vcDistCmd struct {
	Ensemble string `arg:"" type:"existingfile" help:"Ensemble definition file (JSON or YAML)"`
}

func (c *vcDistCmd) Run(a *app) error {
	agg, err := a.aggregator(c.Ensemble)
	if err != nil {
		return err
	}
	ip, err := agg.AverageVertexCoverDist()
	if err != nil {
		return err
	}
	table, err := agg.AverageHalfIntegralVertexCoverDist()
	if err != nil {
		return err
	}
	lp, err := dist.FlattenHalfIntegral(table)
	if err != nil {
		return err
	}

	a.printf("= main result =\n")
	if err = a.printDist("ave_ip_vertex_cover_dist", ip, 5); err != nil {
		return err
	}
	if err = a.printDist("ave_lp_vertex_cover_dist", table, 10); err != nil {
		return err
	}
	if err = a.printDist("ave_lp_vertex_cover_dist(flatten)", lp, 7); err != nil {
		return err
	}

	n := float64(agg.Ensemble().NodeCount())
	if ip, err = dist.Fill(ip, 0, n, 1); err != nil {
		return err
	}
	if lp, err = dist.Fill(lp, 0, n, 0.5); err != nil {
		return err
	}
	if err = a.writeDist("-ip.dat", ip); err != nil {
		return err
	}
	return a.writeDist("-lp.dat", lp)
}

// -----------------------------------------------------------------------------
// prob-min-vc
// -----------------------------------------------------------------------------

type probMinVCCmd struct {
	Ensemble string `arg:"" type:"existingfile" help:"Ensemble definition file (JSON or YAML)"`
	Probdist bool   `help:"Report the probability distribution instead of the at-least form"`
}

func (c *probMinVCCmd) Run(a *app) error {
	agg, err := a.aggregator(c.Ensemble)
	if err != nil {
		return err
	}
	ip, err := agg.ProbDistMinVertexCover()
	if err != nil {
		return err
	}
	lp, err := agg.ProbDistLPMinVertexCover()
	if err != nil {
		return err
	}

	ipTitle := "prob_dist_min_vertex_cover"
	lpTitle := "prob_dist_lp_min_vertex_cover"
	if !c.Probdist {
		if ip, err = dist.Cumulative(ip, 1); err != nil {
			return err
		}
		if lp, err = dist.Cumulative(lp, 0.5); err != nil {
			return err
		}
		ipTitle, lpTitle = "prob_min_vertex_cover_at_least", "prob_lp_min_vertex_cover_at_least"
	}

	a.printf("= main result =\n")
	if err = a.printDist(ipTitle, ip, 5); err != nil {
		return err
	}
	a.printf("\n")
	if err = a.printDist(lpTitle, lp, 5); err != nil {
		return err
	}
	if err = a.writeDist("-ip.dat", ip); err != nil {
		return err
	}
	return a.writeDist("-lp.dat", lp)
}

// -----------------------------------------------------------------------------
// prob-min-cut
// -----------------------------------------------------------------------------

type probMinCutCmd struct {
	Ensemble      string `arg:"" type:"existingfile" help:"Ensemble definition file (JSON or YAML)"`
	NonCumulative bool   `help:"Report the probability distribution instead of the at-least form"`
}

func (c *probMinCutCmd) Run(a *app) error {
	agg, err := a.aggregator(c.Ensemble)
	if err != nil {
		return err
	}
	global, err := agg.ProbDistGlobalMinCut()
	if err != nil {
		return err
	}
	st, err := agg.ProbDistSTMinCut()
	if err != nil {
		return err
	}

	globalTitle, stTitle := "prob_dist_global_min_cut", "prob_dist_st_min_cut"
	if !c.NonCumulative {
		if global, err = dist.Cumulative(global, 1); err != nil {
			return err
		}
		if st, err = dist.Cumulative(st, 1); err != nil {
			return err
		}
		globalTitle, stTitle = "prob_global_min_cut_at_least", "prob_st_min_cut_at_least"
	}

	a.printf("= main result =\n")
	if err = a.printDist(globalTitle, global, 5); err != nil {
		return err
	}
	if err = a.printDist(stTitle, st, 5); err != nil {
		return err
	}
	if err = a.writeDist("-global.dat", global); err != nil {
		return err
	}
	return a.writeDist("-st.dat", st)
}

// -----------------------------------------------------------------------------
// cutset-dist
// -----------------------------------------------------------------------------

type cutsetDistCmd struct {
	Ensemble string `arg:"" type:"existingfile" help:"Ensemble definition file (JSON or YAML)"`
}

func (c *cutsetDistCmd) Run(a *app) error {
	agg, err := a.aggregator(c.Ensemble)
	if err != nil {
		return err
	}
	two, err := agg.AverageCutSetDist()
	if err != nil {
		return err
	}
	three, err := agg.AverageThreeWayCutSetDist()
	if err != nil {
		return err
	}

	a.printf("= main result =\n")
	if err = a.printDist("ave_cutset_dist", two, 10); err != nil {
		return err
	}
	if err = a.printDist("ave_3way_cutset_dist", three, 5); err != nil {
		return err
	}
	if err = a.writeDist("-2way.dat", two); err != nil {
		return err
	}
	return a.writeDist("-3way.dat", three)
}

// -----------------------------------------------------------------------------
// ip-lp
// -----------------------------------------------------------------------------

type ipLPCmd struct {
	Ensemble string `arg:"" type:"existingfile" help:"Ensemble definition file (JSON or YAML)"`
}

func (c *ipLPCmd) Run(a *app) error {
	agg, err := a.aggregator(c.Ensemble)
	if err != nil {
		return err
	}
	r, err := agg.CompareIPLP()
	if err != nil {
		return err
	}

	a.printf("= main result =\n")
	a.printf("ave_num_of_one_half: %.4g (%.2f%%)\n", r.AveHalves, 100*r.AveHalvesRatio)
	a.printf("ave_opt_ratio: %.4g\n", r.AveOptRatio)
	a.printf("ave_lp_opt_value: %.4g\n", r.AveLPOpt)
	a.printf("ave_ip_opt_value: %.4g\n", r.AveIPOpt)
	a.printf("lp_equal_ip_prob: %.4g\n", r.LPEqualIPProb)

	return nil
}

// -----------------------------------------------------------------------------
// degree-sweep
// -----------------------------------------------------------------------------

type degreeSweepCmd struct {
	Degree    int `arg:"" help:"Degree whose node count is swept"`
	MaxDegree int `short:"m" help:"Sweep extra nodes from 0 up to (excluding) this count" default:"30"`
}

func (c *degreeSweepCmd) Run(a *app) error {
	a.printf("= experiment params =\n")
	a.printf("num_of_degree: %d\n", c.Degree)
	a.printf("max_degree: %d\n", c.MaxDegree)
	a.printf("num_of_trials: %d\n", a.Trials)
	a.printSeed()
	a.printf("\n")

	rows, err := montecarlo.DegreeSweep(montecarlo.Sweep{
		Degree:  c.Degree,
		MaxPlus: c.MaxDegree,
		Step:    montecarlo.DefaultSweepStep,
		Trials:  a.Trials,
	}, a.src, a.options()...)
	if err != nil {
		return err
	}

	a.printf("= main result: 1.0 - ave_number_of_one_half_ratio =\n")
	for _, r := range rows {
		a.printf("%d %g\n", r.Nodes, r.IntegralRatio)
	}
	a.printf("\n= main result: ave_opt_ratio =\n")
	for _, r := range rows {
		a.printf("%d %g\n", r.Nodes, r.OptRatio)
	}

	return nil
}
