// SPDX-License-Identifier: MIT

package linprog

import (
	"errors"
	"fmt"
	"math"
)

// bnb is the depth-first branch-and-bound state. Objectives are compared in
// minimization form (negated for Maximize).
type bnb struct {
	p       *Program
	cfg     solveConfig
	sign    float64
	best    []float64
	bestObj float64
	nodes   int
}

// branchAndBound solves p exactly over its binary variables.
//
// Each node solves the relaxation under the current bounds, prunes when it
// is infeasible or cannot beat the incumbent (rounding the bound up under
// WithIntegralObjective), and otherwise branches on the
// most fractional binary variable (lowest index on ties), trying x = 1 first.
func branchAndBound(p *Program, lower, upper []float64, cfg solveConfig) (*Result, error) {
	s := &bnb{p: p, cfg: cfg, sign: 1, bestObj: math.Inf(1)}
	if p.Sense == Maximize {
		s.sign = -1
	}
	if err := s.visit(lower, upper); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if s.best == nil {
		return nil, fmt.Errorf("Solve: no integral solution: %w", ErrInfeasible)
	}
	return newResult(p, s.best, s.nodes), nil
}

func (s *bnb) objective(x []float64) float64 {
	obj := 0.0
	for j, v := range s.p.Variables {
		obj += v.Objective * x[j]
	}
	return s.sign * obj
}

func (s *bnb) visit(lower, upper []float64) error {
	if s.nodes >= s.cfg.nodeLimit {
		return ErrNodeLimit
	}
	s.nodes++

	x, err := solveRelaxation(s.p, lower, upper, s.cfg.tol)
	if errors.Is(err, ErrInfeasible) {
		return nil
	}
	if err != nil {
		return err
	}
	bound := s.objective(x)
	if s.cfg.integral {
		bound = math.Ceil(bound - s.cfg.intTol)
	}
	if bound >= s.bestObj-s.cfg.intTol {
		return nil
	}

	branch, worst := -1, s.cfg.intTol
	for j, v := range s.p.Variables {
		if v.Type != Binary {
			continue
		}
		if frac := math.Abs(x[j] - math.Round(x[j])); frac > worst {
			branch, worst = j, frac
		}
	}
	if branch < 0 {
		for j, v := range s.p.Variables {
			if v.Type == Binary {
				x[j] = math.Round(x[j])
			}
		}
		s.best, s.bestObj = x, s.objective(x)
		return nil
	}

	for _, val := range [2]float64{1, 0} {
		lo := append([]float64(nil), lower...)
		hi := append([]float64(nil), upper...)
		lo[branch], hi[branch] = val, val
		if err := s.visit(lo, hi); err != nil {
			return err
		}
	}
	return nil
}
