// SPDX-License-Identifier: MIT

package linprog

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Defaults for SolveOption knobs.
const (
	DefaultTolerance            = 1e-10
	DefaultIntegralityTolerance = 1e-6
	DefaultNodeLimit            = 1 << 20
)

// SolveOption customizes Solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	tol       float64
	intTol    float64
	nodeLimit int
	integral  bool
}

// WithTolerance sets the simplex tolerance. Panics if tol ≤ 0.
func WithTolerance(tol float64) SolveOption {
	if !(tol > 0) {
		panic(fmt.Sprintf("linprog: WithTolerance(%g)", tol))
	}
	return func(c *solveConfig) { c.tol = tol }
}

// WithIntegralityTolerance sets how far from 0 or 1 a binary variable may be
// and still count as integral. Panics unless 0 < tol < 0.5.
func WithIntegralityTolerance(tol float64) SolveOption {
	if !(tol > 0 && tol < 0.5) {
		panic(fmt.Sprintf("linprog: WithIntegralityTolerance(%g)", tol))
	}
	return func(c *solveConfig) { c.intTol = tol }
}

// WithNodeLimit caps the number of relaxations branch-and-bound may solve.
// Panics if n < 1.
func WithNodeLimit(n int) SolveOption {
	if n < 1 {
		panic(fmt.Sprintf("linprog: WithNodeLimit(%d)", n))
	}
	return func(c *solveConfig) { c.nodeLimit = n }
}

// WithIntegralObjective declares that the objective is an integer at every
// integral point, as with 0/1 objective coefficients on binary variables.
// Branch-and-bound then rounds each relaxation bound up before comparing it
// with the incumbent.
func WithIntegralObjective() SolveOption {
	return func(c *solveConfig) { c.integral = true }
}

// Result is an optimal assignment.
type Result struct {
	// Values holds one value per Program variable, in declaration order.
	Values []float64
	// Objective is Σ Objective_j · Values_j.
	Objective float64
	// Nodes is the number of relaxations solved (1 for a pure LP).
	Nodes int
}

// Solve returns an optimal solution of p. Programs with binary variables
// are solved exactly by branch-and-bound; the rest is one simplex call.
//
// Errors: ErrProgram, ErrInfeasible, ErrUnbounded, ErrSolver, ErrNodeLimit.
func Solve(p *Program, opts ...SolveOption) (*Result, error) {
	cfg := solveConfig{tol: DefaultTolerance, intTol: DefaultIntegralityTolerance, nodeLimit: DefaultNodeLimit}
	for _, o := range opts {
		o(&cfg)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lower := make([]float64, len(p.Variables))
	upper := make([]float64, len(p.Variables))
	hasBinary := false
	for j, v := range p.Variables {
		lower[j], upper[j] = v.Lower, v.Upper
		if v.Type == Binary {
			hasBinary = true
			lower[j] = math.Max(0, math.Ceil(v.Lower-cfg.intTol))
			upper[j] = math.Min(1, math.Floor(v.Upper+cfg.intTol))
			if lower[j] > upper[j] {
				return nil, fmt.Errorf("Solve: binary variable %d has no integral value in [%g,%g]: %w",
					j, v.Lower, v.Upper, ErrInfeasible)
			}
		}
	}

	if !hasBinary {
		x, err := solveRelaxation(p, lower, upper, cfg.tol)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		return newResult(p, x, 1), nil
	}

	return branchAndBound(p, lower, upper, cfg)
}

func newResult(p *Program, x []float64, nodes int) *Result {
	obj := make([]float64, len(p.Variables))
	for j, v := range p.Variables {
		obj[j] = v.Objective
	}
	return &Result{Values: x, Objective: floats.Dot(obj, x), Nodes: nodes}
}

// solveRelaxation solves the continuous relaxation of p under the given
// bounds and returns one value per variable.
func solveRelaxation(p *Program, lower, upper []float64, tol float64) ([]float64, error) {
	nv := len(p.Variables)
	sign := 1.0
	if p.Sense == Maximize {
		sign = -1
	}

	x := append([]float64(nil), lower...)
	fixed := make([]bool, nv)
	for j := range fixed {
		fixed[j] = upper[j]-lower[j] <= 0
	}

	// Constraint rows over shifted free variables.
	type row struct {
		coef []float64
		rel  Relation
		rhs  float64
	}
	rows := make([]row, 0, len(p.Constraints))
	used := make([]bool, nv)
	for i, c := range p.Constraints {
		coef := make([]float64, nv)
		rhs := c.RHS
		for _, t := range c.Terms {
			rhs -= t.Coef * lower[t.Var]
			if !fixed[t.Var] {
				coef[t.Var] += t.Coef
			}
		}
		nonzero := false
		for j, a := range coef {
			if a != 0 {
				nonzero = true
				used[j] = true
			}
		}
		if !nonzero {
			if !trivialHolds(c.Relation, rhs, tol) {
				return nil, fmt.Errorf("constraint %d: %w", i, ErrInfeasible)
			}
			continue
		}
		rows = append(rows, row{coef: coef, rel: c.Relation, rhs: rhs})
	}

	// Columns: free used variables, then upper-bound slacks, then row slacks.
	col := make([]int, nv)
	var vars []int
	for j := 0; j < nv; j++ {
		col[j] = -1
		if fixed[j] {
			continue
		}
		if !used[j] && math.IsInf(upper[j], 1) {
			if sign*p.Variables[j].Objective < 0 {
				return nil, fmt.Errorf("variable %d: %w", j, ErrUnbounded)
			}
			continue
		}
		if !used[j] && sign*p.Variables[j].Objective >= 0 {
			continue
		}
		col[j] = len(vars)
		vars = append(vars, j)
	}
	var bounded []int
	for _, j := range vars {
		if !math.IsInf(upper[j], 1) {
			bounded = append(bounded, j)
		}
	}
	slackRows := 0
	for _, r := range rows {
		if r.rel != EQ {
			slackRows++
		}
	}

	m := len(rows) + len(bounded)
	n := len(vars) + len(bounded) + slackRows
	if m == 0 {
		return x, nil
	}
	if m > n {
		return nil, fmt.Errorf("%d rows > %d columns: %w", m, n, ErrSolver)
	}

	A := mat.NewDense(m, n, nil)
	b := make([]float64, m)
	c := make([]float64, n)
	for k, j := range vars {
		c[k] = sign * p.Variables[j].Objective
	}

	r := 0
	slack := len(vars) + len(bounded)
	for _, rw := range rows {
		for j, a := range rw.coef {
			if a != 0 && col[j] >= 0 {
				A.Set(r, col[j], a)
			}
		}
		switch rw.rel {
		case LE:
			A.Set(r, slack, 1)
			slack++
		case GE:
			A.Set(r, slack, -1)
			slack++
		}
		b[r] = rw.rhs
		r++
	}
	for k, j := range bounded {
		A.Set(r, col[j], 1)
		A.Set(r, len(vars)+k, 1)
		b[r] = upper[j] - lower[j]
		r++
	}
	for i := 0; i < m; i++ {
		if b[i] < 0 {
			b[i] = -b[i]
			for k := 0; k < n; k++ {
				A.Set(i, k, -A.At(i, k))
			}
		}
	}

	_, optX, err := lp.Simplex(c, A, b, tol, nil)
	if err != nil {
		return nil, mapSolverError(err)
	}
	for k, j := range vars {
		x[j] = lower[j] + optX[k]
	}
	return x, nil
}

// trivialHolds checks "0 rel rhs" for a row with no free terms.
func trivialHolds(rel Relation, rhs, tol float64) bool {
	switch rel {
	case LE:
		return rhs >= -tol
	case GE:
		return rhs <= tol
	default:
		return math.Abs(rhs) <= tol
	}
}
