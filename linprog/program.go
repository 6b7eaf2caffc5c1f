// SPDX-License-Identifier: MIT
//
// Package linprog solves small linear and binary integer programs.
//
// A Program has an objective sense, bounded variables (continuous or
// binary) and linear constraints. Solve converts the continuous relaxation
// to the standard form min cᵀx, Ax = b, x ≥ 0 and hands it to gonum's
// simplex implementation; binary variables are resolved by depth-first
// branch-and-bound on top of that relaxation.
//
// Standard-form conversion:
//
//   - every variable is shifted by its lower bound; a finite upper bound
//     adds the row x' + t = upper - lower with its own slack t;
//   - an LE row gets a +1 slack, a GE row a -1 surplus, an EQ row none;
//   - a row with a negative right-hand side is negated;
//   - fixed variables (lower == upper) are substituted out, and variables
//     that appear nowhere sit at their lower bound.
//
// Lower bounds must be finite. Redundant equality rows may make the
// system singular; inequality rows never do.
package linprog

import (
	"fmt"
	"math"
)

// Sense is the optimization direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// VarType tags a variable as continuous or binary.
type VarType int

const (
	Continuous VarType = iota
	Binary
)

func (t VarType) String() string {
	switch t {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("VarType(%d)", int(t))
	}
}

// Relation is the comparison of a constraint row against its right-hand side.
type Relation int

const (
	LE Relation = iota // Σ terms ≤ RHS
	GE                 // Σ terms ≥ RHS
	EQ                 // Σ terms = RHS
)

func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Variable is one decision variable.
type Variable struct {
	Name      string
	Lower     float64
	Upper     float64 // math.Inf(1) for no upper bound
	Type      VarType
	Objective float64 // objective coefficient
}

// Term is Coef · x[Var]. Repeated terms on one variable are summed.
type Term struct {
	Var  int
	Coef float64
}

// Constraint is Σ Terms Relation RHS.
type Constraint struct {
	Terms    []Term
	Relation Relation
	RHS      float64
}

// Program is a linear program with optional binary variables.
type Program struct {
	Sense       Sense
	Variables   []Variable
	Constraints []Constraint
}

// AddVariable appends v and returns its index.
func (p *Program) AddVariable(v Variable) int {
	p.Variables = append(p.Variables, v)
	return len(p.Variables) - 1
}

// AddConstraint appends c.
func (p *Program) AddConstraint(c Constraint) {
	p.Constraints = append(p.Constraints, c)
}

// Validate checks indices, bounds and enum values.
func (p *Program) Validate() error {
	if p.Sense != Minimize && p.Sense != Maximize {
		return fmt.Errorf("Validate: %s: %w", p.Sense, ErrProgram)
	}
	for j, v := range p.Variables {
		switch {
		case v.Type != Continuous && v.Type != Binary:
			return fmt.Errorf("Validate: variable %d: %s: %w", j, v.Type, ErrProgram)
		case math.IsNaN(v.Lower) || math.IsInf(v.Lower, 0):
			return fmt.Errorf("Validate: variable %d: lower bound %g must be finite: %w", j, v.Lower, ErrProgram)
		case math.IsNaN(v.Upper) || v.Upper < v.Lower:
			return fmt.Errorf("Validate: variable %d: bounds [%g,%g]: %w", j, v.Lower, v.Upper, ErrProgram)
		case math.IsNaN(v.Objective) || math.IsInf(v.Objective, 0):
			return fmt.Errorf("Validate: variable %d: objective %g: %w", j, v.Objective, ErrProgram)
		}
	}
	for i, c := range p.Constraints {
		if c.Relation != LE && c.Relation != GE && c.Relation != EQ {
			return fmt.Errorf("Validate: constraint %d: %s: %w", i, c.Relation, ErrProgram)
		}
		if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return fmt.Errorf("Validate: constraint %d: rhs %g: %w", i, c.RHS, ErrProgram)
		}
		for _, t := range c.Terms {
			if t.Var < 0 || t.Var >= len(p.Variables) {
				return fmt.Errorf("Validate: constraint %d: variable %d out of range: %w", i, t.Var, ErrProgram)
			}
			if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
				return fmt.Errorf("Validate: constraint %d: coefficient %g: %w", i, t.Coef, ErrProgram)
			}
		}
	}
	return nil
}
