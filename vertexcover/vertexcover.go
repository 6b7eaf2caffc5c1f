// Package vertexcover computes minimum vertex covers of multigraphs, either
// exactly (integer program) or through the LP relaxation.
//
// The program has one variable x_v ∈ [0,1] per node, minimizes Σ x_v and
// requires x_u + x_v ≥ 1 for every edge; a loop on u becomes 2·x_u ≥ 1.
// Parallel edges repeat the same row, which changes nothing.
//
// Extreme points of this polytope are half-integral. The default method
// finds such a point directly by max-flow; simplex values are snapped to the
// nearest multiple of 1/2 when they are within tolerance.
package vertexcover

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/graphstat/bfs"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/linprog"
)

// ErrUnknownMode indicates a Mode outside the enum.
var ErrUnknownMode = errors.New("vertexcover: unknown mode")

// Mode selects the relaxation.
type Mode int

const (
	ModeLP Mode = iota // continuous x_v ∈ [0,1]
	ModeIP             // binary x_v ∈ {0,1}
)

func (m Mode) String() string {
	switch m {
	case ModeLP:
		return "LP"
	case ModeIP:
		return "IP"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// snapTol is how close an LP value must be to a multiple of 1/2 to be snapped.
const snapTol = 1e-6

// Program builds the vertex-cover program of g in the given mode.
func Program(g *core.Graph, mode Mode) (*linprog.Program, error) {
	var vt linprog.VarType
	switch mode {
	case ModeLP:
		vt = linprog.Continuous
	case ModeIP:
		vt = linprog.Binary
	default:
		return nil, fmt.Errorf("Program: %s: %w", mode, ErrUnknownMode)
	}

	p := &linprog.Program{Sense: linprog.Minimize}
	for _, v := range g.Nodes() {
		p.AddVariable(linprog.Variable{
			Name:      fmt.Sprintf("x%d", v),
			Lower:     0,
			Upper:     1,
			Type:      vt,
			Objective: 1,
		})
	}
	for _, e := range g.Edges() {
		p.AddConstraint(linprog.Constraint{
			Terms:    []linprog.Term{{Var: e.From, Coef: 1}, {Var: e.To, Coef: 1}},
			Relation: linprog.GE,
			RHS:      1,
		})
	}

	return p, nil
}

// Method selects how Solver computes a cover.
type Method int

const (
	// MethodFlow finds the LP optimum by max-flow on the bipartite double
	// cover and the IP optimum by branch-and-bound over the half-integral
	// kernel. It is the zero value.
	MethodFlow Method = iota
	// MethodSimplex hands Program to linprog, one connected component at a time.
	MethodSimplex
)

func (m Method) String() string {
	switch m {
	case MethodFlow:
		return "flow"
	case MethodSimplex:
		return "simplex"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ErrUnknownMethod indicates a Method outside the enum.
var ErrUnknownMethod = errors.New("vertexcover: unknown method")

// Solver solves vertex-cover programs. The zero value is ready to use.
type Solver struct {
	Method Method
	// Options are passed to linprog.Solve under MethodSimplex.
	Options []linprog.SolveOption
}

// Solve returns an optimal cover of g in the given mode.
func (s *Solver) Solve(g *core.Graph, mode Mode) (*Solution, error) {
	if mode != ModeLP && mode != ModeIP {
		return nil, fmt.Errorf("vertexcover: %s: %w", mode, ErrUnknownMode)
	}

	var (
		values []float64
		err    error
	)
	switch s.Method {
	case MethodFlow:
		values, err = solveFlow(g, mode)
	case MethodSimplex:
		values, err = s.solveSimplex(g, mode)
	default:
		err = ErrUnknownMethod
	}
	if err != nil {
		return nil, fmt.Errorf("vertexcover: %s: %w", mode, err)
	}

	return newSolution(g.Nodes(), values), nil
}

func solveFlow(g *core.Graph, mode Mode) ([]float64, error) {
	c, err := newCoverGraph(g)
	if err != nil {
		return nil, err
	}
	n := g.NodeCount()
	if mode == ModeLP {
		return c.relax(mask(n, g.Nodes()))
	}

	values := make([]float64, n)
	s := &search{c: c}
	for _, comp := range bfs.Components(g) {
		cover, ok, err := s.solve(mask(n, comp), len(comp)+1)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("component of node %d: %w", comp[0], linprog.ErrInfeasible)
		}
		for _, v := range cover {
			values[v] = 1
		}
	}
	return values, nil
}

func (s *Solver) solveSimplex(g *core.Graph, mode Mode) ([]float64, error) {
	opts := s.Options
	if mode == ModeIP {
		opts = append([]linprog.SolveOption{linprog.WithIntegralObjective()}, s.Options...)
	}

	values := make([]float64, g.NodeCount())
	comps, subs, err := split(g)
	if err != nil {
		return nil, err
	}
	for i, sub := range subs {
		if sub.EdgeCount() == 0 {
			continue
		}
		p, err := Program(sub, mode)
		if err != nil {
			return nil, err
		}
		if mode == ModeLP {
			// A minimum never puts a value above 1, so the x ≤ 1 rows can go.
			for j := range p.Variables {
				p.Variables[j].Upper = math.Inf(1)
			}
		}
		res, err := linprog.Solve(p, opts...)
		if err != nil {
			return nil, err
		}
		for j, v := range comps[i] {
			values[v] = res.Values[j]
		}
	}

	if mode == ModeLP {
		for i, v := range values {
			if h := math.Round(2*v) / 2; math.Abs(v-h) <= snapTol {
				values[i] = h
			}
		}
	}
	return values, nil
}

// split returns the connected components of g and, aligned with them, the
// induced subgraphs renumbered 0..k-1 in ascending node order.
func split(g *core.Graph) ([][]int, []*core.Graph, error) {
	comps := bfs.Components(g)
	label := make([]int, g.NodeCount())
	pos := make([]int, g.NodeCount())
	subs := make([]*core.Graph, len(comps))
	for i, comp := range comps {
		subs[i] = core.NewMultigraph(core.WithNodes(len(comp)))
		for j, v := range comp {
			label[v], pos[v] = i, j
		}
	}
	for _, e := range g.Edges() {
		if _, err := subs[label[e.From]].AddEdge(pos[e.From], pos[e.To], e.Weight); err != nil {
			return nil, nil, err
		}
	}
	return comps, subs, nil
}

// LPSolve is Solve(g, ModeLP).
func (s *Solver) LPSolve(g *core.Graph) (*Solution, error) { return s.Solve(g, ModeLP) }

// IPSolve is Solve(g, ModeIP).
func (s *Solver) IPSolve(g *core.Graph) (*Solution, error) { return s.Solve(g, ModeIP) }

// Solution is an immutable (nodes, values) pair with aligned indices.
type Solution struct {
	nodes  []int
	values []float64
}

func newSolution(nodes []int, values []float64) *Solution {
	return &Solution{nodes: append([]int(nil), nodes...), values: append([]float64(nil), values...)}
}

// Nodes returns a copy of the node ids.
func (s *Solution) Nodes() []int { return append([]int(nil), s.nodes...) }

// Values returns a copy of the per-node values.
func (s *Solution) Values() []float64 { return append([]float64(nil), s.values...) }

// OptValue is Σ values, the cover weight.
func (s *Solution) OptValue() float64 { return floats.Sum(s.values) }

// ValuesDict maps node id to value.
func (s *Solution) ValuesDict() map[int]float64 {
	out := make(map[int]float64, len(s.nodes))
	for i, v := range s.nodes {
		out[v] = s.values[i]
	}
	return out
}

// CountHalves is the number of values equal to 1/2.
func (s *Solution) CountHalves() int {
	n := 0
	for _, v := range s.values {
		if v == 0.5 {
			n++
		}
	}
	return n
}

// Cover returns the nodes with value 1, ascending.
func (s *Solution) Cover() []int {
	var out []int
	for i, v := range s.nodes {
		if s.values[i] == 1 {
			out = append(out, v)
		}
	}
	return out
}
