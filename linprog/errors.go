// SPDX-License-Identifier: MIT

package linprog

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

var (
	// ErrInfeasible indicates no assignment satisfies every constraint.
	// It wraps gonum's lp.ErrInfeasible.
	ErrInfeasible = fmt.Errorf("linprog: %w", lp.ErrInfeasible)

	// ErrUnbounded indicates the objective can improve without limit.
	// It wraps gonum's lp.ErrUnbounded.
	ErrUnbounded = fmt.Errorf("linprog: %w", lp.ErrUnbounded)

	// ErrProgram indicates a malformed Program.
	ErrProgram = errors.New("linprog: invalid program")

	// ErrSolver indicates a numerical failure inside the simplex routine.
	ErrSolver = errors.New("linprog: solver failure")

	// ErrNodeLimit indicates branch-and-bound hit its node budget.
	ErrNodeLimit = errors.New("linprog: branch-and-bound node limit reached")
)

// mapSolverError translates gonum's simplex errors to package sentinels.
func mapSolverError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, lp.ErrInfeasible):
		return ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return ErrUnbounded
	default:
		return fmt.Errorf("%w: %v", ErrSolver, err)
	}
}
