// Package solver defines the boundary to an external nonlinear minimizer:
// inequality-constrained minimization of a scalar objective over a dense
// real vector, with caller-supplied evaluators. The planner depends only on
// [Minimizer]; [COBYLA] adapts the NLopt implementation.
package solver

import (
	"errors"
	"time"
)

// Objective evaluates the scalar cost at candidate x. It must be total
// over the candidate domain: no panics, any float64 result.
type Objective func(x []float64) float64

// Constraints writes one residual per slot of out. A candidate is feasible
// when every residual is <= 0. len(out) is fixed for the life of a run.
type Constraints func(out, x []float64)

type Options struct {
	FtolAbs       float64       // absolute objective convergence tolerance
	XtolRel       float64       // relative parameter convergence tolerance
	MaxEvals      int           // objective evaluation budget
	MaxTime       time.Duration // wall-clock budget
	ConstraintTol float64       // per-residual feasibility slack
}

// Result is the best point found. Budget exhaustion and convergence both
// produce a Result; the two are not distinguished.
type Result struct {
	X     []float64
	Cost  float64
	Evals int
}

type Minimizer interface {
	Name() string
	Minimize(obj Objective, cons Constraints, nCons int, x0 []float64, opts Options) (Result, error)
}

var ErrEmptyProblem = errors.New("solver: empty decision vector")
