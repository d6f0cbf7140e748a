package solver

import (
	"github.com/go-nlopt/nlopt"
)

// COBYLA minimizes with NLopt's derivative-free COBYLA algorithm, which
// supports vector inequality constraints directly.
type COBYLA struct{}

func NewCOBYLA() *COBYLA { return &COBYLA{} }

func (c *COBYLA) Name() string { return "cobyla" }

func (c *COBYLA) Minimize(obj Objective, cons Constraints, nCons int, x0 []float64, opts Options) (Result, error) {
	if len(x0) == 0 {
		return Result{}, ErrEmptyProblem
	}

	opt, err := nlopt.NewNLopt(nlopt.LN_COBYLA, uint(len(x0)))
	if err != nil {
		return Result{}, err
	}
	defer opt.Destroy()

	// Evaluations are counted here rather than queried from the library so
	// the Minimizer contract stays implementation-independent.
	evals := 0
	if err := opt.SetMinObjective(func(x, gradient []float64) float64 {
		evals++
		return obj(x)
	}); err != nil {
		return Result{}, err
	}

	tol := make([]float64, nCons)
	for i := range tol {
		tol[i] = opts.ConstraintTol
	}
	if err := opt.AddInequalityMConstraint(func(result, x, gradient []float64) {
		cons(result, x)
	}, tol); err != nil {
		return Result{}, err
	}

	if opts.FtolAbs > 0 {
		opt.SetFtolAbs(opts.FtolAbs)
	}
	if opts.XtolRel > 0 {
		opt.SetXtolRel(opts.XtolRel)
	}
	if opts.MaxEvals > 0 {
		opt.SetMaxEval(opts.MaxEvals)
	}
	if opts.MaxTime > 0 {
		opt.SetMaxTime(opts.MaxTime.Seconds())
	}

	x, cost, err := opt.Optimize(x0)
	if err != nil {
		return Result{}, err
	}
	return Result{X: x, Cost: cost, Evals: evals}, nil
}
