package trajopt

import (
	"fmt"
	"time"

	"github.com/san-kum/perchplan/internal/glider"
	"github.com/san-kum/perchplan/internal/solver"
)

// Default solver budget. COBYLA is derivative-free and runs unbounded
// without an evaluation cap and wall-clock limit.
var defaultOptions = solver.Options{
	FtolAbs:       1e-6,
	XtolRel:       1e-4,
	MaxEvals:      1000,
	MaxTime:       500 * time.Millisecond,
	ConstraintTol: 1e-8,
}

// Planner owns one optimization problem: the glider model, the cost
// weights, the limit set, and the minimizer to drive. A Planner is not safe
// for concurrent use; plan concurrent trajectories with separate Planners.
type Planner struct {
	model    *glider.Model
	weights  Weights
	bounds   Bounds
	h        float64
	min      solver.Minimizer
	opts     solver.Options
	observer Observer
}

func NewPlanner(model *glider.Model, weights Weights, bounds Bounds, h float64, min solver.Minimizer) *Planner {
	return &Planner{
		model:    model,
		weights:  weights,
		bounds:   bounds,
		h:        h,
		min:      min,
		opts:     defaultOptions,
		observer: NopObserver{},
	}
}

func (p *Planner) SetObserver(o Observer) { p.observer = o }

// SetBudget overrides the default solver tolerances and budget.
func (p *Planner) SetBudget(opts solver.Options) { p.opts = opts }

// Plan seeds the decision vector from guess, runs the minimizer to
// completion and de-interleaves the best vector found into a Trajectory.
// The guess must hold a whole number of 8-wide state+input blocks; shape
// errors are reported before any solver call. A budget-exhausted run is
// returned the same way as a converged one.
func (p *Planner) Plan(guess []float64) (*Trajectory, error) {
	if len(guess) == 0 {
		return nil, ErrEmptyGuess
	}
	if len(guess)%glider.BlockDim != 0 {
		return nil, fmt.Errorf("%w, got %d", ErrGuessShape, len(guess))
	}
	n := len(guess) / glider.BlockDim

	trans := &Transcription{Model: p.model, Bounds: p.bounds, H: p.h}
	obj := &Objective{Weights: p.weights, Bounds: p.bounds, H: p.h}

	evals := 0
	objective := func(x []float64) float64 {
		evals++
		c := obj.Cost(x)
		p.observer.OnEvaluation(evals, c)
		return c
	}

	res, err := p.min.Minimize(objective, trans.Residuals, ResidualDim(n), guess, p.opts)
	if err != nil {
		return nil, fmt.Errorf("trajopt: %s failed: %w", p.min.Name(), err)
	}
	p.observer.OnResult(res.Cost, res.Evals)

	return unflatten(res.X, n), nil
}
