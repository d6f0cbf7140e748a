// Package perchplan computes dynamically feasible perching trajectories
// for a powerless flat-plate glider with a single elevator surface. The
// continuous dynamics are transcribed by trapezoidal collocation into an
// inequality-constrained nonlinear program and handed to a derivative-free
// external solver.
package perchplan

import (
	"github.com/san-kum/perchplan/internal/config"
	"github.com/san-kum/perchplan/internal/glider"
	"github.com/san-kum/perchplan/internal/solver"
	"github.com/san-kum/perchplan/internal/trajopt"
)

type (
	Model      = glider.Model
	State      = glider.State
	Config     = config.Config
	Bounds     = trajopt.Bounds
	Weights    = trajopt.Weights
	Planner    = trajopt.Planner
	Trajectory = trajopt.Trajectory
	Observer   = trajopt.Observer
	Minimizer  = solver.Minimizer
)

var (
	ErrEmptyGuess = trajopt.ErrEmptyGuess
	ErrGuessShape = trajopt.ErrGuessShape
)

// LoadConfig reads a parameter document from disk.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// NewPlanner wires a planner for the given parameter document and
// initial-position anchor sequences, driven by NLopt COBYLA.
func NewPlanner(cfg *Config, anchorX, anchorZ []float64) *Planner {
	return trajopt.NewPlanner(
		cfg.GliderModel(),
		cfg.PlannerWeights(),
		cfg.PlannerBounds(anchorX, anchorZ),
		cfg.Timestep(),
		solver.NewCOBYLA(),
	)
}

// Seed builds an initial guess of n blocks by forward-integrating the
// model from x0 at a fixed elevator rate.
func Seed(m *Model, x0 State, elevRate, h float64, n int) []float64 {
	return trajopt.Seed(m, x0, elevRate, h, n)
}
