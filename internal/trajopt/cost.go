package trajopt

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/perchplan/internal/glider"
)

// startPenalty scales the soft anchor on the first step's position. The
// same anchor is also hard-constrained in the transcription; the penalty
// gives the derivative-free solver a descent direction toward it.
const startPenalty = 1e6

// Objective is the quadratic running cost over a flattened decision
// vector: h * sum_i (x_i' Q x_i + R*u_i^2) plus the soft start anchor.
type Objective struct {
	Weights Weights
	Bounds  Bounds
	H       float64
}

func (o *Objective) Cost(x []float64) float64 {
	n := len(x) / glider.BlockDim

	cost := 0.0
	for i := 0; i < n; i++ {
		b := i * glider.BlockDim
		xv := mat.NewVecDense(glider.StateDim, x[b:b+glider.StateDim])
		u := x[b+glider.StateDim]
		cost += mat.Inner(xv, o.Weights.Q, xv) + u*o.Weights.R*u
	}

	start := math.Abs(x[glider.StateX]-o.Bounds.AnchorX[0]) +
		math.Abs(x[glider.StateZ]-o.Bounds.AnchorZ[0])

	return cost*o.H + startPenalty*start
}
