package trajopt

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/perchplan/internal/glider"
)

// Bounds holds the symmetric box limits applied at every step and the
// per-run anchor sequences for the initial position. Read-only once a run
// starts.
type Bounds struct {
	VelMax       float64 // |vx| and |vz| limit
	PitchMax     float64 // |theta| limit
	ElevMax      float64 // |phi| limit
	PitchRateMax float64 // |thetadot| limit
	ElevRateMax  float64 // |phidot| limit
	AnchorX      []float64
	AnchorZ      []float64
}

// Weights holds the quadratic cost weights: a 7x7 state matrix Q and a
// scalar input weight R.
type Weights struct {
	Q *mat.Dense
	R float64
}

// DiagonalWeights builds Weights with Q = diag(stateDiag).
func DiagonalWeights(stateDiag [glider.StateDim]float64, r float64) Weights {
	q := mat.NewDense(glider.StateDim, glider.StateDim, nil)
	for i, v := range stateDiag {
		q.Set(i, i, v)
	}
	return Weights{Q: q, R: r}
}

// Trajectory is a planned path: six parallel state channels, one entry per
// collocation step. The elevator-rate input is not carried over.
type Trajectory struct {
	X     []float64
	Z     []float64
	Theta []float64
	Phi   []float64
	VX    []float64
	VZ    []float64
}

func (t *Trajectory) Len() int { return len(t.X) }

// unflatten de-interleaves the six state channels from a decision vector of
// n blocks, dropping the input slot of each block.
func unflatten(x []float64, n int) *Trajectory {
	t := &Trajectory{
		X:     make([]float64, n),
		Z:     make([]float64, n),
		Theta: make([]float64, n),
		Phi:   make([]float64, n),
		VX:    make([]float64, n),
		VZ:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		b := i * glider.BlockDim
		t.X[i] = x[b+glider.StateX]
		t.Z[i] = x[b+glider.StateZ]
		t.Theta[i] = x[b+glider.StateTheta]
		t.Phi[i] = x[b+glider.StatePhi]
		t.VX[i] = x[b+glider.StateVX]
		t.VZ[i] = x[b+glider.StateVZ]
	}
	return t
}
