package glider

import "math"

// Indices into a 7-slot state vector.
const (
	StateX        = 0
	StateZ        = 1
	StateTheta    = 2
	StatePhi      = 3
	StateVX       = 4
	StateVZ       = 5
	StateThetaDot = 6

	// StateDim is the number of state slots.
	StateDim = 7
	// BlockDim is the width of one state+input block in a flattened
	// decision vector: the 7 states followed by the elevator rate.
	BlockDim = 8
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
