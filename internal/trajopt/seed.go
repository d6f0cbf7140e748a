package trajopt

import "github.com/san-kum/perchplan/internal/glider"

// Seed builds an initial decision vector of n blocks by forward-integrating
// the model from x0 with the elevator rate held at elevRate. The result is
// dynamically consistent up to integration error, which keeps the first
// collocation defects near zero and gives the solver a feasible
// neighborhood to start from.
func Seed(m *glider.Model, x0 glider.State, elevRate, h float64, n int) []float64 {
	guess := make([]float64, n*glider.BlockDim)

	x := x0.Clone()
	for i := 0; i < n; i++ {
		b := i * glider.BlockDim
		copy(guess[b:b+glider.StateDim], x)
		guess[b+glider.StateDim] = elevRate
		if i < n-1 {
			x = m.Step(x, elevRate, h)
		}
	}
	return guess
}

// ConstantSeed builds a decision vector of n identical blocks, each holding
// state x0 and input elevRate. Useful as a degenerate hover-style guess
// when no feasible propagation exists.
func ConstantSeed(x0 glider.State, elevRate float64, n int) []float64 {
	guess := make([]float64, n*glider.BlockDim)
	for i := 0; i < n; i++ {
		b := i * glider.BlockDim
		copy(guess[b:b+glider.StateDim], x0)
		guess[b+glider.StateDim] = elevRate
	}
	return guess
}
