package trajopt

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/san-kum/perchplan/internal/glider"
)

func generousBounds() Bounds {
	return Bounds{
		VelMax:       100,
		PitchMax:     10,
		ElevMax:      10,
		PitchRateMax: 100,
		ElevRateMax:  100,
		AnchorX:      []float64{0},
		AnchorZ:      []float64{0},
	}
}

func ballisticModel() *glider.Model {
	m := glider.NewModel()
	m.SWing = 0
	m.SElev = 0
	return m
}

func TestResidualDim(t *testing.T) {
	for n := 1; n <= 6; n++ {
		if got := ResidualDim(n); got != 4+26*n {
			t.Errorf("n=%d: expected %d residuals, got %d", n, 4+26*n, got)
		}
	}
}

// A decision vector sampled from an exact ballistic solution, with states
// consistent under the trapezoid rule, must satisfy every residual.
func TestResidualsExactSolutionFeasible(t *testing.T) {
	m := ballisticModel()
	h := 0.05
	n := 6

	x := make([]float64, n*glider.BlockDim)
	for i := 0; i < n; i++ {
		ti := float64(i) * h
		b := i * glider.BlockDim
		x[b+glider.StateX] = 5.0 * ti
		x[b+glider.StateZ] = -0.5 * glider.Gravity * ti * ti
		x[b+glider.StateVX] = 5.0
		x[b+glider.StateVZ] = -glider.Gravity * ti
	}

	bounds := generousBounds()
	tr := &Transcription{Model: m, Bounds: bounds, H: h}

	out := make([]float64, ResidualDim(n))
	tr.Residuals(out, x)

	for i, r := range out {
		if r > 0 {
			t.Errorf("residual %d infeasible: %f", i, r)
		}
	}

	// The defect pairs of every transition should sit at the slack value.
	for i := 0; i < n-1; i++ {
		for j := 0; j < glider.StateDim; j++ {
			lo := out[i*26+2*j]
			hi := out[i*26+2*j+1]
			if !scalar.EqualWithinAbs(lo, -DefectTol, 1e-9) || !scalar.EqualWithinAbs(hi, -DefectTol, 1e-9) {
				t.Errorf("step %d state %d: defect pair (%f, %f) not at slack", i, j, lo, hi)
			}
		}
	}
}

func TestResidualsBoundViolation(t *testing.T) {
	m := ballisticModel()
	bounds := generousBounds()
	bounds.PitchMax = 0.1
	tr := &Transcription{Model: m, Bounds: bounds, H: 0.05}

	n := 2
	x := make([]float64, n*glider.BlockDim)
	for i := 0; i < n; i++ {
		x[i*glider.BlockDim+glider.StateVX] = 5.0
		x[i*glider.BlockDim+glider.StateTheta] = 0.5 // beyond the pitch limit
	}

	out := make([]float64, ResidualDim(n))
	tr.Residuals(out, x)

	for i := 0; i < n; i++ {
		upper := out[i*26+15]
		if !scalar.EqualWithinAbs(upper, 0.4, 1e-12) {
			t.Errorf("step %d: expected pitch violation residual 0.4, got %f", i, upper)
		}
		if out[i*26+14] > 0 {
			t.Errorf("step %d: lower pitch residual should stay feasible, got %f", i, out[i*26+14])
		}
	}
}

func TestResidualsAnchorTail(t *testing.T) {
	m := ballisticModel()
	bounds := generousBounds()
	bounds.AnchorX = []float64{2.0}
	bounds.AnchorZ = []float64{-1.0}
	tr := &Transcription{Model: m, Bounds: bounds, H: 0.05}

	n := 3
	x := make([]float64, n*glider.BlockDim)
	x[glider.StateX] = 2.0
	x[glider.StateZ] = -1.0
	for i := 0; i < n; i++ {
		x[i*glider.BlockDim+glider.StateVX] = 5.0
	}

	out := make([]float64, ResidualDim(n))
	tr.Residuals(out, x)

	tail := out[n*26:]
	// x0 == anchor makes the upper-side residuals exactly zero.
	if tail[1] != 0 {
		t.Errorf("expected x anchor residual 0, got %f", tail[1])
	}
	// The z anchor is negative, so v-b = -1 - (-1) = 0 as well.
	if tail[3] != 0 {
		t.Errorf("expected z anchor residual 0, got %f", tail[3])
	}
}

// The final step has no transition; its defect slots must be written to
// zero rather than left with whatever the solver's buffer held.
func TestResidualsFinalStepSlotsZeroed(t *testing.T) {
	m := ballisticModel()
	tr := &Transcription{Model: m, Bounds: generousBounds(), H: 0.05}

	n := 3
	x := make([]float64, n*glider.BlockDim)
	for i := 0; i < n; i++ {
		x[i*glider.BlockDim+glider.StateVX] = 5.0
	}

	out := make([]float64, ResidualDim(n))
	for i := range out {
		out[i] = 999
	}
	tr.Residuals(out, x)

	for j := 0; j < 14; j++ {
		if out[(n-1)*26+j] != 0 {
			t.Errorf("final-step defect slot %d not zeroed: %f", j, out[(n-1)*26+j])
		}
	}
}
