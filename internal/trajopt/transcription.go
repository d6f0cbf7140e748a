package trajopt

import "github.com/san-kum/perchplan/internal/glider"

// DefectTol is the feasibility slack on each collocation defect. Every
// dynamics equality is encoded as a symmetric inequality pair, so defects
// within +-DefectTol are accepted as feasible. Deliberate slack, not a
// numerical artifact.
const DefectTol = 0.01

// residualStride is the number of residual slots reserved per step:
// 14 collocation-defect pairs plus 12 box-limit pairs.
const residualStride = 26

// ResidualDim is the residual vector length for n steps: 26 per step plus
// the 4 trailing initial-position anchors.
func ResidualDim(n int) int { return 4 + residualStride*n }

// Transcription converts the continuous glider dynamics and the box limits
// into inequality residuals over a flattened decision vector. Stateless
// between calls; safe to evaluate any number of times.
type Transcription struct {
	Model  *glider.Model
	Bounds Bounds
	H      float64 // collocation timestep
}

// boundPair writes the two-sided encoding of |v| <= b at out[i], out[i+1].
// Both entries are <= 0 exactly when v lies in [-b, b].
func boundPair(out []float64, i int, v, b float64) {
	out[i] = -v - b
	out[i+1] = v - b
}

// Residuals writes one residual per slot of out for candidate x; a
// candidate is feasible when every entry is <= 0. len(out) must be
// ResidualDim(len(x)/8). The argument order matches [solver.Constraints],
// so a Transcription plugs into a Minimizer directly.
//
// Layout, per step i with block base 26*i:
//
//	 0..13  trapezoidal defect pairs for the 7 state equations
//	14..25  box-limit pairs: theta, phi, vx, vz, thetadot, phidot
//
// The final step has no transition, so its 14 defect slots are written as
// zero (trivially feasible) rather than left stale. The last 4 slots anchor
// the first step's x and z to the head of the anchor sequences.
func (tr *Transcription) Residuals(out, x []float64) {
	n := len(x) / glider.BlockDim

	for i := 0; i < n; i++ {
		b := i * glider.BlockDim
		base := i * residualStride

		if i < n-1 {
			nb := b + glider.BlockDim

			x1 := glider.State(x[b : b+glider.StateDim])
			x2 := glider.State(x[nb : nb+glider.StateDim])
			f1 := tr.Model.Derive(x1, x[b+glider.StateDim])
			f2 := tr.Model.Derive(x2, x[nb+glider.StateDim])

			for j := 0; j < glider.StateDim; j++ {
				defect := x1[j] - x2[j] + tr.H/2*(f1[j]+f2[j])
				boundPair(out, base+2*j, defect, DefectTol)
			}
		} else {
			for j := 0; j < 2*glider.StateDim; j++ {
				out[base+j] = 0
			}
		}

		boundPair(out, base+14, x[b+glider.StateTheta], tr.Bounds.PitchMax)
		boundPair(out, base+16, x[b+glider.StatePhi], tr.Bounds.ElevMax)
		boundPair(out, base+18, x[b+glider.StateVX], tr.Bounds.VelMax)
		boundPair(out, base+20, x[b+glider.StateVZ], tr.Bounds.VelMax)
		boundPair(out, base+22, x[b+glider.StateThetaDot], tr.Bounds.PitchRateMax)
		boundPair(out, base+24, x[b+glider.StateDim], tr.Bounds.ElevRateMax)
	}

	// Anchor the first step's position to the start of the anchor
	// sequences, reusing the two-sided encoding with the anchor as bound.
	boundPair(out, n*residualStride, x[glider.StateX], tr.Bounds.AnchorX[0])
	boundPair(out, n*residualStride+2, x[glider.StateZ], tr.Bounds.AnchorZ[0])
}
