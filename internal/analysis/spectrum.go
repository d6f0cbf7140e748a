// Package analysis inspects planned trajectories. Post-stall perching
// solutions tend to develop pitch flutter when the elevator-rate weight is
// too low; the spectrum helpers make that visible without plotting.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/perchplan/internal/trajopt"
)

// PowerSpectrum returns the one-sided magnitude spectrum of data.
func PowerSpectrum(data []float64) []float64 {
	coeffs := fft.FFTReal(data)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// PitchSpectrum returns the magnitude spectrum of the trajectory's pitch
// channel.
func PitchSpectrum(t *trajopt.Trajectory) []float64 {
	return PowerSpectrum(t.Theta)
}

// DominantFrequency returns the strongest nonzero frequency bin of data
// in Hz, given the sampling timestep h. The DC bin is skipped. Returns 0
// for series too short to resolve a frequency.
func DominantFrequency(data []float64, h float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return float64(best) / (float64(len(data)) * h)
}
