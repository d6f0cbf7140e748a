package glider

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// A zero-area model generates no aerodynamic force, so forward flight is
// ballistic and has a closed form to integrate against.
func ballisticModel() *Model {
	m := NewModel()
	m.SWing = 0
	m.SElev = 0
	return m
}

func TestStepBallistic(t *testing.T) {
	m := ballisticModel()

	x := State{0, 0, 0, 0, 5.0, 0, 0}
	dt := 0.01
	steps := 50

	for i := 0; i < steps; i++ {
		x = m.Step(x, 0, dt)
	}

	elapsed := float64(steps) * dt
	if !scalar.EqualWithinAbs(x[StateX], 5.0*elapsed, 1e-9) {
		t.Errorf("x: got %f, expected %f", x[StateX], 5.0*elapsed)
	}
	if !scalar.EqualWithinAbs(x[StateZ], -0.5*Gravity*elapsed*elapsed, 1e-9) {
		t.Errorf("z: got %f, expected %f", x[StateZ], -0.5*Gravity*elapsed*elapsed)
	}
	if !scalar.EqualWithinAbs(x[StateVZ], -Gravity*elapsed, 1e-9) {
		t.Errorf("vz: got %f, expected %f", x[StateVZ], -Gravity*elapsed)
	}
	if x[StateTheta] != 0 || x[StateThetaDot] != 0 {
		t.Errorf("ballistic flight should not pitch, got theta=%f thetadot=%f",
			x[StateTheta], x[StateThetaDot])
	}
}

func TestStepElevatorRateIntegration(t *testing.T) {
	m := ballisticModel()

	x := State{0, 0, 0, 0, 5.0, 0, 0}
	x = m.Step(x, 0.5, 0.1)

	if !scalar.EqualWithinAbs(x[StatePhi], 0.05, 1e-12) {
		t.Errorf("phi should integrate the elevator rate, got %f", x[StatePhi])
	}
}
