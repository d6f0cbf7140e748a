package glider

import (
	"fmt"
	"math"
)

const (
	// AirDensity is the sea-level air density in kg/m^3.
	AirDensity = 1.225
	// Gravity in m/s^2.
	Gravity = 9.81
)

// Model holds the physical parameters of a flat-plate glider. All lengths
// are measured along the fuselage from the tracked body point (the center
// of gravity).
type Model struct {
	LWing   float64 // CG to wing aerodynamic center
	LElev   float64 // elevator pivot to elevator aerodynamic center
	LPivot  float64 // CG to elevator pivot
	SWing   float64 // wing surface area
	SElev   float64 // elevator surface area
	Mass    float64
	Inertia float64 // pitch-axis moment of inertia
}

func NewModel() *Model {
	return &Model{
		LWing:   0.025,
		LElev:   0.06,
		LPivot:  0.27,
		SWing:   0.1,
		SElev:   0.025,
		Mass:    0.08,
		Inertia: 0.0015,
	}
}

func (m *Model) StateDim() int   { return StateDim }
func (m *Model) ControlDim() int { return 1 }

// lift and drag coefficients of a flat plate at angle of attack a.
func cl(a float64) float64 { return 2 * math.Sin(a) * math.Cos(a) }
func cd(a float64) float64 { return 2 * math.Sin(a) * math.Sin(a) }

func cross2(ax, ay, bx, by float64) float64 { return ax*by - ay*bx }

// Derive returns the 7-vector time derivative
// [vx, vz, thetadot, phidot, ax, az, thetadotdot] of state x under elevator
// rate elevRate. Pure; see the package comment for the domain of validity.
func (m *Model) Derive(x State, elevRate float64) State {
	theta := x[StateTheta]
	phi := x[StatePhi]
	vx := x[StateVX]
	vz := x[StateVZ]
	thetadot := x[StateThetaDot]

	sinT, cosT := math.Sin(theta), math.Cos(theta)
	sinTP, cosTP := math.Sin(theta+phi), math.Cos(theta+phi)

	// Unit normals to the wing and elevator surfaces.
	nwX, nwZ := -sinT, cosT
	neX, neZ := -sinTP, cosTP

	// Velocities of the surface aerodynamic centers from rigid-body
	// kinematics about the CG.
	wVX := vx + m.LWing*thetadot*sinT
	wVZ := vz - m.LWing*thetadot*cosT
	eVX := vx + m.LPivot*thetadot*sinT + m.LElev*(thetadot+elevRate)*sinTP
	eVZ := vz - m.LPivot*thetadot*cosT - m.LElev*(thetadot+elevRate)*cosTP

	// Angle of attack via atan of the velocity ratio, matching the
	// flat-plate model this is derived from. Undefined at zero horizontal
	// surface velocity.
	alphaW := theta - math.Atan(wVZ/wVX)
	alphaE := theta + phi - math.Atan(eVZ/eVX)

	// Flat-plate force magnitude 0.5*rho*|v|^2*S*(Cl+Cd), directed along
	// the surface normal. |v|^2 avoids the square root.
	fw := 0.5 * AirDensity * (wVX*wVX + wVZ*wVZ) * m.SWing * (cl(alphaW) + cd(alphaW))
	fe := 0.5 * AirDensity * (eVX*eVX + eVZ*eVZ) * m.SElev * (cl(alphaE) + cd(alphaE))

	fwX, fwZ := fw*nwX, fw*nwZ
	feX, feZ := fe*neX, fe*neZ

	ax := (fwX + feX) / m.Mass
	az := (fwZ + feZ - m.Mass*Gravity) / m.Mass

	// Net pitch moment about the CG from the two surface forces.
	moment := cross2(m.LWing, 0, fwX, fwZ) +
		cross2(-m.LPivot-m.LElev*cosT, -m.LPivot+m.LElev*sinT, feX, feZ)
	alphaDD := moment / m.Inertia

	return State{vx, vz, thetadot, elevRate, ax, az, alphaDD}
}

func (m *Model) GetParams() map[string]float64 {
	return map[string]float64{
		"l_wing":  m.LWing,
		"l_elev":  m.LElev,
		"l_pivot": m.LPivot,
		"s_wing":  m.SWing,
		"s_elev":  m.SElev,
		"mass":    m.Mass,
		"inertia": m.Inertia,
	}
}

func (m *Model) SetParam(name string, value float64) error {
	switch name {
	case "l_wing":
		m.LWing = value
	case "l_elev":
		m.LElev = value
	case "l_pivot":
		m.LPivot = value
	case "s_wing":
		m.SWing = value
	case "s_elev":
		m.SElev = value
	case "mass":
		m.Mass = value
	case "inertia":
		m.Inertia = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
