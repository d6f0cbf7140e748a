package glider

// Step advances state x by dt using a classic fourth-order Runge-Kutta
// step with the elevator rate held constant over the interval.
func (m *Model) Step(x State, elevRate, dt float64) State {
	n := len(x)

	k1 := m.Derive(x, elevRate)

	scratch := make(State, n)
	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k1[i]
	}
	k2 := m.Derive(scratch, elevRate)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k2[i]
	}
	k3 := m.Derive(scratch, elevRate)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*k3[i]
	}
	k4 := m.Derive(scratch, elevRate)

	result := make(State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}
