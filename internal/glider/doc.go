// Package glider models a flat-plate glider: a rigid fuselage with a single
// flat wing and an elevator surface hinged behind the center of gravity,
// restricted to the vertical (x,z) plane.
//
// The model tracks 7 states [x, z, theta, phi, vx, vz, thetadot] and takes
// one input, the elevator angular rate phidot. Aerodynamic forces follow the
// flat-plate approximation Cl = 2 sin(a) cos(a), Cd = 2 sin^2(a).
//
// # Domain of validity
//
// Angle of attack is computed with atan of the velocity ratio at each
// surface, so [Model.Derive] is only meaningful for forward flight with
// nonzero horizontal surface velocity. States with zero velocity at a
// surface centroid produce a NaN derivative rather than an error; callers
// feeding candidate states from an optimizer should keep velocity bounds
// away from zero.
package glider
