// Package trajopt plans dynamically feasible perching trajectories for the
// flat-plate glider by direct trapezoidal collocation.
//
// A candidate trajectory of N steps is flattened into a decision vector of
// length 8*N, each block holding the 7 states followed by the elevator rate
// input. [Transcription] turns the continuous dynamics and the box limits
// into a vector of scalar inequality residuals, [Objective] scores the
// candidate with a quadratic running cost, and [Planner] drives an external
// [solver.Minimizer] over the two evaluators before de-interleaving the
// optimized vector into a [Trajectory].
//
// A planner run is synchronous and single-threaded; concurrent planning
// requires independent Planner values.
package trajopt
