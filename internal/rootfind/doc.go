// Package rootfind provides scalar root finders for residual functions.
//
// The package exposes two solvers and the policy that combines them:
//
//   - [Brent]: bracketing solver, guaranteed to converge on a sign change
//   - [Secant]: derivative-free Newton-like iteration from a single guess
//   - [Find]: try a sign-change bracket first, fall back to [Secant]
//
// # Termination
//
// Every solver is bounded by [Options.MaxIter]. [Find] never panics: a panic
// raised inside the residual is reported as [ErrIterationFailed], and a
// fallback root whose residual exceeds [Options.ResidualTol] is rejected with
// [ErrNoConvergence].
package rootfind
