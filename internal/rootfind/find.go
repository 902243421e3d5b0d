package rootfind

import (
	"fmt"
	"math"
)

// Root is a converged point together with how it was found.
type Root struct {
	X          float64
	Residual   float64
	Method     Method
	Iterations int
}

// Find applies the bracket-then-fallback policy: Brent on [lo, hi] when the
// residual changes sign across it, otherwise the secant iteration seeded at
// guess. A fallback root is accepted only if |f(x)| <= ResidualTol.
//
// On failure the returned Root still carries the last iterate so callers can
// classify the failure (e.g. a non-positive flow rate).
func Find(f Func, lo, hi, guess float64, opts Options) (root Root, err error) {
	opts = opts.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			root = Root{X: math.NaN(), Residual: math.NaN()}
			err = fmt.Errorf("%w: %v", ErrIterationFailed, r)
		}
	}()

	flo, fhi := f(lo), f(hi)
	if finite(flo) && finite(fhi) && flo*fhi < 0 {
		x, n, berr := Brent(f, lo, hi, opts)
		root = Root{X: x, Method: MethodBrent, Iterations: n}
		if finite(x) {
			root.Residual = f(x)
		}
		return root, berr
	}

	x, n, serr := Secant(f, guess, opts)
	root = Root{X: x, Method: MethodSecant, Iterations: n}
	if serr != nil {
		root.Residual = math.NaN()
		return root, serr
	}

	root.Residual = f(x)
	if !finite(root.Residual) || math.Abs(root.Residual) > opts.ResidualTol {
		return root, fmt.Errorf("%w: residual %.3g at x=%.6g", ErrNoConvergence, root.Residual, x)
	}
	return root, nil
}

// Bracketed reports whether f changes sign across [lo, hi].
func Bracketed(f Func, lo, hi float64) bool {
	flo, fhi := f(lo), f(hi)
	return finite(flo) && finite(fhi) && flo*fhi < 0
}
