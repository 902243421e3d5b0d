package rootfind

import "math"

// Secant iterates the secant method from x0. The second seed is a small
// relative perturbation of x0. A residual that is flat across the two seeds
// is rejected: no step has been taken, so x0 is not a located root.
func Secant(f Func, x0 float64, opts Options) (float64, int, error) {
	opts = opts.withDefaults()

	x1 := x0 * (1 + 1e-4)
	if x0 >= 0 {
		x1 += 1e-4
	} else {
		x1 -= 1e-4
	}

	f0, f1 := f(x0), f(x1)
	for iter := 1; iter <= opts.MaxIter; iter++ {
		if !finite(f0) || !finite(f1) {
			return x1, iter, ErrNotFinite
		}
		if f1 == f0 {
			if iter > 1 && math.Abs(f1) <= opts.ResidualTol {
				return x1, iter, nil
			}
			return x1, iter, ErrNoConvergence
		}

		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if !finite(x2) {
			return x1, iter, ErrNotFinite
		}
		if math.Abs(x2-x1) <= opts.Tol*math.Max(1, math.Abs(x2)) {
			return x2, iter, nil
		}

		x0, f0 = x1, f1
		x1 = x2
		f1 = f(x1)
	}

	return x1, opts.MaxIter, ErrNoConvergence
}
