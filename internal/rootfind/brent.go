package rootfind

import "math"

// Func is a scalar residual whose zero is sought.
type Func func(x float64) float64

type Method string

const (
	MethodBrent  Method = "brent"
	MethodSecant Method = "secant"
)

type Options struct {
	Tol         float64
	ResidualTol float64
	MaxIter     int
}

func DefaultOptions() Options {
	return Options{
		Tol:         2e-12,
		ResidualTol: 1e-6,
		MaxIter:     200,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Tol <= 0 {
		o.Tol = d.Tol
	}
	if o.ResidualTol <= 0 {
		o.ResidualTol = d.ResidualTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = d.MaxIter
	}
	return o
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Brent finds a root of f inside [a, b] using inverse quadratic interpolation
// with bisection safeguards. f(a) and f(b) must differ in sign.
func Brent(f Func, a, b float64, opts Options) (float64, int, error) {
	opts = opts.withDefaults()

	fa, fb := f(a), f(b)
	if !finite(fa) || !finite(fb) {
		return math.NaN(), 0, ErrNotFinite
	}
	if fa == 0 {
		return a, 0, nil
	}
	if fb == 0 {
		return b, 0, nil
	}
	if (fa > 0) == (fb > 0) {
		return math.NaN(), 0, ErrNoBracket
	}

	c, fc := b, fb
	var d, e float64

	for iter := 1; iter <= opts.MaxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*epsilon*math.Abs(b) + 0.5*opts.Tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, iter, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if !finite(fb) {
			return b, iter, ErrNotFinite
		}
	}

	return b, opts.MaxIter, ErrNoConvergence
}

const epsilon = 2.220446049250313e-16
