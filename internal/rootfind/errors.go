package rootfind

import "errors"

var (
	// ErrNoBracket indicates the residual has the same sign at both bracket ends.
	ErrNoBracket = errors.New("rootfind: no sign change across bracket")

	// ErrNoConvergence indicates the iteration limit was reached or the
	// returned point does not satisfy the residual tolerance.
	ErrNoConvergence = errors.New("rootfind: no convergence")

	// ErrNotFinite indicates the residual or an iterate became NaN or Inf.
	ErrNotFinite = errors.New("rootfind: residual not finite")

	// ErrIterationFailed indicates the residual function panicked.
	ErrIterationFailed = errors.New("rootfind: iteration failed")
)
