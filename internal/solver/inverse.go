package solver

import (
	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/meb"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/system"
)

// InverseDiameter sizes a circular pipe to carry q with pump head ha. The
// configured cross-section is ignored.
func (s *Solver) InverseDiameter(sys *system.PipeSystem, q, ha, dGuess float64) result.Result {
	if m := sys.Require(system.FlowParams...); m != nil {
		return m
	}
	if q <= 0 {
		return result.Fail(result.ReasonNegativeFlow, "flow rate must be positive, got %g m³/s", q)
	}

	lineFor := func(d float64) line {
		sec, _ := hydro.CircularGeometry(d).Section()
		return s.line(sys, sec)
	}
	f := func(d float64) float64 {
		if d <= 0 {
			return residualGuard
		}
		return lineFor(d).residual(q, ha)
	}
	root, err := s.find(ModeInverseDiameter, f, DLow, DHigh, dGuess)
	if root.X <= 0 {
		return result.Fail(result.ReasonNegativeDiameter, "solved diameter is not positive (D = %.6g m)", root.X)
	}
	if err != nil {
		return result.Fail(result.ReasonIterationFailed, "%v", err)
	}

	l := lineFor(root.X)
	st := l.at(q)
	p := l.payload(st, ha)
	p.Values[result.D] = root.X
	return result.Done(p, l.warnings(&st))
}

// InverseLength finds the pipe length for which q flows under pump head ha.
// It needs no iteration: the balance gives the total loss, and the major
// loss left after fittings fixes the length.
func (s *Solver) InverseLength(sys *system.PipeSystem, q, ha float64) result.Result {
	sec, bad := sys.Prepare(system.ParamRho, system.ParamMu,
		system.ParamP1, system.ParamP2, system.ParamZ1, system.ParamZ2)
	if bad != nil {
		return bad
	}
	if q <= 0 {
		return result.Fail(result.ReasonNegativeFlow, "flow rate must be positive, got %g m³/s", q)
	}
	l := s.line(sys, sec)

	st := l.at(q)
	sp, ok := result.PayloadOf(meb.Solve(l.balance(st, &ha), meb.HL))
	if !ok {
		return result.Fail(result.ReasonIterationFailed, "energy balance could not be solved for h_L")
	}
	total := sp.Values[result.HL]
	major := total - st.MinorLoss
	if major < 0 {
		ns := result.Fail(result.ReasonNegativeMajorLoss,
			"minor losses (%.4g m) exceed the available head loss (%.4g m) by %.4g m",
			st.MinorLoss, total, -major)
		ns.Partial = result.Values{
			result.HLTotalAvailable: total,
			result.HLMinor:          st.MinorLoss,
			result.Shortfall:        -major,
		}
		return ns
	}

	p := l.payload(st, ha)
	p.Values[result.L] = hydro.LengthForMajorLoss(major, st.F, sec.Dh, st.V, l.g)
	p.Values[result.HLMajor] = major
	p.Values[result.HLTotal] = total
	return result.Done(p, l.warnings(&st))
}
