package solver

import (
	"github.com/san-kum/pipeflow/internal/meb"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/system"
)

// GravityFlow finds the flow rate that balances the line with no pump.
func (s *Solver) GravityFlow(sys *system.PipeSystem, qGuess float64) result.Result {
	sec, bad := sys.Prepare(system.FlowParams...)
	if bad != nil {
		return bad
	}
	l := s.line(sys, sec)

	f := func(q float64) float64 { return l.residual(q, 0) }
	root, err := s.find(ModeGravityFlow, f, QLow, VelocityCeiling*sec.Area, qGuess)
	if err != nil || root.X <= 0 {
		if *sys.Z1 < *sys.Z2 && *sys.P1 <= *sys.P2 {
			return result.Fail(result.ReasonReverseFlow,
				"flow would run from point 2 to point 1 (z2 > z1 and P2 >= P1)")
		}
		if root.X <= 0 {
			return result.Fail(result.ReasonNoPositiveSolution,
				"could not find a positive flow rate (Q = %.6g m³/s)", root.X)
		}
		return result.Fail(result.ReasonIterationFailed, "%v", err)
	}

	st := l.at(root.X)
	return result.Done(l.payload(st, 0), l.warnings(&st))
}

// GivenPumpHead finds the flow rate delivered against a fixed pump head.
func (s *Solver) GivenPumpHead(sys *system.PipeSystem, ha, qGuess float64) result.Result {
	sec, bad := sys.Prepare(system.FlowParams...)
	if bad != nil {
		return bad
	}
	l := s.line(sys, sec)

	f := func(q float64) float64 { return l.residual(q, ha) }
	root, err := s.find(ModeGivenPumpHead, f, QLow, VelocityCeiling*sec.Area, qGuess)
	if nr := flowFailure(root.X, err); nr != nil {
		return nr
	}

	st := l.at(root.X)
	p := l.payload(st, ha)
	p.Values[result.PHydraulic] = pump.HydraulicPower(st.Q, ha, l.rho, l.g)
	return result.Done(p, l.warnings(&st))
}

// GivenPumpPower finds the flow rate when the pump head follows from shaft
// power: h_a = η·W/(ρQg).
func (s *Solver) GivenPumpPower(sys *system.PipeSystem, w, eta, qGuess float64) result.Result {
	sec, bad := sys.Prepare(system.FlowParams...)
	if bad != nil {
		return bad
	}
	l := s.line(sys, sec)

	f := func(q float64) float64 {
		if q <= 0 {
			return residualGuard
		}
		return l.residual(q, pump.HeadFromPower(w, eta, l.rho, q, l.g))
	}
	root, err := s.find(ModeGivenPumpPower, f, QLow, VelocityCeiling*sec.Area, qGuess)
	if nr := flowFailure(root.X, err); nr != nil {
		return nr
	}

	st := l.at(root.X)
	ha := pump.HeadFromPower(w, eta, l.rho, st.Q, l.g)
	p := l.payload(st, ha)
	p.Values[result.WShaft] = w
	p.Values[result.Efficiency] = eta
	p.Values[result.PHydraulic] = pump.HydraulicPower(st.Q, ha, l.rho, l.g)
	return result.Done(p, l.warnings(&st))
}

// GivenQAndPower computes the pump head and losses at a known flow, then
// isolates target in the energy balance.
func (s *Solver) GivenQAndPower(sys *system.PipeSystem, q, w, eta float64, target meb.Target) result.Result {
	sec, bad := sys.Prepare(system.ParamRho, system.ParamMu, system.ParamL)
	if bad != nil {
		return bad
	}
	if q <= 0 {
		return result.Fail(result.ReasonNegativeFlow, "flow rate must be positive, got %g m³/s", q)
	}
	l := s.line(sys, sec)

	st := l.at(q)
	ha := pump.HeadFromPower(w, eta, l.rho, q, l.g)
	solved := meb.Solve(l.balance(st, &ha), target)
	sp, ok := result.PayloadOf(solved)
	if !ok {
		return solved
	}

	p := l.payload(st, ha)
	p.Values[result.WShaft] = w
	p.Values[result.Efficiency] = eta
	for k, v := range sp.Values {
		p.Values[k] = v
	}
	return result.Done(p, l.warnings(&st))
}

// flowFailure classifies a root search for a flow rate.
func flowFailure(q float64, err error) result.Result {
	if q <= 0 {
		return result.Fail(result.ReasonNegativeFlow, "solved flow rate is not positive (Q = %.6g m³/s)", q)
	}
	if err != nil {
		return result.Fail(result.ReasonIterationFailed, "%v", err)
	}
	return nil
}
