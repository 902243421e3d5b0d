package solver

import (
	"fmt"

	"github.com/san-kum/pipeflow/internal/npsh"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/system"
)

// SystemCurve samples the pump head the line requires over [qMin, qMax].
// Zero bounds default to CurveQMin and CurveVelocity times the area.
func (s *Solver) SystemCurve(sys *system.PipeSystem, qMin, qMax float64, points int) result.Result {
	sec, bad := sys.Prepare(system.FlowParams...)
	if bad != nil {
		return bad
	}
	l := s.line(sys, sec)

	if qMin == 0 {
		qMin = CurveQMin
	}
	if qMax == 0 {
		qMax = CurveVelocity * sec.Area
	}
	if points <= 0 {
		points = DefaultPoints
	}

	qs := pump.Linspace(qMin, qMax, points)
	curve := make([]result.CurvePoint, len(qs))
	for i, q := range qs {
		st := l.at(q)
		curve[i] = result.CurvePoint{State: st, HA: l.requiredHead(st)}
	}

	return result.Done(result.Payload{
		Values: result.Values{
			result.Dh:   sec.Dh,
			result.Area: sec.Area,
		},
		Curve: curve,
	}, l.warnings(nil))
}

// OperatingPoint intersects the pump head curve with the system curve.
func (s *Solver) OperatingPoint(sys *system.PipeSystem, qGuess float64) result.Result {
	params := append(append([]system.Param(nil), system.FlowParams...), system.ParamPumpCurve)
	sec, bad := sys.Prepare(params...)
	if bad != nil {
		return bad
	}
	l := s.line(sys, sec)

	systemHead := func(q float64) float64 { return l.requiredHead(l.at(q)) }

	qMin, qMax := sys.Pump.Head.Bounds()
	hsMin, hpMin := systemHead(qMin), sys.Pump.HeadAt(qMin)
	hsMax, hpMax := systemHead(qMax), sys.Pump.HeadAt(qMax)
	if hpMin < hsMin && hpMax < hsMax {
		ns := result.Fail(result.ReasonPumpInsufficient,
			"pump curve lies below the system curve from Q = %.4g to %.4g m³/s", qMin, qMax)
		ns.Partial = result.Values{
			result.HSystemAtQMin: hsMin,
			result.HPumpAtQMin:   hpMin,
			result.HSystemAtQMax: hsMax,
			result.HPumpAtQMax:   hpMax,
		}
		return ns
	}

	f := func(q float64) float64 {
		if q < 0 {
			return residualGuard
		}
		return sys.Pump.HeadAt(q) - systemHead(q)
	}
	root, err := s.find(ModeOperatingPoint, f, qMin, qMax, qGuess)
	if root.X <= 0 {
		return result.Fail(result.ReasonNoPositiveSolution,
			"could not find a positive operating point (Q = %.6g m³/s)", root.X)
	}
	if err != nil {
		return result.Fail(result.ReasonIterationFailed, "%v", err)
	}

	st := l.at(root.X)
	ha := sys.Pump.HeadAt(st.Q)
	eta := sys.Pump.EfficiencyAt(st.Q)
	hydraulic := pump.HydraulicPower(st.Q, ha, l.rho, l.g)

	p := l.payload(st, ha)
	p.Values[result.PHydraulic] = hydraulic
	p.Values[result.Efficiency] = eta
	p.Values[result.PShaft] = pump.ShaftPower(hydraulic, eta)

	warnings := l.warnings(&st)
	if len(sys.Pump.NPSHRequired) > 0 {
		c := npsh.CheckCavitation(npsh.Available(npsh.Suction{
			SurfacePressure: *sys.P1,
			VaporPressure:   sys.Props().PVap(),
			Rho:             l.rho,
			G:               l.g,
			HeadLoss:        sys.HLSuction,
			Lift:            sys.ZSuction,
		}), sys.Pump.NPSHRequiredAt(st.Q))

		p.Values[result.NPSHA] = c.Available
		p.Values[result.NPSHR] = c.Required
		p.Values[result.Margin] = c.Margin
		p.Flags = map[string]bool{result.FlagCavitates: c.Cavitates}
		warnings = append(warnings, c.Warnings...)
	}
	if eta < LowEfficiency {
		warnings = append(warnings, fmt.Sprintf("low pump efficiency (%.1f%%) at operating point", eta*100))
	}
	return result.Done(p, warnings)
}
