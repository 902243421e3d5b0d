package solver

import (
	"fmt"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/meb"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/rootfind"
	"github.com/san-kum/pipeflow/internal/system"
)

// line is a pipe run with its fluid resolved, ready for per-flow evaluation.
type line struct {
	sys  *system.PipeSystem
	pipe hydro.Pipe
	rho  float64
	mu   float64
	g    float64
}

func (s *Solver) line(sys *system.PipeSystem, sec hydro.Section) line {
	f := sys.Props()
	return line{sys: sys, pipe: sys.Pipe(sec), rho: f.Rho(), mu: f.Mu(), g: s.G}
}

func (l line) at(q float64) hydro.State {
	return hydro.Evaluate(l.pipe, l.rho, l.mu, q, l.g)
}

// balance builds the energy balance at st. The outlet leaves at pipe
// velocity unless the system fixes v2.
func (l line) balance(st hydro.State, ha *float64) meb.Balance {
	v2 := st.V
	if l.sys.V2 > 0 {
		v2 = l.sys.V2
	}
	return meb.Balance{
		P1:     l.sys.P1,
		P2:     l.sys.P2,
		Z1:     l.sys.Z1,
		Z2:     l.sys.Z2,
		HA:     ha,
		V1:     l.sys.V1,
		V2:     v2,
		HL:     st.TotalLoss,
		Rho:    l.rho,
		G:      l.g,
		Alpha1: hydro.AlphaTurbulent,
		Alpha2: st.Alpha,
	}
}

func (l line) residual(q, ha float64) float64 {
	if q <= 0 {
		return residualGuard
	}
	return l.balance(l.at(q), &ha).Residual()
}

// requiredHead is the pump head that balances the line at st.
func (l line) requiredHead(st hydro.State) float64 {
	p, _ := result.PayloadOf(meb.Solve(l.balance(st, nil), meb.HA))
	return p.Values[result.HA]
}

func (l line) payload(st hydro.State, ha float64) result.Payload {
	return result.Payload{
		Values: result.Values{
			result.Q:       st.Q,
			result.V:       st.V,
			result.Re:      st.Re,
			result.F:       st.F,
			result.HLMajor: st.MajorLoss,
			result.HLMinor: st.MinorLoss,
			result.HLTotal: st.TotalLoss,
			result.HA:      ha,
			result.Dh:      l.pipe.Section.Dh,
			result.Area:    l.pipe.Section.Area,
		},
		Diagnostics: result.DiagnosticsOf(st),
	}
}

// warnings collects caveats for a solved point; st may be nil.
func (l line) warnings(st *hydro.State) []string {
	var w []string
	for _, name := range l.sys.UnknownFittings() {
		w = append(w, fmt.Sprintf("unknown fitting %q ignored", name))
	}
	if st != nil && st.Regime == hydro.Transitional {
		w = append(w, fmt.Sprintf("Re = %.0f is in the transitional regime; results uncertain", st.Re))
	}
	return w
}

// find runs the shared bracket-then-fallback search and logs how it went.
func (s *Solver) find(mode Mode, f rootfind.Func, lo, hi, guess float64) (rootfind.Root, error) {
	log := s.log.With("mode", mode)

	root, err := rootfind.Find(f, lo, hi, guess, s.Options)
	if root.Method == rootfind.MethodSecant {
		log.Warn("no sign change across bracket, used secant fallback",
			"lo", lo, "hi", hi, "guess", guess, "x", root.X, "err", err)
	}
	log.Debug("root search",
		"method", root.Method,
		"x", root.X,
		"residual", root.Residual,
		"iterations", root.Iterations,
		"err", err,
	)
	return root, err
}
