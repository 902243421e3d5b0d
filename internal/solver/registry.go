package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/pipeflow/internal/meb"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/system"
)

var ErrUnknownMode = errors.New("solver: unknown mode")

type ModeFunc func(s *Solver, sys *system.PipeSystem, p Params) result.Result

type Registry struct {
	modes map[Mode]ModeFunc
}

func NewRegistry() *Registry {
	r := &Registry{modes: make(map[Mode]ModeFunc)}

	r.modes[ModeSystemCurve] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.SystemCurve(sys, p.QMin, p.QMax, p.Points)
	}
	r.modes[ModeGravityFlow] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.GravityFlow(sys, p.QGuess)
	}
	r.modes[ModeGivenPumpHead] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.GivenPumpHead(sys, p.HA, p.QGuess)
	}
	r.modes[ModeGivenPumpPower] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.GivenPumpPower(sys, p.WShaft, *p.Efficiency, p.QGuess)
	}
	r.modes[ModeGivenQAndPower] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.GivenQAndPower(sys, p.Q, p.WShaft, *p.Efficiency, meb.Target(p.SolveFor))
	}
	r.modes[ModeOperatingPoint] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.OperatingPoint(sys, p.QGuess)
	}
	r.modes[ModeInverseDiameter] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.InverseDiameter(sys, p.Q, p.HA, p.DGuess)
	}
	r.modes[ModeInverseLength] = func(s *Solver, sys *system.PipeSystem, p Params) result.Result {
		return s.InverseLength(sys, p.Q, p.HA)
	}

	return r
}

// Register adds or replaces a mode.
func (r *Registry) Register(m Mode, fn ModeFunc) {
	r.modes[m] = fn
}

func (r *Registry) Get(m Mode) (ModeFunc, error) {
	fn, ok := r.modes[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}
	return fn, nil
}

func (r *Registry) List() []Mode {
	modes := make([]Mode, 0, len(r.modes))
	for m := range r.modes {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
