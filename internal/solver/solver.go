// Package solver composes the hydraulic primitives into named solve modes.
// Every mode takes a read-only PipeSystem and returns a result.Result; no
// error or panic crosses a mode boundary.
package solver

import (
	"log/slog"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/rootfind"
	"github.com/san-kum/pipeflow/internal/system"
)

type Mode string

const (
	ModeSystemCurve     Mode = "system_curve"
	ModeGravityFlow     Mode = "gravity_flow"
	ModeGivenPumpHead   Mode = "given_pump_head"
	ModeGivenPumpPower  Mode = "given_pump_power"
	ModeGivenQAndPower  Mode = "given_Q_and_power"
	ModeOperatingPoint  Mode = "operating_point"
	ModeInverseDiameter Mode = "inverse_diameter"
	ModeInverseLength   Mode = "inverse_length"
)

const (
	QLow            = 1e-6 // m³/s
	VelocityCeiling = 20.0 // m/s; the upper flow bound is this times the area

	CurveQMin     = 0.001 // m³/s
	CurveVelocity = 10.0  // m/s
	DefaultPoints = 50

	DLow  = 0.001 // m
	DHigh = 10.0  // m

	DefaultQGuess     = 0.01 // m³/s
	DefaultDGuess     = 0.1  // m
	DefaultEfficiency = 1.0

	LowEfficiency = 0.5

	residualGuard = 1e10
)

// Params carries the scalar inputs of every mode; each mode reads only the
// fields it needs. Efficiency is nil when unset; an explicit value must lie
// in (0, 1].
type Params struct {
	QMin       float64  `yaml:"q_min,omitempty" json:"q_min,omitempty" validate:"gte=0"`
	QMax       float64  `yaml:"q_max,omitempty" json:"q_max,omitempty" validate:"gte=0"`
	Points     int      `yaml:"points,omitempty" json:"points,omitempty" validate:"omitempty,gte=2"`
	QGuess     float64  `yaml:"q_guess,omitempty" json:"q_guess,omitempty" validate:"gte=0"`
	Q          float64  `yaml:"q,omitempty" json:"q,omitempty"`
	HA         float64  `yaml:"h_a,omitempty" json:"h_a,omitempty"`
	WShaft     float64  `yaml:"w_shaft,omitempty" json:"w_shaft,omitempty" validate:"gte=0"`
	Efficiency *float64 `yaml:"efficiency,omitempty" json:"efficiency,omitempty" validate:"omitempty,gt=0,lte=1"`
	SolveFor   string   `yaml:"solve_for,omitempty" json:"solve_for,omitempty"`
	DGuess     float64  `yaml:"d_guess,omitempty" json:"d_guess,omitempty" validate:"gte=0"`
}

func (p Params) withDefaults() Params {
	if p.QGuess == 0 {
		p.QGuess = DefaultQGuess
	}
	if p.DGuess == 0 {
		p.DGuess = DefaultDGuess
	}
	if p.Efficiency == nil {
		eta := DefaultEfficiency
		p.Efficiency = &eta
	}
	if p.Points == 0 {
		p.Points = DefaultPoints
	}
	if p.SolveFor == "" {
		p.SolveFor = "P2"
	}
	return p
}

type Solver struct {
	G       float64
	Options rootfind.Options

	log   *slog.Logger
	modes *Registry
}

// New returns a solver using standard gravity. A nil logger uses slog.Default().
func New(log *slog.Logger) *Solver {
	if log == nil {
		log = slog.Default()
	}
	return &Solver{
		G:       hydro.G,
		Options: rootfind.DefaultOptions(),
		log:     log,
		modes:   NewRegistry(),
	}
}

// Run dispatches to the named mode.
func (s *Solver) Run(mode Mode, sys *system.PipeSystem, p Params) result.Result {
	fn, err := s.modes.Get(mode)
	if err != nil {
		return result.Fail(result.ReasonUnknownMode, "%v", err)
	}
	s.log.Debug("solve", "mode", mode)

	res := fn(s, sys, p.withDefaults())
	s.log.Debug("solved", "mode", mode, "status", res.Status())
	return res
}

func (s *Solver) Modes() []Mode {
	return s.modes.List()
}
