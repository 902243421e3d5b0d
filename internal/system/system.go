// Package system describes a single pipe run: fluid, cross-section,
// boundary conditions, minor losses and an optional pump.
package system

import (
	"errors"
	"fmt"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
)

// PipeSystem is read-only while a solve runs. Optional scalars are pointers
// so an absent value is distinguishable from zero.
type PipeSystem struct {
	Fluid     Fluid          `yaml:"fluid" json:"fluid"`
	Geometry  hydro.Geometry `yaml:"geometry" json:"geometry"`
	Length    *float64       `yaml:"L,omitempty" json:"L,omitempty" validate:"omitempty,gt=0"`
	Roughness float64        `yaml:"roughness,omitempty" json:"roughness,omitempty" validate:"gte=0"`

	P1 *float64 `yaml:"P1,omitempty" json:"P1,omitempty"`
	P2 *float64 `yaml:"P2,omitempty" json:"P2,omitempty"`
	Z1 *float64 `yaml:"z1,omitempty" json:"z1,omitempty"`
	Z2 *float64 `yaml:"z2,omitempty" json:"z2,omitempty"`
	V1 float64  `yaml:"v1,omitempty" json:"v1,omitempty" validate:"gte=0"`
	V2 float64  `yaml:"v2,omitempty" json:"v2,omitempty" validate:"gte=0"`

	KTotal   float64   `yaml:"K_total,omitempty" json:"K_total,omitempty"`
	KList    []float64 `yaml:"K_list,omitempty" json:"K_list,omitempty"`
	Fittings []string  `yaml:"fittings,omitempty" json:"fittings,omitempty"`

	Pump pump.Set `yaml:"pump,omitempty" json:"pump,omitempty"`

	ZSuction  float64 `yaml:"z_suction,omitempty" json:"z_suction,omitempty"`
	HLSuction float64 `yaml:"h_L_suction,omitempty" json:"h_L_suction,omitempty" validate:"gte=0"`
}

// Param names an input a solve mode may require.
type Param string

const (
	ParamRho       Param = "rho"
	ParamMu        Param = "mu"
	ParamD         Param = "D"
	ParamL         Param = "L"
	ParamP1        Param = "P1"
	ParamP2        Param = "P2"
	ParamZ1        Param = "z1"
	ParamZ2        Param = "z2"
	ParamPumpCurve Param = "pump_curve"
)

var descriptions = map[Param]string{
	ParamRho:       "Fluid density",
	ParamMu:        "Dynamic viscosity",
	ParamD:         "Pipe diameter",
	ParamL:         "Pipe length",
	ParamP1:        "Inlet pressure",
	ParamP2:        "Outlet pressure",
	ParamZ1:        "Inlet elevation",
	ParamZ2:        "Outlet elevation",
	ParamPumpCurve: "Pump curve data",
}

// FlowParams are required by every mode that balances a full pipe run.
var FlowParams = []Param{ParamRho, ParamMu, ParamL, ParamP1, ParamP2, ParamZ1, ParamZ2}

func (s *PipeSystem) present(p Param) bool {
	f, _ := s.Fluid.Resolve()
	switch p {
	case ParamRho:
		return f.Density != nil
	case ParamMu:
		return f.Viscosity != nil
	case ParamD:
		return s.Geometry.D != nil
	case ParamL:
		return s.Length != nil
	case ParamP1:
		return s.P1 != nil
	case ParamP2:
		return s.P2 != nil
	case ParamZ1:
		return s.Z1 != nil
	case ParamZ2:
		return s.Z2 != nil
	case ParamPumpCurve:
		return len(s.Pump.Head) > 0
	}
	return true
}

// Require lists the absent params, or returns nil when all are present.
func (s *PipeSystem) Require(params ...Param) *result.MissingInputs {
	var m []result.Missing
	for _, p := range params {
		if !s.present(p) {
			m = append(m, result.Missing{Param: string(p), Description: descriptions[p]})
		}
	}
	if len(m) == 0 {
		return nil
	}
	return &result.MissingInputs{Missing: m}
}

// Section derives the flow cross-section, mapping geometry failures to
// MissingInputs, NoSolution(unknown_shape) or NoSolution(invalid_geometry).
func (s *PipeSystem) Section() (hydro.Section, result.Result) {
	sec, err := s.Geometry.Section()
	if err == nil {
		return sec, nil
	}
	var md *hydro.MissingDimensionError
	if errors.As(err, &md) {
		m := &result.MissingInputs{}
		for _, d := range md.Missing {
			m.Missing = append(m.Missing, result.Missing{Param: d.Name, Description: d.Description})
		}
		return hydro.Section{}, m
	}
	if errors.Is(err, hydro.ErrUnknownShape) {
		return hydro.Section{}, result.Fail(result.ReasonUnknownShape, "unknown pipe shape: %s", s.Geometry.Shape)
	}
	if errors.Is(err, hydro.ErrInvalidGeometry) {
		return hydro.Section{}, result.Fail(result.ReasonInvalidGeometry, "%v", err)
	}
	return hydro.Section{}, result.Fail(result.ReasonIterationFailed, "%v", err)
}

// Prepare checks params and derives the section in one step. Missing
// dimensions are merged into the same MissingInputs as other params.
func (s *PipeSystem) Prepare(params ...Param) (hydro.Section, result.Result) {
	missing := s.Require(params...)
	sec, bad := s.Section()
	if m, ok := bad.(*result.MissingInputs); ok {
		return sec, result.Merge(missing, m)
	}
	if bad != nil {
		return sec, bad
	}
	if missing != nil {
		return sec, missing
	}
	return sec, nil
}

// TotalK sums the scalar total, raw coefficients and named fittings.
// Unknown fitting names contribute nothing.
func (s *PipeSystem) TotalK() float64 {
	k := s.KTotal
	for _, v := range s.KList {
		k += v
	}
	for _, name := range s.Fittings {
		if v, ok := FittingK(name); ok {
			k += v
		}
	}
	return k
}

func (s *PipeSystem) UnknownFittings() []string {
	var out []string
	for _, name := range s.Fittings {
		if _, ok := FittingK(name); !ok {
			out = append(out, name)
		}
	}
	return out
}

// Pipe assembles the hydraulic pipe for sec.
func (s *PipeSystem) Pipe(sec hydro.Section) hydro.Pipe {
	return hydro.Pipe{
		Section:   sec,
		Length:    deref(s.Length),
		Roughness: s.Roughness,
		K:         s.TotalK(),
	}
}

// Props returns the resolved fluid.
func (s *PipeSystem) Props() Fluid {
	f, _ := s.Fluid.Resolve()
	return f
}

// Validate checks values that are present for physical sanity. Absent
// required values are not an error here.
func (s *PipeSystem) Validate() error {
	if _, err := s.Fluid.Resolve(); err != nil {
		return err
	}
	if err := s.Pump.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("system: %w", err)
	}
	if _, err := s.Geometry.Section(); errors.Is(err, hydro.ErrInvalidGeometry) {
		return fmt.Errorf("system: %w", err)
	}
	return nil
}
