package system

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFluid = errors.New("system: unknown fluid preset")

// Properties are the physical constants of a fluid in SI units.
type Properties struct {
	Density       float64 // kg/m³
	Viscosity     float64 // Pa·s
	VaporPressure float64 // Pa
}

var fluids = map[string]Properties{
	"water_20C":    {Density: 998.0, Viscosity: 0.001, VaporPressure: 2337},
	"water_100F":   {Density: 993.0, Viscosity: 0.00068, VaporPressure: 6340},
	"water_60F":    {Density: 999.0, Viscosity: 0.00114, VaporPressure: 1770},
	"water_10C":    {Density: 999.7, Viscosity: 0.00131, VaporPressure: 1228},
	"air_20C":      {Density: 1.204, Viscosity: 1.82e-5},
	"air_80C":      {Density: 1.0, Viscosity: 2.0e-5},
	"toluene_114C": {Density: 866.0, Viscosity: 0.0004, VaporPressure: 101325 * 0.223},
}

func LookupFluid(name string) (Properties, bool) {
	p, ok := fluids[name]
	return p, ok
}

func FluidNames() []string {
	names := make([]string, 0, len(fluids))
	for name := range fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fluid is the fluid block of a system. A named preset fills whichever
// properties are not set explicitly.
type Fluid struct {
	Preset        string   `yaml:"preset,omitempty" json:"preset,omitempty"`
	Density       *float64 `yaml:"rho,omitempty" json:"rho,omitempty" validate:"omitempty,gt=0"`
	Viscosity     *float64 `yaml:"mu,omitempty" json:"mu,omitempty" validate:"omitempty,gt=0"`
	VaporPressure *float64 `yaml:"p_vap,omitempty" json:"p_vap,omitempty" validate:"omitempty,gte=0"`
}

// UnmarshalYAML also accepts a bare preset name, as in "fluid: water_20C".
func (f *Fluid) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		f.Preset = n.Value
		return nil
	}
	type plain Fluid
	return n.Decode((*plain)(f))
}

// Resolve returns f with preset values filled in. On an unknown preset f is
// returned unchanged along with ErrUnknownFluid.
func (f Fluid) Resolve() (Fluid, error) {
	if f.Preset == "" {
		return f, nil
	}
	p, ok := fluids[f.Preset]
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownFluid, f.Preset)
	}
	if f.Density == nil {
		f.Density = &p.Density
	}
	if f.Viscosity == nil {
		f.Viscosity = &p.Viscosity
	}
	if f.VaporPressure == nil {
		f.VaporPressure = &p.VaporPressure
	}
	return f, nil
}

func (f Fluid) Rho() float64  { return deref(f.Density) }
func (f Fluid) Mu() float64   { return deref(f.Viscosity) }
func (f Fluid) PVap() float64 { return deref(f.VaporPressure) }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
