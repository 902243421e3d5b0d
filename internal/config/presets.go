package config

import (
	"sort"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/solver"
	"github.com/san-kum/pipeflow/internal/system"
)

func f(v float64) *float64 { return &v }

var water = system.Fluid{Density: f(1000), Viscosity: f(0.001), VaporPressure: f(2337)}

var demoPump = pump.Set{
	Head: pump.Curve{
		{Q: 0.001, Value: 50}, {Q: 0.01, Value: 48}, {Q: 0.02, Value: 44}, {Q: 0.03, Value: 38},
		{Q: 0.04, Value: 30}, {Q: 0.05, Value: 20}, {Q: 0.06, Value: 8},
	},
	Efficiency: pump.Curve{
		{Q: 0.001, Value: 0.1}, {Q: 0.02, Value: 0.65}, {Q: 0.03, Value: 0.78},
		{Q: 0.04, Value: 0.74}, {Q: 0.06, Value: 0.5},
	},
	NPSHRequired: pump.Curve{{Q: 0.001, Value: 2}, {Q: 0.06, Value: 6}},
}

func steelLine(d, l, z1, z2 float64) system.PipeSystem {
	return system.PipeSystem{
		Fluid:     water,
		Geometry:  hydro.CircularGeometry(d),
		Length:    f(l),
		Roughness: 0.00015,
		P1:        f(101325), P2: f(101325),
		Z1: f(z1), Z2: f(z2),
		KTotal: 2.0,
	}
}

func withPump(s system.PipeSystem, zSuction float64) system.PipeSystem {
	s.Pump = demoPump
	s.ZSuction = zSuction
	s.HLSuction = 0.5
	return s
}

func smoothLine(k float64) system.PipeSystem {
	s := steelLine(0.05, 0, 0, 0)
	s.Length = nil
	s.Roughness = 0
	s.KTotal = k
	return s
}

// Presets holds worked scenarios keyed by mode, then name.
var Presets = map[string]map[string]*Config{
	string(solver.ModeGravityFlow): {
		"tank_drain": {
			Name: "tank_drain", Mode: string(solver.ModeGravityFlow), Gravity: hydro.G,
			System: steelLine(0.1, 100, 10, 0),
		},
		"reverse": {
			Name: "reverse", Mode: string(solver.ModeGravityFlow), Gravity: hydro.G,
			System: steelLine(0.1, 100, 0, 10),
		},
		"short_run": {
			Name: "short_run", Mode: string(solver.ModeGravityFlow), Gravity: hydro.G,
			System: system.PipeSystem{
				Fluid: water, Geometry: hydro.CircularGeometry(0.1), Length: f(10), Roughness: 0.00005,
				P1: f(101325), P2: f(101325), Z1: f(10), Z2: f(5), KTotal: 0.5,
			},
		},
		"rect_duct": {
			Name: "rect_duct", Mode: string(solver.ModeGravityFlow), Gravity: hydro.G,
			System: system.PipeSystem{
				Fluid: system.Fluid{Preset: "water_10C"}, Geometry: hydro.RectangularGeometry(0.3, 0.6),
				Length: f(200), Roughness: 0.0003, P1: f(101325), P2: f(101325), Z1: f(2), Z2: f(0),
				Fittings: []string{"entrance_square", "exit"},
			},
		},
	},
	string(solver.ModeSystemCurve): {
		"uphill": {
			Name: "uphill", Mode: string(solver.ModeSystemCurve), Gravity: hydro.G,
			System: steelLine(0.1, 100, 0, 20),
			Params: solver.Params{QMin: 0.001, QMax: 0.06, Points: 40},
		},
	},
	string(solver.ModeGivenPumpHead): {
		"lift_30m": {
			Name: "lift_30m", Mode: string(solver.ModeGivenPumpHead), Gravity: hydro.G,
			System: steelLine(0.1, 100, 0, 20),
			Params: solver.Params{HA: 30},
		},
	},
	string(solver.ModeGivenPumpPower): {
		"lift_9kw": {
			Name: "lift_9kw", Mode: string(solver.ModeGivenPumpPower), Gravity: hydro.G,
			System: steelLine(0.1, 100, 0, 20),
			Params: solver.Params{WShaft: 9000, Efficiency: f(0.7)},
		},
	},
	string(solver.ModeGivenQAndPower): {
		"outlet_pressure": {
			Name: "outlet_pressure", Mode: string(solver.ModeGivenQAndPower), Gravity: hydro.G,
			System: func() system.PipeSystem {
				s := steelLine(0.1, 100, 0, 20)
				s.P2 = nil
				return s
			}(),
			Params: solver.Params{Q: 0.02, WShaft: 9000, Efficiency: f(0.7), SolveFor: "P2"},
		},
	},
	string(solver.ModeOperatingPoint): {
		"uphill_pump": {
			Name: "uphill_pump", Mode: string(solver.ModeOperatingPoint), Gravity: hydro.G,
			System: withPump(steelLine(0.1, 100, 0, 20), 3),
		},
		"high_suction": {
			Name: "high_suction", Mode: string(solver.ModeOperatingPoint), Gravity: hydro.G,
			System: withPump(steelLine(0.1, 100, 0, 20), 5),
		},
		"undersized": {
			Name: "undersized", Mode: string(solver.ModeOperatingPoint), Gravity: hydro.G,
			System: withPump(steelLine(0.1, 100, 0, 60), 3),
		},
	},
	string(solver.ModeInverseDiameter): {
		"size_drain": {
			Name: "size_drain", Mode: string(solver.ModeInverseDiameter), Gravity: hydro.G,
			System: steelLine(0.1, 100, 10, 0),
			Params: solver.Params{Q: 0.02},
		},
	},
	string(solver.ModeInverseLength): {
		"smooth_line": {
			Name: "smooth_line", Mode: string(solver.ModeInverseLength), Gravity: hydro.G,
			System: smoothLine(0),
			Params: solver.Params{Q: 0.005, HA: 10},
		},
		"fitting_heavy": {
			Name: "fitting_heavy", Mode: string(solver.ModeInverseLength), Gravity: hydro.G,
			System: smoothLine(100),
			Params: solver.Params{Q: 0.005, HA: 10},
		},
	},
}

func GetPreset(mode, name string) *Config {
	if m, ok := Presets[mode]; ok {
		if cfg, ok := m[name]; ok {
			return cfg
		}
	}
	return nil
}

func ListPresets(mode string) []string {
	m, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetModes lists the modes that have presets.
func PresetModes() []string {
	modes := make([]string, 0, len(Presets))
	for m := range Presets {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}
