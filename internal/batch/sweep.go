package batch

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/pump"
)

// Sweep varies one parameter of a base case across a linear range.
type Sweep struct {
	Base  *config.Config
	Param string
	Min   float64
	Max   float64
	Steps int
}

type sweepSetter func(c *config.Config, v float64)

func ptr(v float64) *float64 { return &v }

var sweepParams = map[string]sweepSetter{
	"L":           func(c *config.Config, v float64) { c.System.Length = ptr(v) },
	"D":           func(c *config.Config, v float64) { c.System.Geometry.D = ptr(v) },
	"roughness":   func(c *config.Config, v float64) { c.System.Roughness = v },
	"P1":          func(c *config.Config, v float64) { c.System.P1 = ptr(v) },
	"P2":          func(c *config.Config, v float64) { c.System.P2 = ptr(v) },
	"z1":          func(c *config.Config, v float64) { c.System.Z1 = ptr(v) },
	"z2":          func(c *config.Config, v float64) { c.System.Z2 = ptr(v) },
	"K_total":     func(c *config.Config, v float64) { c.System.KTotal = v },
	"q":           func(c *config.Config, v float64) { c.Params.Q = v },
	"h_a":         func(c *config.Config, v float64) { c.Params.HA = v },
	"w_shaft":     func(c *config.Config, v float64) { c.Params.WShaft = v },
	"efficiency":  func(c *config.Config, v float64) { c.Params.Efficiency = &v },
	"speed_ratio": func(c *config.Config, v float64) { c.System.Pump = c.System.Pump.Scale(v) },
}

// SweepParams lists the parameters a sweep can vary.
func SweepParams() []string {
	names := make([]string, 0, len(sweepParams))
	for name := range sweepParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Sweep) UnmarshalYAML(n *yaml.Node) error {
	var raw struct {
		Base  yaml.Node `yaml:"base"`
		Param string    `yaml:"param"`
		Min   float64   `yaml:"min"`
		Max   float64   `yaml:"max"`
		Steps int       `yaml:"steps"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}

	base, err := decodeBase(&raw.Base)
	if err != nil {
		return fmt.Errorf("sweep base: %w", err)
	}
	s.Base = base
	s.Param = raw.Param
	s.Min = raw.Min
	s.Max = raw.Max
	s.Steps = raw.Steps
	return nil
}

// checkParam rejects unknown params and params the base case cannot vary.
// D only sizes circular sections.
func checkParam(base *config.Config, name string) error {
	if _, ok := sweepParams[name]; !ok {
		return fmt.Errorf("unknown param %q", name)
	}
	if name == "D" {
		if shape := base.System.Geometry.Shape; shape != "" && shape != hydro.Circular {
			return fmt.Errorf("param D needs a circular base geometry, got %s", shape)
		}
	}
	return nil
}

// decodeBase decodes a base case over the config defaults. An absent node
// yields the defaults.
func decodeBase(n *yaml.Node) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if n.Kind != 0 {
		if err := n.Decode(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (s *Sweep) Validate() error {
	if s.Base == nil {
		return fmt.Errorf("sweep has no base case")
	}
	if err := checkParam(s.Base, s.Param); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if s.Steps < 2 {
		return fmt.Errorf("sweep: steps must be at least 2, got %d", s.Steps)
	}
	if s.Max <= s.Min {
		return fmt.Errorf("sweep: max %g must exceed min %g", s.Max, s.Min)
	}
	return s.Base.Validate()
}

// Cases expands the sweep into one config per step, named after the base
// case and the swept value.
func (s *Sweep) Cases() ([]*config.Config, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	set := sweepParams[s.Param]
	name := s.Base.Name
	if name == "" {
		name = "sweep"
	}

	values := pump.Linspace(s.Min, s.Max, s.Steps)
	cases := make([]*config.Config, len(values))
	for i, v := range values {
		c := *s.Base
		set(&c, v)
		c.Name = fmt.Sprintf("%s[%s=%g]", name, s.Param, v)
		cases[i] = &c
	}
	return cases, nil
}
