package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/solver"
	"github.com/san-kum/pipeflow/internal/system"
)

const (
	DefaultMode  = string(solver.ModeGravityFlow)
	DefaultFluid = "water_20C"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is one solve scenario: a pipe system, the mode to run and its
// scalar parameters.
type Config struct {
	Name    string            `yaml:"name,omitempty" json:"name,omitempty"`
	Mode    string            `yaml:"mode" json:"mode" validate:"required"`
	Gravity float64           `yaml:"gravity,omitempty" json:"gravity,omitempty" validate:"gte=0"`
	System  system.PipeSystem `yaml:"system" json:"system"`
	Params  solver.Params     `yaml:"params,omitempty" json:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:    DefaultMode,
		Gravity: hydro.G,
		System: system.PipeSystem{
			Fluid: system.Fluid{Preset: DefaultFluid},
		},
	}
}

// Load reads a scenario file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects physically meaningless values and unknown modes. Inputs a
// mode needs but the file omits are reported at solve time instead.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := solver.NewRegistry().Get(solver.Mode(c.Mode)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.System.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Solver returns a solver using the scenario's gravity. A nil logger uses
// slog.Default().
func (c *Config) Solver(log *slog.Logger) *solver.Solver {
	s := solver.New(log)
	if c.Gravity > 0 {
		s.G = c.Gravity
	}
	return s
}
