package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/solver"
)

// DefaultLimit caps concurrent solves when a caller passes a limit <= 0.
const DefaultLimit = 4

// Scenario is a file of independent solve cases, plus an optional sweep.
type Scenario struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Cases       []*config.Config `yaml:"-"`
	Sweep       *Sweep           `yaml:"sweep"`
	Grid        *Grid            `yaml:"grid"`
}

// Outcome pairs a case with its result.
type Outcome struct {
	Name   string
	Mode   string
	Config *config.Config
	Result result.Result
}

// LoadScenario reads a scenario file. Each case starts from the config
// defaults, so cases may omit anything the defaults cover.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var raw struct {
		Scenario `yaml:",inline"`
		Cases    []yaml.Node `yaml:"cases"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	scenario := raw.Scenario
	for i := range raw.Cases {
		cfg := config.DefaultConfig()
		if err := raw.Cases[i].Decode(cfg); err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		if cfg.Name == "" {
			cfg.Name = fmt.Sprintf("case_%d", i+1)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i+1, cfg.Name, err)
		}
		scenario.Cases = append(scenario.Cases, cfg)
	}

	if scenario.Sweep != nil {
		if err := scenario.Sweep.Validate(); err != nil {
			return nil, err
		}
	}
	if scenario.Grid != nil {
		if err := scenario.Grid.Validate(); err != nil {
			return nil, err
		}
	}
	if len(scenario.Cases) == 0 && scenario.Sweep == nil && scenario.Grid == nil {
		return nil, fmt.Errorf("scenario %q has no cases", scenario.Name)
	}
	return &scenario, nil
}

// Run solves every case with at most limit solves in flight. Outcomes keep
// the order of cases. A cancelled context stops cases not yet started.
func Run(ctx context.Context, cases []*config.Config, limit int, log *slog.Logger) ([]Outcome, error) {
	if log == nil {
		log = slog.Default()
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	outcomes := make([]Outcome, len(cases))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, cfg := range cases {
		i, cfg := i, cfg
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r := cfg.Solver(log).Run(solver.Mode(cfg.Mode), &cfg.System, cfg.Params)
			log.Debug("case solved", "case", cfg.Name, "mode", cfg.Mode, "status", r.Status())
			outcomes[i] = Outcome{Name: cfg.Name, Mode: cfg.Mode, Config: cfg, Result: r}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// RunScenario solves the scenario's cases followed by its sweep points. A
// grid is searched separately with Grid.Search.
func RunScenario(ctx context.Context, s *Scenario, limit int, log *slog.Logger) ([]Outcome, error) {
	cases := append([]*config.Config(nil), s.Cases...)
	if s.Sweep != nil {
		points, err := s.Sweep.Cases()
		if err != nil {
			return nil, err
		}
		cases = append(cases, points...)
	}
	return Run(ctx, cases, limit, log)
}

// Counts tallies outcomes by status.
func Counts(outcomes []Outcome) map[result.Status]int {
	counts := make(map[result.Status]int)
	for _, o := range outcomes {
		if o.Result != nil {
			counts[o.Result.Status()]++
		}
	}
	return counts
}
