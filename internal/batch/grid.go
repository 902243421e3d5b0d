package batch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/result"
)

// Grid searches every combination of parameter values for the case that
// minimizes (or maximizes) one result quantity.
type Grid struct {
	Base      *config.Config
	Params    []string
	Values    [][]float64
	Objective result.Quantity
	Maximize  bool
}

func (g *Grid) UnmarshalYAML(n *yaml.Node) error {
	var raw struct {
		Base      yaml.Node            `yaml:"base"`
		Params    map[string][]float64 `yaml:"params"`
		Objective string               `yaml:"objective"`
		Maximize  bool                 `yaml:"maximize"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}

	base, err := decodeBase(&raw.Base)
	if err != nil {
		return fmt.Errorf("grid base: %w", err)
	}
	g.Base = base
	g.Objective = result.Quantity(raw.Objective)
	g.Maximize = raw.Maximize

	names := make([]string, 0, len(raw.Params))
	for name := range raw.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	g.Params, g.Values = nil, nil
	for _, name := range names {
		g.Params = append(g.Params, name)
		g.Values = append(g.Values, raw.Params[name])
	}
	return nil
}

func (g *Grid) Validate() error {
	if g.Base == nil {
		return fmt.Errorf("grid has no base case")
	}
	if len(g.Params) == 0 || len(g.Params) != len(g.Values) {
		return fmt.Errorf("grid needs at least one parameter with values")
	}
	for i, name := range g.Params {
		if err := checkParam(g.Base, name); err != nil {
			return fmt.Errorf("grid: %w", err)
		}
		if len(g.Values[i]) == 0 {
			return fmt.Errorf("grid: param %q has no values", name)
		}
	}
	if g.Objective == "" {
		return fmt.Errorf("grid: objective is required")
	}
	return g.Base.Validate()
}

// Cases expands the grid, varying the last parameter fastest.
func (g *Grid) Cases() ([]*config.Config, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	name := g.Base.Name
	if name == "" {
		name = "grid"
	}

	var cases []*config.Config
	var expand func(depth int, c config.Config, labels []string)
	expand = func(depth int, c config.Config, labels []string) {
		if depth == len(g.Params) {
			c.Name = fmt.Sprintf("%s[%s]", name, strings.Join(labels, ","))
			cases = append(cases, &c)
			return
		}
		param := g.Params[depth]
		for _, v := range g.Values[depth] {
			next := c
			sweepParams[param](&next, v)
			expand(depth+1, next, append(labels[:depth:depth], fmt.Sprintf("%s=%g", param, v)))
		}
	}
	expand(0, *g.Base, nil)
	return cases, nil
}

// Search solves every grid case and returns the best one along with all
// outcomes in grid order. Cases that fail or lack the objective are skipped
// when ranking; if none qualifies best is nil.
func (g *Grid) Search(ctx context.Context, limit int, log *slog.Logger) (*Outcome, []Outcome, error) {
	cases, err := g.Cases()
	if err != nil {
		return nil, nil, err
	}

	outcomes, err := Run(ctx, cases, limit, log)
	if err != nil {
		return nil, outcomes, err
	}

	var best *Outcome
	bestVal := math.Inf(1)
	for i := range outcomes {
		p, ok := result.PayloadOf(outcomes[i].Result)
		if !ok {
			continue
		}
		v, ok := p.Values[g.Objective]
		if !ok || math.IsNaN(v) {
			continue
		}
		if g.Maximize {
			v = -v
		}
		if v < bestVal {
			bestVal = v
			best = &outcomes[i]
		}
	}
	return best, outcomes, nil
}
