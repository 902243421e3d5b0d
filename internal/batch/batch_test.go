package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/result"
)

const scenarioDoc = `
name: drains
description: two drains and a length sweep
cases:
  - name: long
    system:
      fluid: {rho: 1000, mu: 0.001}
      geometry: {d: 0.1}
      L: 100
      roughness: 0.00015
      P1: 101325
      P2: 101325
      z1: 10
      z2: 0
      K_total: 2
  - mode: inverse_length
    system:
      fluid: {rho: 1000, mu: 0.001}
      geometry: {d: 0.05}
      P1: 101325
      P2: 101325
      z1: 0
      z2: 0
    params:
      q: 0.005
      h_a: 10
sweep:
  base:
    name: drain
    system:
      geometry: {d: 0.1}
      roughness: 0.00015
      P1: 101325
      P2: 101325
      z1: 10
      z2: 0
      K_total: 2
  param: L
  min: 50
  max: 200
  steps: 4
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(scenarioDoc))
	require.NoError(t, err)

	assert.Equal(t, "drains", s.Name)
	require.Len(t, s.Cases, 2)
	assert.Equal(t, "long", s.Cases[0].Name)
	assert.Equal(t, config.DefaultMode, s.Cases[0].Mode, "mode defaults")
	assert.Equal(t, "case_2", s.Cases[1].Name)
	assert.Equal(t, "water_20C", s.Cases[0].System.Fluid.Preset)

	require.NotNil(t, s.Sweep)
	assert.Equal(t, "L", s.Sweep.Param)
	assert.Equal(t, 4, s.Sweep.Steps)
	assert.Equal(t, "drain", s.Sweep.Base.Name)
}

func TestParseScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "name: nothing\n"},
		{"bad mode", "cases:\n  - mode: teleport\n"},
		{"bad sweep param", "sweep:\n  param: colour\n  min: 1\n  max: 2\n  steps: 3\n"},
		{"short sweep", "sweep:\n  param: L\n  min: 1\n  max: 2\n  steps: 1\n"},
		{"inverted sweep", "sweep:\n  param: L\n  min: 2\n  max: 1\n  steps: 3\n"},
		{"not yaml", "cases: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioDoc), 0644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, s.Cases, 2)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunScenario(t *testing.T) {
	s, err := ParseScenario([]byte(scenarioDoc))
	require.NoError(t, err)

	outcomes, err := RunScenario(context.Background(), s, 2, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 6)

	assert.Equal(t, "long", outcomes[0].Name)
	p, ok := result.PayloadOf(outcomes[0].Result)
	require.True(t, ok, "got %T", outcomes[0].Result)
	assert.InDelta(t, 0.0217769, p.Values[result.Q], 1e-6)

	p, ok = result.PayloadOf(outcomes[1].Result)
	require.True(t, ok, "got %T", outcomes[1].Result)
	assert.InDelta(t, 87.334, p.Values[result.L], 1e-2)

	prev := 1.0
	for i, o := range outcomes[2:] {
		p, ok := result.PayloadOf(o.Result)
		require.True(t, ok, "sweep point %d: got %T", i, o.Result)
		q := p.Values[result.Q]
		assert.Less(t, q, prev, "flow falls as the pipe gets longer")
		prev = q
	}
	assert.Equal(t, "drain[L=50]", outcomes[2].Name)
	assert.Equal(t, "drain[L=200]", outcomes[5].Name)

	assert.Equal(t, 6, Counts(outcomes)[result.StatusSuccess]+Counts(outcomes)[result.StatusWarning])
}

func TestRun_Cancelled(t *testing.T) {
	s, err := ParseScenario([]byte(scenarioDoc))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, s.Cases, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweepSpeedRatio(t *testing.T) {
	base := config.GetPreset("operating_point", "uphill_pump")
	require.NotNil(t, base)

	sw := &Sweep{Base: base, Param: "speed_ratio", Min: 0.9, Max: 1.1, Steps: 3}
	cases, err := sw.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 3)

	outcomes, err := Run(context.Background(), cases, 0, nil)
	require.NoError(t, err)

	var qs []float64
	for _, o := range outcomes {
		p, ok := result.PayloadOf(o.Result)
		require.True(t, ok, "%s: got %T", o.Name, o.Result)
		qs = append(qs, p.Values[result.Q])
	}
	assert.Less(t, qs[0], qs[1])
	assert.Less(t, qs[1], qs[2])
	assert.Equal(t, base.System.Pump.Head, config.GetPreset("operating_point", "uphill_pump").System.Pump.Head,
		"sweeping leaves the base pump untouched")
}

func TestSweepValidate_DiameterNeedsCircularBase(t *testing.T) {
	base := config.GetPreset("gravity_flow", "tank_drain")
	require.NotNil(t, base)

	sw := &Sweep{Base: base, Param: "D", Min: 0.05, Max: 0.2, Steps: 3}
	require.NoError(t, sw.Validate())

	rect := *base
	rect.System.Geometry = hydro.RectangularGeometry(0.3, 0.6)
	sw.Base = &rect
	err := sw.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular")

	_, err = sw.Cases()
	assert.Error(t, err)

	sw.Param = "L"
	assert.NoError(t, sw.Validate())
}

func TestSweepParams(t *testing.T) {
	names := SweepParams()
	assert.Contains(t, names, "L")
	assert.Contains(t, names, "speed_ratio")
	assert.IsIncreasing(t, names)
}
