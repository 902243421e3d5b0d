package export

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
)

func TestCurvesSVG(t *testing.T) {
	s := Series{Name: "line", Color: "#fff", Points: []XY{{0, 0}, {1, 1}, {2, 4}}}
	out := CurvesSVG([]Series{s}, nil, 0, 0)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="640"`)
	assert.Contains(t, out, `stroke="#fff"`)
	assert.Equal(t, 1, strings.Count(out, "M"), "one unbroken path")
	assert.Equal(t, 2, strings.Count(out, " L"))
	assert.NotContains(t, out, "<circle")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestCurvesSVG_Gaps(t *testing.T) {
	s := Series{Name: "gappy", Color: "#fff", Points: []XY{{0, 1}, {1, math.NaN()}, {2, 3}, {3, 4}}}
	out := CurvesSVG([]Series{s}, &XY{2, 3}, 200, 100)

	assert.Contains(t, out, "M")
	assert.Equal(t, 2, strings.Count(out, "M"), "the NaN splits the path")
	assert.Contains(t, out, "<circle")
	assert.Contains(t, out, "Q=2 h=3")
}

func TestCurvesSVG_Empty(t *testing.T) {
	assert.Empty(t, CurvesSVG(nil, nil, 0, 0))
	assert.Empty(t, CurvesSVG([]Series{{Points: []XY{{math.NaN(), 1}}}}, nil, 0, 0))
}

func TestOperatingPointSVG(t *testing.T) {
	curve := []result.CurvePoint{
		{State: hydro.State{Q: 0.01}, HA: 22},
		{State: hydro.State{Q: 0.03}, HA: 38},
		{State: hydro.State{Q: 0.05}, HA: 65},
	}
	head := pump.Curve{{Q: 0.01, Value: 48}, {Q: 0.03, Value: 38}, {Q: 0.05, Value: 20}}

	out := OperatingPointSVG(curve, head, &XY{0.03, 38}, 0, 0)
	assert.Contains(t, out, ">system<")
	assert.Contains(t, out, ">pump<")
	assert.Contains(t, out, "<circle")

	out = OperatingPointSVG(curve, nil, nil, 0, 0)
	assert.NotContains(t, out, ">pump<")
}
