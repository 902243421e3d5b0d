package pump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffinity(t *testing.T) {
	s := Affinity(SpeedRatio(1750, 3500), 0.02, 30, 1000)

	assert.InDelta(t, 2.0, s.Ratio, 1e-12)
	assert.InDelta(t, 0.04, s.Q, 1e-12)
	assert.InDelta(t, 120, s.H, 1e-9)
	assert.InDelta(t, 8000, s.P, 1e-9)

	trim := Affinity(DiameterRatio(0.25, 0.2), 0.05, 40, 0)
	assert.InDelta(t, 0.04, trim.Q, 1e-12)
	assert.InDelta(t, 25.6, trim.H, 1e-9)
}

func TestScaleCurve(t *testing.T) {
	c := Curve{{0.01, 40}, {0.02, 30}}
	got := ScaleCurve(c, 0.5)

	assert.InDelta(t, 0.005, got[0].Q, 1e-15)
	assert.InDelta(t, 10, got[0].Value, 1e-12)
	assert.InDelta(t, 7.5, got[1].Value, 1e-12)
	assert.Equal(t, 40.0, c[0].Value, "input must not change")
}

func TestSetScale(t *testing.T) {
	s := Set{
		Head:         Curve{{0.02, 40}},
		Efficiency:   Curve{{0.02, 0.7}},
		NPSHRequired: Curve{{0.02, 3}},
	}
	got := s.Scale(1.1)

	assert.InDelta(t, 0.022, got.Efficiency[0].Q, 1e-12)
	assert.Equal(t, 0.7, got.Efficiency[0].Value)
	assert.InDelta(t, 48.4, got.Head[0].Value, 1e-9)
	assert.InDelta(t, 3.63, got.NPSHRequired[0].Value, 1e-9)
}
