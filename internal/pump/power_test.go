package pump

import (
	"math"
	"testing"
)

func TestPower(t *testing.T) {
	ph := HydraulicPower(0.02, 30, 1000, 9.81)
	if math.Abs(ph-5886) > 1e-9 {
		t.Errorf("expected 5886, got %v", ph)
	}
	if got := ShaftPower(ph, 0.6); math.Abs(got-9810) > 1e-9 {
		t.Errorf("expected 9810, got %v", got)
	}
	if !math.IsInf(ShaftPower(ph, 0), 1) {
		t.Error("expected +Inf shaft power at zero efficiency")
	}
	if got := HeadFromPower(9810, 0.6, 1000, 0.02, 9.81); math.Abs(got-30) > 1e-9 {
		t.Errorf("expected 30, got %v", got)
	}
	if got := WaterHorsepower(396, 100); math.Abs(got-10) > 1e-12 {
		t.Errorf("expected 10, got %v", got)
	}
	if got := BrakeHorsepower(10, 0.8); math.Abs(got-12.5) > 1e-12 {
		t.Errorf("expected 12.5, got %v", got)
	}
}
