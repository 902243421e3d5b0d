package hydro

import (
	"math"
	"testing"
)

func TestFrictionFactor_Laminar(t *testing.T) {
	for _, re := range []float64{1, 100, 1000, 2299.9} {
		for _, eps := range []float64{0, 1e-4, 0.05} {
			f, method := FrictionFactor(re, eps)
			if f != 16/re {
				t.Errorf("Re=%v: expected %v, got %v", re, 16/re, f)
			}
			if method != MethodLaminar {
				t.Errorf("Re=%v: expected laminar, got %s", re, method)
			}
		}
	}
}

func TestFrictionFactor_Blasius(t *testing.T) {
	for _, re := range []float64{2300, 1e4, 1e5, 1e7} {
		f, method := FrictionFactor(re, 5e-7)
		expected := 0.0791 * math.Pow(re, -0.25)
		if math.Abs(f-expected) > 1e-15 {
			t.Errorf("Re=%v: expected %v, got %v", re, expected, f)
		}
		if method != MethodBlasius {
			t.Errorf("Re=%v: expected blasius, got %s", re, method)
		}
	}
}

func TestFrictionFactor_Colebrook(t *testing.T) {
	re, eps := 100000.0, 0.001
	f, method := FrictionFactor(re, eps)

	if method != MethodColebrook {
		t.Fatalf("expected colebrook, got %s", method)
	}
	if f <= Blasius(re) || f >= 0.01 {
		t.Errorf("expected %v < f < 0.01, got %v", Blasius(re), f)
	}
	if r := Colebrook(f, re, eps); math.Abs(r) > 1e-6 {
		t.Errorf("colebrook residual too large: %e", r)
	}
}

func TestFrictionFactor_Degenerate(t *testing.T) {
	for _, re := range []float64{0, -5} {
		f, method := FrictionFactor(re, 0.001)
		if f != 0.01 || method != MethodDefault {
			t.Errorf("Re=%v: expected (0.01, default), got (%v, %s)", re, f, method)
		}
	}
}

func TestFrictionFactor_NeverFails(t *testing.T) {
	for _, re := range []float64{2300, 5e3, 1e6, 1e9} {
		for _, eps := range []float64{1e-6, 1e-3, 0.05, 0.5} {
			f, _ := FrictionFactor(re, eps)
			if math.IsNaN(f) || f <= 0 {
				t.Errorf("Re=%v eps=%v: unusable friction factor %v", re, eps, f)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		re     float64
		regime Regime
		alpha  float64
	}{
		{0, Laminar, AlphaLaminar},
		{2299, Laminar, AlphaLaminar},
		{2300, Transitional, AlphaTurbulent},
		{3999, Transitional, AlphaTurbulent},
		{4000, Turbulent, AlphaTurbulent},
	}

	for _, tt := range tests {
		if got := Classify(tt.re); got != tt.regime {
			t.Errorf("Classify(%v) = %s, want %s", tt.re, got, tt.regime)
		}
		if got := Alpha(tt.re); got != tt.alpha {
			t.Errorf("Alpha(%v) = %v, want %v", tt.re, got, tt.alpha)
		}
	}
}

func TestEvaluate(t *testing.T) {
	section, err := CircularGeometry(0.1).Section()
	if err != nil {
		t.Fatal(err)
	}
	p := Pipe{Section: section, Length: 100, Roughness: 0.00015, K: 2}

	s := Evaluate(p, 1000, 0.001, 0.02, G)

	expectedV := 0.02 / section.Area
	if math.Abs(s.V-expectedV) > 1e-12 {
		t.Errorf("expected v %v, got %v", expectedV, s.V)
	}
	if s.Regime != Turbulent {
		t.Errorf("expected turbulent, got %s", s.Regime)
	}
	if math.Abs(s.TotalLoss-(s.MajorLoss+s.MinorLoss)) > 1e-12 {
		t.Error("total loss is not major + minor")
	}
	hl := MajorHeadLoss(s.F, 100, 0.1, s.V, G)
	if math.Abs(LengthForMajorLoss(hl, s.F, 0.1, s.V, G)-100) > 1e-9 {
		t.Error("LengthForMajorLoss does not invert MajorHeadLoss")
	}
}
