package hydro

import (
	"math"

	"github.com/san-kum/pipeflow/internal/rootfind"
)

type FrictionMethod string

const (
	MethodDefault         FrictionMethod = "default"
	MethodLaminar         FrictionMethod = "laminar"
	MethodBlasius         FrictionMethod = "blasius"
	MethodColebrook       FrictionMethod = "colebrook"
	MethodBlasiusFallback FrictionMethod = "blasius_fallback"
)

const (
	defaultFriction = 0.01
	colebrookLow    = 0.001
	colebrookHigh   = 0.1
	colebrookFloor  = 0.001
)

// Blasius is the smooth-pipe turbulent correlation 0.0791·Re^-0.25.
func Blasius(re float64) float64 {
	return 0.0791 / math.Pow(re, 0.25)
}

// Colebrook returns the residual of the Fanning form of the Colebrook-White
// relation, 1/√f + 4·log10(ε/D/3.7 + 1.256/(Re·√f)).
func Colebrook(f, re, relRoughness float64) float64 {
	if f <= 0 {
		return 1e10
	}
	sf := math.Sqrt(f)
	term := relRoughness/3.7 + 1.256/(re*sf)
	if term <= 0 {
		return 1e10
	}
	return 1/sf + 4*math.Log10(term)
}

// FrictionFactor picks the correlation for (Re, ε/D) and never fails:
// a Colebrook solve that does not converge degrades to the Blasius estimate.
func FrictionFactor(re, relRoughness float64) (float64, FrictionMethod) {
	if re <= 0 {
		return defaultFriction, MethodDefault
	}
	if re < ReLaminarLimit {
		return 16 / re, MethodLaminar
	}

	blasius := Blasius(re)
	if relRoughness < SmoothRoughness {
		return blasius, MethodBlasius
	}

	residual := func(f float64) float64 { return Colebrook(f, re, relRoughness) }
	root, err := rootfind.Find(residual, colebrookLow, colebrookHigh, blasius, rootfind.DefaultOptions())
	if err != nil || root.X <= 0 || math.IsNaN(root.X) {
		return blasius, MethodBlasiusFallback
	}
	if root.Method == rootfind.MethodSecant {
		return math.Max(root.X, colebrookFloor), MethodColebrook
	}
	return root.X, MethodColebrook
}
