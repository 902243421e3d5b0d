package hydro

import "math"

type Regime string

const (
	Laminar      Regime = "laminar"
	Transitional Regime = "transitional"
	Turbulent    Regime = "turbulent"
)

// Reynolds is ρvD/μ. Degenerate inputs give 0.
func Reynolds(rho, v, dh, mu float64) float64 {
	if mu <= 0 || v <= 0 || dh <= 0 {
		return 0
	}
	return rho * v * dh / mu
}

// ReynoldsFromFlow is 4ρQ/(πDμ), valid for circular pipes.
func ReynoldsFromFlow(rho, q, d, mu float64) float64 {
	if mu <= 0 || q <= 0 || d <= 0 {
		return 0
	}
	return 4 * rho * q / (math.Pi * d * mu)
}

func Classify(re float64) Regime {
	switch {
	case re < ReLaminarLimit:
		return Laminar
	case re < ReTurbulentLimit:
		return Transitional
	default:
		return Turbulent
	}
}

// Alpha is the kinetic-energy correction factor for the regime of re.
func Alpha(re float64) float64 {
	if re < ReLaminarLimit {
		return AlphaLaminar
	}
	return AlphaTurbulent
}
