package pump

// Scaled holds a duty point after an affinity-law change.
type Scaled struct {
	Q     float64
	H     float64
	P     float64
	Ratio float64
}

// SpeedRatio is n2/n1.
func SpeedRatio(n1, n2 float64) float64 { return n2 / n1 }

// DiameterRatio is D2/D1 for an impeller trim.
func DiameterRatio(d1, d2 float64) float64 { return d2 / d1 }

// Affinity scales flow linearly, head with the square and power with the
// cube of ratio.
func Affinity(ratio, q, h, p float64) Scaled {
	return Scaled{
		Q:     q * ratio,
		H:     h * ratio * ratio,
		P:     p * ratio * ratio * ratio,
		Ratio: ratio,
	}
}

// ScaleCurve applies the affinity laws pointwise to a head curve.
func ScaleCurve(c Curve, ratio float64) Curve {
	out := make(Curve, len(c))
	for i, p := range c {
		out[i] = Point{Q: p.Q * ratio, Value: p.Value * ratio * ratio}
	}
	return out
}

// Scale returns a copy of s at a new speed. Efficiency keeps its value and
// moves with Q; NPSH required scales like head.
func (s Set) Scale(ratio float64) Set {
	eff := make(Curve, len(s.Efficiency))
	for i, p := range s.Efficiency {
		eff[i] = Point{Q: p.Q * ratio, Value: p.Value}
	}
	return Set{
		Head:         ScaleCurve(s.Head, ratio),
		Efficiency:   eff,
		NPSHRequired: ScaleCurve(s.NPSHRequired, ratio),
	}
}
