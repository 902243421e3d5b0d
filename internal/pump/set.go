package pump

const DefaultEfficiency = 0.75

// Set groups the head, efficiency and NPSH-required curves of one pump.
type Set struct {
	Head         Curve `yaml:"head,omitempty" json:"head,omitempty"`
	Efficiency   Curve `yaml:"efficiency,omitempty" json:"efficiency,omitempty"`
	NPSHRequired Curve `yaml:"npsh_r,omitempty" json:"npsh_r,omitempty"`
}

func (s Set) HeadAt(q float64) float64 {
	return s.Head.At(q, 0)
}

func (s Set) EfficiencyAt(q float64) float64 {
	return s.Efficiency.At(q, DefaultEfficiency)
}

func (s Set) NPSHRequiredAt(q float64) float64 {
	return s.NPSHRequired.At(q, 0)
}

func (s Set) Validate() error {
	for _, c := range []Curve{s.Head, s.Efficiency, s.NPSHRequired} {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BEP returns the best efficiency point, or zeros for an empty curve.
func BEP(efficiency Curve) (q, eta float64) {
	if len(efficiency) == 0 {
		return 0, 0
	}
	best := efficiency[0]
	for _, p := range efficiency[1:] {
		if p.Value > best.Value {
			best = p
		}
	}
	return best.Q, best.Value
}
