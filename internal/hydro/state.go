package hydro

// Pipe is one straight run with its lumped fittings.
type Pipe struct {
	Section   Section
	Length    float64
	Roughness float64
	K         float64
}

// State is the hydraulic condition of a pipe at one flow rate.
type State struct {
	Q            float64
	V            float64
	Re           float64
	Regime       Regime
	Alpha        float64
	RelRoughness float64
	F            float64
	Method       FrictionMethod
	MajorLoss    float64
	MinorLoss    float64
	TotalLoss    float64
}

func (p Pipe) RelativeRoughness() float64 {
	if p.Section.Dh <= 0 {
		return 0
	}
	return p.Roughness / p.Section.Dh
}

// Evaluate computes velocity, regime, friction and losses for flow q.
func Evaluate(p Pipe, rho, mu, q, g float64) State {
	v := Velocity(q, p.Section.Area)
	re := Reynolds(rho, v, p.Section.Dh, mu)
	eps := p.RelativeRoughness()
	f, method := FrictionFactor(re, eps)

	major := MajorHeadLoss(f, p.Length, p.Section.Dh, v, g)
	minor := MinorHeadLoss(p.K, v, g)

	return State{
		Q:            q,
		V:            v,
		Re:           re,
		Regime:       Classify(re),
		Alpha:        Alpha(re),
		RelRoughness: eps,
		F:            f,
		Method:       method,
		MajorLoss:    major,
		MinorLoss:    minor,
		TotalLoss:    major + minor,
	}
}
