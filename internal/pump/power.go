package pump

import "math"

// HydraulicPower is ρgQh_a in watts.
func HydraulicPower(q, ha, rho, g float64) float64 {
	return rho * g * q * ha
}

// ShaftPower is hydraulic power over efficiency; +Inf when η ≤ 0.
func ShaftPower(hydraulic, eta float64) float64 {
	if eta <= 0 {
		return math.Inf(1)
	}
	return hydraulic / eta
}

// HeadFromPower is the head delivered by shaft power w at flow q: ηw/(ρQg).
func HeadFromPower(w, eta, rho, q, g float64) float64 {
	return eta * w / (rho * q * g)
}

// WaterHorsepower uses US units: gpm·ft/3960.
func WaterHorsepower(gpm, ft float64) float64 {
	return gpm * ft / 3960
}

func BrakeHorsepower(whp, eta float64) float64 {
	if eta <= 0 {
		return math.Inf(1)
	}
	return whp / eta
}
