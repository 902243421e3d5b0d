package hydro

// MajorHeadLoss is the Fanning form 2f(L/D)(v²/g).
func MajorHeadLoss(f, length, dh, v, g float64) float64 {
	if dh <= 0 {
		return 0
	}
	return 2 * f * (length / dh) * v * v / g
}

// MinorHeadLoss is K·v²/2g.
func MinorHeadLoss(k, v, g float64) float64 {
	return k * v * v / (2 * g)
}

// LengthForMajorLoss inverts MajorHeadLoss for L.
func LengthForMajorLoss(hMajor, f, dh, v, g float64) float64 {
	return hMajor * dh * g / (2 * f * v * v)
}

// SuddenContractionK is 0.5(1-β²) with β = Dsmall/Dlarge.
func SuddenContractionK(dSmall, dLarge float64) float64 {
	beta := dSmall / dLarge
	return 0.5 * (1 - beta*beta)
}

// SuddenExpansionK is (1-β²)² with β = Dsmall/Dlarge.
func SuddenExpansionK(dSmall, dLarge float64) float64 {
	beta := dSmall / dLarge
	return (1 - beta*beta) * (1 - beta*beta)
}
