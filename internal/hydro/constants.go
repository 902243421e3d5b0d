package hydro

const (
	G = 9.81 // m/s²

	AlphaTurbulent = 1.0
	AlphaLaminar   = 2.0

	ReLaminarLimit   = 2300.0
	ReTurbulentLimit = 4000.0

	// relative roughness below this is treated as hydraulically smooth
	SmoothRoughness = 1e-6
)
