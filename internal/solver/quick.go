package solver

import (
	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/meb"
)

// QuickHeadLoss evaluates a plain circular pipe at flow q.
func QuickHeadLoss(length, d, q, rho, mu, roughness, k float64) hydro.State {
	sec, _ := hydro.CircularGeometry(d).Section()
	p := hydro.Pipe{Section: sec, Length: length, Roughness: roughness, K: k}
	return hydro.Evaluate(p, rho, mu, q, hydro.G)
}

// QuickPumpHead is the pump head needed between two points:
// (P2−P1)/ρg + (z2−z1) + h_L + (v2²−v1²)/2g.
func QuickPumpHead(p1, p2, z1, z2, hl, rho, v1, v2 float64) float64 {
	zero := 0.0
	b := meb.Balance{
		P1:  &p1,
		P2:  &p2,
		Z1:  &z1,
		Z2:  &z2,
		HA:  &zero,
		V1:  v1,
		V2:  v2,
		HL:  hl,
		Rho: rho,
	}
	return -b.Residual()
}
