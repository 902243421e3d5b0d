// Package meb solves the mechanical energy balance between two points of a
// pipe run, expressed in head units:
//
//	P1/ρg + α1·v1²/2g + z1 + h_a = P2/ρg + α2·v2²/2g + z2 + h_L + h_t
//
// Any one of eight terms can be isolated algebraically, or the residual
// LHS−RHS evaluated when no target is named.
package meb

import (
	"math"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/result"
)

// BalancedTol is the residual magnitude reported as balanced.
const BalancedTol = 1e-9

const DefaultDensity = 1000.0

type Target string

const (
	Residual Target = ""
	HA       Target = "h_a"
	HL       Target = "h_L"
	P1       Target = "P1"
	P2       Target = "P2"
	Z1       Target = "z1"
	Z2       Target = "z2"
	V1       Target = "v1"
	V2       Target = "v2"
)

var targets = []Target{HA, HL, P1, P2, Z1, Z2, V1, V2}

// Targets lists every solvable term.
func Targets() []Target {
	return append([]Target(nil), targets...)
}

func ParseTarget(s string) (Target, bool) {
	t := Target(s)
	if t == Residual {
		return t, true
	}
	for _, known := range targets {
		if known == t {
			return t, true
		}
	}
	return t, false
}

// upstream reports whether t appears on the inlet side of the balance.
func (t Target) upstream() bool {
	return t == HA || t == P1 || t == Z1 || t == V1
}

// Balance carries the terms of one energy balance. P and z values and the
// pump head are pointers so an absent term can be told apart from zero.
// Velocities and losses default to zero.
type Balance struct {
	P1, P2 *float64
	Z1, Z2 *float64
	HA     *float64

	V1, V2 float64
	HL     float64
	HT     float64

	Rho    float64
	G      float64
	Alpha1 float64
	Alpha2 float64
}

func (b Balance) withDefaults() Balance {
	if b.Rho == 0 {
		b.Rho = DefaultDensity
	}
	if b.G == 0 {
		b.G = hydro.G
	}
	if b.Alpha1 == 0 {
		b.Alpha1 = hydro.AlphaTurbulent
	}
	if b.Alpha2 == 0 {
		b.Alpha2 = hydro.AlphaTurbulent
	}
	return b
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func (b Balance) missing(t Target) *result.MissingInputs {
	var m []result.Missing
	check := func(v *float64, target Target, desc string) {
		if t != target && v == nil {
			m = append(m, result.Missing{Param: string(target), Description: desc})
		}
	}
	check(b.P1, P1, "Pressure at point 1")
	check(b.P2, P2, "Pressure at point 2")
	check(b.Z1, Z1, "Elevation at point 1")
	check(b.Z2, Z2, "Elevation at point 2")
	check(b.HA, HA, "Pump head")
	if len(m) == 0 {
		return nil
	}
	return &result.MissingInputs{Missing: m}
}

// heads returns both sides of the balance with the term named by skip left out.
func (b Balance) heads(skip Target) (lhs, rhs float64) {
	rg := b.Rho * b.G
	term := func(t Target, v float64) float64 {
		if t == skip {
			return 0
		}
		return v
	}
	lhs = term(P1, deref(b.P1)/rg) +
		term(V1, b.Alpha1*b.V1*b.V1/(2*b.G)) +
		term(Z1, deref(b.Z1)) +
		term(HA, deref(b.HA))
	rhs = term(P2, deref(b.P2)/rg) +
		term(V2, b.Alpha2*b.V2*b.V2/(2*b.G)) +
		term(Z2, deref(b.Z2)) +
		term(HL, b.HL) +
		b.HT
	return lhs, rhs
}

// Residual returns LHS−RHS with absent terms taken as zero.
func (b Balance) Residual() float64 {
	b = b.withDefaults()
	lhs, rhs := b.heads(Residual)
	return lhs - rhs
}

// Solve isolates target, or evaluates the residual when target is Residual.
func Solve(b Balance, target Target) result.Result {
	if _, ok := ParseTarget(string(target)); !ok {
		return result.Fail(result.ReasonUnknownSolveFor, "unknown solve_for parameter: %q", target)
	}
	b = b.withDefaults()

	if target == Residual {
		lhs, rhs := b.heads(Residual)
		r := lhs - rhs
		return &result.Success{Payload: result.Payload{
			Values: result.Values{result.Residual: r, result.LHS: lhs, result.RHS: rhs},
			Flags:  map[string]bool{result.FlagBalanced: math.Abs(r) < BalancedTol},
		}}
	}

	if m := b.missing(target); m != nil {
		return m
	}

	lhs, rhs := b.heads(target)
	head := rhs - lhs
	if !target.upstream() {
		head = -head
	}

	var x float64
	switch target {
	case HA, HL, Z1, Z2:
		x = head
	case P1, P2:
		x = head * b.Rho * b.G
	case V1, V2:
		alpha := b.Alpha1
		if target == V2 {
			alpha = b.Alpha2
		}
		if head < 0 {
			return result.Fail(result.ReasonNegativeKineticEnergy,
				"solved kinetic energy head for %s is %.6g m; check input values", target, head)
		}
		x = math.Sqrt(2 * b.G * head / alpha)
	}

	return &result.Success{Payload: result.Payload{
		Values: result.Values{result.Quantity(target): x},
	}}
}
