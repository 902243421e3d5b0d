// Package pump analyses pump characteristic curves: interpolation, best
// efficiency point, affinity scaling and series/parallel combination.
package pump

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnsorted = errors.New("pump: curve flow rates must be non-decreasing")

// Point is one (Q, value) sample. In YAML it is written as a pair: [Q, value].
type Point struct {
	Q     float64 `json:"q"`
	Value float64 `json:"value"`
}

func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var pair []float64
	if err := n.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("pump: curve point needs [Q, value], got %d numbers (line %d)", len(pair), n.Line)
	}
	p.Q, p.Value = pair[0], pair[1]
	return nil
}

func (p Point) MarshalYAML() (any, error) {
	var q, v yaml.Node
	if err := q.Encode(p.Q); err != nil {
		return nil, err
	}
	if err := v.Encode(p.Value); err != nil {
		return nil, err
	}
	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{&q, &v},
	}, nil
}

// Curve is a sampled characteristic ordered by Q.
type Curve []Point

func (c Curve) Qs() []float64 {
	xs := make([]float64, len(c))
	for i, p := range c {
		xs[i] = p.Q
	}
	return xs
}

func (c Curve) Values() []float64 {
	ys := make([]float64, len(c))
	for i, p := range c {
		ys[i] = p.Value
	}
	return ys
}

// Bounds returns the first and last sampled flow rates.
func (c Curve) Bounds() (lo, hi float64) {
	if len(c) == 0 {
		return 0, 0
	}
	return c[0].Q, c[len(c)-1].Q
}

// At interpolates the curve at q, or returns def for an empty curve.
func (c Curve) At(q, def float64) float64 {
	if len(c) == 0 {
		return def
	}
	return Interpolate(q, c.Qs(), c.Values())
}

func (c Curve) Validate() error {
	for i := 1; i < len(c); i++ {
		if c[i].Q < c[i-1].Q {
			return fmt.Errorf("%w: Q[%d]=%g after Q[%d]=%g", ErrUnsorted, i, c[i].Q, i-1, c[i-1].Q)
		}
	}
	return nil
}

// Interpolate is piecewise-linear interpolation of ys over increasing xs.
// Outside the sampled range it returns the nearest end value.
func Interpolate(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || len(ys) < n {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := sort.Search(n, func(i int) bool { return xs[i] > x }) - 1
	dx := xs[i+1] - xs[i]
	if dx == 0 {
		return ys[i+1]
	}
	return ys[i] + (x-xs[i])*(ys[i+1]-ys[i])/dx
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
