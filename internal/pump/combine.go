package pump

import (
	"math"
	"slices"
	"sort"
)

// ParallelPoints is the number of head levels sampled when none are given.
const ParallelPoints = 50

// Series sums heads at matched flow. A nil qs samples the first curve's flows.
func Series(curves []Curve, qs []float64) Curve {
	if len(curves) == 0 {
		return nil
	}
	if qs == nil {
		qs = curves[0].Qs()
	}
	out := make(Curve, len(qs))
	for i, q := range qs {
		var h float64
		for _, c := range curves {
			h += c.At(q, 0)
		}
		out[i] = Point{Q: q, Value: h}
	}
	return out
}

// Parallel sums flows at matched head. Each curve contributes only where its
// own head range covers the level. A nil hs samples the overall head range.
func Parallel(curves []Curve, hs []float64) Curve {
	if len(curves) == 0 {
		return nil
	}
	if hs == nil {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, c := range curves {
			for _, p := range c {
				lo = math.Min(lo, p.Value)
				hi = math.Max(hi, p.Value)
			}
		}
		if math.IsInf(lo, 1) {
			return nil
		}
		hs = Linspace(lo, hi, ParallelPoints)
	}

	out := make(Curve, 0, len(hs))
	for _, h := range hs {
		var q float64
		for _, c := range curves {
			if len(c) == 0 {
				continue
			}
			heads := c.Values()
			if h < slices.Min(heads) || h > slices.Max(heads) {
				continue
			}
			flows := c.Qs()
			slices.Reverse(heads)
			slices.Reverse(flows)
			q += Interpolate(h, heads, flows)
		}
		out = append(out, Point{Q: q, Value: h})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Q < out[j].Q })
	return out
}
