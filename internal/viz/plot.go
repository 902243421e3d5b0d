package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
)

const (
	DefaultPlotWidth  = 60
	DefaultPlotHeight = 15
)

type PlotOptions struct {
	Width   int
	Height  int
	Caption string
}

func (o PlotOptions) withDefaults() PlotOptions {
	if o.Width <= 0 {
		o.Width = DefaultPlotWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultPlotHeight
	}
	return o
}

// sample evaluates c at qs, leaving NaN gaps outside its flow range.
func sample(c pump.Curve, qs []float64) []float64 {
	out := make([]float64, len(qs))
	lo, hi := c.Bounds()
	for i, q := range qs {
		if len(c) == 0 || q < lo || q > hi {
			out[i] = math.NaN()
			continue
		}
		out[i] = c.At(q, 0)
	}
	return out
}

// PlotCurve charts required head against flow. When head is non-empty the
// pump curve is overlaid on the same flow grid.
func PlotCurve(curve []result.CurvePoint, head pump.Curve, opts PlotOptions) string {
	if len(curve) == 0 {
		return ""
	}
	opts = opts.withDefaults()

	qs := make([]float64, len(curve))
	system := make([]float64, len(curve))
	for i, pt := range curve {
		qs[i] = pt.Q
		system[i] = pt.HA
	}

	caption := opts.Caption
	if caption == "" {
		caption = fmt.Sprintf("head [m] vs Q %.4g → %.4g m³/s", qs[0], qs[len(qs)-1])
	}

	series := [][]float64{system}
	legends := []string{"system"}
	if len(head) > 0 {
		series = append(series, sample(head, qs))
		legends = append(legends, "pump")
	}

	return asciigraph.PlotMany(series,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends(legends...),
	)
}

// PlotPumps charts head curves on a shared flow grid spanning all of them.
func PlotPumps(curves []pump.Curve, legends []string, opts PlotOptions) string {
	opts = opts.withDefaults()

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		if len(c) == 0 {
			continue
		}
		clo, chi := c.Bounds()
		lo, hi = math.Min(lo, clo), math.Max(hi, chi)
	}
	if math.IsInf(lo, 0) {
		return ""
	}

	qs := pump.Linspace(lo, hi, opts.Width)
	series := make([][]float64, 0, len(curves))
	for _, c := range curves {
		series = append(series, sample(c, qs))
	}

	caption := opts.Caption
	if caption == "" {
		caption = fmt.Sprintf("pump head [m] vs Q %.4g → %.4g m³/s", lo, hi)
	}

	return asciigraph.PlotMany(series,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Yellow, asciigraph.Cyan),
		asciigraph.SeriesLegends(legends...),
	)
}
