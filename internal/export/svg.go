package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 400

	margin = 48.0
)

type XY struct {
	X, Y float64
}

// Series is one polyline of a chart.
type Series struct {
	Name   string
	Color  string
	Points []XY
}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func boundsOf(series []Series, marker *XY) (bounds, bool) {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	add := func(p XY) {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return
		}
		b.minX, b.maxX = math.Min(b.minX, p.X), math.Max(b.maxX, p.X)
		b.minY, b.maxY = math.Min(b.minY, p.Y), math.Max(b.maxY, p.Y)
	}
	for _, s := range series {
		for _, p := range s.Points {
			add(p)
		}
	}
	if marker != nil {
		add(*marker)
	}
	if math.IsInf(b.minX, 0) {
		return b, false
	}

	rangeX, rangeY := b.maxX-b.minX, b.maxY-b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
	b.maxX += rangeX * 0.05
	return b, true
}

// CurvesSVG draws series on shared axes. marker, when set, is drawn as a
// circle on top.
func CurvesSVG(series []Series, marker *XY, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	b, ok := boundsOf(series, marker)
	if !ok {
		return ""
	}

	w, h := float64(width), float64(height)
	px := func(x float64) float64 { return margin + (x-b.minX)/(b.maxX-b.minX)*(w-2*margin) }
	py := func(y float64) float64 { return h - margin - (y-b.minY)/(b.maxY-b.minY)*(h-2*margin) }

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="monospace" font-size="11">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#444466" fill="none">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
<g fill="#888899">
<text x="%.1f" y="%.1f">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
<text x="4" y="%.1f">%.4g</text>
<text x="4" y="%.1f">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="middle">Q [m³/s]</text>
<text x="4" y="14">head [m]</text>
</g>
`,
		width, height, width, height,
		margin, h-margin, w-margin, h-margin,
		margin, margin, margin, h-margin,
		margin, h-margin+16, b.minX,
		w-margin, h-margin+16, b.maxX,
		h-margin, b.minY,
		margin+4, b.maxY,
		w/2, h-8,
	)

	for i, s := range series {
		var path strings.Builder
		pen := false
		for _, p := range s.Points {
			if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				pen = false
				continue
			}
			if pen {
				fmt.Fprintf(&path, " L%.1f,%.1f", px(p.X), py(p.Y))
			} else {
				fmt.Fprintf(&path, " M%.1f,%.1f", px(p.X), py(p.Y))
				pen = true
			}
		}
		if path.Len() == 0 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, s.Color, strings.TrimSpace(path.String()), w-margin-80, margin+float64(i)*14, s.Color, s.Name)
	}

	if marker != nil {
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="#ffd700"/>
<text x="%.1f" y="%.1f" fill="#ffd700">Q=%.4g h=%.4g</text>
`, px(marker.X), py(marker.Y), px(marker.X)+6, py(marker.Y)-6, marker.X, marker.Y)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// OperatingPointSVG charts a system curve with an optional pump head curve
// and operating point.
func OperatingPointSVG(curve []result.CurvePoint, head pump.Curve, op *XY, width, height int) string {
	system := Series{Name: "system", Color: "#5fafd7", Points: make([]XY, len(curve))}
	for i, pt := range curve {
		system.Points[i] = XY{pt.Q, pt.HA}
	}
	series := []Series{system}

	if len(head) > 0 {
		p := Series{Name: "pump", Color: "#ff5f5f", Points: make([]XY, len(head))}
		for i, pt := range head {
			p.Points[i] = XY{pt.Q, pt.Value}
		}
		series = append(series, p)
	}
	return CurvesSVG(series, op, width, height)
}
