package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pipeflow/internal/result"
)

var units = map[result.Quantity]string{
	result.Q:                "m³/s",
	result.V:                "m/s",
	result.V1:               "m/s",
	result.V2:               "m/s",
	result.HA:               "m",
	result.HL:               "m",
	result.HLMajor:          "m",
	result.HLMinor:          "m",
	result.HLTotal:          "m",
	result.HLTotalAvailable: "m",
	result.Shortfall:        "m",
	result.Z1:               "m",
	result.Z2:               "m",
	result.D:                "m",
	result.L:                "m",
	result.Dh:               "m",
	result.Area:             "m²",
	result.P1:               "Pa",
	result.P2:               "Pa",
	result.PHydraulic:       "W",
	result.PShaft:           "W",
	result.WShaft:           "W",
	result.NPSHA:            "m",
	result.NPSHR:            "m",
	result.Margin:           "m",
	result.Residual:         "m",
	result.LHS:              "m",
	result.RHS:              "m",
	result.HSystemAtQMin:    "m",
	result.HPumpAtQMin:      "m",
	result.HSystemAtQMax:    "m",
	result.HPumpAtQMax:      "m",
}

// Unit returns the SI unit of q, or "" for dimensionless quantities.
func Unit(q result.Quantity) string {
	return units[q]
}

// FormatValue prints v with its unit.
func FormatValue(q result.Quantity, v float64) string {
	s := fmt.Sprintf("%.6g", v)
	if q == result.Efficiency && !math.IsInf(v, 0) {
		s = fmt.Sprintf("%.1f%%", v*100)
	}
	if u := Unit(q); u != "" {
		s += " " + u
	}
	return s
}

func statusBadge(s result.Status) string {
	label := strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
	switch s {
	case result.StatusSuccess:
		return StatusOK.Render("● " + label)
	case result.StatusWarning:
		return StatusWarn.Render("▲ " + label)
	default:
		return StatusFail.Render("✖ " + label)
	}
}

func valueTable(v result.Values) string {
	keys := v.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}

	lines := make([]string, len(keys))
	for i, k := range keys {
		name := string(k) + strings.Repeat(" ", width-len(k))
		lines[i] = Label.Render(name) + "  " + Value.Render(FormatValue(k, v[k]))
	}
	return strings.Join(lines, "\n")
}

// RenderResult formats r for the terminal. title is shown in the header.
func RenderResult(title string, r result.Result) string {
	sections := []string{Title.Render(title) + "  " + statusBadge(r.Status())}

	switch v := r.(type) {
	case *result.MissingInputs:
		lines := make([]string, len(v.Missing))
		for i, m := range v.Missing {
			lines[i] = Label.Render("• "+m.Param) + "  " + Subtle.Render(m.Description)
		}
		sections = append(sections, strings.Join(lines, "\n"))

	case *result.NoSolution:
		sections = append(sections, Value.Render(string(v.Reason)))
		if v.Detail != "" {
			sections = append(sections, Subtle.Render(v.Detail))
		}
		if len(v.Partial) > 0 {
			sections = append(sections, valueTable(v.Partial))
		}

	default:
		p, _ := result.PayloadOf(r)
		if len(p.Values) > 0 {
			sections = append(sections, valueTable(p.Values))
		}
		if d := p.Diagnostics; d != nil {
			sections = append(sections, Subtle.Render(fmt.Sprintf("Re %.4g · %s · f %.5g (%s)",
				d.Re, d.Regime, d.F, d.FrictionMethod)))
		}
		if len(p.Flags) > 0 {
			names := make([]string, 0, len(p.Flags))
			for name, on := range p.Flags {
				names = append(names, fmt.Sprintf("%s=%t", name, on))
			}
			sort.Strings(names)
			sections = append(sections, Subtle.Render(strings.Join(names, "  ")))
		}
		if len(p.Curve) > 0 {
			heads := make([]float64, len(p.Curve))
			for i, pt := range p.Curve {
				heads[i] = pt.HA
			}
			first, last := p.Curve[0], p.Curve[len(p.Curve)-1]
			sections = append(sections,
				Label.Render("h_a ")+Sparkline(heads, 40),
				Subtle.Render(fmt.Sprintf("%d points, Q %.4g → %.4g m³/s, h_a %.4g → %.4g m",
					len(p.Curve), first.Q, last.Q, first.HA, last.HA)))
		}
		for _, w := range result.WarningsOf(r) {
			sections = append(sections, StatusWarn.Render("! "+w))
		}
	}

	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
