package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel      lipgloss.Style
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Subtle     lipgloss.Style
	KeyHint    lipgloss.Style
	StatusOK   lipgloss.Style
	StatusWarn lipgloss.Style
	StatusFail lipgloss.Style

	sparkHigh lipgloss.Style
	sparkMid  lipgloss.Style
	sparkLow  lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	Label = lipgloss.NewStyle().Foreground(t.Muted)
	Value = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	KeyHint = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)

	StatusOK = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	StatusWarn = lipgloss.NewStyle().Bold(true).Foreground(t.Warning)
	StatusFail = lipgloss.NewStyle().Bold(true).Foreground(t.Error)

	sparkHigh = lipgloss.NewStyle().Foreground(t.Error)
	sparkMid = lipgloss.NewStyle().Foreground(t.Warning)
	sparkLow = lipgloss.NewStyle().Foreground(t.Success)
}

// Sparkline renders values as a one-line bar chart, sampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := max(len(values)/width, 1)

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := min(max(int(norm*float64(len(chars)-1)), 0), len(chars)-1)

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			sb.WriteString(sparkHigh.Render(c))
		case norm > 0.3:
			sb.WriteString(sparkMid.Render(c))
		default:
			sb.WriteString(sparkLow.Render(c))
		}
	}
	return sb.String()
}

func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return Subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
