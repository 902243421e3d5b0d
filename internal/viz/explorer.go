package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/solver"
	"github.com/san-kum/pipeflow/internal/system"
)

const (
	RatioStep = 0.05
	MinRatio  = 0.1
	MaxRatio  = 2.0

	explorerPoints = 40
)

// Explorer re-solves an operating point as the pump speed changes. The
// pump curves are rescaled by the affinity laws at each speed ratio.
type Explorer struct {
	solver *solver.Solver
	base   system.PipeSystem
	title  string

	ratio  float64
	result result.Result
	curve  []result.CurvePoint

	width  int
	height int
}

func NewExplorer(s *solver.Solver, title string, sys system.PipeSystem) Explorer {
	m := Explorer{
		solver: s,
		base:   sys,
		title:  title,
		ratio:  1.0,
		width:  80,
		height: 24,
	}
	m.solve()
	return m
}

func (m *Explorer) solve() {
	sys := m.base
	sys.Pump = m.base.Pump.Scale(m.ratio)

	m.result = m.solver.OperatingPoint(&sys, solver.DefaultQGuess)

	qMin, qMax := sys.Pump.Head.Bounds()
	m.curve = nil
	if p, ok := result.PayloadOf(m.solver.SystemCurve(&sys, qMin, qMax, explorerPoints)); ok {
		m.curve = p.Curve
	}
}

func (m Explorer) Ratio() float64        { return m.ratio }
func (m Explorer) Result() result.Result { return m.result }

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "right", "+", "=":
		m.setRatio(m.ratio + RatioStep)
	case "down", "left", "-", "_":
		m.setRatio(m.ratio - RatioStep)
	case "r":
		m.setRatio(1.0)
	case "t":
		names := ThemeNames()
		for i, n := range names {
			if n == CurrentTheme.Name {
				SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	}
	return m, nil
}

func (m *Explorer) setRatio(r float64) {
	r = min(max(r, MinRatio), MaxRatio)
	if r == m.ratio {
		return
	}
	m.ratio = r
	m.solve()
}

func (m Explorer) View() string {
	header := Title.Render("pipeflow · "+m.title) + "  " +
		Label.Render("speed ") + Value.Render(fmt.Sprintf("%.0f%%", m.ratio*100))

	plotWidth := max(m.width-20, 20)
	plot := PlotCurve(m.curve, m.base.Pump.Scale(m.ratio).Head, PlotOptions{
		Width:  plotWidth,
		Height: max(m.height/3, 8),
	})

	hints := KeyHint.Render("↑/↓ speed · r reset · t theme · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		Separator(min(m.width, 60)),
		plot,
		RenderResult("operating point", m.result),
		hints,
	) + "\n"
}

// RunExplorer starts the explorer on the terminal and blocks until it exits.
func RunExplorer(s *solver.Solver, title string, sys system.PipeSystem) error {
	_, err := tea.NewProgram(NewExplorer(s, title, sys), tea.WithAltScreen()).Run()
	return err
}
