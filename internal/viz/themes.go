package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a terminal color scheme.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeSteel = Theme{
		Name:    "steel",
		Primary: lipgloss.Color("#5fafd7"),
		Accent:  lipgloss.Color("#d7af5f"),
		Text:    lipgloss.Color("#e4e4e4"),
		Muted:   lipgloss.Color("#808080"),
		Border:  lipgloss.Color("#4e4e6e"),
		Success: lipgloss.Color("#5fd787"),
		Warning: lipgloss.Color("#ffaf00"),
		Error:   lipgloss.Color("#ff5f5f"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Border:  lipgloss.Color("#00a8cc"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#cccccc"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	CurrentTheme = ThemeSteel

	Themes = []Theme{ThemeSteel, ThemeOcean, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to steel.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSteel
}

// SetTheme changes the current theme and restyles everything rendered after.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	applyTheme(CurrentTheme)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
