package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the palette of the calculator UI.
type Theme struct {
	Name       string
	Title      lipgloss.Color
	Digit      lipgloss.Color
	Background lipgloss.Color
	Label      lipgloss.Color
	Focus      lipgloss.Color
	Muted      lipgloss.Color
	Graph      lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Title:      lipgloss.Color("#ff00ff"),
		Digit:      lipgloss.Color("#00ffff"),
		Background: lipgloss.Color("#0a0a0a"),
		Label:      lipgloss.Color("#ffff00"),
		Focus:      lipgloss.Color("#ff00ff"),
		Muted:      lipgloss.Color("#666666"),
		Graph:      lipgloss.Color("#00ff00"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Title:      lipgloss.Color("#00ff00"),
		Digit:      lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Label:      lipgloss.Color("#00cc00"),
		Focus:      lipgloss.Color("#88ff88"),
		Muted:      lipgloss.Color("#005500"),
		Graph:      lipgloss.Color("#00ff00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Title:      lipgloss.Color("#ffffff"),
		Digit:      lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#000000"),
		Label:      lipgloss.Color("#cccccc"),
		Focus:      lipgloss.Color("#0088ff"),
		Muted:      lipgloss.Color("#888888"),
		Graph:      lipgloss.Color("#cccccc"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Title:      lipgloss.Color("#0077be"),
		Digit:      lipgloss.Color("#e0f0ff"),
		Background: lipgloss.Color("#001a33"),
		Label:      lipgloss.Color("#00a8cc"),
		Focus:      lipgloss.Color("#ffd700"),
		Muted:      lipgloss.Color("#4488aa"),
		Graph:      lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Title:      lipgloss.Color("#ff6b6b"),
		Digit:      lipgloss.Color("#fff5f5"),
		Background: lipgloss.Color("#2d1b2e"),
		Label:      lipgloss.Color("#feca57"),
		Focus:      lipgloss.Color("#ff9ff3"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Graph:      lipgloss.Color("#5fd068"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
