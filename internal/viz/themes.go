package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome colors of the player. Field colors come from
// each panel's palette and do not change with the theme.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Border lipgloss.Color
	Arrow  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Status lipgloss.Color
	Paused lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#ff00ff"),
		Border: lipgloss.Color("#444466"),
		Arrow:  lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Status: lipgloss.Color("#00ff88"),
		Paused: lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"),
		Border: lipgloss.Color("#005500"),
		Arrow:  lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Status: lipgloss.Color("#88ff88"),
		Paused: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Arrow:  lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Status: lipgloss.Color("#00ff00"),
		Paused: lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#4488aa"),
		Arrow:  lipgloss.Color("#e0f0ff"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Status: lipgloss.Color("#00ff88"),
		Paused: lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#ff6b6b"),
		Border: lipgloss.Color("#8b6b8c"),
		Arrow:  lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Status: lipgloss.Color("#5fd068"),
		Paused: lipgloss.Color("#ffc048"),
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

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
