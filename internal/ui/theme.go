package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette the shell renders with. Themes are looked up
// by name from preferences; unknown names fall back to the default.
type Theme struct {
	Name      string
	Accent    lipgloss.AdaptiveColor
	Dim       lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var themes = map[string]Theme{
	"Dracula": {
		Name:      "Dracula",
		Accent:    lipgloss.AdaptiveColor{Light: "#7d56c2", Dark: "#bd93f9"},
		Dim:       lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		Highlight: lipgloss.AdaptiveColor{Light: "#1fa55c", Dark: "#50fa7b"},
		Error:     lipgloss.AdaptiveColor{Light: "#c9283e", Dark: "#ff5555"},
	},
	"Nord": {
		Name:      "Nord",
		Accent:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"},
		Dim:       lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		Highlight: lipgloss.AdaptiveColor{Light: "#8fbc8f", Dark: "#a3be8c"},
		Error:     lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
	},
}

const defaultThemeName = "Dracula"

// ThemeByName resolves a theme, defaulting when the name is unknown.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[defaultThemeName]
}

type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	source lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Padding(0, 1),
		status: lipgloss.NewStyle().Foreground(t.Dim).Padding(0, 1),
		err:    lipgloss.NewStyle().Foreground(t.Error).Padding(0, 1),
		source: lipgloss.NewStyle().Foreground(t.Highlight),
	}
}
