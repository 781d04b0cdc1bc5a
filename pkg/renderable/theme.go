package renderable

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles shared by all renderables.
type Theme struct {
	Name   string
	Key    lipgloss.Style // key column in key/value tables
	Value  lipgloss.Style // plain values
	Title  lipgloss.Style // panel and table titles
	Header lipgloss.Style // grid column headers
	Muted  lipgloss.Style // secondary text: urls, timestamps, captions
	Accent lipgloss.Style // names, branches, identifiers
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
	Border lipgloss.Style

	// BarColor fills proportional bars; empty means plain block characters.
	BarColor string
	// Colorize enables hash-derived colors for tag tokens.
	Colorize bool
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Key:      lipgloss.NewStyle().Bold(true),
		Value:    lipgloss.NewStyle(),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // blue
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")), // gray
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")), // pale blue
		Good:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Bad:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		BarColor: "#5FAFFF",
		Colorize: true,
	}
}

// MonoTheme returns a colorless theme. Used for NO_COLOR, piped output,
// and deterministic test output.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:   "mono",
		Key:    lipgloss.NewStyle().Bold(true),
		Value:  plain,
		Title:  lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Bold(true),
		Muted:  plain,
		Accent: plain,
		Good:   plain,
		Warn:   plain,
		Bad:    plain,
		Border: plain,
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
