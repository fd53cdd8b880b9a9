package shell

import "github.com/charmbracelet/lipgloss"

// styles groups the shell's text styles. With colour disabled text is
// passed through untouched.
type styles struct {
	prompt style
	header style
	err    style
}

// style is a lipgloss style that can be switched off.
type style struct {
	lipgloss.Style
	enabled bool
}

// Render applies the style when colour is enabled.
func (s style) Render(text string) string {
	if !s.enabled {
		return text
	}
	return s.Style.Render(text)
}

func newStyles(color bool) styles {
	return styles{
		prompt: style{
			Style: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
			enabled: color,
		},
		header: style{
			Style:   lipgloss.NewStyle().Bold(true),
			enabled: color,
		},
		err: style{
			Style: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
			enabled: color,
		},
	}
}
