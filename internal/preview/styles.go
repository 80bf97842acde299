package preview

import "github.com/charmbracelet/lipgloss"

// Styles defines the lipgloss styles used by the token overview, derived
// from a terminal palette (see config.GetTheme).
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Name    lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Frame   lipgloss.Style
}

// NewStyles builds the style set from a terminal palette.
func NewStyles(palette map[string]string) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(palette["title"])).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(palette["accent"])),
		Name: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette["label"])),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette["muted"])),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette["muted"])),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(palette["error"])),
		Frame: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(palette["border"])),
	}
}
