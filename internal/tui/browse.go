// Package tui implements the interactive token browser.
package tui

import (
	"fmt"

	"swatch/pkg/theme"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is a single design token in the browser list.
type Item struct {
	Path  string // dotted token path, e.g. "colors.status.applied"
	Value string
}

func (i Item) Title() string       { return i.Path }
func (i Item) Description() string { return i.Value }
func (i Item) FilterValue() string { return i.Path + " " + i.Value }

// Flatten converts the token record into browser items, in token order.
func Flatten(cfg theme.Config) []list.Item {
	var items []list.Item

	ext := cfg.Theme.Extend
	for _, palette := range ext.Colors.Keys() {
		shades, _ := ext.Colors.Get(palette)
		for _, shade := range shades.Keys() {
			value, _ := shades.Get(shade)
			items = append(items, Item{
				Path:  fmt.Sprintf("colors.%s.%s", palette, shade),
				Value: value,
			})
		}
	}
	for _, name := range ext.BoxShadow.Keys() {
		value, _ := ext.BoxShadow.Get(name)
		items = append(items, Item{Path: "boxShadow." + name, Value: value})
	}
	for _, name := range ext.Animation.Keys() {
		value, _ := ext.Animation.Get(name)
		items = append(items, Item{Path: "animation." + name, Value: value})
	}
	for _, name := range ext.Keyframes.Keys() {
		stops, _ := ext.Keyframes.Get(name)
		items = append(items, Item{
			Path:  "keyframes." + name,
			Value: fmt.Sprintf("%d stops", stops.Len()),
		})
	}

	return items
}

// Model is the bubbletea model for the token browser.
type Model struct {
	list list.Model
}

// NewModel builds the browser over the given token record. The terminal
// palette colors the list chrome.
func NewModel(cfg theme.Config, palette map[string]string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(palette["accent"])).
		BorderLeftForeground(lipgloss.Color(palette["accent"]))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color(palette["muted"])).
		BorderLeftForeground(lipgloss.Color(palette["accent"]))

	l := list.New(Flatten(cfg), delegate, 0, 0)
	l.Title = "Theme tokens"
	l.Styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(palette["title"]))

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		// Don't intercept keys while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Run starts the interactive browser.
func Run(cfg theme.Config, palette map[string]string) error {
	p := tea.NewProgram(NewModel(cfg, palette), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
