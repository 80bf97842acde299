package tui_test

import (
	"testing"

	"swatch/internal/config"
	"swatch/internal/tui"
	"swatch/pkg/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	items := tui.Flatten(theme.Default())
	require.NotEmpty(t, items)

	paths := make(map[string]string, len(items))
	for _, it := range items {
		token := it.(tui.Item)
		paths[token.Path] = token.Value
	}

	assert.Equal(t, "#10B981", paths["colors.status.applied"])
	assert.Equal(t, "#DC2626", paths["colors.deadline.critical"])
	assert.Equal(t, "fadeIn 0.2s ease-in", paths["animation.fade-in"])
	assert.Equal(t, "2 stops", paths["keyframes.fadeIn"])

	// Colors come first and follow declaration order.
	first := items[0].(tui.Item)
	assert.Equal(t, "colors.status.wishlist", first.Path)
}

func TestModelQuits(t *testing.T) {
	m := tui.NewModel(theme.Default(), config.GetTheme("default"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelResize(t *testing.T) {
	m := tui.NewModel(theme.Default(), config.GetTheme("default"))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := updated.View()
	assert.Contains(t, view, "Theme tokens")
}
