package config

import "sort"

// Terminal palettes for the show/browse commands. Values are hex colors
// handed to lipgloss.
var terminalThemes = map[string]map[string]string{
	"default": {
		"title":   "#7B61FF",
		"accent":  "#73F59F",
		"label":   "#E5E7EB",
		"muted":   "#666666",
		"border":  "#7B61FF",
		"error":   "#EF4444",
		"success": "#10B981",
	},
	"dark": {
		"title":   "#5A9BD4",
		"accent":  "#8FBCBB",
		"label":   "#D8DEE9",
		"muted":   "#4C566A",
		"border":  "#5A9BD4",
		"error":   "#BF616A",
		"success": "#A3BE8C",
	},
	"light": {
		"title":   "#6D28D9",
		"accent":  "#047857",
		"label":   "#1F2937",
		"muted":   "#9CA3AF",
		"border":  "#6D28D9",
		"error":   "#B91C1C",
		"success": "#047857",
	},
	"monochrome": {
		"title":   "#FFFFFF",
		"accent":  "#D4D4D4",
		"label":   "#A3A3A3",
		"muted":   "#525252",
		"border":  "#737373",
		"error":   "#E5E5E5",
		"success": "#FAFAFA",
	},
}

// GetTheme returns a terminal palette by name, falling back to the default
// palette for unknown names.
func GetTheme(name string) map[string]string {
	if theme, exists := terminalThemes[name]; exists {
		return theme
	}
	return terminalThemes["default"]
}

// ListThemes returns the available terminal theme names, sorted.
func ListThemes() []string {
	names := make([]string, 0, len(terminalThemes))
	for name := range terminalThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
