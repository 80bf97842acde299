// Package preview renders the token record for terminal display.
package preview

import (
	"fmt"
	"strings"

	"swatch/pkg/theme"

	"github.com/charmbracelet/lipgloss"
)

// Render produces the full token overview: content patterns, color palettes
// with swatches, shadows, and animations with their keyframe stops.
func Render(cfg theme.Config, st Styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render("Theme tokens"))
	b.WriteString("\n")

	b.WriteString(st.Section.Render("Content"))
	b.WriteString("\n")
	for _, pattern := range cfg.Content {
		fmt.Fprintf(&b, "  %s\n", st.Value.Render(pattern))
	}
	b.WriteString("\n")

	ext := cfg.Theme.Extend

	b.WriteString(st.Section.Render("Colors"))
	b.WriteString("\n")
	for _, palette := range ext.Colors.Keys() {
		shades, _ := ext.Colors.Get(palette)
		fmt.Fprintf(&b, "  %s\n", st.Name.Render(palette))
		for _, shade := range shades.Keys() {
			value, _ := shades.Get(shade)
			fmt.Fprintf(&b, "    %-12s %s %s\n",
				st.Name.Render(shade), swatch(value), st.Value.Render(value))
		}
	}
	b.WriteString("\n")

	b.WriteString(st.Section.Render("Box shadows"))
	b.WriteString("\n")
	for _, name := range ext.BoxShadow.Keys() {
		value, _ := ext.BoxShadow.Get(name)
		fmt.Fprintf(&b, "  %-12s %s\n", st.Name.Render(name), st.Value.Render(value))
	}
	b.WriteString("\n")

	b.WriteString(st.Section.Render("Animations"))
	b.WriteString("\n")
	for _, name := range ext.Animation.Keys() {
		value, _ := ext.Animation.Get(name)
		fmt.Fprintf(&b, "  %-12s %s\n", st.Name.Render(name), st.Value.Render(value))

		fields := strings.Fields(value)
		if len(fields) == 0 {
			continue
		}
		stops, ok := ext.Keyframes.Get(fields[0])
		if !ok {
			fmt.Fprintf(&b, "    %s\n", st.Error.Render("keyframe "+fields[0]+" not defined"))
			continue
		}
		for _, stop := range stops.Keys() {
			props, _ := stops.Get(stop)
			var parts []string
			for _, prop := range props.Keys() {
				v, _ := props.Get(prop)
				parts = append(parts, prop+": "+v)
			}
			fmt.Fprintf(&b, "    %-6s %s\n", st.Muted.Render(stop), st.Muted.Render(strings.Join(parts, "; ")))
		}
	}

	return st.Frame.Render(strings.TrimRight(b.String(), "\n"))
}

// swatch renders a color block for hex values. rgba values depend on what is
// underneath them, so no block is shown.
func swatch(value string) string {
	if !strings.HasPrefix(value, "#") {
		return "      "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("      ")
}
