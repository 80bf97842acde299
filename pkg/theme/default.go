package theme

// Default returns the built-in token set for the application tracker UI.
// Palette notes: status colors follow the pipeline stage of an application,
// deadline colors grade urgency from safe green to critical red.
func Default() Config {
	cfg := Config{
		Content: []string{
			"./index.html",
			"./src/**/*.{js,ts,jsx,tsx}",
		},
	}

	var colors PaletteSet
	colors.Set("status", NewValues(
		"wishlist", "#A78BFA",
		"applied", "#10B981",
		"screening", "#38BDF8",
		"interview", "#3B82F6",
		"offer", "#8B5CF6",
		"accepted", "#059669",
		"rejected", "#EF4444",
		"ghosted", "#6B7280",
		"withdrawn", "#9CA3AF",
	))
	colors.Set("deadline", NewValues(
		"safe", "#10B981",
		"upcoming", "#FBBF24",
		"soon", "#F59E0B",
		"critical", "#DC2626",
		"passed", "#9CA3AF",
	))
	colors.Set("surface", NewValues(
		"card", "#FFFFFF",
		"muted", "#F9FAFB",
		"inset", "#F3F4F6",
		"overlay", "rgba(17, 24, 39, 0.5)",
	))
	colors.Set("edge", NewValues(
		"subtle", "#E5E7EB",
		"strong", "#D1D5DB",
		"focus", "#6366F1",
	))
	cfg.Theme.Extend.Colors = colors

	cfg.Theme.Extend.BoxShadow = NewValues(
		"card", "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px -1px rgba(0, 0, 0, 0.1)",
		"card-hover", "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
		"dropdown", "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.06)",
		"modal", "0 25px 50px -12px rgba(0, 0, 0, 0.25)",
	)

	cfg.Theme.Extend.Animation = NewValues(
		"fade-in", "fadeIn 0.2s ease-in",
		"slide-up", "slideUp 0.3s ease-out",
		"slide-down", "slideDown 0.2s ease-out",
		"scale-in", "scaleIn 0.15s ease-out",
	)

	var keyframes KeyframeSet

	var fadeIn Keyframe
	fadeIn.Set("0%", NewValues("opacity", "0"))
	fadeIn.Set("100%", NewValues("opacity", "1"))
	keyframes.Set("fadeIn", fadeIn)

	var slideUp Keyframe
	slideUp.Set("0%", NewValues("opacity", "0", "transform", "translateY(10px)"))
	slideUp.Set("100%", NewValues("opacity", "1", "transform", "translateY(0)"))
	keyframes.Set("slideUp", slideUp)

	var slideDown Keyframe
	slideDown.Set("0%", NewValues("opacity", "0", "transform", "translateY(-10px)"))
	slideDown.Set("100%", NewValues("opacity", "1", "transform", "translateY(0)"))
	keyframes.Set("slideDown", slideDown)

	var scaleIn Keyframe
	scaleIn.Set("0%", NewValues("opacity", "0", "transform", "scale(0.95)"))
	scaleIn.Set("100%", NewValues("opacity", "1", "transform", "scale(1)"))
	keyframes.Set("scaleIn", scaleIn)

	cfg.Theme.Extend.Keyframes = keyframes

	return cfg
}
