package theme_test

import (
	"testing"

	"swatch/pkg/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidColor(t *testing.T) {
	valid := []string{
		"#fff",
		"#10B981",
		"#DC2626",
		"#11223344",
		"rgba(17, 24, 39, 0.5)",
		"rgba(0,0,0,0.1)",
		"rgba(255, 255, 255, 1)",
	}
	for _, v := range valid {
		assert.True(t, theme.ValidColor(v), "expected %q to be valid", v)
	}

	invalid := []string{
		"",
		"10B981",
		"#10B98",
		"#GGGGGG",
		"rgb(17, 24, 39)",
		"rgba(17, 24, 39)",
		"rgba(17, 24, 39, 2.5)",
		"hsl(160, 84%, 39%)",
		"green",
	}
	for _, v := range invalid {
		assert.False(t, theme.ValidColor(v), "expected %q to be invalid", v)
	}
}

func TestValidateFindsEveryProblem(t *testing.T) {
	cfg := theme.Default()

	status, ok := cfg.Theme.Extend.Colors.Get("status")
	require.True(t, ok)
	status.Set("applied", "not-a-color")
	cfg.Theme.Extend.Colors.Set("status", status)

	cfg.Theme.Extend.Animation.Set("wobble", "wobble 0.3s ease-in-out")
	cfg.Theme.Extend.BoxShadow.Set("ghost", "   ")

	problems := cfg.Validate()
	require.Len(t, problems, 3)

	paths := make([]string, len(problems))
	for i, p := range problems {
		paths[i] = p.Path
	}
	assert.Contains(t, paths, "colors.status.applied")
	assert.Contains(t, paths, "animation.wobble")
	assert.Contains(t, paths, "boxShadow.ghost")

	assert.Error(t, cfg.Check())
}

func TestValidateDanglingKeyframe(t *testing.T) {
	cfg := theme.Default()
	cfg.Theme.Extend.Animation.Set("spin", "spin 1s linear")

	problems := cfg.Validate()
	require.Len(t, problems, 1)
	assert.Equal(t, "animation.spin", problems[0].Path)
	assert.Contains(t, problems[0].Message, `unknown keyframe "spin"`)
}

func TestValidateAnimationDuration(t *testing.T) {
	cfg := theme.Default()
	cfg.Theme.Extend.Animation.Set("fade-in", "fadeIn ease-in")

	problems := cfg.Validate()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "no duration")
}

func TestValidateKeyframeStops(t *testing.T) {
	cfg := theme.Default()

	var bad theme.Keyframe
	bad.Set("half", theme.NewValues("opacity", "0.5"))
	bad.Set("100%", theme.Values{})
	cfg.Theme.Extend.Keyframes.Set("badFrames", bad)

	problems := cfg.Validate()
	require.Len(t, problems, 2)
	assert.Equal(t, "keyframes.badFrames.half", problems[0].Path)
	assert.Equal(t, "keyframes.badFrames.100%", problems[1].Path)
}

func TestValidateEmptyContent(t *testing.T) {
	cfg := theme.Default()
	cfg.Content = nil

	problems := cfg.Validate()
	require.Len(t, problems, 1)
	assert.Equal(t, "content", problems[0].Path)
}
