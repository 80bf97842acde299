package theme_test

import (
	"strings"
	"testing"

	"swatch/pkg/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	first, err := theme.Default().JSON()
	require.NoError(t, err)

	parsed, err := theme.Parse(first)
	require.NoError(t, err)

	second, err := parsed.JSON()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestJSONShape(t *testing.T) {
	data, err := theme.Default().JSON()
	require.NoError(t, err)
	out := string(data)

	// The engine's contract: exactly these keys, exactly this nesting.
	assert.Contains(t, out, `"content"`)
	assert.Contains(t, out, `"theme"`)
	assert.Contains(t, out, `"extend"`)
	assert.Contains(t, out, `"boxShadow"`)
	assert.Contains(t, out, `"keyframes"`)
	assert.True(t, strings.HasSuffix(out, "\n"))

	// Insertion order must survive encoding: wishlist is declared before
	// applied in the status palette.
	assert.Less(t, strings.Index(out, `"wishlist"`), strings.Index(out, `"applied"`))
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := theme.Parse([]byte(`{"content": [], "theme": {"extend": {}}, "plugins": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugins")
}

func TestParseRejectsDuplicateTokens(t *testing.T) {
	input := `{
  "content": ["./index.html"],
  "theme": {
    "extend": {
      "colors": {},
      "boxShadow": {"card": "none", "card": "none"},
      "animation": {},
      "keyframes": {}
    }
  }
}`
	_, err := theme.Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestConfigJS(t *testing.T) {
	data, err := theme.Default().ConfigJS()
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "/** @type {import('tailwindcss').Config} */\nmodule.exports = {"))
	assert.True(t, strings.HasSuffix(out, ";\n"))
}
