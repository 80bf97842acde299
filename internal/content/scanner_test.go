package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"swatch/internal/content"
	"swatch/pkg/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestScannerMatch(t *testing.T) {
	s, err := content.NewScanner(theme.Default().Content)
	require.NoError(t, err)

	matching := []string{
		"index.html",
		"./index.html",
		"src/App.tsx",
		"src/components/StatusBadge.jsx",
		"src/lib/deadlines/urgency.ts",
		"src/main.js",
	}
	for _, path := range matching {
		assert.True(t, s.Match(path), "expected %q to match", path)
	}

	nonMatching := []string{
		"README.md",
		"src/styles/app.css",
		"public/index.html",
		"src/App.vue",
	}
	for _, path := range nonMatching {
		assert.False(t, s.Match(path), "expected %q not to match", path)
	}
}

func TestScannerRejectsBadPattern(t *testing.T) {
	_, err := content.NewScanner([]string{"./src/**/*.{js,ts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content pattern")
}

func TestScannerScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html")
	writeFile(t, root, "src/App.tsx")
	writeFile(t, root, "src/components/Card.jsx")
	writeFile(t, root, "src/styles/app.css")
	writeFile(t, root, "node_modules/react/index.js")
	writeFile(t, root, ".git/src/hook.js")
	writeFile(t, root, "README.md")

	s, err := content.NewScanner(theme.Default().Content)
	require.NoError(t, err)

	matched, err := s.Scan(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"index.html",
		"src/App.tsx",
		"src/components/Card.jsx",
	}, matched)
}

func TestScannerPatternsCopy(t *testing.T) {
	s, err := content.NewScanner([]string{"./index.html"})
	require.NoError(t, err)

	patterns := s.Patterns()
	patterns[0] = "mutated"
	assert.Equal(t, []string{"./index.html"}, s.Patterns())
}
