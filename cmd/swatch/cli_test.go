package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"swatch/pkg/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExportCommand(t *testing.T) {
	t.Run("json to stdout", func(t *testing.T) {
		out, err := runCommand(t, "--config", writeConfig(t, ""), "export")
		require.NoError(t, err)

		parsed, err := theme.Parse([]byte(out))
		require.NoError(t, err)

		status, ok := parsed.Theme.Extend.Colors.Get("status")
		require.True(t, ok)
		applied, _ := status.Get("applied")
		assert.Equal(t, "#10B981", applied)
	})

	t.Run("js format", func(t *testing.T) {
		out, err := runCommand(t, "--config", writeConfig(t, ""), "export", "--format", "js")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "/** @type {import('tailwindcss').Config} */"))
	})

	t.Run("to file", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "dist", "theme.json")
		_, err := runCommand(t, "--config", writeConfig(t, ""), "export", "-o", outFile)
		require.NoError(t, err)

		data, err := os.ReadFile(outFile)
		require.NoError(t, err)
		_, err = theme.Parse(data)
		assert.NoError(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := runCommand(t, "--config", writeConfig(t, ""), "export", "--format", "toml")
		assert.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("built-in tokens are sound", func(t *testing.T) {
		out, err := runCommand(t, "--config", writeConfig(t, ""), "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "theme configuration is sound")
	})

	t.Run("reports dangling keyframe from overrides", func(t *testing.T) {
		dir := t.TempDir()
		overrides := filepath.Join(dir, "theme.yaml")
		require.NoError(t, os.WriteFile(overrides, []byte("animation:\n  spin: \"spin 1s linear\"\n"), 0644))
		cfgPath := writeConfig(t, "overrides: \""+overrides+"\"\n")

		out, err := runCommand(t, "--config", cfgPath, "validate")
		require.Error(t, err)
		assert.Contains(t, out, "animation.spin")
	})
}

func TestContentCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "App.tsx"), []byte("export {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	out, err := runCommand(t, "--config", writeConfig(t, ""), "content", "--root", root)
	require.NoError(t, err)

	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "src/App.tsx")
	assert.NotContains(t, out, "notes.txt")
}

func TestThemesCommand(t *testing.T) {
	out, err := runCommand(t, "--config", writeConfig(t, ""), "themes")
	require.NoError(t, err)

	assert.Contains(t, out, "* default")
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "monochrome")
}

func TestShowCommand(t *testing.T) {
	out, err := runCommand(t, "--config", writeConfig(t, ""), "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Theme tokens")
	assert.Contains(t, out, "#DC2626")
}
