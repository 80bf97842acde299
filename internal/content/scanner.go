// Package content matches source trees against the theme record's content
// globs, answering the question "which files would the class-generation
// engine scan with this configuration".
package content

import (
	"io/fs"
	"path/filepath"
	"strings"

	"swatch/internal/errors"

	"github.com/gobwas/glob"
)

// Scanner matches file paths against a compiled set of content patterns.
type Scanner struct {
	patterns []string
	globs    []glob.Glob
}

// NewScanner compiles the given content patterns. Patterns use '/' as the
// separator; `**` crosses directories, `*` does not, and brace alternates
// (`*.{js,ts}`) are supported. A leading "./" is ignored.
func NewScanner(patterns []string) (*Scanner, error) {
	s := &Scanner{patterns: patterns}
	for _, pattern := range patterns {
		for _, variant := range expandDoubleStar(normalize(pattern)) {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, errors.NewPatternError("cannot compile content pattern", pattern, err)
			}
			s.globs = append(s.globs, g)
		}
	}
	return s, nil
}

// expandDoubleStar returns the pattern plus variants with each `**` segment
// collapsed. Engine globs let `**` span zero directories (`src/**/*.ts`
// matches `src/a.ts`), which a single compiled glob cannot express.
func expandDoubleStar(pattern string) []string {
	if idx := strings.Index(pattern, "/**/"); idx != -1 {
		rest := pattern[idx+len("/**/"):]
		var out []string
		for _, tail := range expandDoubleStar(rest) {
			out = append(out, pattern[:idx]+"/**/"+tail)
			out = append(out, pattern[:idx]+"/"+tail)
		}
		return out
	}
	if strings.HasPrefix(pattern, "**/") {
		rest := pattern[len("**/"):]
		var out []string
		for _, tail := range expandDoubleStar(rest) {
			out = append(out, "**/"+tail)
			out = append(out, tail)
		}
		return out
	}
	return []string{pattern}
}

// Patterns returns the patterns the scanner was built from.
func (s *Scanner) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Match reports whether a slash-separated path, relative to the scan root,
// matches any content pattern.
func (s *Scanner) Match(path string) bool {
	path = normalize(path)
	for _, g := range s.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Scan walks root and returns the relative paths of all matching files, in
// walk order. Hidden directories and node_modules are skipped, mirroring the
// consuming engine.
func (s *Scanner) Scan(root string) ([]string, error) {
	var matched []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if s.Match(filepath.ToSlash(rel)) {
			matched = append(matched, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewFileError("cannot scan content root", root, errors.FileAccessDenied, err)
	}
	return matched, nil
}

func normalize(path string) string {
	return strings.TrimPrefix(path, "./")
}
