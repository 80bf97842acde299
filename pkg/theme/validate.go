package theme

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*(?:0|1|0?\.\d+|1\.0+)\s*\)$`)

	durationPattern = regexp.MustCompile(`^\d+(?:\.\d+)?(?:ms|s)$`)
	stopPattern     = regexp.MustCompile(`^(?:\d+(?:\.\d+)?%|from|to)$`)
)

// Problem describes a single token that fails validation.
type Problem struct {
	Path    string // dotted token path, e.g. "colors.status.applied"
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Message)
}

// ValidColor reports whether s is a 3/6/8-digit hex color or a well-formed
// rgba() expression.
func ValidColor(s string) bool {
	return hexPattern.MatchString(s) || rgbaPattern.MatchString(s)
}

// Validate checks the structural invariants of the configuration and returns
// every problem found. An empty slice means the configuration is sound.
//
// Checked invariants: content patterns present and non-empty, color values
// hex or rgba, shadows non-empty, animation shorthands carrying a duration
// and referencing an existing keyframe, keyframe stops well-formed with at
// least one property each.
func (c Config) Validate() []Problem {
	var problems []Problem

	if len(c.Content) == 0 {
		problems = append(problems, Problem{"content", "at least one content pattern is required"})
	}
	for i, pattern := range c.Content {
		if strings.TrimSpace(pattern) == "" {
			problems = append(problems, Problem{fmt.Sprintf("content[%d]", i), "pattern is empty"})
		}
	}

	ext := c.Theme.Extend

	for _, palette := range ext.Colors.Keys() {
		shades, _ := ext.Colors.Get(palette)
		if shades.Len() == 0 {
			problems = append(problems, Problem{"colors." + palette, "palette has no shades"})
			continue
		}
		for _, shade := range shades.Keys() {
			value, _ := shades.Get(shade)
			if !ValidColor(value) {
				problems = append(problems, Problem{
					Path:    fmt.Sprintf("colors.%s.%s", palette, shade),
					Message: fmt.Sprintf("invalid color value %q", value),
				})
			}
		}
	}

	for _, name := range ext.BoxShadow.Keys() {
		value, _ := ext.BoxShadow.Get(name)
		if strings.TrimSpace(value) == "" {
			problems = append(problems, Problem{"boxShadow." + name, "shadow value is empty"})
		}
	}

	for _, name := range ext.Animation.Keys() {
		value, _ := ext.Animation.Get(name)
		fields := strings.Fields(value)
		if len(fields) == 0 {
			problems = append(problems, Problem{"animation." + name, "animation shorthand is empty"})
			continue
		}
		if _, ok := ext.Keyframes.Get(fields[0]); !ok {
			problems = append(problems, Problem{
				Path:    "animation." + name,
				Message: fmt.Sprintf("references unknown keyframe %q", fields[0]),
			})
		}
		hasDuration := false
		for _, f := range fields[1:] {
			if durationPattern.MatchString(f) {
				hasDuration = true
				break
			}
		}
		if !hasDuration {
			problems = append(problems, Problem{"animation." + name, "shorthand has no duration"})
		}
	}

	for _, name := range ext.Keyframes.Keys() {
		stops, _ := ext.Keyframes.Get(name)
		if stops.Len() == 0 {
			problems = append(problems, Problem{"keyframes." + name, "keyframe has no stops"})
			continue
		}
		for _, stop := range stops.Keys() {
			if !stopPattern.MatchString(stop) {
				problems = append(problems, Problem{
					Path:    fmt.Sprintf("keyframes.%s.%s", name, stop),
					Message: "stop must be a percentage, \"from\" or \"to\"",
				})
			}
			props, _ := stops.Get(stop)
			if props.Len() == 0 {
				problems = append(problems, Problem{
					Path:    fmt.Sprintf("keyframes.%s.%s", name, stop),
					Message: "stop has no properties",
				})
			}
		}
	}

	return problems
}

// Check runs Validate and folds the result into a single error, or nil when
// the configuration is sound.
func (c Config) Check() error {
	problems := c.Validate()
	if len(problems) == 0 {
		return nil
	}
	lines := make([]string, len(problems))
	for i, p := range problems {
		lines[i] = p.String()
	}
	return fmt.Errorf("invalid theme configuration:\n  %s", strings.Join(lines, "\n  "))
}
