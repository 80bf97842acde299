package theme

// Values is an ordered mapping of token names to CSS value strings. It is
// used for shade->color, name->shadow, name->animation, and property->value
// levels of the configuration.
type Values = OrderedMap[string]

// PaletteSet maps palette names (e.g. "status", "deadline") to their shades.
type PaletteSet = OrderedMap[Values]

// Keyframe maps percentage stops ("0%", "100%") to CSS property blocks.
type Keyframe = OrderedMap[Values]

// KeyframeSet maps keyframe names to their stop sequences.
type KeyframeSet = OrderedMap[Keyframe]

// Config is the theme configuration record consumed by the class-generation
// engine. Field names and nesting are the external contract: the engine
// expects exactly `content`, `theme.extend.colors`, `theme.extend.boxShadow`,
// `theme.extend.animation` and `theme.extend.keyframes`.
//
// A Config is a value. It is built once (from Default plus any overrides) and
// is not mutated afterwards; code that needs a variant works on a Clone.
type Config struct {
	Content []string `json:"content"`
	Theme   Theme    `json:"theme"`
}

// Theme holds the extension block of the configuration.
type Theme struct {
	Extend Extend `json:"extend"`
}

// Extend holds the design tokens layered on top of the engine's defaults.
type Extend struct {
	Colors    PaletteSet  `json:"colors"`
	BoxShadow Values      `json:"boxShadow"`
	Animation Values      `json:"animation"`
	Keyframes KeyframeSet `json:"keyframes"`
}

// NewValues builds a Values mapping from alternating name/value pairs.
// It panics on an odd pair count or a duplicate name; it exists for
// declaring literal token tables.
func NewValues(pairs ...string) Values {
	if len(pairs)%2 != 0 {
		panic("theme: NewValues requires name/value pairs")
	}
	var m Values
	for i := 0; i < len(pairs); i += 2 {
		if err := m.Add(pairs[i], pairs[i+1]); err != nil {
			panic("theme: " + err.Error())
		}
	}
	return m
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := Config{
		Content: append([]string(nil), c.Content...),
	}
	id := func(s string) string { return s }
	cloneValues := func(v Values) Values { return cloneMap(v, id) }
	out.Theme.Extend.Colors = cloneMap(c.Theme.Extend.Colors, cloneValues)
	out.Theme.Extend.BoxShadow = cloneValues(c.Theme.Extend.BoxShadow)
	out.Theme.Extend.Animation = cloneValues(c.Theme.Extend.Animation)
	out.Theme.Extend.Keyframes = cloneMap(c.Theme.Extend.Keyframes, func(k Keyframe) Keyframe {
		return cloneMap(k, cloneValues)
	})
	return out
}
