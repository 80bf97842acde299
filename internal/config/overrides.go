package config

import (
	"fmt"
	"os"

	"swatch/internal/errors"
	"swatch/pkg/theme"

	"gopkg.in/yaml.v3"
)

// LoadOverrides layers a YAML override file on top of base and returns the
// merged record. Overridden tokens keep their original position; new tokens
// are appended in document order. Palettes merge shade by shade, keyframes
// are replaced wholesale (a partial stop sequence is never what the author
// means). The merged record is not validated here; callers decide whether to
// fail or report.
func LoadOverrides(path string, base theme.Config) (theme.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return theme.Config{}, errors.NewFileError("overrides file not found", path, errors.FileNotFound, err)
		}
		return theme.Config{}, errors.NewFileError("cannot read overrides file", path, errors.FileAccessDenied, err)
	}
	return MergeOverrides(data, base)
}

// MergeOverrides applies YAML override data to base. See LoadOverrides.
func MergeOverrides(data []byte, base theme.Config) (theme.Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return theme.Config{}, errors.NewConfigError("cannot parse overrides", "", errors.InvalidConfig, err)
	}

	merged := base.Clone()

	if len(doc.Content) == 0 {
		return merged, nil // empty file, nothing to apply
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return theme.Config{}, errors.NewConfigError("overrides must be a mapping", "", errors.InvalidConfig, nil)
	}

	for i := 0; i < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "content":
			var patterns []string
			if err := value.Decode(&patterns); err != nil {
				return theme.Config{}, errors.NewConfigError("content must be a list of patterns", "content", errors.InvalidConfig, err)
			}
			merged.Content = patterns
		case "colors":
			if err := mergeColors(value, &merged.Theme.Extend.Colors); err != nil {
				return theme.Config{}, err
			}
		case "boxShadow":
			if err := mergeValues(value, "boxShadow", &merged.Theme.Extend.BoxShadow); err != nil {
				return theme.Config{}, err
			}
		case "animation":
			if err := mergeValues(value, "animation", &merged.Theme.Extend.Animation); err != nil {
				return theme.Config{}, err
			}
		case "keyframes":
			if err := mergeKeyframes(value, &merged.Theme.Extend.Keyframes); err != nil {
				return theme.Config{}, err
			}
		default:
			return theme.Config{}, errors.NewConfigError("unknown overrides section", key.Value, errors.InvalidConfig, nil)
		}
	}

	return merged, nil
}

// eachPair walks a YAML mapping in document order, rejecting duplicate keys.
func eachPair(node *yaml.Node, path string, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return errors.NewTokenError("expected a mapping", path, errors.InvalidToken, nil)
	}
	seen := make(map[string]bool)
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if seen[key] {
			return errors.NewTokenError("duplicate key", fmt.Sprintf("%s.%s", path, key), errors.InvalidToken, nil)
		}
		seen[key] = true
		if err := fn(key, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func decodeValues(node *yaml.Node, path string) (theme.Values, error) {
	var values theme.Values
	err := eachPair(node, path, func(key string, value *yaml.Node) error {
		if value.Kind != yaml.ScalarNode {
			return errors.NewTokenError("expected a string value", fmt.Sprintf("%s.%s", path, key), errors.InvalidToken, nil)
		}
		values.Set(key, value.Value)
		return nil
	})
	if err != nil {
		return theme.Values{}, err
	}
	return values, nil
}

func mergeValues(node *yaml.Node, path string, target *theme.Values) error {
	overrides, err := decodeValues(node, path)
	if err != nil {
		return err
	}
	for _, key := range overrides.Keys() {
		value, _ := overrides.Get(key)
		target.Set(key, value)
	}
	return nil
}

func mergeColors(node *yaml.Node, target *theme.PaletteSet) error {
	return eachPair(node, "colors", func(palette string, value *yaml.Node) error {
		shades, err := decodeValues(value, "colors."+palette)
		if err != nil {
			return err
		}
		existing, ok := target.Get(palette)
		if !ok {
			target.Set(palette, shades)
			return nil
		}
		for _, shade := range shades.Keys() {
			v, _ := shades.Get(shade)
			existing.Set(shade, v)
		}
		target.Set(palette, existing)
		return nil
	})
}

func mergeKeyframes(node *yaml.Node, target *theme.KeyframeSet) error {
	return eachPair(node, "keyframes", func(name string, value *yaml.Node) error {
		var stops theme.Keyframe
		err := eachPair(value, "keyframes."+name, func(stop string, props *yaml.Node) error {
			decoded, err := decodeValues(props, fmt.Sprintf("keyframes.%s.%s", name, stop))
			if err != nil {
				return err
			}
			stops.Set(stop, decoded)
			return nil
		})
		if err != nil {
			return err
		}
		target.Set(name, stops)
		return nil
	})
}
