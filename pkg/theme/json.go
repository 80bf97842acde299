package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const configJSHeader = "/** @type {import('tailwindcss').Config} */\nmodule.exports = "

// Parse decodes a JSON theme configuration. Unknown top-level or nested
// fields are rejected: the consuming engine silently ignores misspelled keys,
// so catching them here is the only chance to notice.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse theme configuration: %w", err)
	}
	return cfg, nil
}

// JSON encodes the configuration as indented JSON with a trailing newline.
// Because every mapping preserves insertion order, encoding the result of
// Parse reproduces the input byte for byte.
func (c Config) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode theme configuration: %w", err)
	}
	return append(data, '\n'), nil
}

// ConfigJS encodes the configuration as a CommonJS module so the output can
// be dropped in directly as tailwind.config.js.
func (c Config) ConfigJS() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode theme configuration: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(configJSHeader)
	buf.Write(data)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}
