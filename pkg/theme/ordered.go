package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedMap is a string-keyed mapping that remembers insertion order.
// Token mappings are order-sensitive: the consuming build tool emits CSS in
// declaration order, and serialization must round-trip byte-identically.
// The zero value is an empty map ready for use.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Len returns the number of entries.
func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value for key and whether the key is present.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Add inserts a new entry at the end. Adding a key that already exists is an
// error; duplicate keys in token data always indicate a mistake.
func (m *OrderedMap[V]) Add(key string, value V) error {
	if _, exists := m.values[key]; exists {
		return fmt.Errorf("duplicate key %q", key)
	}
	if m.values == nil {
		m.values = make(map[string]V)
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return nil
}

// Set inserts key at the end, or replaces its value in place if it already
// exists. Replacement keeps the original position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshal value for %q: %w", key, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order. Duplicate keys are
// rejected rather than silently taking the last value.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	m.keys = nil
	m.values = make(map[string]V)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode value for %q: %w", key, err)
		}
		if err := m.Add(key, value); err != nil {
			return err
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// cloneMap rebuilds an ordered map, copying each value through copyValue.
func cloneMap[V any](m OrderedMap[V], copyValue func(V) V) OrderedMap[V] {
	var out OrderedMap[V]
	for _, key := range m.keys {
		out.Set(key, copyValue(m.values[key]))
	}
	return out
}
