package shaping

import (
	"bytes"
	"encoding/json"
	"strings"
)

// LinksKey is the key under which per-item links are appended.
const LinksKey = "links"

// Field is one entry of a shaped item.
type Field struct {
	Name  string
	Value any
}

// ShapedItem is an ordered map of field names to values. It marshals to a
// JSON object with keys in insertion order.
type ShapedItem struct {
	fields []Field
}

// NewShapedItem returns an empty item with room for n fields.
func NewShapedItem(n int) *ShapedItem {
	return &ShapedItem{fields: make([]Field, 0, n)}
}

// Set replaces the value of an existing key in place or appends a new key.
func (s *ShapedItem) Set(name string, value any) {
	for i := range s.fields {
		if s.fields[i].Name == name {
			s.fields[i].Value = value
			return
		}
	}
	s.fields = append(s.fields, Field{Name: name, Value: value})
}

// SetLast removes every key equal to name ignoring case and appends name
// with value as the final key.
func (s *ShapedItem) SetLast(name string, value any) {
	kept := s.fields[:0]
	for _, f := range s.fields {
		if !strings.EqualFold(f.Name, name) {
			kept = append(kept, f)
		}
	}
	s.fields = append(kept, Field{Name: name, Value: value})
}

// Get returns the value stored under name, matched case-insensitively.
func (s *ShapedItem) Get(name string) (any, bool) {
	for _, f := range s.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (s *ShapedItem) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Name
	}
	return keys
}

// Fields returns a copy of the entries in order.
func (s *ShapedItem) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Len returns the number of keys.
func (s *ShapedItem) Len() int { return len(s.fields) }

// MarshalJSON implements json.Marshaler.
func (s *ShapedItem) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
