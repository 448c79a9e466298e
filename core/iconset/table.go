package iconset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Table is an ordered mapping of glyph name to glyph.
// The zero value is an empty table ready to use.
type Table struct {
	m *linkedhashmap.Map
}

// NewTable creates an empty glyph table.
func NewTable() *Table {
	return &Table{m: linkedhashmap.New()}
}

// Put inserts g under g.Name. An existing glyph of the same name is replaced,
// keeping its position.
func (t *Table) Put(g Glyph) {
	if t.m == nil {
		t.m = linkedhashmap.New()
	}
	t.m.Put(g.Name, g)
}

// Get returns the glyph for a name.
func (t *Table) Get(name string) (Glyph, bool) {
	if t == nil || t.m == nil {
		return Glyph{}, false
	}
	v, ok := t.m.Get(name)
	if !ok {
		return Glyph{}, false
	}
	return v.(Glyph), true
}

// Len returns the number of glyphs in t.
func (t *Table) Len() int {
	if t == nil || t.m == nil {
		return 0
	}
	return t.m.Size()
}

// Glyphs returns all glyphs in insertion order.
func (t *Table) Glyphs() []Glyph {
	if t == nil || t.m == nil {
		return nil
	}
	glyphs := make([]Glyph, 0, t.m.Size())
	it := t.m.Iterator()
	for it.Next() {
		glyphs = append(glyphs, it.Value().(Glyph))
	}
	return glyphs
}

// Names returns all glyph names in insertion order.
func (t *Table) Names() []string {
	glyphs := t.Glyphs()
	names := make([]string, len(glyphs))
	for i, g := range glyphs {
		names[i] = g.Name
	}
	return names
}

// MarshalJSON encodes t as a JSON object, keeping glyph order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range t.Glyphs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g)
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

// UnmarshalJSON decodes a JSON object into t, keeping the object's key order.
func (t *Table) UnmarshalJSON(data []byte) error {
	t.m = linkedhashmap.New()
	return DecodeOrderedObject(data, func(key string, raw json.RawMessage) error {
		var g Glyph
		if err := json.Unmarshal(raw, &g); err != nil {
			return fmt.Errorf("glyph %q: %w", key, err)
		}
		g.Name = key
		t.Put(g)
		return nil
	})
}

// DecodeOrderedObject walks the members of a JSON object in document order.
// encoding/json decodes objects into Go maps, which loses member order, so
// objects with meaningful order are read token by token.
func DecodeOrderedObject(data []byte, member func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, found %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, found %v", tok)
		}
		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return err
		}
		if err = member(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
