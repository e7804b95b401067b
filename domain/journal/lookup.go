package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Lookup maps normalized journal keys to records. A key keeps the position
// of its first insertion; re-putting it only replaces the record.
type Lookup struct {
	order   []string
	entries map[string]Record
}

// NewLookup creates an empty lookup
func NewLookup() *Lookup {
	return &Lookup{entries: make(map[string]Record)}
}

// Put stores rec under key and reports whether an existing entry was replaced
func (l *Lookup) Put(key string, rec Record) bool {
	if _, exists := l.entries[key]; exists {
		l.entries[key] = rec
		return true
	}
	l.order = append(l.order, key)
	l.entries[key] = rec
	return false
}

// Get returns the record stored under key
func (l *Lookup) Get(key string) (Record, bool) {
	rec, ok := l.entries[key]
	return rec, ok
}

// Len returns the number of keys
func (l *Lookup) Len() int {
	return len(l.order)
}

// Keys returns the keys in insertion order
func (l *Lookup) Keys() []string {
	keys := make([]string, len(l.order))
	copy(keys, l.order)
	return keys
}

// Each calls fn for every entry in insertion order
func (l *Lookup) Each(fn func(key string, rec Record)) {
	for _, key := range l.order {
		fn(key, l.entries[key])
	}
}

// ToMap returns a plain map copy of the entries
func (l *Lookup) ToMap() map[string]Record {
	m := make(map[string]Record, len(l.entries))
	for k, v := range l.entries {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the lookup as a JSON object in insertion order.
// HTML characters are left unescaped so names like "A & B" survive as-is.
func (l *Lookup) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	out := bytes.NewBufferString("{")
	for i, key := range l.order {
		if i > 0 {
			out.WriteByte(',')
		}
		buf.Reset()
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimRight(buf.Bytes(), "\n"))
		out.WriteByte(':')

		buf.Reset()
		if err := enc.Encode(l.entries[key]); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of records, keeping key order
func (l *Lookup) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("lookup must be a JSON object, got %v", tok)
	}

	decoded := NewLookup()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("decode record %q: %w", key, err)
		}
		decoded.Put(key, rec)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = *decoded
	return nil
}
