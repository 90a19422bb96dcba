package csvparser

import (
	"bytes"
	"encoding/json"
)

// Record is one data row as an ordered field-name to value mapping. Keys keep
// the order in which they were first set; setting an existing key replaces its
// value in place.
type Record struct {
	keys   []string
	fields map[string]string
}

// NewRecord returns an empty Record.
func NewRecord() Record {
	return Record{fields: make(map[string]string)}
}

// Set stores the value for key. A repeated key keeps its original position
// and takes the new value (last one wins).
func (r *Record) Set(key, value string) {
	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = value
}

// Get returns the value for key and whether the key is present.
func (r Record) Get(key string) (string, bool) {
	value, ok := r.fields[key]
	return value, ok
}

// Keys returns the field names in record order.
func (r Record) Keys() []string {
	return r.keys
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// MarshalJSON writes the record as a JSON object with keys in record order,
// which encoding/json would otherwise not guarantee for a map.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, r.fields[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeString appends s as a JSON string without HTML escaping, so values
// pass through as plain UTF-8 text.
func writeString(buf *bytes.Buffer, s string) error {
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return err
	}
	// Encode terminates the value with a newline that has no place inside
	// an object.
	buf.Truncate(buf.Len() - 1)
	return nil
}
