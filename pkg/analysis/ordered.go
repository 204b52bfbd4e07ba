package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ordered is a string keyed mapping that remembers insertion order.
//
// It marshals to a JSON object with the keys in insertion order, which is the
// order charts display them in.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// Amounts maps labels to money amounts.
type Amounts = Ordered[float64]

// Counts maps labels to occurrence counts.
type Counts = Ordered[int]

// Set adds or replaces the value for key. New keys are appended.
func (o *Ordered[V]) Set(key string, value V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}

	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key.
func (o Ordered[V]) Get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys.
func (o Ordered[V]) Len() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in order.
func (o Ordered[V]) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Values returns the values in key order.
func (o Ordered[V]) Values() []V {
	values := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		values = append(values, o.values[k])
	}
	return values
}

// MarshalJSON implements the json.Marshaler interface.
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Key order of the input object is kept. null results in an empty mapping.
func (o *Ordered[V]) UnmarshalJSON(data []byte) error {
	*o = Ordered[V]{}

	dec := json.NewDecoder(bytes.NewReader(data))
	t, err := dec.Token()
	if err != nil {
		return err
	}

	if t == nil {
		return nil
	}

	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", t)
	}

	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := t.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", t)
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		o.Set(key, value)
	}

	_, err = dec.Token()
	return err
}
