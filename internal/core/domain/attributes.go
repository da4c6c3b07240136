package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attribute is one key/value pair of an element.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an insertion-ordered, key-unique attribute collection.
// Iteration order is the order keys were first set, which keeps
// serialised output deterministic and close to the source document.
type Attributes []Attribute

// Set records key=value. A repeated key takes the new value but keeps
// its original position (last write wins).
func (a *Attributes) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Key: key, Value: value})
}

// Get returns the value for key and whether the key is present. A bare
// attribute is present with an empty value.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a)
}

// MarshalJSON renders the collection as a JSON object whose member
// order is the insertion order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Key)
		if err != nil {
			return nil, fmt.Errorf("encoding attribute key %q: %w", attr.Key, err)
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding attribute %q: %w", attr.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object member by member so that the
// original member order survives the round trip.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding attributes: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decoding attributes: expected object, got %v", tok)
	}

	var out Attributes
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding attribute key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decoding attribute key: unexpected token %v", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding attribute %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding attributes: %w", err)
	}

	*a = out
	return nil
}
