package jsonutil

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object that remembers the order its keys were written in.
// Column lists and placeholder arguments are built in that order.
type Object struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Object) UnmarshalJSON(data []byte) error {
	o.fields = orderedmap.New[string, json.RawMessage]()
	if err := o.fields.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("expected a JSON object: %w", err)
	}
	return nil
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil || o.fields == nil {
		return 0
	}
	return o.fields.Len()
}

// Split returns the keys and their decoded values, both in document order.
func (o *Object) Split() ([]string, []any, error) {
	keys := make([]string, 0, o.Len())
	values := make([]any, 0, o.Len())
	if o.Len() == 0 {
		return keys, values, nil
	}

	for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
		v, err := Scalar(pair.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("field %s: %w", pair.Key, err)
		}
		keys = append(keys, pair.Key)
		values = append(values, v)
	}
	return keys, values, nil
}
