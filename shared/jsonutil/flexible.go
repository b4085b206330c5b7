package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleString converts a loosely typed JSON scalar to the text that gets
// spliced into SQL. Strings are unquoted, numbers keep their literal form,
// booleans become true/false, arrays are joined with commas. Returns empty
// string for null/empty.
func FlexibleString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		return strVal
	}

	var numVal json.Number
	if err := json.Unmarshal(raw, &numVal); err == nil {
		return numVal.String()
	}

	var boolVal bool
	if err := json.Unmarshal(raw, &boolVal); err == nil {
		return strconv.FormatBool(boolVal)
	}

	// arrays join like Array.prototype.toString; objects are spliced as written
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err == nil {
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = FlexibleString(e)
		}
		return strings.Join(parts, ",")
	}
	return string(raw)
}

// Truthy reports whether a JSON value would pass a JavaScript truthiness
// test: absent, null, false, 0 and "" are falsy, everything else is truthy.
func Truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != ""
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && f != 0
	}
}

// Flag is a boolean that accepts any JSON value and applies Truthy to it.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag(Truthy(data))
	return nil
}

// Scalar decodes a single JSON value into the Go value bound as a statement
// argument. Integral numbers become int64, other numbers float64, nested
// objects and arrays are re-encoded as JSON text.
func Scalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}

	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return t.String(), nil
		}
		return f, nil
	case map[string]any, []any:
		return string(bytes.TrimSpace(raw)), nil
	default:
		return v, nil
	}
}
