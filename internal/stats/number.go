package stats

import (
	"bytes"
	"encoding/json"
	"math"
)

// Number is an optional JSON number. Values that are not numbers are kept
// verbatim so that exporting never rewrites data the store did not create.
type Number struct {
	value float64
	valid bool
	raw   json.RawMessage
}

// NewNumber returns a valid Number.
func NewNumber(v float64) Number {
	return Number{value: v, valid: true}
}

// Null is the absent number, encoded as JSON null.
var Null = Number{}

// Value returns the number and whether it is present and numeric.
func (n Number) Value() (float64, bool) {
	return n.value, n.valid
}

// Valid reports whether the number is present and numeric.
func (n Number) Valid() bool { return n.valid }

// Int returns the value rounded to the nearest integer.
func (n Number) Int() (int64, bool) {
	if !n.valid {
		return 0, false
	}
	return int64(math.Round(n.value)), true
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{raw: append(json.RawMessage(nil), data...)}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if c := trimmed[0]; c == '-' || (c >= '0' && c <= '9') {
		var v float64
		if err := json.Unmarshal(trimmed, &v); err == nil {
			n.value = v
			n.valid = true
		}
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if len(n.raw) > 0 {
		return n.raw, nil
	}
	if !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}
