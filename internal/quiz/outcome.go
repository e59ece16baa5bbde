package quiz

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// outcomeShape records which wire shape an Outcome came from.
type outcomeShape int

const (
	shapeBool       outcomeShape = iota // legacy true/false
	shapeStructured                     // {"correct": ..., "expected": ...}
	shapeUnknown                        // anything else; never correct
)

// Outcome is the result of one answered problem. The quiz service reports
// it either as a bare boolean or as {correct, expected}; both decode into
// this type and IsCorrect treats them the same way.
type Outcome struct {
	correct  bool
	expected *float64
	shape    outcomeShape
	raw      json.RawMessage
}

// BoolOutcome builds a legacy boolean outcome.
func BoolOutcome(correct bool) Outcome {
	return Outcome{correct: correct, shape: shapeBool}
}

// StructuredOutcome builds a {correct, expected} outcome.
func StructuredOutcome(correct bool, expected float64) Outcome {
	return Outcome{correct: correct, expected: &expected, shape: shapeStructured}
}

// IsCorrect is the single place outcome correctness is derived.
func IsCorrect(o Outcome) bool {
	switch o.shape {
	case shapeBool, shapeStructured:
		return o.correct
	}
	return false
}

// CountCorrect counts outcomes for which IsCorrect holds.
func CountCorrect(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if IsCorrect(o) {
			n++
		}
	}
	return n
}

// Expected returns the expected answer carried by a structured outcome.
func (o Outcome) Expected() (float64, bool) {
	if o.expected == nil {
		return 0, false
	}
	return *o.expected, true
}

// ExpectedString formats the expected answer without a trailing ".0".
func (o Outcome) ExpectedString() string {
	v, ok := o.Expected()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// UnmarshalJSON accepts any JSON value and never fails.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	*o = Outcome{shape: shapeUnknown, raw: append(json.RawMessage(nil), data...)}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err == nil {
			o.correct = b
			o.shape = shapeBool
		}
	case '{':
		var fields struct {
			Correct  json.RawMessage `json:"correct"`
			Expected json.RawMessage `json:"expected"`
		}
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil
		}
		o.shape = shapeStructured
		o.correct = truthy(fields.Correct)
		var exp float64
		if len(fields.Expected) > 0 && json.Unmarshal(fields.Expected, &exp) == nil {
			o.expected = &exp
		}
	}
	return nil
}

// MarshalJSON re-emits decoded outcomes verbatim.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if len(o.raw) > 0 {
		return o.raw, nil
	}
	if o.shape == shapeStructured {
		return json.Marshal(struct {
			Correct  bool     `json:"correct"`
			Expected *float64 `json:"expected,omitempty"`
		}{o.correct, o.expected})
	}
	return json.Marshal(o.correct)
}

// truthy applies loose boolean coercion to a raw JSON value: false, 0, "",
// null and absence are false, everything else is true.
func truthy(raw json.RawMessage) bool {
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
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return false
	}
	return f != 0
}
