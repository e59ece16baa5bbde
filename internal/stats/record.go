package stats

import (
	"bytes"
	"encoding/json"

	"github.com/abhisek/mathcards/internal/quiz"
)

// Record is the immutable summary of one completed session.
type Record struct {
	ID         string         `json:"id"`
	Timestamp  string         `json:"timestamp"`
	Settings   quiz.Config    `json:"settings"`
	Total      int            `json:"total"`
	Correct    int            `json:"correct"`
	Wrong      int            `json:"wrong"`
	Percentage Number         `json:"percentage"`
	Results    []quiz.Outcome `json:"results"`
	DurationMs Number         `json:"durationMs"`

	// raw holds the decoded document; it is re-emitted as-is on encode.
	raw json.RawMessage
}

// recordFields is Record without methods, used for plain encoding.
type recordFields Record

// IsNull reports whether the record was decoded from a JSON null entry.
func (r Record) IsNull() bool {
	return bytes.Equal(bytes.TrimSpace(r.raw), []byte("null"))
}

// UnmarshalJSON decodes each field on its own so that one malformed field
// does not discard the rest of the record. It never fails.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{raw: append(json.RawMessage(nil), data...)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	decode := func(key string, dst any) {
		if v, ok := fields[key]; ok {
			_ = json.Unmarshal(v, dst)
		}
	}
	decode("id", &r.ID)
	decode("timestamp", &r.Timestamp)
	decode("total", &r.Total)
	decode("correct", &r.Correct)
	decode("wrong", &r.Wrong)
	decode("percentage", &r.Percentage)
	decode("results", &r.Results)
	decode("durationMs", &r.DurationMs)

	if v, ok := fields["settings"]; ok {
		var s map[string]json.RawMessage
		if json.Unmarshal(v, &s) == nil {
			_ = json.Unmarshal(s["mode"], &r.Settings.Mode)
			_ = json.Unmarshal(s["difficulty"], &r.Settings.Difficulty)
			_ = json.Unmarshal(s["total_operations"], &r.Settings.TotalOperations)
		}
	}
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	f := recordFields(r)
	if f.Results == nil {
		f.Results = []quiz.Outcome{}
	}
	return json.Marshal(f)
}
