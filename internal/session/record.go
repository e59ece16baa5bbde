package session

import (
	"math"
	"time"

	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/stats"
)

// timestampLayout matches the ISO-8601 form used by existing exports.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// BuildRecord summarises a finished session. total is the server-reported
// count and falls back to len(results) when zero.
func BuildRecord(id string, settings quiz.Config, total int, results []quiz.Outcome, finishedAt time.Time, durationMs stats.Number) stats.Record {
	if total <= 0 {
		total = len(results)
	}
	correct := quiz.CountCorrect(results)

	pct := 0.0
	if total > 0 {
		pct = math.Round(100 * float64(correct) / float64(total))
	}

	out := make([]quiz.Outcome, len(results))
	copy(out, results)

	return stats.Record{
		ID:         id,
		Timestamp:  finishedAt.UTC().Format(timestampLayout),
		Settings:   settings,
		Total:      total,
		Correct:    correct,
		Wrong:      len(results) - correct,
		Percentage: stats.NewNumber(pct),
		Results:    out,
		DurationMs: durationMs,
	}
}

// elapsedMs is the session duration, or Null when the start time is
// unknown or the clock went backwards.
func elapsedMs(startedAt, now time.Time) stats.Number {
	if startedAt.IsZero() {
		return stats.Null
	}
	ms := now.Sub(startedAt).Milliseconds()
	if ms < 0 {
		return stats.Null
	}
	return stats.NewNumber(float64(ms))
}
