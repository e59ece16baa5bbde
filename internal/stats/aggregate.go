package stats

import "math"

// Summary is derived from the full session history on demand and never
// persisted.
type Summary struct {
	TotalSessions int
	BestScore     float64
	AverageScore  int

	// Duration fields are nil when no session carries a usable duration.
	AverageDurationSeconds *int64
	BestDurationSeconds    *int64

	LastSession         *Record
	LastDurationSeconds *int64
}

// Aggregate reduces the ordered session history into a Summary. Records
// with a missing or non-numeric percentage are left out of the score
// figures; records without a non-negative numeric duration are left out of
// the duration figures. Rounding is half away from zero throughout.
func Aggregate(sessions []Record) Summary {
	sum := Summary{TotalSessions: len(sessions)}

	var (
		scoreTotal float64
		scoreCount int
		best       = math.Inf(-1)
	)
	var (
		durTotal float64
		durCount int
		shortest = math.Inf(1)
	)

	for _, s := range sessions {
		if p, ok := s.Percentage.Value(); ok {
			scoreTotal += p
			scoreCount++
			best = math.Max(best, p)
		}
		if d, ok := s.DurationMs.Value(); ok && d >= 0 {
			durTotal += d
			durCount++
			shortest = math.Min(shortest, d)
		}
	}

	if scoreCount > 0 {
		sum.BestScore = best
		sum.AverageScore = int(math.Round(scoreTotal / float64(scoreCount)))
	}

	if durCount > 0 {
		avgMs := math.Round(durTotal / float64(durCount))
		sum.AverageDurationSeconds = msToSeconds(avgMs)
		sum.BestDurationSeconds = msToSeconds(shortest)
	}

	if n := len(sessions); n > 0 && !sessions[n-1].IsNull() {
		last := sessions[n-1]
		sum.LastSession = &last
		if d, ok := last.DurationMs.Value(); ok {
			sum.LastDurationSeconds = msToSeconds(d)
		}
	}

	return sum
}

func msToSeconds(ms float64) *int64 {
	s := int64(math.Round(ms / 1000))
	return &s
}
