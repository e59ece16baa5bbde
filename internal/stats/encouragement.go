package stats

// EncouragementTier buckets a session score for the summary screen.
type EncouragementTier int

const (
	EncourageLow EncouragementTier = iota
	EncourageMid
	EncourageHigh
	EncourageTop
)

// Encouragement picks the tier for a percentage score.
func Encouragement(percentage float64) EncouragementTier {
	switch {
	case percentage >= 90:
		return EncourageTop
	case percentage >= 70:
		return EncourageHigh
	case percentage >= 50:
		return EncourageMid
	default:
		return EncourageLow
	}
}
