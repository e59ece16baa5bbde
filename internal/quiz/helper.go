package quiz

// HelperTier picks which encouragement line is shown under a problem.
type HelperTier int

const (
	HelperEarly HelperTier = iota
	HelperDefault
	HelperLate
)

func (t HelperTier) String() string {
	switch t {
	case HelperEarly:
		return "early"
	case HelperLate:
		return "late"
	default:
		return "default"
	}
}

// HelperTierFor maps the 1-based problem index to a tier: the first third
// (rounded up) is early, anything past two thirds is late.
func HelperTierFor(index, total int) HelperTier {
	if index <= (total+2)/3 {
		return HelperEarly
	}
	if 3*index > 2*total {
		return HelperLate
	}
	return HelperDefault
}
