package stats

import (
	"fmt"
	"math"
)

// DurationFormatter renders a number of seconds for a specific locale.
type DurationFormatter func(seconds float64) string

// Placeholder is shown for durations that cannot be rendered.
const Placeholder = "-"

// FormatDuration delegates to format when one is supplied. Otherwise it
// renders "<N> s" below a minute and "<M> m <SS> s" from a minute on.
func FormatDuration(seconds float64, format DurationFormatter) string {
	if format != nil {
		return format(seconds)
	}
	return formatDefault(seconds, "m", "s")
}

// FormatOptional formats a nullable whole-second value; nil renders as "".
func FormatOptional(seconds *int64, format DurationFormatter) string {
	if seconds == nil {
		return ""
	}
	return FormatDuration(float64(*seconds), format)
}

// UnitFormatter builds a DurationFormatter with locale-specific units.
func UnitFormatter(minuteUnit, secondUnit string) DurationFormatter {
	return func(seconds float64) string {
		return formatDefault(seconds, minuteUnit, secondUnit)
	}
}

func formatDefault(seconds float64, minuteUnit, secondUnit string) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return Placeholder
	}
	total := int64(math.Round(seconds))
	minutes := total / 60
	rest := total % 60
	if minutes <= 0 {
		return fmt.Sprintf("%d %s", rest, secondUnit)
	}
	return fmt.Sprintf("%d %s %02d %s", minutes, minuteUnit, rest, secondUnit)
}
