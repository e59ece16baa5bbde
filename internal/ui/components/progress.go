package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcards/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar for a whole percentage.
type ProgressBar struct {
	Label   string
	Percent int
	Width   int
}

// NewProgressBar creates a new progress bar. percent is clamped to 0..100.
func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: min(100, max(0, percent)),
		Width:   width,
	}
}

// View renders the progress bar followed by the percentage.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d%%", p.Percent)
	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)

	filled := barWidth * p.Percent / 100
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)

	return result
}
