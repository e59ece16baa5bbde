package components

import (
	"github.com/abhisek/mathcards/internal/ui/theme"
)

// Button is a styled button component. A busy button shows BusyLabel and
// renders as inactive.
type Button struct {
	Label     string
	BusyLabel string
	Active    bool
	Busy      bool
}

// NewButton creates a new button.
func NewButton(label, busyLabel string) Button {
	return Button{
		Label:     label,
		BusyLabel: busyLabel,
		Active:    true,
	}
}

// View renders the button.
func (b Button) View() string {
	if b.Busy {
		return theme.ButtonInactive.Render("  … " + b.BusyLabel + " ")
	}
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
