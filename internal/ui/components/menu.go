package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcards/internal/ui/theme"
)

// MenuItem is one labelled row whose value is picked from Options.
type MenuItem struct {
	Label    string
	Options  []string
	Selected int
	Disabled bool
}

// Value returns the selected option label, or "" when there are none.
func (it MenuItem) Value() string {
	if it.Selected < 0 || it.Selected >= len(it.Options) {
		return ""
	}
	return it.Options[it.Selected]
}

// Menu is a vertical list of option rows. Up and down move between rows,
// left and right cycle the focused row's options.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation. It reports whether an option value
// changed.
func (m Menu) Update(msg tea.Msg) (Menu, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, false
	}

	switch kmsg.String() {
	case "up", "k", "shift+tab":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j", "tab":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "left", "h":
		return m.shift(-1)
	case "right":
		return m.shift(1)
	}

	return m, false
}

func (m Menu) shift(delta int) (Menu, bool) {
	item := &m.Items[m.Selected]
	n := len(item.Options)
	if item.Disabled || n < 2 {
		return m, false
	}
	items := make([]MenuItem, len(m.Items))
	copy(items, m.Items)
	items[m.Selected].Selected = (item.Selected + delta + n) % n
	m.Items = items
	return m, true
}

// View renders the menu.
func (m Menu) View() string {
	labelWidth := 0
	for _, item := range m.Items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}

	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(item.Label))
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    " + label + "   " + item.Value()))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ "+label) +
				"   " +
				theme.Selected.Render("‹ "+item.Value()+" ›"))
		default:
			b.WriteString(theme.Unselected.Render("    "+label) +
				"   " +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+item.Value()))
		}
		b.WriteString("\n")
	}
	return b.String()
}
