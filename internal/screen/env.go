package screen

import (
	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/abhisek/mathcards/internal/store"
)

// Env carries the shared services every screen works against.
type Env struct {
	Session *session.Controller
	Stats   *store.StatsStore
	Prefs   store.KV
	Lang    *i18n.Selector

	// ExportPath is where the summary screen writes downloaded stats.
	ExportPath string
}

// T returns the active translation table.
func (e *Env) T() *i18n.Table {
	return e.Lang.Table()
}
