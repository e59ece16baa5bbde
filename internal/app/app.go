package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcards/internal/router"
	"github.com/abhisek/mathcards/internal/screen"
	"github.com/abhisek/mathcards/internal/screens/practice"
	"github.com/abhisek/mathcards/internal/screens/setup"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/abhisek/mathcards/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the setup screen at the root. A
// session that is already active opens on the practice screen.
func newAppModel(env *screen.Env) AppModel {
	r := router.New(setup.New(env))
	if _, ok := env.Session.State().(session.Active); ok {
		r.Push(practice.New(env))
	}
	return AppModel{
		env:    env,
		router: r,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders the header, active screen and footer.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// status is the right side of the header: stars while a session is
// running, and the active language.
func (m AppModel) status() string {
	t := m.env.T()
	lang := fmt.Sprintf("%s %s", t.LanguageLabel, t.Code)
	if _, ok := m.env.Session.State().(session.Configuring); ok {
		return lang
	}
	return fmt.Sprintf("★ %d   %s", m.env.Session.Stars(), lang)
}

// Run starts the Bubble Tea program. Standard log output goes to logFile
// while the program runs, or is discarded when logFile is empty.
func Run(env *screen.Env, logFile string) error {
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "mathcards")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newAppModel(env))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
