// Package setup implements the settings screen where a session is
// configured and started.
package setup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/router"
	"github.com/abhisek/mathcards/internal/screen"
	"github.com/abhisek/mathcards/internal/screens/practice"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/abhisek/mathcards/internal/stats"
	"github.com/abhisek/mathcards/internal/store"
	"github.com/abhisek/mathcards/internal/ui/components"
	"github.com/abhisek/mathcards/internal/ui/layout"
	"github.com/abhisek/mathcards/internal/ui/theme"
)

// Menu rows.
const (
	rowMode = iota
	rowDifficulty
	rowCount
)

// startDoneMsg carries the result of Controller.Start.
type startDoneMsg struct {
	err error
}

// languageSavedMsg reports the outcome of persisting the language choice.
type languageSavedMsg struct {
	code string
	err  error
}

var _ screen.Screen = (*Screen)(nil)

// Screen is the settings screen. It is the root of the router stack.
type Screen struct {
	env     *screen.Env
	menu    components.Menu
	button  components.Button
	failed  bool
	summary stats.Summary
}

// New creates the settings screen, preselecting the controller's current
// settings.
func New(env *screen.Env) *Screen {
	s := &Screen{env: env}
	s.build(current(env.Session))
	s.summary = env.Stats.Summary()
	return s
}

func current(c *session.Controller) quiz.Config {
	if st, ok := c.State().(session.Configuring); ok {
		return st.Settings
	}
	return quiz.DefaultConfig()
}

// build recreates the menu in the active language with cfg selected.
func (s *Screen) build(cfg quiz.Config) {
	t := s.env.T()

	modes := make([]string, len(quiz.Modes))
	modeIdx := 0
	for i, m := range quiz.Modes {
		modes[i] = t.Settings.ModeOptions[m]
		if m == cfg.Mode {
			modeIdx = i
		}
	}

	counts := make([]string, len(quiz.CountOptions))
	countIdx := 0
	for i, n := range quiz.CountOptions {
		counts[i] = fmt.Sprintf(t.Settings.CountOption, n)
		if n == cfg.TotalOperations {
			countIdx = i
		}
	}

	selected := 0
	if len(s.menu.Items) > 0 {
		selected = s.menu.Selected
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: t.Settings.ModeLabel, Options: modes, Selected: modeIdx},
		{Label: t.Settings.DifficultyLabel, Options: t.Settings.DifficultyOptions[:], Selected: cfg.Difficulty - 1},
		{Label: t.Settings.CountLabel, Options: counts, Selected: countIdx},
	})
	s.menu.Selected = selected
	s.button = components.NewButton(t.Settings.StartButton, t.Settings.LoadingButton)
}

// config reads the chosen settings from the menu.
func (s *Screen) config() quiz.Config {
	return quiz.Config{
		Mode:            quiz.Modes[s.menu.Items[rowMode].Selected],
		Difficulty:      s.menu.Items[rowDifficulty].Selected + 1,
		TotalOperations: quiz.CountOptions[s.menu.Items[rowCount].Selected],
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the stats preview when a session ends.
func (s *Screen) Resume() tea.Cmd {
	s.summary = s.env.Stats.Summary()
	s.build(current(s.env.Session))
	s.failed = false
	return nil
}

func (s *Screen) Title() string {
	return s.env.T().Settings.Title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	t := s.env.T()
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: t.Settings.StartButton},
		{Key: "l", Description: t.LanguageLabel},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startDoneMsg:
		return s.handleStarted(msg)

	case languageSavedMsg:
		if msg.err != nil {
			log.Printf("setup: save language %s: %v", msg.code, msg.err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.button.Busy {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		return s.start()
	case "l", "L":
		return s, s.switchLanguage()
	}

	var changed bool
	s.menu, changed = s.menu.Update(msg)
	if changed {
		s.failed = false
	}
	return s, nil
}

func (s *Screen) start() (screen.Screen, tea.Cmd) {
	cfg := s.config()
	s.button.Busy = true
	s.failed = false

	ctrl := s.env.Session
	return s, func() tea.Msg {
		return startDoneMsg{err: ctrl.Start(context.Background(), cfg)}
	}
}

func (s *Screen) handleStarted(msg startDoneMsg) (screen.Screen, tea.Cmd) {
	s.button.Busy = false

	switch {
	case errors.Is(msg.err, session.ErrStale), errors.Is(msg.err, session.ErrBusy):
		return s, nil
	case errors.Is(msg.err, quiz.ErrInvalidConfig):
		s.failed = true
		return s, nil
	}

	// A failed first load still leaves an active session that the
	// practice screen can retry.
	if _, ok := s.env.Session.State().(session.Active); ok {
		next := practice.New(s.env)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	s.failed = msg.err != nil
	return s, nil
}

// switchLanguage moves to the next language and persists the choice.
func (s *Screen) switchLanguage() tea.Cmd {
	cfg := s.config()
	code := i18n.Next(s.env.T().Code)
	s.env.Lang.Set(code)
	s.build(cfg)

	kv := s.env.Prefs
	if kv == nil {
		return nil
	}
	return func() tea.Msg {
		return languageSavedMsg{code: code, err: store.SaveLanguage(context.Background(), kv, code)}
	}
}

func (s *Screen) View(width, height int) string {
	t := s.env.T()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(t.Settings.WelcomeBadge))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(t.App.HeaderTitle))
	b.WriteString("\n\n")

	form := s.menu.View() + "\n" + s.button.View()
	b.WriteString(layout.Center(lipgloss.NewStyle().Align(lipgloss.Left).Render(form), width))
	b.WriteString("\n")

	if msg := s.errorMessage(t); msg != "" {
		b.WriteString(layout.Center(theme.ErrorBanner(msg), width))
		b.WriteString("\n")
	}

	b.WriteString(layout.Center(s.renderPreview(t), width))
	b.WriteString("\n")

	lang := fmt.Sprintf("%s: %s  ·  %s", t.LanguageLabel, t.LanguageName, t.Settings.LanguageHelper)
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(lang))

	return b.String()
}

// errorMessage is the controller's notice after a failed start, or the
// generic start error when the controller has none.
func (s *Screen) errorMessage(t *i18n.Table) string {
	if !s.failed {
		return ""
	}
	if msg := s.env.Session.Error(); msg != "" {
		return msg
	}
	return t.Errors.StartSession
}

// renderPreview shows the saved statistics card.
func (s *Screen) renderPreview(t *i18n.Table) string {
	sum := s.summary
	lines := []string{theme.Label.Render(t.Settings.StatsPreviewTitle)}

	if sum.TotalSessions == 0 {
		lines = append(lines, theme.Hint.Render(t.Settings.StatsPreviewEmpty))
		return theme.Card.Render(strings.Join(lines, "\n"))
	}

	lines = append(lines,
		fmt.Sprintf(t.Settings.StatsPreviewSessions, sum.TotalSessions),
		fmt.Sprintf(t.Settings.StatsPreviewAverageScore, i18n.Score(float64(sum.AverageScore))),
		fmt.Sprintf(t.Settings.StatsPreviewBestScore, i18n.Score(sum.BestScore)),
	)
	if d := stats.FormatOptional(sum.AverageDurationSeconds, t.Duration); d != "" {
		lines = append(lines, fmt.Sprintf(t.Settings.StatsPreviewAverageDuration, d))
	}
	if last := sum.LastSession; last != nil {
		if p, ok := last.Percentage.Value(); ok {
			lines = append(lines, fmt.Sprintf(t.Settings.StatsPreviewLastScore, i18n.Score(p)))
		}
		if d := stats.FormatOptional(sum.LastDurationSeconds, t.Duration); d != "" {
			lines = append(lines, fmt.Sprintf(t.Settings.StatsPreviewLastDuration, d))
		}
		if ts := i18n.Timestamp(last.Timestamp); ts != "" {
			lines = append(lines, fmt.Sprintf(t.Settings.StatsPreviewLastUpdated, ts))
		}
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}
