// Package practice implements the card screen where problems are answered.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/router"
	"github.com/abhisek/mathcards/internal/screen"
	"github.com/abhisek/mathcards/internal/screens/summary"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/abhisek/mathcards/internal/ui/components"
	"github.com/abhisek/mathcards/internal/ui/layout"
	"github.com/abhisek/mathcards/internal/ui/theme"
)

// Answers longer than this are rejected by the input.
const maxAnswerLen = 7

// stepDoneMsg carries the result of a Submit or FetchNext call.
type stepDoneMsg struct {
	answered bool
	err      error
}

var _ screen.Screen = (*Screen)(nil)

// Screen shows the current problem of the active session.
type Screen struct {
	env   *screen.Env
	input components.TextInput

	// pending is set while a request started by this screen is in flight.
	pending bool
}

// New creates the practice screen for the controller's active session.
func New(env *screen.Env) *Screen {
	return &Screen{
		env:   env,
		input: components.NewTextInput(env.T().Card.AnswerPlaceholder, true, maxAnswerLen),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	t := s.env.T()
	if a, ok := s.env.Session.State().(session.Active); ok && a.Index > 0 && a.Total > 0 {
		return fmt.Sprintf(t.Card.ChallengeLabel, a.Index, a.Total)
	}
	return t.App.HeaderTitle
}

func (s *Screen) KeyHints() []layout.KeyHint {
	t := s.env.T()
	hints := []layout.KeyHint{
		{Key: "Enter", Description: t.Card.SubmitButton},
	}
	if s.needsRetry() {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retry"})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// needsRetry reports whether the session has no problem loaded.
func (s *Screen) needsRetry() bool {
	a, ok := s.env.Session.State().(session.Active)
	return ok && a.Operation == nil && !s.pending
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		return s.handleStep(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.env.Session.Reset()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		return s.submit()
	case "r":
		if s.needsRetry() {
			return s.fetch()
		}
		return s, nil
	}

	if s.pending {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	if s.pending || s.env.Session.Busy() {
		return s, nil
	}
	a, ok := s.env.Session.State().(session.Active)
	if !ok || a.Operation == nil {
		return s, nil
	}

	if _, err := quiz.ParseAnswer(s.input.Value()); err != nil {
		// Rejected locally; this records the notice without a request.
		_ = s.env.Session.Submit(context.Background(), s.input.Value())
		s.input.Submit(false)
		return s, nil
	}

	s.pending = true
	ctrl, text := s.env.Session, s.input.Value()
	return s, func() tea.Msg {
		return stepDoneMsg{answered: true, err: ctrl.Submit(context.Background(), text)}
	}
}

func (s *Screen) fetch() (screen.Screen, tea.Cmd) {
	s.pending = true
	ctrl := s.env.Session
	return s, func() tea.Msg {
		return stepDoneMsg{err: ctrl.FetchNext(context.Background())}
	}
}

func (s *Screen) handleStep(msg stepDoneMsg) (screen.Screen, tea.Cmd) {
	s.pending = false

	if errors.Is(msg.err, session.ErrStale) {
		return s, nil
	}

	if _, ok := s.env.Session.State().(session.Finished); ok {
		next := summary.New(s.env)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	if msg.answered && msg.err == nil {
		s.input.Reset()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	t := s.env.T()
	a, ok := s.env.Session.State().(session.Active)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	stars := theme.Stars.Render("★ " + fmt.Sprintf(t.Card.StarsEarned, s.env.Session.Stars()))
	barWidth := min(width-8, 60)
	bar := components.NewProgressBar("", s.env.Session.Progress(), barWidth)
	b.WriteString(layout.Center(stars, width))
	b.WriteString("\n")
	b.WriteString(layout.Center(bar.View(), width))
	b.WriteString("\n\n")

	if a.Operation == nil {
		b.WriteString(s.renderNoProblem(t, width))
		return b.String()
	}

	card := theme.Label.Render(t.Card.Question) + "\n\n" +
		theme.Problem.Width(24).Render(a.Operation.String()+" = ?") + "\n\n" +
		t.Card.AnswerLabel + ": " + s.input.View()
	b.WriteString(layout.Center(theme.Card.Render(card), width))
	b.WriteString("\n\n")

	if a.LastResult != nil {
		b.WriteString(layout.Center(feedback(t, *a.LastResult), width))
		b.WriteString("\n")
	}

	if msg := s.env.Session.Error(); msg != "" {
		b.WriteString(layout.Center(theme.ErrorBanner(msg), width))
		b.WriteString("\n")
	}

	if helper := s.env.Session.HelperMessage(); helper != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(helper))
	}

	return b.String()
}

func (s *Screen) renderNoProblem(t *i18n.Table, width int) string {
	if msg := s.env.Session.Error(); msg != "" {
		return layout.Center(theme.ErrorBanner(msg), width)
	}
	return theme.Hint.Width(width).Align(lipgloss.Center).Render(t.Settings.LoadingButton)
}

// feedback renders the verdict on the previous answer.
func feedback(t *i18n.Table, o quiz.Outcome) string {
	if quiz.IsCorrect(o) {
		return theme.Correct.Render("✓ " + t.Card.FeedbackCorrect)
	}
	expected := o.ExpectedString()
	if expected == "" {
		return theme.Incorrect.Render("✗")
	}
	return theme.Incorrect.Render("✗ " + fmt.Sprintf(t.Card.FeedbackIncorrect, expected))
}
