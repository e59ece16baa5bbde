// Package summary implements the end-of-session screen with the saved
// statistics and the stats download and upload actions.
package summary

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcards/internal/config"
	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/router"
	"github.com/abhisek/mathcards/internal/screen"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/abhisek/mathcards/internal/stats"
	"github.com/abhisek/mathcards/internal/ui/layout"
	"github.com/abhisek/mathcards/internal/ui/theme"
)

// exportDoneMsg reports a stats download.
type exportDoneMsg struct {
	path string
	err  error
}

// importDoneMsg reports a stats upload.
type importDoneMsg struct {
	count int
	err   error
}

var _ screen.Screen = (*Screen)(nil)

// Screen shows the results of the finished session.
type Screen struct {
	env      *screen.Env
	finished session.Finished

	// status is the last download or upload outcome, rendered lazily so it
	// follows the active language.
	status  func(t *i18n.Table) string
	failed  bool
	summary stats.Summary
}

// New captures the controller's finished session.
func New(env *screen.Env) *Screen {
	fin, _ := env.Session.State().(session.Finished)
	return &Screen{
		env:      env,
		finished: fin,
		summary:  env.Stats.Summary(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return s.env.T().Summary.Title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	t := s.env.T()
	return []layout.KeyHint{
		{Key: "Enter", Description: t.Summary.Restart},
		{Key: "d", Description: t.Summary.Download},
		{Key: "u", Description: t.Summary.Upload},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.failed = msg.err != nil
		if msg.err != nil {
			detail := msg.err.Error()
			s.status = func(t *i18n.Table) string { return fmt.Sprintf(t.Summary.StatsError, detail) }
		} else {
			path := msg.path
			s.status = func(t *i18n.Table) string { return fmt.Sprintf(t.Summary.Downloaded, path) }
		}
		return s, nil

	case importDoneMsg:
		s.failed = msg.err != nil
		if msg.err != nil {
			s.status = func(t *i18n.Table) string { return t.Errors.StatsUpload }
		} else {
			count := msg.count
			s.status = func(t *i18n.Table) string { return fmt.Sprintf(t.Summary.Uploaded, count) }
			s.summary = s.env.Stats.Summary()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			s.env.Session.Reset()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "d":
			return s, s.download()
		case "u":
			return s, s.upload()
		}
	}
	return s, nil
}

// download writes the stats snapshot to the export path.
func (s *Screen) download() tea.Cmd {
	st, path := s.env.Stats, s.env.ExportPath
	return func() tea.Msg {
		data, err := st.Export()
		if err == nil {
			err = config.EnsureDir(path)
		}
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

// upload replaces the history with the snapshot at the export path.
func (s *Screen) upload() tea.Cmd {
	st, path := s.env.Stats, s.env.ExportPath
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err == nil {
			err = st.Import(context.Background(), data)
		}
		return importDoneMsg{count: len(st.Sessions()), err: err}
	}
}

func (s *Screen) View(width, height int) string {
	t := s.env.T()
	fin := s.finished

	correct := quiz.CountCorrect(fin.Results)
	wrong := len(fin.Results) - correct
	score := 0.0
	duration := stats.Placeholder
	if r := fin.Record; r != nil {
		correct, wrong = r.Correct, r.Wrong
		if p, ok := r.Percentage.Value(); ok {
			score = p
		}
		if ms, ok := r.DurationMs.Value(); ok {
			duration = t.FormatDuration(ms / 1000)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(t.Summary.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(t.Summary.ModeMessages[fin.Settings.Mode]))
	b.WriteString("\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(t.Summary.CardCorrect, theme.Correct.Render(fmt.Sprint(correct))),
		statCard(t.Summary.CardWrong, theme.Incorrect.Render(fmt.Sprint(wrong))),
		statCard(t.Summary.CardScore, theme.Stars.Render(i18n.Score(score)+"%")),
		statCard(t.Summary.CardDuration, theme.Body.Render(duration)),
	)
	b.WriteString(layout.Center(cards, width))
	b.WriteString("\n")

	encouragement := t.Summary.Encouragement[stats.Encouragement(score)]
	b.WriteString(theme.Label.Width(width).Align(lipgloss.Center).Render(encouragement))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(s.renderSaved(t), width))
	b.WriteString("\n")

	if s.status != nil {
		banner := theme.InfoBanner
		if s.failed {
			banner = theme.ErrorBanner
		}
		b.WriteString(layout.Center(banner(s.status(t)), width))
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(t.Summary.UploadHint))

	return b.String()
}

func statCard(label, value string) string {
	return theme.Card.Width(18).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" + value,
	)
}

// renderSaved shows the aggregate over every saved session.
func (s *Screen) renderSaved(t *i18n.Table) string {
	sum := s.summary
	lines := []string{
		theme.Label.Render(t.Summary.StatsTitle),
		fmt.Sprintf(t.Summary.TotalSessions, sum.TotalSessions),
	}
	if sum.TotalSessions > 0 {
		lines = append(lines,
			fmt.Sprintf(t.Summary.BestScore, i18n.Score(sum.BestScore)),
			fmt.Sprintf(t.Summary.AverageScore, i18n.Score(float64(sum.AverageScore))),
		)
	}
	for _, row := range []struct {
		format  string
		seconds *int64
	}{
		{t.Summary.AverageDuration, sum.AverageDurationSeconds},
		{t.Summary.BestDuration, sum.BestDurationSeconds},
		{t.Summary.LastDuration, sum.LastDurationSeconds},
	} {
		if d := stats.FormatOptional(row.seconds, t.Duration); d != "" {
			lines = append(lines, fmt.Sprintf(row.format, d))
		}
	}
	if last := sum.LastSession; last != nil {
		if ts := i18n.Optional(t.Summary.LastUpdated, i18n.Timestamp(last.Timestamp)); ts != "" {
			lines = append(lines, ts)
		}
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}
