package summary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/quizapi"
	"github.com/abhisek/mathcards/internal/router"
	"github.com/abhisek/mathcards/internal/screen"
	"github.com/abhisek/mathcards/internal/screens/screentest"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/abhisek/mathcards/internal/stats"
)

// finished plays a three-problem session answered right, wrong, right.
func finished(t *testing.T) *screen.Env {
	t.Helper()
	api := &screentest.API{}
	api.Push(
		screentest.Problem(1, 3, 1, 1),
		screentest.Problem(2, 3, 2, 2),
		screentest.Problem(3, 3, 3, 3),
		&quizapi.Step{
			Finished: true,
			Total:    3,
			Results: []quiz.Outcome{
				quiz.BoolOutcome(true), quiz.BoolOutcome(false), quiz.BoolOutcome(true),
			},
		},
	)
	env := screentest.Env(api)
	env.ExportPath = filepath.Join(t.TempDir(), "out", "mathcards_stats.json")

	ctx := context.Background()
	cfg := quiz.Config{Mode: quiz.ModeSum, Difficulty: 2, TotalOperations: 3}
	require.NoError(t, env.Session.Start(ctx, cfg))
	for _, a := range []string{"2", "5", "6"} {
		require.NoError(t, env.Session.Submit(ctx, a))
	}
	_, ok := env.Session.State().(session.Finished)
	require.True(t, ok)
	return env
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(finished(t))
	if s.Title() != "Session complete! 🎉" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session complete! 🎉")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(finished(t))
	view := s.View(120, 40)

	assert.Contains(t, view, "Addition problems have no secrets for you now.")
	assert.Contains(t, view, "67%")
	assert.Contains(t, view, "Every try makes you stronger.")
	assert.Contains(t, view, "1 sessions")
	assert.Contains(t, view, "Best score: 67%")
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	env := finished(t)
	s := New(env)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected non-nil cmd on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
	if _, ok := env.Session.State().(session.Configuring); !ok {
		t.Error("expected the controller to be reset")
	}
}

func TestSummaryScreen_DownloadThenUpload(t *testing.T) {
	env := finished(t)
	s := New(env)

	_, cmd := s.Update(screentest.Key('d'))
	require.NotNil(t, cmd)
	s.Update(cmd())

	data, err := os.ReadFile(env.ExportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sessions"`)
	assert.Contains(t, s.View(120, 40), "Stats saved to")

	require.NoError(t, env.Stats.Replace(context.Background(), []stats.Record{}))
	require.Empty(t, env.Stats.Sessions())

	_, cmd = s.Update(screentest.Key('u'))
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Len(t, env.Stats.Sessions(), 1)
	assert.Contains(t, s.View(120, 40), "1 sessions loaded")
}

func TestSummaryScreen_UploadInvalidShowsError(t *testing.T) {
	env := finished(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(env.ExportPath), 0o755))
	require.NoError(t, os.WriteFile(env.ExportPath, []byte(`{"nope": true}`), 0o644))
	s := New(env)

	_, cmd := s.Update(screentest.Key('u'))
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Len(t, env.Stats.Sessions(), 1, "history unchanged")
	assert.Contains(t, s.View(120, 40), "We couldn't load that stats file.")

	// The banner follows the active language.
	env.Lang.Set("es")
	assert.Contains(t, s.View(120, 40), env.T().Errors.StatsUpload)
}

func TestSummaryScreen_UploadMissingFile(t *testing.T) {
	env := finished(t)
	s := New(env)

	_, cmd := s.Update(screentest.Key('u'))
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.True(t, s.failed)
	assert.Len(t, env.Stats.Sessions(), 1)
}
