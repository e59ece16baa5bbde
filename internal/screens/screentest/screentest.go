// Package screentest builds screen environments backed by in-memory fakes.
package screentest

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/quizapi"
	"github.com/abhisek/mathcards/internal/screen"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/abhisek/mathcards/internal/store"
)

// ErrUnscripted is returned by API calls that have no scripted response.
var ErrUnscripted = errors.New("screentest: unscripted call")

// API is a scripted quiz service. Each call pops the next queued step.
type API struct {
	mu      sync.Mutex
	StartFn func(quiz.Config) (*quizapi.StartResponse, error)
	Steps   []*quizapi.Step
	Err     error
	Answers []int
}

func (a *API) Start(_ context.Context, cfg quiz.Config) (*quizapi.StartResponse, error) {
	if a.StartFn != nil {
		return a.StartFn(cfg)
	}
	return &quizapi.StartResponse{SessionID: "s-1", Total: cfg.TotalOperations}, nil
}

func (a *API) Next(context.Context, string) (*quizapi.Step, error) {
	return a.pop()
}

func (a *API) Answer(_ context.Context, _ string, n int) (*quizapi.Step, error) {
	a.mu.Lock()
	a.Answers = append(a.Answers, n)
	a.mu.Unlock()
	return a.pop()
}

func (a *API) pop() (*quizapi.Step, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	if len(a.Steps) == 0 {
		return nil, ErrUnscripted
	}
	s := a.Steps[0]
	a.Steps = a.Steps[1:]
	return s, nil
}

// Push queues more steps.
func (a *API) Push(steps ...*quizapi.Step) {
	a.mu.Lock()
	a.Steps = append(a.Steps, steps...)
	a.mu.Unlock()
}

// Fail makes every following Next and Answer call return err.
func (a *API) Fail(err error) {
	a.mu.Lock()
	a.Err = err
	a.mu.Unlock()
}

// Problem is a shorthand for a step that serves a + b as the index-th
// problem, counted from 1 as the quiz service does.
func Problem(index, total, a, b int) *quizapi.Step {
	return &quizapi.Step{
		Operation: &quiz.Problem{A: a, B: b, Operator: "+"},
		Index:     index,
		Total:     total,
	}
}

// Env returns an English environment over api with an in-memory store.
func Env(api *API) *screen.Env {
	lang := i18n.NewSelector("en")
	kv := store.NewMemoryKV()
	st := store.NewStatsStore(kv)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		start = start.Add(30 * time.Second)
		return start
	}
	return &screen.Env{
		Session: session.New(api, st, lang, session.WithClock(clock)),
		Stats:   st,
		Prefs:   kv,
		Lang:    lang,
	}
}

// Key builds a key press for a printable rune.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Type returns key presses for every rune of s.
func Type(s string) []tea.KeyPressMsg {
	keys := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, Key(r))
	}
	return keys
}
