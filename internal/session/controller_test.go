package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/quizapi"
	"github.com/abhisek/mathcards/internal/stats"
)

// fakeAPI scripts quiz service responses. Nil funcs fail the test.
type fakeAPI struct {
	t      *testing.T
	start  func(quiz.Config) (*quizapi.StartResponse, error)
	next   func(id string) (*quizapi.Step, error)
	answer func(id string, n int) (*quizapi.Step, error)

	mu      sync.Mutex
	answers []int
	calls   int
}

func (f *fakeAPI) Start(_ context.Context, cfg quiz.Config) (*quizapi.StartResponse, error) {
	f.count()
	require.NotNil(f.t, f.start, "unexpected Start")
	return f.start(cfg)
}

func (f *fakeAPI) Next(_ context.Context, id string) (*quizapi.Step, error) {
	f.count()
	require.NotNil(f.t, f.next, "unexpected Next")
	return f.next(id)
}

func (f *fakeAPI) Answer(_ context.Context, id string, n int) (*quizapi.Step, error) {
	f.count()
	f.mu.Lock()
	f.answers = append(f.answers, n)
	f.mu.Unlock()
	require.NotNil(f.t, f.answer, "unexpected Answer")
	return f.answer(id, n)
}

func (f *fakeAPI) count() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeAPI) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type memRecorder struct {
	mu      sync.Mutex
	records []stats.Record
	err     error
}

func (m *memRecorder) Append(_ context.Context, r stats.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return m.err
}

// fakeClock advances by step on every call.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func problem(a, b int, op string) *quiz.Problem {
	return &quiz.Problem{A: a, B: b, Operator: op}
}

func outcome(o quiz.Outcome) *quiz.Outcome { return &o }

// scriptedAPI serves a three-problem session whose answers are judged by
// the given outcomes.
func scriptedAPI(t *testing.T, outcomes []quiz.Outcome) *fakeAPI {
	idx := 0
	total := len(outcomes)
	return &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return &quizapi.StartResponse{SessionID: "s1", Total: total}, nil
		},
		next: func(string) (*quizapi.Step, error) {
			return &quizapi.Step{Operation: problem(1, 1, "+"), Index: 1, Total: total}, nil
		},
		answer: func(string, int) (*quizapi.Step, error) {
			idx++
			if idx == total {
				return &quizapi.Step{Finished: true, Results: outcomes, Total: total}, nil
			}
			return &quizapi.Step{Operation: problem(idx, 1, "+"), LastResult: outcome(outcomes[idx-1])}, nil
		},
	}
}

func newController(api API, rec Recorder, clock *fakeClock) *Controller {
	opts := []Option{}
	if clock != nil {
		opts = append(opts, WithClock(clock.Now))
	}
	return New(api, rec, i18n.NewSelector("en"), opts...)
}

func TestEndToEnd(t *testing.T) {
	ctx := context.Background()
	api := scriptedAPI(t, []quiz.Outcome{quiz.BoolOutcome(true), quiz.BoolOutcome(false), quiz.BoolOutcome(true)})
	rec := &memRecorder{}
	clock := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), step: 15 * time.Second}
	c := newController(api, rec, clock)

	cfg := quiz.Config{Mode: quiz.ModeSum, Difficulty: 1, TotalOperations: 3}
	require.NoError(t, c.Start(ctx, cfg))

	a, ok := c.State().(Active)
	require.True(t, ok, "want Active, got %T", c.State())
	assert.Equal(t, "s1", a.SessionID)
	assert.Equal(t, 1, a.Index)
	assert.Equal(t, 3, a.Total)
	assert.Equal(t, 33, c.Progress())
	assert.Equal(t, i18n.Get("en").App.HelperEarly, c.HelperMessage())
	assert.False(t, c.Busy())

	require.NoError(t, c.Submit(ctx, "2"))
	a = c.State().(Active)
	assert.Equal(t, 2, a.Index)
	assert.Equal(t, 1, c.Stars())
	require.NotNil(t, a.LastResult)
	assert.True(t, quiz.IsCorrect(*a.LastResult))
	assert.Equal(t, i18n.Get("en").App.HelperDefault, c.HelperMessage())

	require.NoError(t, c.Submit(ctx, " 5 "))
	assert.Equal(t, 1, c.Stars())
	assert.Equal(t, i18n.Get("en").App.HelperLate, c.HelperMessage())

	require.NoError(t, c.Submit(ctx, "-3"))
	fin, ok := c.State().(Finished)
	require.True(t, ok, "want Finished, got %T", c.State())
	assert.Equal(t, 2, c.Stars())
	assert.Equal(t, 100, c.Progress())
	assert.Empty(t, c.HelperMessage())
	assert.Equal(t, []int{2, 5, -3}, api.answers)

	require.Len(t, rec.records, 1)
	r := rec.records[0]
	require.NotNil(t, fin.Record)
	assert.Equal(t, *fin.Record, r)
	assert.Equal(t, "s1", r.ID)
	assert.Equal(t, cfg, r.Settings)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 2, r.Correct)
	assert.Equal(t, 1, r.Wrong)
	pct, _ := r.Percentage.Value()
	assert.Equal(t, 67.0, pct)
	ms, ok := r.DurationMs.Int()
	require.True(t, ok)
	assert.Positive(t, ms)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, r.Timestamp)

	c.Reset()
	cf, ok := c.State().(Configuring)
	require.True(t, ok)
	assert.Equal(t, cfg, cf.Settings)
	assert.Empty(t, c.Error())
	assert.Zero(t, c.Stars())
}

func TestStructuredOutcomesAndMissingTotal(t *testing.T) {
	ctx := context.Background()
	results := []quiz.Outcome{
		quiz.StructuredOutcome(true, 4),
		quiz.StructuredOutcome(false, 9),
		quiz.BoolOutcome(true),
		quiz.StructuredOutcome(true, 1),
	}
	api := &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return &quizapi.StartResponse{SessionID: "x", Total: 4}, nil
		},
		next: func(string) (*quizapi.Step, error) {
			return &quizapi.Step{Finished: true, Results: results}, nil
		},
	}
	rec := &memRecorder{}
	c := newController(api, rec, nil)

	require.NoError(t, c.Start(ctx, quiz.DefaultConfig()))

	require.Len(t, rec.records, 1)
	assert.Equal(t, 4, rec.records[0].Total)
	assert.Equal(t, 3, rec.records[0].Correct)
	assert.Equal(t, 1, rec.records[0].Wrong)
	pct, _ := rec.records[0].Percentage.Value()
	assert.Equal(t, 75.0, pct)
}

func TestFinishedWithoutResultsRecordsNothing(t *testing.T) {
	api := &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return &quizapi.StartResponse{SessionID: "x", Total: 0}, nil
		},
		next: func(string) (*quizapi.Step, error) {
			return &quizapi.Step{Finished: true, Results: []quiz.Outcome{}}, nil
		},
	}
	rec := &memRecorder{}
	c := newController(api, rec, nil)

	require.NoError(t, c.Start(context.Background(), quiz.DefaultConfig()))

	fin, ok := c.State().(Finished)
	require.True(t, ok)
	assert.Nil(t, fin.Record)
	assert.Empty(t, rec.records)
}

func TestStartFailureStaysConfiguring(t *testing.T) {
	api := &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return nil, &quizapi.APIError{Op: "start", StatusCode: 500, Detail: "db down"}
		},
	}
	c := newController(api, &memRecorder{}, nil)
	cfg := quiz.Config{Mode: quiz.ModeSub, Difficulty: 4, TotalOperations: 20}

	err := c.Start(context.Background(), cfg)
	require.Error(t, err)

	cf, ok := c.State().(Configuring)
	require.True(t, ok)
	assert.Equal(t, cfg, cf.Settings)
	assert.Equal(t, i18n.Get("en").Errors.StartSession, c.Error())
	assert.False(t, c.Busy())
}

func TestStartRejectsInvalidConfigWithoutNetwork(t *testing.T) {
	api := &fakeAPI{t: t}
	c := newController(api, &memRecorder{}, nil)

	err := c.Start(context.Background(), quiz.Config{Mode: "mul", Difficulty: 1, TotalOperations: 10})
	assert.ErrorIs(t, err, quiz.ErrInvalidConfig)
	assert.Zero(t, api.Calls())
}

func TestFetchFailureSurfacesDetail(t *testing.T) {
	fail := true
	api := &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return &quizapi.StartResponse{SessionID: "s", Total: 10}, nil
		},
		next: func(string) (*quizapi.Step, error) {
			if fail {
				return nil, &quizapi.APIError{Op: "next", StatusCode: 404, Detail: "Session expired"}
			}
			return &quizapi.Step{Operation: problem(2, 2, "+"), Index: 1, Total: 10}, nil
		},
	}
	c := newController(api, &memRecorder{}, nil)

	err := c.Start(context.Background(), quiz.DefaultConfig())
	require.Error(t, err)
	a, ok := c.State().(Active)
	require.True(t, ok)
	assert.Nil(t, a.Operation)
	assert.Equal(t, "Session expired", c.Error())

	// Submitting without a problem on screen is rejected.
	assert.ErrorIs(t, c.Submit(context.Background(), "4"), ErrWrongPhase)

	fail = false
	require.NoError(t, c.FetchNext(context.Background()))
	assert.Empty(t, c.Error())
	assert.NotNil(t, c.State().(Active).Operation)
}

func TestSubmitFailureKeepsOperation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"with detail", &quizapi.APIError{Op: "answer", StatusCode: 400, Detail: "Bad answer"}, "Bad answer"},
		{"without detail", &quizapi.APIError{Op: "answer", Err: errors.New("connection refused")}, i18n.Get("en").Errors.SubmitAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := scriptedAPI(t, []quiz.Outcome{quiz.BoolOutcome(true), quiz.BoolOutcome(true)})
			api.answer = func(string, int) (*quizapi.Step, error) { return nil, tt.err }
			c := newController(api, &memRecorder{}, nil)
			require.NoError(t, c.Start(context.Background(), quiz.DefaultConfig()))
			before := c.State().(Active)

			require.Error(t, c.Submit(context.Background(), "7"))

			after, ok := c.State().(Active)
			require.True(t, ok)
			assert.Equal(t, before.Operation, after.Operation)
			assert.Equal(t, before.Index, after.Index)
			assert.Equal(t, tt.want, c.Error())
		})
	}
}

func TestSubmitValidatesLocally(t *testing.T) {
	api := scriptedAPI(t, []quiz.Outcome{quiz.BoolOutcome(true), quiz.BoolOutcome(true)})
	c := newController(api, &memRecorder{}, nil)
	require.NoError(t, c.Start(context.Background(), quiz.DefaultConfig()))
	calls := api.Calls()

	tbl := i18n.Get("en")
	tests := []struct {
		input string
		want  error
		msg   string
	}{
		{"", quiz.ErrAnswerRequired, tbl.Card.ErrRequired},
		{"   ", quiz.ErrAnswerRequired, tbl.Card.ErrRequired},
		{"4.5", quiz.ErrAnswerInvalid, tbl.Card.ErrInvalid},
		{"abc", quiz.ErrAnswerInvalid, tbl.Card.ErrInvalid},
		{"--1", quiz.ErrAnswerInvalid, tbl.Card.ErrInvalid},
	}
	for _, tt := range tests {
		err := c.Submit(context.Background(), tt.input)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.input)
		assert.Equal(t, tt.msg, c.Error(), "input %q", tt.input)
	}
	assert.Equal(t, calls, api.Calls(), "validation must not reach the network")
}

func TestErrorFollowsLanguage(t *testing.T) {
	api := &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return nil, errors.New("offline")
		},
	}
	sel := i18n.NewSelector("es")
	c := New(api, &memRecorder{}, sel)

	require.Error(t, c.Start(context.Background(), quiz.DefaultConfig()))
	assert.Equal(t, i18n.Get("es").Errors.StartSession, c.Error())

	sel.Set("ja")
	assert.Equal(t, i18n.Get("ja").Errors.StartSession, c.Error())
}

func TestBusyRejectsConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	api := scriptedAPI(t, []quiz.Outcome{quiz.BoolOutcome(true), quiz.BoolOutcome(true), quiz.BoolOutcome(true)})
	api.answer = func(string, int) (*quizapi.Step, error) {
		close(entered)
		<-release
		return &quizapi.Step{Operation: problem(3, 3, "+"), LastResult: outcome(quiz.BoolOutcome(true))}, nil
	}
	c := newController(api, &memRecorder{}, nil)
	require.NoError(t, c.Start(context.Background(), quiz.DefaultConfig()))

	done := make(chan error)
	go func() { done <- c.Submit(context.Background(), "2") }()
	<-entered

	assert.True(t, c.Busy())
	assert.ErrorIs(t, c.Submit(context.Background(), "2"), ErrBusy)
	assert.ErrorIs(t, c.FetchNext(context.Background()), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.Busy())
	assert.Equal(t, 2, c.State().(Active).Index)
	assert.Equal(t, []int{2}, api.answers)
}

func TestResponseAfterResetIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	api := scriptedAPI(t, []quiz.Outcome{quiz.BoolOutcome(true)})
	api.answer = func(string, int) (*quizapi.Step, error) {
		close(entered)
		<-release
		return &quizapi.Step{Finished: true, Results: []quiz.Outcome{quiz.BoolOutcome(true)}, Total: 1}, nil
	}
	rec := &memRecorder{}
	c := newController(api, rec, nil)
	require.NoError(t, c.Start(context.Background(), quiz.DefaultConfig()))

	done := make(chan error)
	go func() { done <- c.Submit(context.Background(), "2") }()
	<-entered

	c.Reset()
	assert.False(t, c.Busy())
	close(release)

	assert.ErrorIs(t, <-done, ErrStale)
	assert.IsType(t, Configuring{}, c.State())
	assert.Empty(t, rec.records)
}

func TestWrongPhase(t *testing.T) {
	api := scriptedAPI(t, []quiz.Outcome{quiz.BoolOutcome(true)})
	c := newController(api, &memRecorder{}, nil)
	ctx := context.Background()

	assert.ErrorIs(t, c.FetchNext(ctx), ErrWrongPhase)
	assert.ErrorIs(t, c.Submit(ctx, "1"), ErrWrongPhase)

	require.NoError(t, c.Start(ctx, quiz.DefaultConfig()))
	assert.ErrorIs(t, c.Start(ctx, quiz.DefaultConfig()), ErrWrongPhase)
	assert.ErrorIs(t, c.Resume(ctx, "other", quiz.DefaultConfig()), ErrWrongPhase)

	require.NoError(t, c.Submit(ctx, "2"))
	assert.IsType(t, Finished{}, c.State())
	assert.ErrorIs(t, c.Submit(ctx, "2"), ErrWrongPhase)
	assert.ErrorIs(t, c.FetchNext(ctx), ErrWrongPhase)
}

func TestResumeRecordsNullDuration(t *testing.T) {
	api := &fakeAPI{
		t: t,
		next: func(id string) (*quizapi.Step, error) {
			assert.Equal(t, "restored", id)
			return &quizapi.Step{Finished: true, Results: []quiz.Outcome{quiz.BoolOutcome(true), quiz.BoolOutcome(false)}, Total: 2}, nil
		},
	}
	rec := &memRecorder{}
	c := newController(api, rec, nil)

	require.NoError(t, c.Resume(context.Background(), "restored", quiz.DefaultConfig()))

	require.Len(t, rec.records, 1)
	assert.False(t, rec.records[0].DurationMs.Valid())
	pct, _ := rec.records[0].Percentage.Value()
	assert.Equal(t, 50.0, pct)
}

func TestNegativeDurationIsNull(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), step: -time.Minute}
	api := &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return &quizapi.StartResponse{SessionID: "s", Total: 1}, nil
		},
		next: func(string) (*quizapi.Step, error) {
			return &quizapi.Step{Finished: true, Results: []quiz.Outcome{quiz.BoolOutcome(true)}}, nil
		},
	}
	rec := &memRecorder{}
	c := newController(api, rec, clock)

	require.NoError(t, c.Start(context.Background(), quiz.DefaultConfig()))
	require.Len(t, rec.records, 1)
	assert.False(t, rec.records[0].DurationMs.Valid())
}

func TestRecorderFailureStillFinishes(t *testing.T) {
	api := &fakeAPI{
		t: t,
		start: func(quiz.Config) (*quizapi.StartResponse, error) {
			return &quizapi.StartResponse{SessionID: "s", Total: 1}, nil
		},
		next: func(string) (*quizapi.Step, error) {
			return &quizapi.Step{Finished: true, Results: []quiz.Outcome{quiz.BoolOutcome(false)}}, nil
		},
	}
	c := newController(api, &memRecorder{err: errors.New("disk full")}, nil)

	require.NoError(t, c.Start(context.Background(), quiz.DefaultConfig()))
	assert.IsType(t, Finished{}, c.State())
}

func TestProgress(t *testing.T) {
	tests := []struct {
		index, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{10, 10, 100},
		{12, 10, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, progress(tt.index, tt.total), "%d/%d", tt.index, tt.total)
	}
}

func TestBuildRecord(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("X", 3600))
	r := BuildRecord("id", quiz.DefaultConfig(), 0, []quiz.Outcome{quiz.BoolOutcome(true), quiz.BoolOutcome(false)}, at, stats.NewNumber(1500))

	assert.Equal(t, "2026-01-02T02:04:05.006Z", r.Timestamp)
	assert.Equal(t, 2, r.Total)
	pct, _ := r.Percentage.Value()
	assert.Equal(t, 50.0, pct)

	empty := BuildRecord("id", quiz.DefaultConfig(), 0, nil, at, stats.Null)
	pct, _ = empty.Percentage.Value()
	assert.Equal(t, 0.0, pct)
	assert.NotNil(t, empty.Results)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "configuring", PhaseConfiguring.String())
	assert.Equal(t, "active", Active{}.Phase().String())
	assert.Equal(t, "finished", Finished{}.Phase().String())
}
