// Package session drives one quiz session against the quiz service and
// records it when it finishes.
package session

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/quizapi"
	"github.com/abhisek/mathcards/internal/stats"
)

// API is the quiz service.
type API interface {
	Start(ctx context.Context, cfg quiz.Config) (*quizapi.StartResponse, error)
	Next(ctx context.Context, sessionID string) (*quizapi.Step, error)
	Answer(ctx context.Context, sessionID string, answer int) (*quizapi.Step, error)
}

// Recorder receives the record of every finished session.
type Recorder interface {
	Append(ctx context.Context, r stats.Record) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// notice is the message shown for the last failure. A server detail wins
// over the localized fallback, which is resolved at read time.
type notice struct {
	detail   string
	fallback func(*i18n.Table) string
}

// Controller is the session state machine. All methods are safe for
// concurrent use; blocking methods release the lock while the network call
// is in flight and allow one request at a time.
type Controller struct {
	api  API
	rec  Recorder
	lang *i18n.Selector
	now  func() time.Time

	mu     sync.Mutex
	state  State
	busy   bool
	epoch  uint64
	notice notice
}

// New returns a controller in the Configuring state.
func New(api API, rec Recorder, lang *i18n.Selector, opts ...Option) *Controller {
	c := &Controller{
		api:   api,
		rec:   rec,
		lang:  lang,
		now:   time.Now,
		state: Configuring{Settings: quiz.DefaultConfig()},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start opens a server session with cfg and loads its first problem. On
// failure the controller stays in Configuring.
func (c *Controller) Start(ctx context.Context, cfg quiz.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	if _, ok := c.state.(Configuring); !ok {
		c.mu.Unlock()
		return ErrWrongPhase
	}
	epoch, err := c.acquireLocked()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.state = Configuring{Settings: cfg}
	c.mu.Unlock()
	defer c.release(epoch)

	resp, err := c.api.Start(ctx, cfg)

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		c.notice = notice{fallback: func(t *i18n.Table) string { return t.Errors.StartSession }}
		c.mu.Unlock()
		log.Printf("session: start: %v", err)
		return fmt.Errorf("start session: %w", err)
	}
	c.state = Active{
		SessionID: resp.SessionID,
		Settings:  cfg,
		Total:     resp.Total,
		Results:   []quiz.Outcome{},
		StartedAt: c.now(),
	}
	c.mu.Unlock()

	return c.next(ctx, epoch, resp.SessionID)
}

// Resume attaches to an existing server session. The start time is
// unknown, so the recorded duration will be null.
func (c *Controller) Resume(ctx context.Context, sessionID string, settings quiz.Config) error {
	c.mu.Lock()
	if _, ok := c.state.(Configuring); !ok {
		c.mu.Unlock()
		return ErrWrongPhase
	}
	epoch, err := c.acquireLocked()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.state = Active{
		SessionID: sessionID,
		Settings:  settings,
		Results:   []quiz.Outcome{},
	}
	c.mu.Unlock()
	defer c.release(epoch)

	return c.next(ctx, epoch, sessionID)
}

// FetchNext loads the next step of the active session. It is also the
// retry path after a failed load.
func (c *Controller) FetchNext(ctx context.Context) error {
	c.mu.Lock()
	a, ok := c.state.(Active)
	if !ok {
		c.mu.Unlock()
		return ErrWrongPhase
	}
	epoch, err := c.acquireLocked()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	defer c.release(epoch)

	return c.next(ctx, epoch, a.SessionID)
}

// Submit validates text as an integer answer and sends it. Invalid input
// is rejected locally with quiz.ErrAnswerRequired or quiz.ErrAnswerInvalid
// and no request is made.
func (c *Controller) Submit(ctx context.Context, text string) error {
	answer, parseErr := quiz.ParseAnswer(text)

	c.mu.Lock()
	a, ok := c.state.(Active)
	if !ok || a.Operation == nil {
		c.mu.Unlock()
		return ErrWrongPhase
	}
	if parseErr != nil {
		c.notice = notice{fallback: func(t *i18n.Table) string { return t.AnswerError(parseErr) }}
		c.mu.Unlock()
		return parseErr
	}
	epoch, err := c.acquireLocked()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	defer c.release(epoch)

	step, err := c.api.Answer(ctx, a.SessionID, answer)
	return c.apply(ctx, epoch, a.SessionID, step, err, true)
}

// Reset returns to Configuring from any state without a network call.
// Responses to requests still in flight are discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Configuring{Settings: settingsOf(c.state)}
	c.notice = notice{}
	c.busy = false
	c.epoch++
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a request is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Error returns the message for the last failure, or "".
func (c *Controller) Error() string {
	c.mu.Lock()
	n := c.notice
	c.mu.Unlock()

	if n.detail != "" {
		return n.detail
	}
	if n.fallback != nil {
		return n.fallback(c.lang.Table())
	}
	return ""
}

// Stars is the number of correct outcomes so far.
func (c *Controller) Stars() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch st := c.state.(type) {
	case Active:
		return quiz.CountCorrect(st.Results)
	case Finished:
		return quiz.CountCorrect(st.Results)
	}
	return 0
}

// Progress is the completion percentage of the active session.
func (c *Controller) Progress() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch st := c.state.(type) {
	case Active:
		return progress(st.Index, st.Total)
	case Finished:
		return 100
	}
	return 0
}

// HelperMessage is the encouragement shown beside the current problem.
// It is empty when no problem is displayed.
func (c *Controller) HelperMessage() string {
	c.mu.Lock()
	a, ok := c.state.(Active)
	c.mu.Unlock()

	if !ok || a.SessionID == "" || a.Operation == nil {
		return ""
	}
	return c.lang.Table().Helper(quiz.HelperTierFor(a.Index, a.Total))
}

func progress(index, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(index) / float64(total)))
	return min(100, max(0, p))
}

// acquireLocked marks the controller busy and clears the last notice.
func (c *Controller) acquireLocked() (uint64, error) {
	if c.busy {
		return 0, ErrBusy
	}
	c.busy = true
	c.notice = notice{}
	return c.epoch, nil
}

// release clears the busy flag unless a reset already did.
func (c *Controller) release(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch == epoch {
		c.busy = false
	}
}

func (c *Controller) next(ctx context.Context, epoch uint64, sessionID string) error {
	step, err := c.api.Next(ctx, sessionID)
	return c.apply(ctx, epoch, sessionID, step, err, false)
}

// apply commits a next or answer response. answered is true for answer
// responses, which may omit index and results.
func (c *Controller) apply(ctx context.Context, epoch uint64, sessionID string, step *quizapi.Step, callErr error, answered bool) error {
	c.mu.Lock()

	a, ok := c.state.(Active)
	if c.epoch != epoch || !ok || a.SessionID != sessionID {
		c.mu.Unlock()
		return ErrStale
	}

	if callErr != nil {
		fallback := func(t *i18n.Table) string { return t.Errors.NextOperation }
		op := "next operation"
		if answered {
			fallback = func(t *i18n.Table) string { return t.Errors.SubmitAnswer }
			op = "submit answer"
		}
		c.notice = notice{detail: quizapi.DetailOf(callErr), fallback: fallback}
		c.mu.Unlock()
		log.Printf("session: %s: %v", op, callErr)
		return fmt.Errorf("%s: %w", op, callErr)
	}

	switch {
	case step.Results != nil:
		a.Results = append([]quiz.Outcome(nil), step.Results...)
	case answered && step.LastResult != nil:
		a.Results = append(append([]quiz.Outcome(nil), a.Results...), *step.LastResult)
	}
	a.LastResult = step.LastResult

	if !step.Finished {
		if step.Operation != nil {
			a.Operation = step.Operation
		}
		switch {
		case step.Index > 0:
			a.Index = step.Index
		case answered:
			a.Index++
		}
		if step.Total > 0 {
			a.Total = step.Total
		}
		c.state = a
		c.mu.Unlock()
		return nil
	}

	now := c.now()
	fin := Finished{
		SessionID:  a.SessionID,
		Settings:   a.Settings,
		Total:      step.Total,
		Results:    a.Results,
		LastResult: a.LastResult,
	}
	if fin.Total <= 0 {
		fin.Total = len(fin.Results)
	}
	if len(fin.Results) > 0 {
		r := BuildRecord(a.SessionID, a.Settings, fin.Total, fin.Results, now, elapsedMs(a.StartedAt, now))
		fin.Record = &r
	}
	c.state = fin
	c.mu.Unlock()

	if fin.Record != nil && c.rec != nil {
		if err := c.rec.Append(ctx, *fin.Record); err != nil {
			log.Printf("session: record %s: %v", fin.SessionID, err)
		}
	}
	return nil
}
