package session

import (
	"time"

	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/stats"
)

// Phase identifies which State the controller is in.
type Phase int

const (
	PhaseConfiguring Phase = iota // choosing settings, no server session
	PhaseActive                   // answering problems
	PhaseFinished                 // showing the summary
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// State is one of Configuring, Active or Finished.
type State interface {
	Phase() Phase
	isState()
}

// Configuring is the idle state. Settings holds the last configuration
// used so the setup screen can preselect it.
type Configuring struct {
	Settings quiz.Config
}

// Active is an in-progress session.
type Active struct {
	SessionID string
	Settings  quiz.Config
	Total     int
	// Index is the 1-based position of Operation; 0 before the first
	// problem arrives.
	Index      int
	Operation  *quiz.Problem
	Results    []quiz.Outcome
	LastResult *quiz.Outcome
	// StartedAt is zero for sessions resumed without a start time.
	StartedAt time.Time
}

// Finished is a completed session. Record is nil when the server reported
// no results and nothing was recorded.
type Finished struct {
	SessionID  string
	Settings   quiz.Config
	Total      int
	Results    []quiz.Outcome
	LastResult *quiz.Outcome
	Record     *stats.Record
}

func (Configuring) Phase() Phase { return PhaseConfiguring }
func (Active) Phase() Phase      { return PhaseActive }
func (Finished) Phase() Phase    { return PhaseFinished }

func (Configuring) isState() {}
func (Active) isState()      {}
func (Finished) isState()    {}

func settingsOf(s State) quiz.Config {
	switch st := s.(type) {
	case Configuring:
		return st.Settings
	case Active:
		return st.Settings
	case Finished:
		return st.Settings
	}
	return quiz.DefaultConfig()
}
