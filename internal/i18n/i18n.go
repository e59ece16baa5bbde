// Package i18n holds the translation tables shown to learners and the
// locale-specific duration formatters.
package i18n

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/stats"
)

// Default is the language used when none is chosen or the requested one
// is unknown.
const Default = "es"

// Table is the full set of user-facing strings for one language. Fields
// marked as formats take fmt verbs; scores and durations are passed as
// already formatted strings.
type Table struct {
	Code          string
	LanguageName  string
	LanguageLabel string
	LanguageNames map[string]string

	Errors   Errors
	App      App
	Settings Settings
	Card     Card
	Summary  Summary

	// Duration renders seconds with locale units.
	Duration stats.DurationFormatter
}

type Errors struct {
	StartSession  string
	NextOperation string
	SubmitAnswer  string
	StatsUpload   string
}

type App struct {
	HelperEarly       string
	HelperLate        string
	HelperDefault     string
	HeaderBadge       string
	HeaderTitle       string
	HeaderDescription string
}

type Settings struct {
	WelcomeBadge      string
	Title             string
	Description       string
	ModeLabel         string
	ModeOptions       map[quiz.Mode]string
	DifficultyLabel   string
	DifficultyOptions [quiz.MaxDifficulty]string
	CountLabel        string
	CountOption       string // format: count
	StartButton       string
	LoadingButton     string
	LanguageHelper    string

	StatsPreviewTitle           string
	StatsPreviewEmpty           string
	StatsPreviewSessions        string // format: count
	StatsPreviewAverageScore    string // format: score
	StatsPreviewBestScore       string // format: score
	StatsPreviewAverageDuration string // format: duration
	StatsPreviewLastScore       string // format: score
	StatsPreviewLastDuration    string // format: duration
	StatsPreviewLastUpdated     string // format: date
}

type Card struct {
	ChallengeLabel    string // format: index, total
	StarsEarned       string // format: count
	Question          string
	ProgressLabel     string // format: percent
	AnswerLabel       string
	AnswerPlaceholder string
	SubmitButton      string
	ErrRequired       string
	ErrInvalid        string
	FeedbackCorrect   string
	FeedbackIncorrect string // format: expected
}

type Summary struct {
	Title         string
	ModeMessages  map[quiz.Mode]string
	CardCorrect   string
	CardWrong     string
	CardScore     string
	CardDuration  string
	Encouragement map[stats.EncouragementTier]string

	Restart         string
	StatsTitle      string
	TotalSessions   string // format: count
	BestScore       string // format: score
	AverageScore    string // format: score
	AverageDuration string // format: duration
	BestDuration    string // format: duration
	LastDuration    string // format: duration
	LastUpdated     string // format: date
	Download        string
	Downloaded      string // format: path
	Upload          string
	Uploaded        string // format: count
	UploadHint      string
	StatsError      string // format: message
}

var tables = map[string]*Table{
	"es": &spanish,
	"en": &english,
	"ja": &japanese,
}

var supported = []string{"es", "en", "ja"}

// Supported lists the language codes in display order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code names a known language.
func IsSupported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Get returns the table for code, falling back to Default.
func Get(code string) *Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return tables[Default]
}

// Next returns the language after code in Supported order, wrapping.
func Next(code string) string {
	for i, c := range supported {
		if c == code {
			return supported[(i+1)%len(supported)]
		}
	}
	return Default
}

// Helper returns the encouragement shown beside the current problem.
func (t *Table) Helper(tier quiz.HelperTier) string {
	switch tier {
	case quiz.HelperEarly:
		return t.App.HelperEarly
	case quiz.HelperLate:
		return t.App.HelperLate
	}
	return t.App.HelperDefault
}

// AnswerError maps a local answer validation error to its message. Other
// errors yield "".
func (t *Table) AnswerError(err error) string {
	switch {
	case errors.Is(err, quiz.ErrAnswerRequired):
		return t.Card.ErrRequired
	case errors.Is(err, quiz.ErrAnswerInvalid):
		return t.Card.ErrInvalid
	}
	return ""
}

// Difficulty returns the label for a 1-based difficulty level.
func (t *Table) Difficulty(level int) string {
	if level < quiz.MinDifficulty || level > quiz.MaxDifficulty {
		return fmt.Sprint(level)
	}
	return t.Settings.DifficultyOptions[level-1]
}

// FormatDuration renders seconds with this table's units.
func (t *Table) FormatDuration(seconds float64) string {
	return stats.FormatDuration(seconds, t.Duration)
}

// Score renders a percentage without a trailing ".0".
func Score(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Optional applies format to value, or returns "" when value is empty.
func Optional(format, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(format, value)
}

// Timestamp renders a record timestamp in local time. Values that are not
// RFC 3339 are returned unchanged.
func Timestamp(ts string) string {
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return parsed.Local().Format("2006-01-02 15:04")
}

// Selector holds the active table. It is safe for concurrent use.
type Selector struct {
	mu    sync.RWMutex
	table *Table
}

// NewSelector starts with the table for code.
func NewSelector(code string) *Selector {
	return &Selector{table: Get(code)}
}

// Table returns the active table.
func (s *Selector) Table() *Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Set switches the active language and returns the new table.
func (s *Selector) Set(code string) *Table {
	t := Get(code)
	s.mu.Lock()
	s.table = t
	s.mu.Unlock()
	return t
}
