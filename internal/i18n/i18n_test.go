package i18n

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/stats"
)

func TestGetFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "en", Get("en").Code)
	assert.Equal(t, "ja", Get("ja").Code)
	assert.Equal(t, Default, Get("fr").Code)
	assert.Equal(t, Default, Get("").Code)
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"es", "en", "ja"}, Supported())
	for _, code := range Supported() {
		assert.True(t, IsSupported(code))
	}
	assert.False(t, IsSupported("de"))

	// callers cannot mutate the package list
	s := Supported()
	s[0] = "xx"
	assert.Equal(t, "es", Supported()[0])
}

func TestNext(t *testing.T) {
	assert.Equal(t, "en", Next("es"))
	assert.Equal(t, "ja", Next("en"))
	assert.Equal(t, "es", Next("ja"))
	assert.Equal(t, Default, Next("zz"))
}

// Every string field of every table must be filled in.
func TestTablesComplete(t *testing.T) {
	for _, code := range Supported() {
		tbl := Get(code)
		checkStrings(t, code, reflect.ValueOf(*tbl), "Table")

		for _, m := range quiz.Modes {
			assert.NotEmpty(t, tbl.Settings.ModeOptions[m], "%s mode option %s", code, m)
			assert.NotEmpty(t, tbl.Summary.ModeMessages[m], "%s mode message %s", code, m)
		}
		for _, tier := range []stats.EncouragementTier{stats.EncourageLow, stats.EncourageMid, stats.EncourageHigh, stats.EncourageTop} {
			assert.NotEmpty(t, tbl.Summary.Encouragement[tier], "%s encouragement %d", code, tier)
		}
		for _, other := range Supported() {
			assert.NotEmpty(t, tbl.LanguageNames[other], "%s language name %s", code, other)
		}
		require.NotNil(t, tbl.Duration, code)
	}
}

func checkStrings(t *testing.T, code string, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.String:
		assert.NotEmpty(t, v.String(), "%s: %s is empty", code, path)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			checkStrings(t, code, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			checkStrings(t, code, v.Index(i), fmt.Sprintf("%s[%d]", path, i))
		}
	}
}

func TestFormatStringsTakeExpectedVerbs(t *testing.T) {
	for _, code := range Supported() {
		tbl := Get(code)
		assert.NotContains(t, fmt.Sprintf(tbl.Card.ChallengeLabel, 3, 10), "%!", code)
		assert.Contains(t, fmt.Sprintf(tbl.Card.ProgressLabel, 30), "30%", code)
		assert.Contains(t, fmt.Sprintf(tbl.Summary.BestScore, "67"), "67%", code)
		assert.Contains(t, fmt.Sprintf(tbl.Card.FeedbackIncorrect, "12"), "12", code)
		assert.NotContains(t, fmt.Sprintf(tbl.Settings.CountOption, 20), "%!", code)
	}
}

func TestDurationFormatters(t *testing.T) {
	tests := []struct {
		code    string
		seconds float64
		want    string
	}{
		{"es", 65, "1 min 05 s"},
		{"en", 42, "42 s"},
		{"ja", 65, "1 分 05 秒"},
		{"ja", 7, "7 秒"},
		{"es", -1, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Get(tt.code).FormatDuration(tt.seconds), "%s %v", tt.code, tt.seconds)
	}
}

func TestHelper(t *testing.T) {
	tbl := Get("en")
	assert.Equal(t, tbl.App.HelperEarly, tbl.Helper(quiz.HelperEarly))
	assert.Equal(t, tbl.App.HelperDefault, tbl.Helper(quiz.HelperDefault))
	assert.Equal(t, tbl.App.HelperLate, tbl.Helper(quiz.HelperLate))
}

func TestAnswerError(t *testing.T) {
	tbl := Get("es")

	_, err := quiz.ParseAnswer("  ")
	assert.Equal(t, tbl.Card.ErrRequired, tbl.AnswerError(err))

	_, err = quiz.ParseAnswer("1.5")
	assert.Equal(t, tbl.Card.ErrInvalid, tbl.AnswerError(err))

	assert.Empty(t, tbl.AnswerError(fmt.Errorf("boom")))
}

func TestDifficulty(t *testing.T) {
	tbl := Get("en")
	assert.Equal(t, "1 digit", tbl.Difficulty(1))
	assert.Equal(t, "4 and 3 digits", tbl.Difficulty(6))
	assert.Equal(t, "9", tbl.Difficulty(9))
}

func TestOptionalAndScore(t *testing.T) {
	assert.Empty(t, Optional("Time: %s", ""))
	assert.Equal(t, "Time: 5 s", Optional("Time: %s", "5 s"))
	assert.Equal(t, "67", Score(67))
	assert.Equal(t, "66.5", Score(66.5))
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, ts.Local().Format("2006-01-02 15:04"), Timestamp("2024-05-01T10:30:00.000Z"))
	assert.Equal(t, "yesterday", Timestamp("yesterday"))
	assert.Empty(t, Timestamp(""))
}

func TestSelector(t *testing.T) {
	s := NewSelector("ja")
	assert.Equal(t, "ja", s.Table().Code)

	assert.Equal(t, "en", s.Set("en").Code)
	assert.Equal(t, "en", s.Table().Code)

	assert.Equal(t, Default, s.Set("klingon").Code)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := Supported()[i%3]
			s.Set(code)
			assert.True(t, strings.TrimSpace(s.Table().Code) != "")
		}(i)
	}
	wg.Wait()
}
