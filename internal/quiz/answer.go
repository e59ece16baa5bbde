package quiz

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Answer validation errors. They are raised before any network call.
var (
	ErrAnswerRequired = errors.New("quiz: answer is required")
	ErrAnswerInvalid  = errors.New("quiz: answer must be a whole number")
)

var answerPattern = regexp.MustCompile(`^-?\d+$`)

// ParseAnswer turns free-text input into an integer answer.
func ParseAnswer(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrAnswerRequired
	}
	if !answerPattern.MatchString(text) {
		return 0, ErrAnswerInvalid
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrAnswerInvalid
	}
	return n, nil
}
