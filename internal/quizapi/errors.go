package quizapi

import (
	"errors"
	"fmt"
)

// APIError is returned for every failed call to the quiz service: transport
// failures (StatusCode 0), non-2xx responses, undecodable bodies and
// success responses that carry an "error" field.
type APIError struct {
	Op         string // "start", "next" or "answer"
	StatusCode int
	// Detail is the human-readable message supplied by the server, if any.
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "" && e.StatusCode != 0:
		return fmt.Sprintf("quizapi %s: HTTP %d: %s", e.Op, e.StatusCode, e.Detail)
	case e.Detail != "":
		return fmt.Sprintf("quizapi %s: %s", e.Op, e.Detail)
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("quizapi %s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("quizapi %s: HTTP %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("quizapi %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("quizapi %s: request failed", e.Op)
}

func (e *APIError) Unwrap() error { return e.Err }

// DetailOf returns the server-supplied detail carried by err, or "".
func DetailOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
