package session

import "errors"

var (
	// ErrBusy is returned while another request is in flight.
	ErrBusy = errors.New("session: a request is already in flight")

	// ErrWrongPhase is returned when an operation is not valid in the
	// current state.
	ErrWrongPhase = errors.New("session: operation not allowed in current state")

	// ErrStale is returned when a response arrives after the session it
	// belongs to was reset or replaced. The response is discarded.
	ErrStale = errors.New("session: response discarded after reset")
)
