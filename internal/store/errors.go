package store

import "errors"

// ErrInvalidImportShape is returned when an imported document is not an
// object with a "sessions" array. The stored history is left untouched.
var ErrInvalidImportShape = errors.New("store: import document must contain a sessions array")
