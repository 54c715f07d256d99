package driven

import "errors"

// ErrNotFound is returned by single-record lookups when no row matches.
var ErrNotFound = errors.New("record not found")
