package repository

import "errors"

// ErrNotFound is returned by single-record lookups when no row matches.
// List operations never return it; an empty result is a valid outcome.
var ErrNotFound = errors.New("record not found")
