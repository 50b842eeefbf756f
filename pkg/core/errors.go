package core

import "errors"

// Common errors.
var (
	// ErrNoPath is returned when a save is requested but no destination
	// path is known.
	ErrNoPath = errors.New("no mapping path specified")
)
