package weighted

import "errors"

// Package-specific errors
var (
	// ErrNoItems is returned when Pick is called with an empty slice
	ErrNoItems = errors.New("no items to pick from")
)
