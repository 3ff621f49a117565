package cachestore

import "errors"

// Package-specific errors. All of them are recoverable from the caller's
// perspective: a failed cache read or write should degrade to a fresh fetch,
// never abort the request that triggered it.
var (
	// ErrReadFailed is returned when the cache file exists but cannot be read
	ErrReadFailed = errors.New("failed to read cache")

	// ErrDecodeFailed is returned when the cache file contents cannot be deserialized
	ErrDecodeFailed = errors.New("failed to decode cache")

	// ErrWriteFailed is returned when the cache file cannot be created or replaced
	ErrWriteFailed = errors.New("failed to write cache")
)
