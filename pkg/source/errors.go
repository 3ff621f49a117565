package source

import "errors"

// Package-specific errors
var (
	// ErrRequestFailed is returned when the listing page cannot be fetched:
	// connection failure, timeout, or a retryable server error that survived
	// the retry budget
	ErrRequestFailed = errors.New("failed to fetch source page")

	// ErrUnexpectedStatus is returned on a non-retryable HTTP response
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedDocument is returned when the fetched page does not have
	// the expected structure, which usually means the upstream site changed
	ErrMalformedDocument = errors.New("source page has unexpected structure")
)
