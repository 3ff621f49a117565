package fakeua

import "errors"

// Package-specific errors
var (
	// ErrNoRecords is returned when there are no user-agent records to choose
	// from at all
	ErrNoRecords = errors.New("no user-agent records available")

	// ErrBrowserNotFound is returned when a browser filter matches no records
	ErrBrowserNotFound = errors.New("no user-agent records for requested browser")

	// ErrInvalidConfig is returned when environment configuration cannot be parsed
	ErrInvalidConfig = errors.New("failed to parse environment configuration")
)
