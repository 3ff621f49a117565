// Package logger provides a small factory over log/slog with consistent
// defaults for this project: text output on stderr at info level, switchable
// to JSON for machine consumption.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//	)
//	log.Debug("cache hit", logger.CachePath(path))
//
// Attribute helpers (Error, Browser, CachePath) keep log keys uniform across
// the codebase; each returns an empty Attr for zero values so call sites do
// not need nil checks.
package logger
