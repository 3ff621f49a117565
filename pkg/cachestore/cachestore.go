package cachestore

import (
	"os"
	"path/filepath"
	"time"
)

// Entry wraps a cached payload with the bookkeeping needed to decide whether
// it is still fresh. Entries are serialized as JSON when persisted.
type Entry[T any] struct {
	Payload   T             `json:"payload"`
	FetchedAt time.Time     `json:"fetched_at"`
	TTL       time.Duration `json:"ttl"`
}

// ValidAt reports whether the entry is still fresh at the given instant.
// A zero FetchedAt never validates, so zero-value entries are always stale.
func (e Entry[T]) ValidAt(now time.Time) bool {
	if e.FetchedAt.IsZero() {
		return false
	}
	return now.Before(e.FetchedAt.Add(e.TTL))
}

// Store is a single-slot persistent cache. Implementations hold at most one
// entry; Save replaces whatever was there before.
//
// Load reports found=false both when nothing was ever saved and when the
// stored data cannot be read back; in the latter case it also returns an
// error describing why, so callers can log it before falling back to a
// fresh fetch. Clear on an already-empty store is not an error.
type Store[T any] interface {
	Load() (entry Entry[T], found bool, err error)
	Save(entry Entry[T]) error
	Clear() error
}

// DefaultPath returns the conventional cache file location: a file with a
// recognizable "fake_useragent" prefix inside the platform temp directory,
// so users can find and delete it by hand.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "fake_useragent.json")
}
