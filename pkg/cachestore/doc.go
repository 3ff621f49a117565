// Package cachestore provides a single-slot, TTL-aware persistent cache.
//
// Unlike a general key-value cache, a store here holds exactly one entry:
// a payload plus the time it was produced and how long it stays fresh. That
// shape fits data that is expensive to derive but cheap to replace wholesale,
// such as a scraped dataset that is re-fetched when stale.
//
// # Architecture
//
// The package exposes the Store interface with two implementations:
//
//   - FileStore persists the entry as JSON at a fixed path, writing through a
//     temp file + rename so readers never observe a torn write.
//   - MemoryStore keeps the entry in process memory, for cache-less operation
//     and for tests.
//
// Freshness is a property of the Entry, not the store: Entry.ValidAt takes
// the current instant as an argument, so callers inject their own clock and
// tests can simulate expiry without sleeping.
//
// # Usage
//
//	store := cachestore.NewFileStore[[]Record](cachestore.DefaultPath())
//
//	entry, found, err := store.Load()
//	if err != nil {
//		// diagnostic only: treat as a miss and regenerate
//	}
//	if !found || !entry.ValidAt(time.Now()) {
//		records := regenerate()
//		_ = store.Save(cachestore.Entry[[]Record]{
//			Payload:   records,
//			FetchedAt: time.Now(),
//			TTL:       24 * time.Hour,
//		})
//	}
//
// # Error Handling
//
// Load never fails hard: a missing file is (zero, false, nil) and a corrupt
// or unreadable file is (zero, false, err) where err wraps ErrReadFailed or
// ErrDecodeFailed. Save failures wrap ErrWriteFailed. Clear treats an absent
// file as success, so it is safe to call repeatedly.
//
// # Concurrency
//
// No cross-process coordination is attempted. Two processes refreshing the
// same file race benignly: both produce equivalent data and the last rename
// wins. MemoryStore is safe for concurrent use within a process.
package cachestore
