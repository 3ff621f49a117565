package cachestore

import "sync"

// MemoryStore is an in-process Store implementation. It exists so callers can
// run without touching the filesystem, and so tests can exercise cache
// behavior without temp files.
type MemoryStore[T any] struct {
	mu    sync.Mutex
	entry Entry[T]
	found bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{}
}

func (s *MemoryStore[T]) Load() (Entry[T], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry, s.found, nil
}

func (s *MemoryStore[T]) Save(entry Entry[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = entry
	s.found = true
	return nil
}

func (s *MemoryStore[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = Entry[T]{}
	s.found = false
	return nil
}
