// Package cache contains an in-memory TTL storage.
package cache

import (
	"sync"
	"time"
)

// Storage ...
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

type entry struct {
	content  []byte
	deadline time.Time
}

type memory struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewStorage creates new in-memory storage.
func NewStorage() Storage {
	return &memory{
		entries: make(map[string]entry),
	}
}

func (s *memory) Get(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil
	}

	if time.Now().After(e.deadline) {
		delete(s.entries, key)
		return nil
	}

	return e.content
}

func (s *memory) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	for k, e := range s.entries {
		if now.After(e.deadline) {
			delete(s.entries, k)
		}
	}

	s.entries[key] = entry{
		content:  content,
		deadline: now.Add(duration),
	}
}
