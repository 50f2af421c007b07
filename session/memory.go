package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and for running without
// Redis. Same observable behavior as RedisStore, minus expiry.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]map[string]string
	flashes map[string][]Flash
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:  make(map[string]map[string]string),
		flashes: make(map[string][]Flash),
	}
}

func (s *MemoryStore) Get(_ context.Context, sid, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[sid][key], nil
}

func (s *MemoryStore) Set(_ context.Context, sid, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values[sid] == nil {
		s.values[sid] = make(map[string]string)
	}
	s.values[sid][key] = value
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, sid)
	delete(s.flashes, sid)
	return nil
}

func (s *MemoryStore) AddFlash(_ context.Context, sid string, flash Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[sid] = append(s.flashes[sid], flash)
	return nil
}

func (s *MemoryStore) PopFlashes(_ context.Context, sid string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flashes := s.flashes[sid]
	delete(s.flashes, sid)
	return flashes, nil
}
