package storage

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryStore is a Store implementation powered by a map, to be used for
// testing.
type InMemoryStore struct {
	sync.Mutex
	m    map[string]string
	puts int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		m: make(map[string]string),
	}
}

func (s *InMemoryStore) Put(_ context.Context, key, value string) (err error) {
	s.Lock()
	s.m[key] = value
	s.puts++
	s.Unlock()
	return nil
}

func (s *InMemoryStore) Get(key string) (value string, err error) {
	s.Lock()
	value, ok := s.m[key]
	s.Unlock()
	if !ok {
		return "", fmt.Errorf("%.40q: %w", key, ErrNotFound)
	}
	return value, nil
}

// Puts returns how many times Put was called.
func (s *InMemoryStore) Puts() int {
	s.Lock()
	defer s.Unlock()
	return s.puts
}
