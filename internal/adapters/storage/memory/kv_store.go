package memory

import (
	"context"
	"strings"
	"sync"

	"petplus/internal/ports/kvstore"
)

type kvStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore crea un kvstore.Store en memoria (tests / modo dev).
func NewStore() kvstore.Store {
	return &kvStore{
		values: make(map[string]string),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *kvStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
