package storage

import (
	"context"
	"sync"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
)

type memoryStore struct {
	mu    sync.Mutex
	token session.Token
}

func NewMemoryStore() session.TokenStore {
	return &memoryStore{}
}

func (s *memoryStore) Load(context.Context) (session.Token, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != "", nil
}

func (s *memoryStore) Save(_ context.Context, token session.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
