package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryStore backs tests and local runs without Redis.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

func NewMemory() Store {
	return &memoryStore{collections: make(map[string]map[string][]byte)}
}

func (s *memoryStore) List(_ context.Context, collection string) ([]Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Doc, 0, len(s.collections[collection]))
	for id, data := range s.collections[collection] {
		cp := make([]byte, len(data))
		copy(cp, data)
		docs = append(docs, Doc{ID: id, Data: cp})
	}
	return docs, nil
}

func (s *memoryStore) Get(_ context.Context, collection, id string) (*Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Doc{ID: id, Data: cp}, nil
}

func (s *memoryStore) Add(ctx context.Context, collection string, data []byte) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *memoryStore) Set(_ context.Context, collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string][]byte)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.collections[collection][id] = cp
	return nil
}

func (s *memoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}
