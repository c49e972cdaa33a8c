package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-process Store used by tests and local development. It is
// safe for concurrent use.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage

	// FailNext, when set, makes the next operation return the error once.
	FailNext error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string]map[string]json.RawMessage)}
}

func (s *MemStore) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

// GetAll returns every document in the collection, ordered by key.
func (s *MemStore) GetAll(_ context.Context, collection string) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(s.collections[collection]))
	for key, fields := range s.collections[collection] {
		docs = append(docs, Document{Key: key, Fields: fields})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Key < docs[j].Key })
	return docs, nil
}

// Set writes the document under the given key.
func (s *MemStore) Set(_ context.Context, collection, key string, fields json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]json.RawMessage)
	}
	buf := make(json.RawMessage, len(fields))
	copy(buf, fields)
	s.collections[collection][key] = buf
	return nil
}

// Delete removes the document with the given key.
func (s *MemStore) Delete(_ context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	delete(s.collections[collection], key)
	return nil
}

// AllocateKey returns a fresh key.
func (s *MemStore) AllocateKey(string) string {
	return uuid.New().String()
}

// Len returns the number of documents in the collection.
func (s *MemStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}
