package store

import (
	"context"
	"sync"
)

// MemoryDSN selects the in-memory blob store instead of SQLite.
const MemoryDSN = ":memory:"

// memoryBlobStore is an in-memory [BlobStore]. It backs tests and the
// [MemoryDSN] database mode; nothing survives process exit.
type memoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryBlobStore() BlobStore {
	return &memoryBlobStore{blobs: make(map[string]string)}
}

func (s *memoryBlobStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	return value, ok, nil
}

func (s *memoryBlobStore) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = value
	return nil
}
