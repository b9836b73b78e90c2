package memory

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"resume-viewer/internal/shared/storage/object"
)

// Store is an in-memory BlobStore.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// New creates an empty in-memory blob store.
func New() *Store {
	return &Store{}
}

// Open allocates the collection on first use.
func (s *Store) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blobs == nil {
		s.blobs = make(map[string][]byte)
	}
	return nil
}

// Put stores a copy of data under key.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := s.Open(ctx); err != nil {
		return fmt.Errorf("%w: %w", object.ErrWriteFailed, err)
	}
	s.mu.Lock()
	s.blobs[key] = bytes.Clone(data)
	s.mu.Unlock()
	return nil
}

// Get returns a copy of the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := s.Open(ctx); err != nil {
		return nil, false, fmt.Errorf("%w: %w", object.ErrReadFailed, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(data), true, nil
}

var _ object.BlobStore = (*Store)(nil)
