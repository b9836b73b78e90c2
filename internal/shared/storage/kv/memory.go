package kv

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store with a quota. Useful in dev and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string]string
	used     int64
	quota    int64
	disabled bool
}

// NewMemoryStore constructs a MemoryStore. quota <= 0 means unlimited.
func NewMemoryStore(quota int64) *MemoryStore {
	return &MemoryStore{data: make(map[string]string), quota: quota}
}

// SetAvailable toggles whether the store accepts reads and writes.
func (s *MemoryStore) SetAvailable(available bool) {
	s.mu.Lock()
	s.disabled = !available
	s.mu.Unlock()
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.disabled {
		return "", false, ErrUnavailable
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key, enforcing the quota.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled {
		return ErrUnavailable
	}

	next := s.used + entrySize(key, value)
	if prev, ok := s.data[key]; ok {
		next -= entrySize(key, prev)
	}
	if s.quota > 0 && next > s.quota {
		return fmt.Errorf("%w: need %d bytes, quota %d", ErrQuotaExceeded, next, s.quota)
	}
	s.data[key] = value
	s.used = next
	return nil
}

// Used reports the bytes currently held.
func (s *MemoryStore) Used() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}

var _ Store = (*MemoryStore)(nil)
