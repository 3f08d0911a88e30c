// Package memory provides a process-local BlobStore.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("blob store closed")

// BlobStore keeps blobs in a map. Values are copied on the way in and out.
type BlobStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
	writes int
}

var _ port.BlobStore = (*BlobStore)(nil)

// NewBlobStore creates an empty store.
func NewBlobStore() *BlobStore {
	return &BlobStore{data: make(map[string][]byte)}
}

// Get implements port.BlobStore.
func (s *BlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("blob %q: %w", key, entity.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Set implements port.BlobStore.
func (s *BlobStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.data[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Close implements port.BlobStore.
func (s *BlobStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Writes returns the number of successful Set calls.
func (s *BlobStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
