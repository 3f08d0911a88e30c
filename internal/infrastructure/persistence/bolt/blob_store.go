// Package bolt provides a BlobStore backed by a bbolt database file.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

var bucketBlobs = []byte("blobs")

// BlobStore stores each blob as one key in a single bucket.
type BlobStore struct {
	db *bolt.DB
}

var _ port.BlobStore = (*BlobStore)(nil)

// Open opens (or creates) the database at path.
func Open(ctx context.Context, path string) (*BlobStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("bolt db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketBlobs)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init bolt schema: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("bolt blob store opened")
	return &BlobStore{db: db}, nil
}

// Get implements port.BlobStore.
func (s *BlobStore) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBlobs)
		if b == nil {
			return nil
		}
		raw := b.Get([]byte(key))
		if raw == nil {
			return nil
		}
		// raw is only valid inside the transaction.
		out = append([]byte{}, raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("blob %q: %w", key, entity.ErrNotFound)
	}
	return out, nil
}

// Set implements port.BlobStore.
func (s *BlobStore) Set(_ context.Context, key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketBlobs)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// Close implements port.BlobStore.
func (s *BlobStore) Close() error {
	return s.db.Close()
}
