package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

const (
	getBlobQuery = `SELECT value FROM blobs WHERE key = ?`
	setBlobQuery = `INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// BlobStore implements port.BlobStore on the blobs table.
type BlobStore struct {
	provider port.DatabaseProvider
}

var _ port.BlobStore = (*BlobStore)(nil)

// NewBlobStore creates a blob store on top of a database provider.
// The database is opened on first use.
func NewBlobStore(provider port.DatabaseProvider) *BlobStore {
	return &BlobStore{provider: provider}
}

// Get implements port.BlobStore.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var value []byte
	err = db.QueryRowContext(ctx, getBlobQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("blob %q: %w", key, entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q: %w", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set implements port.BlobStore.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, setBlobQuery, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}
	return nil
}

// Close implements port.BlobStore.
func (s *BlobStore) Close() error {
	return s.provider.Close()
}
