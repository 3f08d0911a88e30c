package port

import "context"

// Persisted blob keys.
const (
	BlobKeySessionHistory   = "sessionHistory"
	BlobKeySessionTemplates = "sessionTemplates"
)

// BlobStore is a durable key-value store of named opaque blobs.
// Each Set replaces the whole value atomically.
type BlobStore interface {
	// Get returns the value stored under key.
	// A missing key returns entity.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the underlying storage.
	Close() error
}
