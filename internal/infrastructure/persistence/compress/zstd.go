// Package compress wraps a BlobStore with transparent zstd compression.
package compress

import (
	"bytes"
	"context"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
)

// zstdMagic starts every zstd frame. Values without it are returned unchanged,
// so a store can switch compression on without rewriting existing blobs.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// BlobStore compresses values before delegating to the wrapped store.
type BlobStore struct {
	next    port.BlobStore
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

var _ port.BlobStore = (*BlobStore)(nil)

// Wrap returns a compressing view of next.
func Wrap(next port.BlobStore) (*BlobStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &BlobStore{next: next, encoder: encoder, decoder: decoder}, nil
}

// Get implements port.BlobStore.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(raw, zstdMagic) {
		return raw, nil
	}
	out, err := s.decoder.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress blob %q: %w", key, err)
	}
	return out, nil
}

// Set implements port.BlobStore.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	return s.next.Set(ctx, key, s.encoder.EncodeAll(value, nil))
}

// Close implements port.BlobStore.
func (s *BlobStore) Close() error {
	s.decoder.Close()
	_ = s.encoder.Close()
	return s.next.Close()
}
