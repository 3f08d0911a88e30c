// Package persistence selects and opens the configured BlobStore backend.
package persistence

import (
	"context"
	"fmt"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/bolt"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/compress"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/file"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/sqlite"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// OpenBlobStore opens the backend named in cfg, wrapped with zstd when
// compression is enabled. The sqlite backend opens its database lazily.
func OpenBlobStore(ctx context.Context, cfg config.StorageConfig) (port.BlobStore, error) {
	log := logging.FromContext(ctx)

	var (
		store port.BlobStore
		err   error
	)
	switch cfg.Backend {
	case config.StorageBackendSQLite:
		store = sqlite.NewBlobStore(sqlite.NewLazyDB(cfg.Path))
	case config.StorageBackendBolt:
		store, err = bolt.Open(ctx, cfg.Path)
	case config.StorageBackendFile:
		store, err = file.Open(cfg.Path)
	case config.StorageBackendMemory:
		store = memory.NewBlobStore()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	if cfg.Compression {
		wrapped, err := compress.Wrap(store)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		store = wrapped
	}

	log.Debug().
		Str("backend", string(cfg.Backend)).
		Str("path", cfg.Path).
		Bool("compression", cfg.Compression).
		Msg("blob store opened")
	return store, nil
}
