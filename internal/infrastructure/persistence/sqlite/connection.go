package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled SQLite build

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

const (
	dbDirPerm = 0o700

	// busyTimeoutMS covers a CLI command and a running server sharing the file.
	busyTimeoutMS = 5000
)

var errEmptyPath = errors.New("blob database path is empty")

// blobDSN builds the driver URI. Pragmas ride on the URI so every pooled
// connection gets them.
func blobDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	q.Add("_pragma", "journal_mode(wal)")
	q.Add("_pragma", "synchronous(normal)")
	u := url.URL{Scheme: "file", OmitHost: true, Path: path, RawQuery: q.Encode()}
	return u.String()
}

// openBlobDB opens the blob database at path, creating its directory, and
// migrates the blobs table.
func openBlobDB(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, errEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), dbDirPerm); err != nil {
		return nil, fmt.Errorf("create blob database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", blobDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open blob database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect blob database: %w", err)
	}

	applied, version, err := migrateBlobSchema(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	// One writer; the store only ever holds a handful of rows.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	log := logging.FromContext(ctx).With().Str("path", path).Int64("schema_version", version).Logger()
	if len(applied) > 0 {
		log.Info().Ints64("applied", applied).Msg("blob schema migrated")
	}
	log.Debug().Msg("blob database opened")
	return db, nil
}
