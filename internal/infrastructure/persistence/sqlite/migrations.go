package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// migrateBlobSchema brings the blobs table up to date and returns the schema
// version the store now runs on.
func migrateBlobSchema(ctx context.Context, db *sql.DB) (applied []int64, version int64, err error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, 0, fmt.Errorf("blob schema migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return nil, 0, fmt.Errorf("blob schema provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("migrate blob schema: %w", err)
	}
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}

	version, err = provider.GetDBVersion(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read blob schema version: %w", err)
	}
	return applied, version, nil
}
