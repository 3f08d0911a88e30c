package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_SetGetReplace(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "tabsnap.db")
	store := sqlite.NewBlobStore(sqlite.NewLazyDB(dbPath))

	_, err := store.Get(ctx, "sessionHistory")
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, store.Set(ctx, "sessionHistory", []byte(`[1]`)))
	require.NoError(t, store.Set(ctx, "sessionHistory", []byte(`[1,2]`)))
	require.NoError(t, store.Set(ctx, "empty", nil))

	got, err := store.Get(ctx, "sessionHistory")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	empty, err := store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, store.Close())

	reopened := sqlite.NewBlobStore(sqlite.NewLazyDB(dbPath))
	t.Cleanup(func() { _ = reopened.Close() })
	got, err = reopened.Get(ctx, "sessionHistory")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}
