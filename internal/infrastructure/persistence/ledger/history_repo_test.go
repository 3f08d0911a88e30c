package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	portmocks "github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port/mocks"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/ledger"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var baseTime = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func newSession(n int) *entity.Session {
	ref := entity.LocalID(0)
	windows := []entity.WindowSnapshot{{
		LocalID: 0,
		Type:    entity.WindowTypeNormal,
		Tabs: []entity.TabSnapshot{
			{URL: fmt.Sprintf("https://site%d.example", n), PositionIndex: 0, GroupRef: &ref},
		},
	}}
	return &entity.Session{
		SchemaVersion: entity.SessionSchemaVersion,
		ID:            entity.SessionID(fmt.Sprintf("sess_%03d", n)),
		Name:          fmt.Sprintf("Session %d", n),
		CapturedAt:    baseTime.Add(time.Duration(n) * time.Minute),
		Kind:          entity.SessionKindManual,
		Windows:       windows,
		TabGroups:     []entity.TabGroupSnapshot{{LocalID: 0, OwnerWindow: 0, Title: "g", Color: entity.GroupColorCyan}},
		Stats:         entity.ComputeStats(windows),
	}
}

func TestSessionHistoryRepository_KeepsNewestHundred(t *testing.T) {
	ctx := testCtx()
	repo := ledger.NewSessionHistoryRepository(memory.NewBlobStore(), 100)

	for i := 1; i <= 105; i++ {
		_, err := repo.Append(ctx, newSession(i))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 100)
	assert.Equal(t, entity.SessionID("sess_105"), all[0].ID)
	assert.Equal(t, entity.SessionID("sess_006"), all[99].ID)

	_, err = repo.Get(ctx, "sess_005")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSessionHistoryRepository_AppendReturnsEvicted(t *testing.T) {
	ctx := testCtx()
	repo := ledger.NewSessionHistoryRepository(memory.NewBlobStore(), 2)

	for i := 1; i <= 2; i++ {
		evicted, err := repo.Append(ctx, newSession(i))
		require.NoError(t, err)
		assert.Empty(t, evicted)
	}
	evicted, err := repo.Append(ctx, newSession(3))
	require.NoError(t, err)
	require.Len(t, evicted, 1)
	assert.Equal(t, entity.SessionID("sess_001"), evicted[0].ID)
}

func TestSessionHistoryRepository_RoundTripPreservesSession(t *testing.T) {
	ctx := testCtx()
	store := memory.NewBlobStore()
	repo := ledger.NewSessionHistoryRepository(store, 10)

	original := newSession(7)
	_, err := repo.Append(ctx, original)
	require.NoError(t, err)

	reloaded := ledger.NewSessionHistoryRepository(store, 10)
	got, err := reloaded.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestSessionHistoryRepository_ListIsIdempotent(t *testing.T) {
	ctx := testCtx()
	store := memory.NewBlobStore()
	repo := ledger.NewSessionHistoryRepository(store, 10)
	for i := 1; i <= 3; i++ {
		_, err := repo.Append(ctx, newSession(i))
		require.NoError(t, err)
	}
	writes := store.Writes()

	first, err := repo.List(ctx, 2)
	require.NoError(t, err)
	second, err := repo.List(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
	assert.Equal(t, writes, store.Writes(), "listing must not write")
}

func TestSessionHistoryRepository_DeleteUnknownDoesNotWrite(t *testing.T) {
	ctx := testCtx()
	store := memory.NewBlobStore()
	repo := ledger.NewSessionHistoryRepository(store, 10)
	_, err := repo.Append(ctx, newSession(1))
	require.NoError(t, err)
	writes := store.Writes()

	err = repo.Delete(ctx, "sess_missing")
	require.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, writes, store.Writes())

	require.NoError(t, repo.Delete(ctx, "sess_001"))
	assert.Equal(t, writes+1, store.Writes())
	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSessionHistoryRepository_StorageFailures(t *testing.T) {
	ctx := testCtx()
	store := portmocks.NewMockBlobStore(t)
	repo := ledger.NewSessionHistoryRepository(store, 10)

	store.EXPECT().Get(mock.Anything, "sessionHistory").Return(nil, entity.ErrNotFound).Once()
	store.EXPECT().Set(mock.Anything, "sessionHistory", mock.Anything).Return(errors.New("disk full")).Once()

	_, err := repo.Append(ctx, newSession(1))
	require.ErrorIs(t, err, entity.ErrStorage)
	assert.Contains(t, err.Error(), "disk full")

	store.EXPECT().Get(mock.Anything, "sessionHistory").Return([]byte("{not json"), nil).Once()
	_, err = repo.List(ctx, 0)
	require.ErrorIs(t, err, entity.ErrStorage)
}

func TestSessionHistoryRepository_DecodeNormalizesLegacyRecords(t *testing.T) {
	ctx := testCtx()
	store := memory.NewBlobStore()
	legacy := `[{"id":"sess_old","name":"old","windows":[{"local_id":0,"tabs":[{"url":"https://a.example"}]}]},
	            {"id":"","kind":"manual"}]`
	require.NoError(t, store.Set(ctx, "sessionHistory", []byte(legacy)))

	repo := ledger.NewSessionHistoryRepository(store, 10)
	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1, "invalid records are dropped")

	s := all[0]
	assert.Equal(t, entity.SessionSchemaVersion, s.SchemaVersion)
	assert.Equal(t, entity.SessionKindManual, s.Kind)
	assert.Equal(t, entity.WindowTypeNormal, s.Windows[0].Type)
	assert.Equal(t, 1, s.Stats.TabCount)
}

func TestSessionHistoryRepository_RejectsInvalidSession(t *testing.T) {
	repo := ledger.NewSessionHistoryRepository(memory.NewBlobStore(), 10)
	bad := newSession(1)
	bad.Windows[0].Tabs[0].GroupRef = nil
	bad.Windows[0].Tabs = append(bad.Windows[0].Tabs, entity.TabSnapshot{URL: "x", GroupRef: func() *entity.LocalID { v := entity.LocalID(9); return &v }()})

	_, err := repo.Append(testCtx(), bad)
	require.ErrorIs(t, err, entity.ErrInvalidSession)
}
