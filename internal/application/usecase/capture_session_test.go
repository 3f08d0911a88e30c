package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port/mocks"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	repomocks "github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository/mocks"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCaptureSessionUseCase_Execute_CapturesTopology(t *testing.T) {
	ctx := testContext()
	e := newEngine()
	e.seedWork()
	e.host.AddWindow(memory.WindowSpec{Incognito: true, Tabs: []memory.TabSpec{{URL: "https://private.example"}}})

	session, err := e.capture.Execute(ctx, usecase.CaptureInput{})
	require.NoError(t, err)

	assert.Equal(t, entity.SessionID("sess_001"), session.ID)
	assert.Equal(t, entity.SessionKindManual, session.Kind)
	assert.Equal(t, "Session "+fixedNow.Local().Format("2006-01-02 15:04"), session.Name)
	assert.True(t, session.CapturedAt.Equal(fixedNow))
	assert.Equal(t, entity.SessionStats{WindowCount: 2, TabCount: 5, IncognitoWindowCount: 1}, session.Stats)
	require.NoError(t, session.Validate())

	work := session.Windows[0]
	assert.Equal(t, entity.LocalID(0), work.LocalID)
	assert.True(t, work.Focused)
	assert.Equal(t, entity.Bounds{Left: 40, Top: 30, Width: 1440, Height: 900}, work.Bounds)
	require.Len(t, work.Tabs, 4)
	assert.True(t, work.Tabs[0].Pinned)
	assert.True(t, work.Tabs[1].Active)
	assert.Nil(t, work.Tabs[0].GroupRef)
	require.NotNil(t, work.Tabs[2].GroupRef)
	require.NotNil(t, work.Tabs[3].GroupRef)
	assert.Equal(t, entity.LocalID(0), *work.Tabs[2].GroupRef)
	for i, tab := range work.Tabs {
		assert.Equal(t, i, tab.PositionIndex)
	}

	require.Len(t, session.TabGroups, 1)
	assert.Equal(t, entity.TabGroupSnapshot{
		LocalID: 0, OwnerWindow: 0, Title: "Dev", Color: entity.GroupColorBlue, Collapsed: true,
	}, session.TabGroups[0])

	assert.True(t, session.Windows[1].Incognito)

	stored, err := e.history.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Windows, stored.Windows)
}

func TestCaptureSessionUseCase_Execute_UsesGivenNameAndKind(t *testing.T) {
	e := newEngine()
	e.seedWork()

	session, err := e.capture.Execute(testContext(), usecase.CaptureInput{Name: "Morning", Kind: entity.SessionKindScheduled})
	require.NoError(t, err)
	assert.Equal(t, "Morning", session.Name)
	assert.Equal(t, entity.SessionKindScheduled, session.Kind)
}

func TestCaptureSessionUseCase_Execute_RejectsUnknownKind(t *testing.T) {
	e := newEngine()
	_, err := e.capture.Execute(testContext(), usecase.CaptureInput{Kind: "hourly"})
	require.ErrorIs(t, err, entity.ErrInvalidSession)
}

func TestCaptureSessionUseCase_Execute_EnumerationFailurePersistsNothing(t *testing.T) {
	ctx := testContext()

	for _, op := range []memory.Op{memory.OpListWindows, memory.OpListTabGroups} {
		t.Run(string(op), func(t *testing.T) {
			host := memory.NewHost()
			host.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "https://a.example"}}})
			host.FailAlways(op, nil, nil)

			history := repomocks.NewMockSessionHistoryRepository(t)
			uc := usecase.NewCaptureSessionUseCase(host, history, usecase.NewHostGate(), sequentialIDs("sess_"), nil)

			_, err := uc.Execute(ctx, usecase.CaptureInput{})
			require.ErrorIs(t, err, entity.ErrHostEnumeration)
			history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestCaptureSessionUseCase_Execute_StorageFailure(t *testing.T) {
	ctx := testContext()
	host := memory.NewHost()
	host.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "https://a.example"}}})

	history := repomocks.NewMockSessionHistoryRepository(t)
	history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.Session")).
		Return(nil, errors.Join(entity.ErrStorage, errors.New("disk full")))

	uc := usecase.NewCaptureSessionUseCase(host, history, usecase.NewHostGate(), sequentialIDs("sess_"), nil)
	_, err := uc.Execute(ctx, usecase.CaptureInput{})
	require.ErrorIs(t, err, entity.ErrStorage)
}

func TestCaptureSessionUseCase_Execute_WaitsForGate(t *testing.T) {
	e := newEngine()
	e.seedWork()
	require.NoError(t, e.gate.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(testContext())
	cancel()
	_, err := e.capture.Execute(ctx, usecase.CaptureInput{})
	require.ErrorIs(t, err, context.Canceled)

	e.gate.Release()
	_, err = e.capture.Execute(testContext(), usecase.CaptureInput{})
	require.NoError(t, err)
}

func TestCaptureSessionUseCase_Execute_ListsWithMockHost(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockHostResourceClient(t)
	host.EXPECT().ListWindows(mock.Anything).Return([]entity.HostWindow{{ID: "w9", Type: entity.WindowTypePopup}}, nil)
	host.EXPECT().ListTabGroups(mock.Anything).Return(nil, nil)

	history := repomocks.NewMockSessionHistoryRepository(t)
	history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, s *entity.Session) {
			require.Len(t, s.Windows, 1)
			assert.Equal(t, entity.WindowTypePopup, s.Windows[0].Type)
			assert.Empty(t, s.Windows[0].Tabs)
		}).
		Return(nil, nil)

	uc := usecase.NewCaptureSessionUseCase(host, history, usecase.NewHostGate(), sequentialIDs("sess_"), nil)
	_, err := uc.Execute(ctx, usecase.CaptureInput{Name: "popup"})
	require.NoError(t, err)
}

func TestBuildSession_DropsForeignGroups(t *testing.T) {
	windows := []entity.HostWindow{
		{ID: "w1", Tabs: []entity.HostTab{
			{ID: "t2", Index: 1, URL: "https://b.example", GroupID: "g-gone"},
			{ID: "t1", Index: 0, URL: "https://a.example", GroupID: "g1"},
		}},
	}
	groups := []entity.HostTabGroup{
		{ID: "g-other", WindowID: "w-uncaptured", Title: "elsewhere"},
		{ID: "g1", WindowID: "w1", Title: "kept", Color: entity.GroupColorGreen},
	}

	s := usecase.BuildSession(windows, groups)
	require.Len(t, s.TabGroups, 1)
	assert.Equal(t, "kept", s.TabGroups[0].Title)
	assert.Equal(t, entity.LocalID(0), s.TabGroups[0].LocalID)

	tabs := s.Windows[0].Tabs
	assert.Equal(t, "https://a.example", tabs[0].URL, "tabs are ordered by index")
	require.NotNil(t, tabs[0].GroupRef)
	assert.Nil(t, tabs[1].GroupRef, "reference to an unknown group is dropped")
	assert.Equal(t, entity.WindowTypeNormal, s.Windows[0].Type)
}
