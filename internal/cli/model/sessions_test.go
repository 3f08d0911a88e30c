package model

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

type fakeSessions struct {
	sessions []entity.SessionSummary
	full     map[entity.SessionID]*entity.Session
}

func (f *fakeSessions) Execute(_ context.Context, _ int) (*usecase.ListSessionsOutput, error) {
	return &usecase.ListSessionsOutput{Sessions: f.sessions}, nil
}

func (f *fakeSessions) Get(_ context.Context, id entity.SessionID) (*entity.Session, error) {
	s, ok := f.full[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return s, nil
}

type fakeRestorer struct {
	calls []usecase.RestoreInput
	err   error
}

func (f *fakeRestorer) Execute(_ context.Context, input usecase.RestoreInput) (*entity.RestoreResult, error) {
	f.calls = append(f.calls, input)
	if f.err != nil {
		return nil, f.err
	}
	return &entity.RestoreResult{RestoredWindows: 1, RestoredTabs: 2}, nil
}

type fakeDeleter struct {
	deleted []entity.SessionID
}

func (f *fakeDeleter) Execute(_ context.Context, id entity.SessionID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func testSummary(i int) entity.SessionSummary {
	return entity.SessionSummary{
		ID:         entity.SessionID(fmt.Sprintf("sess_%02d", i)),
		Name:       fmt.Sprintf("session-%02d", i),
		CapturedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		Kind:       entity.SessionKindManual,
		Stats:      entity.SessionStats{WindowCount: 1, TabCount: 2},
	}
}

func testSession(id entity.SessionID, tabCount int) *entity.Session {
	tabs := make([]entity.TabSnapshot, 0, tabCount)
	for i := 0; i < tabCount; i++ {
		tabs = append(tabs, entity.TabSnapshot{URL: fmt.Sprintf("https://%d.example", i), Title: fmt.Sprintf("Tab %d", i+1)})
	}
	return &entity.Session{
		ID:      id,
		Windows: []entity.WindowSnapshot{{LocalID: 0, Tabs: tabs}},
	}
}

func newTestModel(n int) (SessionsModel, *fakeSessions, *fakeRestorer, *fakeDeleter) {
	lister := &fakeSessions{full: map[entity.SessionID]*entity.Session{}}
	for i := 0; i < n; i++ {
		s := testSummary(i)
		lister.sessions = append(lister.sessions, s)
		lister.full[s.ID] = testSession(s.ID, 2)
	}
	restorer := &fakeRestorer{}
	deleter := &fakeDeleter{}
	m := NewSessionsModel(context.Background(), styles.NewTheme(), SessionsModelConfig{
		Lister:   lister,
		Restorer: restorer,
		Deleter:  deleter,
		Options:  entity.DefaultRestoreOptions(),
	})
	return m, lister, restorer, deleter
}

// step feeds msg to the model and resolves the returned command once.
func step(t *testing.T, m SessionsModel, msg tea.Msg) (SessionsModel, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionsModel)
	require.True(t, ok)
	if cmd == nil {
		return sm, nil
	}
	return sm, cmd()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, m SessionsModel) SessionsModel {
	t.Helper()
	m, _ = step(t, m, m.Init()())
	return m
}

func TestSessionsModel_LoadsAndNavigates(t *testing.T) {
	m, _, _, _ := newTestModel(3)
	m = loaded(t, m)
	require.Len(t, m.sessions, 3)

	m, _ = step(t, m, keyRunes("j"))
	m, _ = step(t, m, keyRunes("j"))
	m, _ = step(t, m, keyRunes("j"))
	assert.Equal(t, 2, m.selectedIdx, "cursor stops at the last row")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.selectedIdx)
	assert.Contains(t, m.View(), "session-01")
}

func TestSessionsModel_ExpandLoadsDetails(t *testing.T) {
	m, _, _, _ := newTestModel(2)
	m = loaded(t, m)

	m, msg := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.IsType(t, sessionLoadedMsg{}, msg)
	assert.Equal(t, 0, m.expandedIdx)
	assert.Contains(t, m.View(), "loading...")

	m, _ = step(t, m, msg)
	view := m.View()
	assert.Contains(t, view, "Window 0")
	assert.Contains(t, view, "Tab 2")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, -1, m.expandedIdx)
}

func TestSessionsModel_RestoreSelected(t *testing.T) {
	m, _, restorer, _ := newTestModel(2)
	m = loaded(t, m)
	m, _ = step(t, m, keyRunes("j"))

	m, msg := step(t, m, keyRunes("r"))
	assert.True(t, m.busy)
	require.Len(t, restorer.calls, 1)
	assert.Equal(t, entity.SessionID("sess_01"), restorer.calls[0].SessionID)
	assert.True(t, restorer.calls[0].Options.NewWindows)

	m, _ = step(t, m, msg)
	assert.False(t, m.busy)
	assert.Contains(t, m.statusMessage, "1 windows, 2 tabs")
}

func TestSessionsModel_RestoreErrorIsShown(t *testing.T) {
	m, _, restorer, _ := newTestModel(1)
	restorer.err = errors.New("host unreachable")
	m = loaded(t, m)

	m, msg := step(t, m, keyRunes("r"))
	m, _ = step(t, m, msg)
	assert.Contains(t, m.View(), "host unreachable")
}

func TestSessionsModel_DeleteNeedsConfirmation(t *testing.T) {
	m, lister, _, deleter := newTestModel(2)
	m = loaded(t, m)

	m, _ = step(t, m, keyRunes("x"))
	assert.True(t, m.pendingDelete)
	m, msg := step(t, m, keyRunes("n"))
	assert.Nil(t, msg)
	assert.Empty(t, deleter.deleted)
	assert.Equal(t, "Delete cancelled", m.statusMessage)

	m, _ = step(t, m, keyRunes("x"))
	m, msg = step(t, m, keyRunes("y"))
	require.Equal(t, []entity.SessionID{"sess_00"}, deleter.deleted)

	lister.sessions = lister.sessions[1:]
	m, reload := step(t, m, msg)
	assert.Contains(t, m.statusMessage, "deleted")
	m, _ = step(t, m, reload)
	assert.Len(t, m.sessions, 1)
}

func TestSessionsModel_QuitAndHelp(t *testing.T) {
	m, _, _, _ := newTestModel(1)

	m, _ = step(t, m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)

	_, msg := step(t, m, keyRunes("q"))
	assert.Equal(t, tea.Quit(), msg)
}

func TestSessionsModel_EmptyList(t *testing.T) {
	m, _, _, _ := newTestModel(0)
	m = loaded(t, m)
	assert.Contains(t, m.View(), "No saved sessions found.")

	m, msg := step(t, m, keyRunes("r"))
	assert.Nil(t, msg)
	assert.False(t, m.busy)
}

func TestRenderSessionsList_KeepsSelectedVisibleWhenExpandedRowAbove(t *testing.T) {
	m, _, _, _ := newTestModel(6)
	m = loaded(t, m)
	m.details["sess_02"] = testSession("sess_02", 6)

	// Expand a row above the selected row with many detail lines.
	m.selectedIdx = 4
	m.expandedIdx = 2

	view := m.renderSessionsList(5)
	require.Contains(t, view, "session-04", "selected row should remain visible")
}
