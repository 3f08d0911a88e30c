package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

func TestSessionsCLIRenderer(t *testing.T) {
	r := styles.NewSessionsCLIRenderer(styles.NewTheme())

	out := r.RenderEmptyList()
	require.Contains(t, out, "No saved sessions found.")

	now := time.Now().UTC()
	items := []entity.SessionSummary{
		{
			ID:         "sess_01J9ZQ3V6J5Z7Y0K2M4N8P1R3T",
			Name:       "Morning research",
			CapturedAt: now,
			Kind:       entity.SessionKindManual,
			Stats:      entity.SessionStats{WindowCount: 2, TabCount: 7},
		},
	}
	out = r.RenderList(items, 20)
	require.Contains(t, out, "Sessions")
	require.Contains(t, out, "showing up to 20")
	require.Contains(t, out, "sess_01J9ZQ3V6J5Z7Y0K2M4N8P1R3T")
	require.Contains(t, out, "Morning research")
	require.Contains(t, out, "2 windows")
	require.Contains(t, out, "7 tabs")
	require.Contains(t, out, "just now")

	errOut := r.RenderError(errors.New("boom"))
	require.Contains(t, errOut, "boom")
}

func TestSessionsCLIRenderer_RenderSession(t *testing.T) {
	r := styles.NewSessionsCLIRenderer(styles.NewTheme())
	group := entity.LocalID(0)

	out := r.RenderSession(&entity.Session{
		ID:   "sess_x",
		Name: "Work",
		Kind: entity.SessionKindManual,
		Windows: []entity.WindowSnapshot{
			{
				LocalID: 0,
				Focused: true,
				Bounds:  entity.Bounds{Width: 1280, Height: 800},
				Tabs: []entity.TabSnapshot{
					{URL: "https://go.dev", Title: "Go", Active: true, Pinned: true},
					{URL: "https://pkg.go.dev", GroupRef: &group},
				},
			},
			{LocalID: 1, Incognito: true},
		},
		TabGroups: []entity.TabGroupSnapshot{{LocalID: 0, Title: "Docs", Color: "green"}},
	})

	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "Window 0 (focused)")
	assert.Contains(t, out, "1280x800+0+0")
	assert.Contains(t, out, "https://go.dev")
	assert.Contains(t, out, "green Docs")
	assert.Contains(t, out, "incognito, not restored")
}

func TestSessionsCLIRenderer_RenderRestoreResult(t *testing.T) {
	r := styles.NewSessionsCLIRenderer(styles.NewTheme())

	result := &entity.RestoreResult{RestoredWindows: 1, RestoredTabs: 4, RestoredGroups: 1, SkippedIncognito: 1}
	out := r.RenderRestoreResult(result)
	assert.Contains(t, out, "Restored 1 windows, 4 tabs, 1 groups")
	assert.Contains(t, out, "skipped 1 incognito")

	result.Warn(entity.StageCreateWindow, 2, errors.New("refused"))
	out = r.RenderRestoreResult(result)
	assert.Contains(t, out, "create_window")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "refused")
}

func TestTemplatesCLIRenderer(t *testing.T) {
	r := styles.NewTemplatesCLIRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderList(nil), "No templates found.")

	used := time.Now().Add(-2 * time.Hour)
	out := r.RenderList([]entity.TemplateSummary{
		{ID: "tmpl_a", Name: "Standup", WorkflowTag: "daily", UsageCount: 3, LastUsedAt: &used, Stats: entity.SessionStats{TabCount: 5}},
		{ID: "tmpl_b", Name: "Review"},
	})
	assert.Contains(t, out, "Templates")
	assert.Contains(t, out, "tmpl_a")
	assert.Contains(t, out, "daily")
	assert.Contains(t, out, "3 uses")
	assert.Contains(t, out, "used 2h ago")
	assert.Contains(t, out, "never used")

	tmpl := &entity.SessionTemplate{ID: "tmpl_a", Name: "Standup", BaseSession: entity.Session{Stats: entity.SessionStats{TabCount: 5}}}
	assert.Contains(t, r.RenderCreated(tmpl), "created from 5 tabs")
	assert.Contains(t, r.RenderImported(tmpl), "Imported template")
	assert.Contains(t, r.RenderDeleted("tmpl_a"), "tmpl_a deleted")
}
