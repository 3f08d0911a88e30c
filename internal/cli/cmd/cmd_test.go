package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/build"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	blobmemory "github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

type fixture struct {
	app  *cli.App
	host *memory.Host
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Storage = config.StorageConfig{Backend: config.StorageBackendMemory}
	cfg.Host.Backend = config.HostBackendMemory

	host := memory.NewHost()
	wid := host.AddWindow(memory.WindowSpec{
		Focused: true,
		Bounds:  entity.Bounds{Width: 1280, Height: 800},
		Tabs: []memory.TabSpec{
			{URL: "https://a.example", Pinned: true},
			{URL: "https://b.example", Active: true},
			{URL: "https://c.example"},
		},
	})
	host.AddGroup(wid, "Docs", entity.GroupColorGreen, false, 1, 2)

	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))
	a := cli.NewAppWithConfig(ctx, cfg)
	a.Host = host
	a.Store = blobmemory.NewBlobStore()
	t.Cleanup(func() { _ = a.Close() })
	return &fixture{app: a, host: host}
}

func resetFlags() {
	sessionsJSON = false
	sessionsLimit = 0
	captureName = ""
	closeCurrent = false
	mergeWindows = false
	templateTag = ""
	templateOutput = ""
	serveListen = ""
	serveNoScheduler = false
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	app = f.app
	t.Cleanup(func() { app = nil })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func (f *fixture) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := f.run(t, args...)
	require.NoError(t, err, out)
	return out
}

func (f *fixture) captureJSON(t *testing.T, name string) entity.SessionSummary {
	t.Helper()
	out := f.mustRun(t, "sessions", "capture", "--name", name, "--json")
	var summary entity.SessionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	return summary
}

func TestSessions_CaptureListShowDelete(t *testing.T) {
	f := newFixture(t)

	out := f.mustRun(t, "sessions", "capture", "--name", "Morning")
	assert.Contains(t, out, "Captured")
	assert.Contains(t, out, "Morning")
	assert.Contains(t, out, "3 tabs")

	summary := f.captureJSON(t, "Evening")
	assert.Equal(t, "Evening", summary.Name)
	assert.Equal(t, 3, summary.Stats.TabCount)

	out = f.mustRun(t, "sessions", "list")
	assert.Contains(t, out, "Morning")
	assert.Contains(t, out, "Evening")
	assert.Less(t, strings.Index(out, "Evening"), strings.Index(out, "Morning"), "newest first")

	out = f.mustRun(t, "sessions", "list", "--json", "--limit", "1")
	var listed []entity.SessionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, summary.ID, listed[0].ID)

	suffix := string(summary.ID)[len(summary.ID)-6:]
	out = f.mustRun(t, "sessions", "show", suffix)
	assert.Contains(t, out, "Window 0 (focused)")
	assert.Contains(t, out, "https://b.example")
	assert.Contains(t, out, "green Docs")

	out = f.mustRun(t, "sessions", "delete", string(summary.ID))
	assert.Contains(t, out, "deleted")

	_, err := f.run(t, "sessions", "show", string(summary.ID))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSessions_Restore(t *testing.T) {
	f := newFixture(t)
	summary := f.captureJSON(t, "Work")
	f.host.ResetCalls()

	out := f.mustRun(t, "sessions", "restore", string(summary.ID))
	assert.Contains(t, out, "Restored 1 windows")
	assert.NotEmpty(t, f.host.CallsOf(memory.OpCreateWindow))

	out = f.mustRun(t, "sessions", "restore", string(summary.ID), "--json", "--merge")
	var result entity.RestoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Positive(t, result.RestoredTabs)
	assert.Empty(t, result.Warnings)
}

func TestSessions_RestoreReportsWarnings(t *testing.T) {
	f := newFixture(t)
	summary := f.captureJSON(t, "Work")
	f.host.FailAlways(memory.OpCreateWindow, nil, nil)

	out := f.mustRun(t, "sessions", "restore", string(summary.ID))
	assert.Contains(t, out, "create_window")
}

func TestSessions_AmbiguousSuffix(t *testing.T) {
	f := newFixture(t)
	f.captureJSON(t, "one")
	f.captureJSON(t, "two")

	_, err := f.run(t, "sessions", "show", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestTemplates_Lifecycle(t *testing.T) {
	f := newFixture(t)

	out := f.mustRun(t, "templates", "create", "Standup", "--tag", "daily", "--json")
	var created entity.TemplateSummary
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "daily", created.WorkflowTag)

	out = f.mustRun(t, "templates", "list")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "never used")

	out = f.mustRun(t, "templates", "restore", string(created.ID))
	assert.Contains(t, out, "Restored")

	out = f.mustRun(t, "templates", "list", "--json")
	var listed []entity.TemplateSummary
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, 1, listed[0].UsageCount)

	exported := filepath.Join(t.TempDir(), "standup.yaml")
	f.mustRun(t, "templates", "export", string(created.ID), "-o", exported)
	doc, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "workflow_tag: daily")

	out = f.mustRun(t, "templates", "import", exported)
	assert.Contains(t, out, "Imported template")

	out = f.mustRun(t, "templates", "delete", string(created.ID))
	assert.Contains(t, out, "deleted")

	out = f.mustRun(t, "templates", "list", "--json")
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.NotEqual(t, created.ID, listed[0].ID)
	assert.Zero(t, listed[0].UsageCount)
}

func TestTemplates_ExportToStdout(t *testing.T) {
	f := newFixture(t)
	out := f.mustRun(t, "templates", "create", "Review", "--json")
	var created entity.TemplateSummary
	require.NoError(t, json.Unmarshal([]byte(out), &created))

	out = f.mustRun(t, "templates", "export", string(created.ID))
	assert.Contains(t, out, "name: Review")
}

func TestSync_NoProvider(t *testing.T) {
	f := newFixture(t)
	_, err := f.run(t, "sync")
	require.ErrorIs(t, err, entity.ErrSyncUnavailable)
}

func TestSchema(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"session", `"tab_groups"`},
		{"template", `"workflow_tag"`},
		{"config", `"max_history_entries"`},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			schema, err := documentSchema(tt.kind)
			require.NoError(t, err)
			raw, err := json.Marshal(schema)
			require.NoError(t, err)
			assert.Contains(t, string(raw), tt.want)
		})
	}

	_, err := documentSchema("cookies")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	f := newFixture(t)
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc1234", BuildDate: "2026-10-01", GoVersion: "go1.25.3"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out := f.mustRun(t, "version")
	assert.Contains(t, out, "tabsnap")
	assert.Contains(t, out, "1.2.3")
}
