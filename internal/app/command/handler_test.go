package command_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/app/command"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/bootstrap"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newEngine(t *testing.T) (*bootstrap.Engine, *memory.Host) {
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

	eng, err := bootstrap.New(testContext(), bootstrap.Options{Config: cfg, Host: host})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })
	return eng, host
}

// roundTrip sends a raw payload and decodes the envelope the way a UI would.
func roundTrip(t *testing.T, h *command.Handler, payload string) map[string]any {
	t.Helper()
	raw, err := json.Marshal(h.Handle(testContext(), []byte(payload)))
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func errorCode(resp map[string]any) string {
	body, ok := resp["error"].(map[string]any)
	if !ok {
		return ""
	}
	return body["code"].(string)
}

func TestHandler_SessionLifecycle(t *testing.T) {
	eng, host := newEngine(t)
	h := eng.Commands

	captured := roundTrip(t, h, `{"type":"captureSession","name":"Morning"}`)
	require.Equal(t, true, captured["ok"], captured)
	data := captured["data"].(map[string]any)
	id := data["id"].(string)
	assert.Equal(t, "Morning", data["name"])
	assert.NotEmpty(t, data["timestamp"])
	assert.Equal(t, float64(3), data["stats"].(map[string]any)["tab_count"])

	listed := roundTrip(t, h, `{"type":"listSessions"}`)
	require.Equal(t, true, listed["ok"])
	sessions := listed["data"].([]any)
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].(map[string]any)["id"])

	got := roundTrip(t, h, fmt.Sprintf(`{"type":"getSession","sessionId":%q}`, id))
	require.Equal(t, true, got["ok"])
	assert.Len(t, got["data"].(map[string]any)["tab_groups"], 1)

	host.ResetCalls()
	restored := roundTrip(t, h, fmt.Sprintf(`{"type":"restoreSession","id":%q,"options":{"closeCurrentTabs":false,"newWindows":true}}`, id))
	require.Equal(t, true, restored["ok"], restored)
	result := restored["data"].(map[string]any)
	assert.Equal(t, float64(1), result["restoredWindows"])
	assert.Equal(t, float64(3), result["restoredTabs"])
	assert.Equal(t, float64(1), result["restoredGroups"])
	assert.Empty(t, host.CallsOf(memory.OpCloseTabs))

	deleted := roundTrip(t, h, fmt.Sprintf(`{"type":"deleteSession","id":%q}`, id))
	assert.Equal(t, true, deleted["ok"])

	again := roundTrip(t, h, fmt.Sprintf(`{"type":"deleteSession","id":%q}`, id))
	assert.Equal(t, false, again["ok"])
	assert.Equal(t, command.CodeNotFound, errorCode(again))
}

func TestHandler_TemplateLifecycle(t *testing.T) {
	eng, _ := newEngine(t)
	h := eng.Commands
	ctx := testContext()

	created := h.Dispatch(ctx, command.Request{Type: command.TypeCreateTemplate, Name: " Research ", WorkflowTag: "reading"})
	require.True(t, created.OK, "%+v", created.Error)
	tmplID := created.Data.(command.TemplateCreated).ID
	assert.Equal(t, "Research", created.Data.(command.TemplateCreated).Name)

	listed := h.Dispatch(ctx, command.Request{Type: command.TypeListTemplates})
	require.True(t, listed.OK)
	summaries := listed.Data.([]entity.TemplateSummary)
	require.Len(t, summaries, 1)
	assert.Equal(t, "reading", summaries[0].WorkflowTag)

	restored := h.Dispatch(ctx, command.Request{Type: command.TypeRestoreTemplate, TemplateID: string(tmplID)})
	require.True(t, restored.OK, "%+v", restored.Error)
	assert.Equal(t, 3, restored.Data.(*entity.RestoreResult).RestoredTabs)

	exported := h.Dispatch(ctx, command.Request{Type: command.TypeExportTemplate, ID: string(tmplID)})
	require.True(t, exported.OK)
	doc := exported.Data.(command.ExportData).Document
	assert.Contains(t, doc, "name: Research")

	imported := h.Dispatch(ctx, command.Request{Type: command.TypeImportTemplate, Document: doc})
	require.True(t, imported.OK, "%+v", imported.Error)
	assert.NotEqual(t, tmplID, imported.Data.(command.TemplateCreated).ID)

	deleted := h.Dispatch(ctx, command.Request{Type: command.TypeDeleteTemplate, ID: string(tmplID)})
	assert.True(t, deleted.OK)

	missing := h.Dispatch(ctx, command.Request{Type: command.TypeRestoreTemplate, ID: string(tmplID)})
	require.False(t, missing.OK)
	assert.Equal(t, command.CodeNotFound, missing.Error.Code)
}

func TestHandler_ErrorCodes(t *testing.T) {
	eng, host := newEngine(t)
	h := eng.Commands
	ctx := testContext()

	tests := []struct {
		name    string
		payload string
		setup   func()
		want    string
	}{
		{name: "malformed json", payload: `{"type":`, want: command.CodeInvalidRequest},
		{name: "empty payload", payload: `  `, want: command.CodeInvalidRequest},
		{name: "missing type", payload: `{}`, want: command.CodeInvalidRequest},
		{name: "unknown type", payload: `{"type":"explode"}`, want: command.CodeInvalidRequest},
		{name: "negative limit", payload: `{"type":"listSessions","limit":-1}`, want: command.CodeInvalidRequest},
		{name: "unknown session", payload: `{"type":"restoreSession","id":"sess_missing"}`, want: command.CodeNotFound},
		{name: "template without name", payload: `{"type":"createTemplate"}`, want: command.CodeInvalidRequest},
		{name: "import without document", payload: `{"type":"importTemplate"}`, want: command.CodeInvalidRequest},
		{name: "sync", payload: `{"type":"syncSessions"}`, want: command.CodeUnavailable},
		{
			name:    "enumeration failure",
			payload: `{"type":"captureSession"}`,
			setup:   func() { host.FailTimes(memory.OpListWindows, 1, nil, nil) },
			want:    command.CodeHostEnumeration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			resp := h.Handle(ctx, []byte(tt.payload))
			require.False(t, resp.OK)
			assert.Equal(t, tt.want, resp.Error.Code, resp.Error.Message)
		})
	}
}

func TestHandler_BusyRestore(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := testContext()

	captured := eng.Commands.Dispatch(ctx, command.Request{Type: command.TypeCaptureSession})
	require.True(t, captured.OK)
	id := captured.Data.(command.CaptureData).ID

	require.True(t, eng.Gate.TryAcquire())
	defer eng.Gate.Release()

	resp := eng.Commands.Dispatch(ctx, command.Request{Type: command.TypeRestoreSession, ID: string(id)})
	require.False(t, resp.OK)
	assert.Equal(t, command.CodeBusy, resp.Error.Code)
}

func TestHandler_BusyRestoreRetriesWithSameRequestID(t *testing.T) {
	eng, host := newEngine(t)
	ctx := testContext()

	captured := eng.Commands.Dispatch(ctx, command.Request{Type: command.TypeCaptureSession})
	require.True(t, captured.OK)
	req := command.Request{
		Type:      command.TypeRestoreSession,
		ID:        string(captured.Data.(command.CaptureData).ID),
		RequestID: "r-1",
	}

	require.True(t, eng.Gate.TryAcquire())
	resp := eng.Commands.Dispatch(ctx, req)
	eng.Gate.Release()
	require.False(t, resp.OK)
	assert.Equal(t, command.CodeBusy, resp.Error.Code)
	assert.Empty(t, host.CallsOf(memory.OpCreateWindow))

	resp = eng.Commands.Dispatch(ctx, req)
	require.True(t, resp.OK, "a failed request is not replayed")
	created := len(host.CallsOf(memory.OpCreateWindow))
	assert.Positive(t, created)

	resp = eng.Commands.Dispatch(ctx, req)
	require.True(t, resp.OK)
	assert.Len(t, host.CallsOf(memory.OpCreateWindow), created, "a successful restore is replayed")
}

func TestHandler_NumericFieldsAreNormalized(t *testing.T) {
	eng, _ := newEngine(t)
	h := eng.Commands

	for range 3 {
		require.True(t, roundTrip(t, h, `{"type":"captureSession"}`)["ok"].(bool))
	}
	resp := roundTrip(t, h, `{"type":"listSessions","limit":"2","requestId":7}`)
	require.Equal(t, true, resp["ok"], resp)
	assert.Len(t, resp["data"], 2)
}

func TestHandler_DuplicateRequestIDRunsOnce(t *testing.T) {
	eng, host := newEngine(t)
	h := eng.Commands
	ctx := testContext()

	var wg sync.WaitGroup
	responses := make([]command.Response, 4)
	for i := range responses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			responses[i] = h.Dispatch(ctx, command.Request{Type: command.TypeCaptureSession, RequestID: "r-1"})
		}()
	}
	wg.Wait()

	first := responses[0].Data.(command.CaptureData).ID
	for _, resp := range responses {
		require.True(t, resp.OK)
		assert.Equal(t, first, resp.Data.(command.CaptureData).ID)
	}
	assert.Len(t, host.CallsOf(memory.OpListWindows), 1)

	other := h.Dispatch(ctx, command.Request{Type: command.TypeCaptureSession, RequestID: "r-2"})
	require.True(t, other.OK)
	assert.NotEqual(t, first, other.Data.(command.CaptureData).ID)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("get: %w", entity.ErrNotFound), command.CodeNotFound},
		{entity.ErrBusy, command.CodeBusy},
		{fmt.Errorf("x: %w", entity.ErrHostEnumeration), command.CodeHostEnumeration},
		{fmt.Errorf("x: %w", entity.ErrStorage), command.CodeStorage},
		{entity.ErrInvalidSession, command.CodeInvalidRequest},
		{entity.ErrInvalidTemplate, command.CodeInvalidRequest},
		{entity.ErrSyncUnavailable, command.CodeUnavailable},
		{entity.ErrUnsupported, command.CodeUnavailable},
		{errors.New("boom"), command.CodeInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, command.ErrorCode(tt.err), tt.err.Error())
	}
}
