package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/app/command"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/bootstrap"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func memoryConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Storage = config.StorageConfig{Backend: config.StorageBackendMemory}
	cfg.Host.Backend = config.HostBackendMemory
	cfg.Session.MaxHistoryEntries = 3
	return cfg
}

func TestNew_FromConfig(t *testing.T) {
	ctx := testContext()
	eng, err := bootstrap.New(ctx, bootstrap.Options{Config: memoryConfig()})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, eng.Close()) })

	assert.IsType(t, &memory.Host{}, eng.Host)
	assert.Len(t, eng.Scheduler.Triggers(), 2)

	resp := eng.Commands.Dispatch(ctx, command.Request{Type: command.TypeCaptureSession, Name: "empty"})
	require.True(t, resp.OK, "%+v", resp.Error)
	data := resp.Data.(command.CaptureData)
	assert.Regexp(t, `^sess_[0-9A-Z]{26}$`, string(data.ID))
}

func TestNew_HistoryCapFromConfig(t *testing.T) {
	ctx := testContext()
	host := memory.NewHost()
	host.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "https://a.example"}}})

	eng, err := bootstrap.New(ctx, bootstrap.Options{Config: memoryConfig(), Host: host})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })

	for range 5 {
		_, err := eng.Capture.Execute(ctx, usecase.CaptureInput{Kind: entity.SessionKindScheduled})
		require.NoError(t, err)
	}
	sessions, err := eng.History.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
}

func TestNew_RejectsUnknownBackends(t *testing.T) {
	cfg := memoryConfig()
	cfg.Host.Backend = "firefox"
	_, err := bootstrap.New(testContext(), bootstrap.Options{Config: cfg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firefox")

	cfg = memoryConfig()
	cfg.Storage.Backend = "s3"
	_, err = bootstrap.New(testContext(), bootstrap.Options{Config: cfg})
	require.Error(t, err)
}

func TestOpenHost_CDPUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	_, _, err := bootstrap.OpenHost(ctx, config.HostConfig{Backend: config.HostBackendCDP, CDPURL: "http://127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to browser")
}

func TestStartupTimer(t *testing.T) {
	timer := bootstrap.NewStartupTimer()
	timer.Mark("storage")
	timer.Mark("host")
	assert.Equal(t, []string{"storage", "host"}, timer.Phases())
	timer.Log(testContext())
}

func TestNew_OfflineHost(t *testing.T) {
	ctx := testContext()
	eng, err := bootstrap.New(ctx, bootstrap.Options{Config: memoryConfig(), Host: bootstrap.OfflineHost{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })

	_, err = eng.Capture.Execute(ctx, usecase.CaptureInput{Name: "offline"})
	require.ErrorIs(t, err, entity.ErrHostEnumeration)

	out, err := eng.ListSessions.Execute(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, out.Sessions)
}
