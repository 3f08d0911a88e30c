// Package bootstrap wires configuration, storage, the host adapter and the
// use cases into a running engine.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/app/command"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/cdp"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/id"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/ledger"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/snapshot"
	syncprovider "github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/sync"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// Options overrides parts of the wiring. Nil fields are built from Config.
type Options struct {
	Config  *config.Config
	Host    port.HostResourceClient
	Store   port.BlobStore
	Metrics port.EngineMetrics
	Sync    port.SyncProvider
	Tickers port.TickerFactory
	IDs     *id.Generator
}

// Engine holds every wired component.
type Engine struct {
	Config  *config.Config
	Host    port.HostResourceClient
	Store   port.BlobStore
	Metrics port.EngineMetrics

	History   *ledger.SessionHistoryRepository
	Templates *ledger.TemplateRepository
	Gate      *usecase.HostGate

	Capture      *usecase.CaptureSessionUseCase
	Restore      *usecase.RestoreSessionUseCase
	ListSessions *usecase.ListSessionsUseCase
	Delete       *usecase.DeleteSessionUseCase
	Manage       *usecase.ManageTemplatesUseCase
	Sync         *usecase.SyncSessionsUseCase

	Scheduler *snapshot.Scheduler
	Commands  *command.Handler

	closers []func() error
}

// New builds an engine. Components missing from opts are opened from
// opts.Config; those are closed by Engine.Close.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	cfg := opts.Config
	timer := NewStartupTimer()
	e := &Engine{Config: cfg, Metrics: opts.Metrics}
	if e.Metrics == nil {
		e.Metrics = port.NopMetrics{}
	}

	e.Store = opts.Store
	if e.Store == nil {
		store, err := persistence.OpenBlobStore(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		e.Store = store
		e.closers = append(e.closers, store.Close)
	}
	timer.Mark("storage")

	e.Host = opts.Host
	if e.Host == nil {
		host, closeHost, err := OpenHost(ctx, cfg.Host)
		if err != nil {
			_ = e.Close()
			return nil, err
		}
		e.Host = host
		e.closers = append(e.closers, closeHost)
	}
	timer.Mark("host")

	ids := opts.IDs
	if ids == nil {
		ids = id.NewGenerator()
	}
	provider := opts.Sync
	if provider == nil {
		provider = syncprovider.NoopProvider{}
	}
	limits := entity.SizeLimits{
		MinWidth:  cfg.Restore.MinWidth,
		MaxWidth:  cfg.Restore.MaxWidth,
		MinHeight: cfg.Restore.MinHeight,
		MaxHeight: cfg.Restore.MaxHeight,
	}

	e.History = ledger.NewSessionHistoryRepository(e.Store, cfg.Session.MaxHistoryEntries)
	e.Templates = ledger.NewTemplateRepository(e.Store)
	e.Gate = usecase.NewHostGate()

	e.Capture = usecase.NewCaptureSessionUseCase(e.Host, e.History, e.Gate, ids.Sessions(), e.Metrics)
	e.Restore = usecase.NewRestoreSessionUseCase(e.History, e.Host, e.Gate, limits, cfg.Restore.HostCallTimeout, e.Metrics)
	e.ListSessions = usecase.NewListSessionsUseCase(e.History, cfg.Session.DefaultListLimit)
	e.Delete = usecase.NewDeleteSessionUseCase(e.History)
	e.Manage = usecase.NewManageTemplatesUseCase(e.Templates, e.Capture, e.Restore, ids.Templates(), e.Metrics)
	e.Sync = usecase.NewSyncSessionsUseCase(e.History, provider)

	e.Scheduler = snapshot.NewScheduler(e.Capture, opts.Tickers, snapshot.Config{
		Daily:          cfg.Scheduler.Daily,
		Weekly:         cfg.Scheduler.Weekly,
		DailyInterval:  cfg.Scheduler.DailyInterval,
		WeeklyInterval: cfg.Scheduler.WeeklyInterval,
	})
	e.Commands = command.NewHandler(command.Deps{
		Capture:   e.Capture,
		Sessions:  e.ListSessions,
		Restore:   e.Restore,
		Delete:    e.Delete,
		Templates: e.Manage,
		Sync:      e.Sync,
	})
	timer.Mark("wiring")
	timer.Log(ctx)

	return e, nil
}

// Close stops the scheduler and releases what New opened, in reverse order.
func (e *Engine) Close() error {
	var errs []error
	if e.Scheduler != nil {
		errs = append(errs, e.Scheduler.Stop())
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}
	e.closers = nil
	return errors.Join(errs...)
}

// OpenHost connects the configured host backend.
func OpenHost(ctx context.Context, cfg config.HostConfig) (port.HostResourceClient, func() error, error) {
	switch cfg.Backend {
	case config.HostBackendCDP:
		host, err := cdp.Connect(ctx, cdp.Config{URL: cfg.CDPURL, RateLimit: cfg.RateLimit, Burst: cfg.Burst})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to browser: %w", err)
		}
		return host, host.Close, nil
	case config.HostBackendMemory:
		logging.FromContext(ctx).Warn().Msg("using the in-memory host; nothing reaches a real browser")
		return memory.NewHost(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown host backend %q", cfg.Backend)
	}
}
