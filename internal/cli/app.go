// Package cli holds the dependencies shared by the tabsnap commands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/bootstrap"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/build"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/monitoring"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Metrics   *monitoring.Metrics

	// Host and Store override the configured backends when set.
	Host  port.HostResourceClient
	Store port.BlobStore

	engine *bootstrap.Engine
	online bool
	// Context with logger
	ctx context.Context
}

// NewApp loads configuration from configFile (empty for the XDG default)
// and sets up logging. The engine is opened on first use.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	SetLogLevel(cfg.Logging.Level)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Metrics: monitoring.NewMetrics(),
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// NewAppWithConfig builds an App around an already loaded configuration.
func NewAppWithConfig(ctx context.Context, cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		Theme:   styles.NewTheme(),
		Metrics: monitoring.NewMetrics(),
		ctx:     ctx,
	}
}

// SetLogLevel applies a config level name to every logger in the process.
func SetLogLevel(level string) {
	zerolog.SetGlobalLevel(logging.ParseLevel(level))
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Engine opens the engine. Offline engines never contact the browser and
// serve commands that only read or edit storage.
func (a *App) Engine(online bool) (*bootstrap.Engine, error) {
	if a.engine != nil {
		if a.online || !online {
			return a.engine, nil
		}
		if err := a.Close(); err != nil {
			return nil, err
		}
	}
	opts := bootstrap.Options{Config: a.Config, Metrics: a.Metrics, Store: a.Store, Host: a.Host}
	if !online {
		opts.Host = bootstrap.OfflineHost{}
	}
	eng, err := bootstrap.New(a.ctx, opts)
	if err != nil {
		return nil, err
	}
	a.engine = eng
	a.online = online
	return eng, nil
}

// FindSession resolves a session by exact id or unique id suffix.
// Users typically identify sessions by the last few characters.
func (a *App) FindSession(idOrSuffix string) (*entity.Session, error) {
	eng, err := a.Engine(false)
	if err != nil {
		return nil, err
	}
	sessions, err := eng.History.List(a.ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var matches []*entity.Session
	for _, s := range sessions {
		if string(s.ID) == idOrSuffix {
			return s, nil
		}
		if strings.HasSuffix(string(s.ID), idOrSuffix) {
			matches = append(matches, s)
		}
	}
	return pickOne(matches, idOrSuffix, "session")
}

// FindTemplate resolves a template by exact id or unique id suffix.
func (a *App) FindTemplate(idOrSuffix string) (*entity.SessionTemplate, error) {
	eng, err := a.Engine(false)
	if err != nil {
		return nil, err
	}
	templates, err := eng.Templates.List(a.ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	var matches []*entity.SessionTemplate
	for _, t := range templates {
		if string(t.ID) == idOrSuffix {
			return t, nil
		}
		if strings.HasSuffix(string(t.ID), idOrSuffix) {
			matches = append(matches, t)
		}
	}
	return pickOne(matches, idOrSuffix, "template")
}

func pickOne[T any](matches []*T, idOrSuffix, kind string) (*T, error) {
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no %s matching '%s'", entity.ErrNotFound, kind, idOrSuffix)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous %s id '%s' matches %d entries - be more specific", kind, idOrSuffix, len(matches))
	}
}

// Close releases the engine.
func (a *App) Close() error {
	if a.engine == nil {
		return nil
	}
	err := a.engine.Close()
	a.engine = nil
	return err
}
