package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/server"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

var (
	serveListen      string
	serveNoScheduler bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the engine with its HTTP command surface and scheduler",
	Long: `Run the session engine in the foreground.

The HTTP surface accepts command envelopes on POST /api/v1/commands and
exposes REST routes for sessions and templates, /healthz and /metrics.
Daily and weekly auto-saves run while the server is up.

The log level follows edits to the config file without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveNoScheduler, "no-scheduler", false, "disable scheduled captures")
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, *logging.FromContext(app.Ctx()))
	log := logging.FromContext(ctx)

	eng, err := app.Engine(true)
	if err != nil {
		return err
	}

	if !serveNoScheduler {
		if err := eng.Scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
	}

	watchConfig(ctx, app)

	cfg := app.Config.Server
	if serveListen != "" {
		cfg.Listen = serveListen
	}
	gin.SetMode(gin.ReleaseMode)
	srv := server.New(ctx, cfg, eng.Commands, app.Metrics)

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s tabsnap %s listening on %s\n",
		app.Theme.Highlight.Render(styles.IconServer), app.BuildInfo.String(), cfg.Listen)
	if err := srv.Run(ctx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// watchConfig reloads the log level when the config file changes.
// Other settings apply on the next start.
func watchConfig(ctx context.Context, app *cli.App) {
	if app.Manager == nil {
		return
	}
	log := logging.FromContext(ctx)
	app.Manager.OnConfigChange(func(cfg *config.Config) {
		cli.SetLogLevel(cfg.Logging.Level)
		log.Info().Str("level", cfg.Logging.Level).Msg("config reloaded")
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}
