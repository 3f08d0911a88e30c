// Package cmd provides Cobra CLI commands for tabsnap.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "tabsnap",
		Short: "Snapshot and restore browser sessions",
		Long: `tabsnap captures the windows, tabs and tab groups of a running browser
into a bounded history, and rebuilds them later.

Features:
  - Manual and scheduled (daily, weekly) captures
  - Best-effort restore that reports what could not be recreated
  - Tab group relinking, pinned and active tab state, window bounds
  - Reusable templates with YAML export and import
  - HTTP command surface for extensions and scripts

The browser is reached over the Chrome DevTools protocol; start it with
--remote-debugging-port and point host.cdp_url at it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}
			if app != nil {
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tabsnap/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
