package config

import "time"

// Default configuration constants
const (
	// Ledger defaults
	defaultMaxHistoryEntries = 100
	defaultListLimit         = 20

	// Restore defaults
	defaultHostCallTimeout = 10 * time.Second
	defaultMinWidth        = 400
	defaultMaxWidth        = 1920
	defaultMinHeight       = 300
	defaultMaxHeight       = 1080

	// Scheduler defaults
	defaultDailyInterval  = 24 * time.Hour
	defaultWeeklyInterval = 7 * 24 * time.Hour

	// Host defaults
	defaultCDPURL    = "http://127.0.0.1:9222"
	defaultRateLimit = 20.0 // calls per second
	defaultBurst     = 5

	// Server defaults
	defaultListen = "127.0.0.1:7717"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Backend: StorageBackendSQLite,
		},
		Session: SessionConfig{
			MaxHistoryEntries: defaultMaxHistoryEntries,
			DefaultListLimit:  defaultListLimit,
		},
		Restore: RestoreConfig{
			HostCallTimeout: defaultHostCallTimeout,
			MinWidth:        defaultMinWidth,
			MaxWidth:        defaultMaxWidth,
			MinHeight:       defaultMinHeight,
			MaxHeight:       defaultMaxHeight,
		},
		Scheduler: SchedulerConfig{
			Daily:          true,
			Weekly:         true,
			DailyInterval:  defaultDailyInterval,
			WeeklyInterval: defaultWeeklyInterval,
		},
		Host: HostConfig{
			Backend:   HostBackendCDP,
			CDPURL:    defaultCDPURL,
			RateLimit: defaultRateLimit,
			Burst:     defaultBurst,
		},
		Server: ServerConfig{
			Listen:         defaultListen,
			AllowedOrigins: []string{"chrome-extension://*"},
		},
	}
}
