// Package config loads the tabsnap configuration with Viper.
package config

import "time"

// File permission constants
const (
	dirPerm = 0755 // Standard directory permissions (rwxr-xr-x)
)

// Config represents the complete configuration for tabsnap.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
	Storage StorageConfig `mapstructure:"storage" toml:"storage"`
	// Session controls the history ledger.
	Session SessionConfig `mapstructure:"session" toml:"session"`
	// Restore bounds host calls and restored window sizes.
	Restore   RestoreConfig   `mapstructure:"restore" toml:"restore"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" toml:"scheduler"`
	// Host selects the browser the engine drives.
	Host   HostConfig   `mapstructure:"host" toml:"host"`
	Server ServerConfig `mapstructure:"server" toml:"server"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// StorageBackend selects the blob store implementation.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendBolt   StorageBackend = "bolt"
	StorageBackendFile   StorageBackend = "file"
	StorageBackendMemory StorageBackend = "memory"
)

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend"`
	// Path is the database file (sqlite, bolt) or directory (file). Empty uses the XDG data dir.
	Path string `mapstructure:"path" toml:"path"`
	// Compression stores blobs zstd-compressed. Existing uncompressed blobs stay readable.
	Compression bool `mapstructure:"compression" toml:"compression"`
}

// SessionConfig controls the history ledger.
type SessionConfig struct {
	MaxHistoryEntries int `mapstructure:"max_history_entries" toml:"max_history_entries"`
	DefaultListLimit  int `mapstructure:"default_list_limit" toml:"default_list_limit"`
}

// RestoreConfig bounds host calls and restored window sizes.
type RestoreConfig struct {
	HostCallTimeout time.Duration `mapstructure:"host_call_timeout" toml:"host_call_timeout"`
	MinWidth        int           `mapstructure:"min_width" toml:"min_width"`
	MaxWidth        int           `mapstructure:"max_width" toml:"max_width"`
	MinHeight       int           `mapstructure:"min_height" toml:"min_height"`
	MaxHeight       int           `mapstructure:"max_height" toml:"max_height"`
}

// SchedulerConfig enables the periodic auto-saves.
type SchedulerConfig struct {
	Daily          bool          `mapstructure:"daily" toml:"daily"`
	Weekly         bool          `mapstructure:"weekly" toml:"weekly"`
	DailyInterval  time.Duration `mapstructure:"daily_interval" toml:"daily_interval"`
	WeeklyInterval time.Duration `mapstructure:"weekly_interval" toml:"weekly_interval"`
}

// HostBackend selects the host resource client.
type HostBackend string

const (
	// HostBackendCDP drives a Chromium browser over the DevTools protocol.
	HostBackendCDP HostBackend = "cdp"
	// HostBackendMemory is an in-process browser, used for demos and tests.
	HostBackendMemory HostBackend = "memory"
)

// HostConfig selects and tunes the host resource client.
type HostConfig struct {
	Backend HostBackend `mapstructure:"backend" toml:"backend"`
	// CDPURL is the DevTools websocket or http endpoint, e.g. http://127.0.0.1:9222.
	CDPURL string `mapstructure:"cdp_url" toml:"cdp_url"`
	// RateLimit caps host calls per second. Zero disables throttling.
	RateLimit float64 `mapstructure:"rate_limit" toml:"rate_limit"`
	Burst     int     `mapstructure:"burst" toml:"burst"`
}

// ServerConfig holds the HTTP command surface configuration.
type ServerConfig struct {
	Listen         string   `mapstructure:"listen" toml:"listen"`
	AllowedOrigins []string `mapstructure:"allowed_origins" toml:"allowed_origins"`
}
