package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a configuration manager reading $XDG_CONFIG_HOME/tabsnap/config.toml.
// A non-empty configFile overrides the location.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// TABSNAP_STORAGE_BACKEND, TABSNAP_SERVER_LISTEN, ...
	v.SetEnvPrefix("TABSNAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TABSNAP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSNAP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABSNAP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSNAP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, completes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)
	if err := ensureStoragePath(config); err != nil {
		return nil, err
	}
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		return nil
	}
	path, err := DefaultStoragePath(config.Storage.Backend)
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Storage.Backend = StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend))))
	config.Storage.Path = strings.TrimSpace(config.Storage.Path)
	config.Host.Backend = HostBackend(strings.ToLower(strings.TrimSpace(string(config.Host.Backend))))
	config.Host.CDPURL = strings.TrimSpace(config.Host.CDPURL)

	if config.Storage.Backend == "" {
		config.Storage.Backend = StorageBackendSQLite
	}
	if config.Host.Backend == "" {
		config.Host.Backend = HostBackendCDP
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Server.AllowedOrigins = append([]string(nil), m.config.Server.AllowedOrigins...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) configPath() string {
	if m.configFile != "" {
		return m.configFile
	}
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, _ := GetConfigFile()
	return path
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()
	if configFile == "" {
		return errors.New("no config file location")
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if m.configFile == "" {
		m.viper.SetConfigFile(configFile)
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")
	if _, err := WriteSchemaFile(filepath.Dir(configFile)); err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Storage.Path is resolved in Load(), no default needed

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", "")
	m.viper.SetDefault("storage.compression", defaults.Storage.Compression)

	m.viper.SetDefault("session.max_history_entries", defaults.Session.MaxHistoryEntries)
	m.viper.SetDefault("session.default_list_limit", defaults.Session.DefaultListLimit)

	m.viper.SetDefault("restore.host_call_timeout", defaults.Restore.HostCallTimeout.String())
	m.viper.SetDefault("restore.min_width", defaults.Restore.MinWidth)
	m.viper.SetDefault("restore.max_width", defaults.Restore.MaxWidth)
	m.viper.SetDefault("restore.min_height", defaults.Restore.MinHeight)
	m.viper.SetDefault("restore.max_height", defaults.Restore.MaxHeight)

	m.viper.SetDefault("scheduler.daily", defaults.Scheduler.Daily)
	m.viper.SetDefault("scheduler.weekly", defaults.Scheduler.Weekly)
	m.viper.SetDefault("scheduler.daily_interval", defaults.Scheduler.DailyInterval.String())
	m.viper.SetDefault("scheduler.weekly_interval", defaults.Scheduler.WeeklyInterval.String())

	m.viper.SetDefault("host.backend", string(defaults.Host.Backend))
	m.viper.SetDefault("host.cdp_url", defaults.Host.CDPURL)
	m.viper.SetDefault("host.rate_limit", defaults.Host.RateLimit)
	m.viper.SetDefault("host.burst", defaults.Host.Burst)

	m.viper.SetDefault("server.listen", defaults.Server.Listen)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
}
