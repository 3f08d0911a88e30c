package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateRestore(config)...)
	validationErrors = append(validationErrors, validateScheduler(config)...)
	validationErrors = append(validationErrors, validateHost(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageBackendSQLite, StorageBackendBolt, StorageBackendFile, StorageBackendMemory:
		return nil
	default:
		return []string{"storage.backend must be one of: sqlite, bolt, file, memory"}
	}
}

func validateSession(config *Config) []string {
	var validationErrors []string
	if config.Session.MaxHistoryEntries < 1 {
		validationErrors = append(validationErrors, "session.max_history_entries must be at least 1")
	}
	if config.Session.DefaultListLimit < 0 {
		validationErrors = append(validationErrors, "session.default_list_limit must be non-negative")
	}
	return validationErrors
}

func validateRestore(config *Config) []string {
	var validationErrors []string
	r := config.Restore
	if r.HostCallTimeout <= 0 {
		validationErrors = append(validationErrors, "restore.host_call_timeout must be positive")
	}
	if r.MinWidth < 1 || r.MinHeight < 1 {
		validationErrors = append(validationErrors, "restore.min_width and restore.min_height must be positive")
	}
	if r.MaxWidth < r.MinWidth {
		validationErrors = append(validationErrors, "restore.max_width must be >= restore.min_width")
	}
	if r.MaxHeight < r.MinHeight {
		validationErrors = append(validationErrors, "restore.max_height must be >= restore.min_height")
	}
	return validationErrors
}

func validateScheduler(config *Config) []string {
	var validationErrors []string
	if config.Scheduler.Daily && config.Scheduler.DailyInterval <= 0 {
		validationErrors = append(validationErrors, "scheduler.daily_interval must be positive")
	}
	if config.Scheduler.Weekly && config.Scheduler.WeeklyInterval <= 0 {
		validationErrors = append(validationErrors, "scheduler.weekly_interval must be positive")
	}
	return validationErrors
}

func validateHost(config *Config) []string {
	var validationErrors []string
	switch config.Host.Backend {
	case HostBackendMemory:
	case HostBackendCDP:
		u, err := url.Parse(config.Host.CDPURL)
		if err != nil || u.Host == "" {
			validationErrors = append(validationErrors, "host.cdp_url must be an absolute http(s) or ws(s) URL")
		} else {
			switch u.Scheme {
			case "http", "https", "ws", "wss":
			default:
				validationErrors = append(validationErrors, "host.cdp_url must be an absolute http(s) or ws(s) URL")
			}
		}
	default:
		validationErrors = append(validationErrors, "host.backend must be one of: cdp, memory")
	}
	if config.Host.RateLimit < 0 {
		validationErrors = append(validationErrors, "host.rate_limit must be non-negative")
	}
	if config.Host.RateLimit > 0 && config.Host.Burst < 1 {
		validationErrors = append(validationErrors, "host.burst must be at least 1 when host.rate_limit is set")
	}
	return validationErrors
}

func validateServer(config *Config) []string {
	if _, _, err := net.SplitHostPort(config.Server.Listen); err != nil {
		return []string{fmt.Sprintf("server.listen %q must be host:port", config.Server.Listen)}
	}
	return nil
}
