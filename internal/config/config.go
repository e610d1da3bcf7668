package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogFile = "ACADEMY_LOG_FILE"
	EnvLogMode = "ACADEMY_LOG_MODE"
)

// Log modes.
const (
	LogModeDev  = "dev"
	LogModeProd = "prod"
)

// Config holds runtime settings for the application.
type Config struct {
	// LogFile is where structured logs are written. Empty disables logging,
	// since the terminal UI owns stdout and stderr.
	LogFile string

	// LogMode selects the encoder: "dev" (console) or "prod" (JSON).
	LogMode string
}

// DefaultConfig returns a Config with logging disabled.
func DefaultConfig() Config {
	return Config{
		LogMode: LogModeDev,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv(EnvLogFile); p != "" {
		cfg.LogFile = p
	}
	if m := os.Getenv(EnvLogMode); m != "" {
		cfg.LogMode = strings.ToLower(strings.TrimSpace(m))
	}

	return cfg
}

// Override applies non-empty flag values on top of cfg. Flags win over the
// environment.
func (c Config) Override(logFile, logMode string) Config {
	if logFile != "" {
		c.LogFile = logFile
	}
	if logMode != "" {
		c.LogMode = strings.ToLower(strings.TrimSpace(logMode))
	}
	return c
}

// Validate checks that the configured values are usable.
func (c Config) Validate() error {
	switch c.LogMode {
	case LogModeDev, LogModeProd:
	default:
		return fmt.Errorf("unknown log mode: %q (want %s or %s)", c.LogMode, LogModeDev, LogModeProd)
	}
	return nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
