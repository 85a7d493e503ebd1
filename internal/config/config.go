package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/1broseidon/halfscreen/internal/permission"
)

// Config holds runtime settings. Keybindings are fixed and deliberately
// absent.
type Config struct {
	// StartEnabled sets the enabled state at launch.
	StartEnabled bool `yaml:"start_enabled"`
	// PermissionPollInterval is how often a missing accessibility grant is
	// re-checked.
	PermissionPollInterval time.Duration `yaml:"permission_poll_interval"`
	// SkipUnchanged avoids position/size writes that match the target.
	SkipUnchanged bool `yaml:"skip_unchanged"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFile receives logs instead of stderr when set.
	LogFile string `yaml:"log_file,omitempty"`
	// Display and XAuthority override the X11 server on Linux.
	Display    string `yaml:"display,omitempty"`
	XAuthority string `yaml:"xauthority,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		StartEnabled:           true,
		PermissionPollInterval: permission.DefaultInterval,
		SkipUnchanged:          true,
		LogLevel:               "info",
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PermissionPollInterval <= 0 {
		return fmt.Errorf("permission_poll_interval must be positive (got %s)", c.PermissionPollInterval)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a log_level value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", level)
	}
}
