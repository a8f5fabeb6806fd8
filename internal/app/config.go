package app

import (
	"io"

	"foodrelay/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug forces debug logging regardless of the configured level.
	Debug bool

	// Custom configuration directory (optional)
	ConfigPath string

	// LogOutput receives log output; nil means os.Stdout.
	LogOutput io.Writer

	// Loaded relay configuration
	RelayConfig *config.RelayConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}
