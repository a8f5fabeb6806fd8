package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"foodrelay/pkg/logging"
	"foodrelay/pkg/oauth"
)

const (
	userConfigDir  = ".config/foodrelay"
	configFileName = "config.yaml"
)

// Environment variable names read by ApplyEnvironment.
const (
	EnvClientID     = "FATSECRET_CLIENT_ID"
	EnvClientSecret = "FATSECRET_CLIENT_SECRET"
	EnvPort         = "PORT"
	EnvTokenURL     = "FATSECRET_TOKEN_URL"
	EnvSearchURL    = "FATSECRET_SEARCH_URL"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
)

// Package-level hooks so tests can isolate the loader from the real
// environment and home directory.
var (
	osUserHomeDir = os.UserHomeDir
	osLookupEnv   = os.LookupEnv
)

// DefaultConfigPath returns ~/.config/foodrelay, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig builds the effective configuration: defaults, then
// <configPath>/config.yaml if present, then environment variables.
// An empty configPath means DefaultConfigPath.
func LoadConfig(configPath string) (RelayConfig, error) {
	cfg := GetDefaultConfig()

	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	if configPath != "" {
		if err := loadFile(filepath.Join(configPath, configFileName), &cfg); err != nil {
			return RelayConfig{}, err
		}
	}

	if err := ApplyEnvironment(&cfg); err != nil {
		return RelayConfig{}, err
	}

	if err := Validate(cfg); err != nil {
		return RelayConfig{}, &ConfigurationError{
			ErrorType: "validation",
			Message:   err.Error(),
			Err:       err,
		}
	}

	return cfg, nil
}

func loadFile(configFilePath string, cfg *RelayConfig) error {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return nil
		}
		return &ConfigurationError{FilePath: configFilePath, ErrorType: "io", Message: err.Error(), Err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &ConfigurationError{FilePath: configFilePath, ErrorType: "parse", Message: err.Error(), Err: err}
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return nil
}

// ApplyEnvironment overlays set environment variables onto cfg.
// Empty values are treated as unset.
func ApplyEnvironment(cfg *RelayConfig) error {
	if v, ok := lookupNonEmpty(EnvClientID); ok {
		cfg.FatSecret.ClientID = v
	}
	if v, ok := lookupNonEmpty(EnvClientSecret); ok {
		cfg.FatSecret.ClientSecret = oauth.NewRedactedToken(v)
	}
	if v, ok := lookupNonEmpty(EnvTokenURL); ok {
		cfg.FatSecret.TokenURL = v
	}
	if v, ok := lookupNonEmpty(EnvSearchURL); ok {
		cfg.FatSecret.SearchURL = v
	}
	if v, ok := lookupNonEmpty(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookupNonEmpty(EnvLogFormat); ok {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookupNonEmpty(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigurationError{
				FilePath:  EnvPort,
				ErrorType: "env",
				Message:   fmt.Sprintf("invalid port %q", v),
				Err:       err,
			}
		}
		cfg.Server.Port = port
	}
	return nil
}

func lookupNonEmpty(name string) (string, bool) {
	v, ok := osLookupEnv(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
