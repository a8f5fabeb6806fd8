package config

import "time"

const (
	// DefaultPort is used when neither config.yaml nor PORT sets one.
	DefaultPort = 3000

	// DefaultTokenURL is the FatSecret identity provider token endpoint.
	DefaultTokenURL = "https://oauth.fatsecret.com/connect/token"

	// DefaultSearchURL is the FatSecret REST endpoint.
	DefaultSearchURL = "https://platform.fatsecret.com/rest/server.api"

	// DefaultScope is the scope requested for basic API access.
	DefaultScope = "basic"

	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
)

// GetDefaultConfig returns default configuration
func GetDefaultConfig() RelayConfig {
	return RelayConfig{
		Server: ServerConfig{
			Port:              DefaultPort,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			IdleTimeout:       DefaultIdleTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		FatSecret: FatSecretConfig{
			TokenURL:  DefaultTokenURL,
			SearchURL: DefaultSearchURL,
			Scope:     DefaultScope,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
