package config

import (
	"net"
	"strconv"
	"time"

	"foodrelay/pkg/oauth"
)

// RelayConfig is the top-level configuration structure for foodrelay.
type RelayConfig struct {
	Server    ServerConfig    `yaml:"server"`
	FatSecret FatSecretConfig `yaml:"fatsecret"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig configures the inbound HTTP listener.
type ServerConfig struct {
	Host              string        `yaml:"host,omitempty"`              // Host to bind to (default: all interfaces)
	Port              int           `yaml:"port,omitempty"`              // Port to listen on (default: 3000)
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout,omitempty"` // Timeout for reading request headers
	IdleTimeout       time.Duration `yaml:"idleTimeout,omitempty"`       // Keepalive idle timeout
	ShutdownTimeout   time.Duration `yaml:"shutdownTimeout,omitempty"`   // Grace period for in-flight requests on shutdown
}

// Address returns the host:port the server binds to.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// FatSecretConfig holds the credentials and endpoints of the upstream API.
type FatSecretConfig struct {
	ClientID     string              `yaml:"clientId,omitempty"`
	ClientSecret oauth.RedactedToken `yaml:"clientSecret,omitempty"`
	TokenURL     string              `yaml:"tokenUrl,omitempty"`
	SearchURL    string              `yaml:"searchUrl,omitempty"`
	Scope        string              `yaml:"scope,omitempty"`

	// SingleFlight makes concurrent token refreshes share one exchange.
	SingleFlight bool `yaml:"singleFlight,omitempty"`

	// UpstreamTimeout bounds each outbound call. Zero means no timeout.
	UpstreamTimeout time.Duration `yaml:"upstreamTimeout,omitempty"`
}

// HasCredentials reports whether both client credentials are set.
func (f FatSecretConfig) HasCredentials() bool {
	return f.ClientID != "" && !f.ClientSecret.IsEmpty()
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
}
