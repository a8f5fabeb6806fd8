package app

import (
	"net/http"

	"foodrelay/internal/config"
	"foodrelay/internal/oauth"
	"foodrelay/internal/relay"
	"foodrelay/internal/server"
	"foodrelay/pkg/logging"
)

// Services holds the components built from the relay configuration.
type Services struct {
	// TokenManager owns the cached credential.
	TokenManager *oauth.Manager

	// Relay performs upstream searches.
	Relay *relay.Relay

	// Server exposes the relay over HTTP.
	Server *server.Server
}

// InitializeServices builds the token cache, relay and server from cfg.
func InitializeServices(cfg config.RelayConfig) *Services {
	httpClient := &http.Client{Timeout: cfg.FatSecret.UpstreamTimeout}

	if !cfg.FatSecret.HasCredentials() {
		logging.Warn("Bootstrap", "%s or %s is not set; token exchanges will fail until both are provided",
			config.EnvClientID, config.EnvClientSecret)
	}

	manager := oauth.NewManager(oauth.ManagerConfig{
		TokenURL:     cfg.FatSecret.TokenURL,
		ClientID:     cfg.FatSecret.ClientID,
		ClientSecret: cfg.FatSecret.ClientSecret,
		Scope:        cfg.FatSecret.Scope,
		SingleFlight: cfg.FatSecret.SingleFlight,
	}, oauth.WithHTTPClient(httpClient))

	searchRelay := relay.New(cfg.FatSecret.SearchURL, manager, relay.WithHTTPClient(httpClient))

	return &Services{
		TokenManager: manager,
		Relay:        searchRelay,
		Server:       server.NewServer(cfg.Server, searchRelay),
	}
}
