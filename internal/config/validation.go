package config

import (
	"net/url"

	"foodrelay/pkg/logging"
)

// Validate checks a fully merged configuration.
// Credentials are deliberately not required here.
func Validate(cfg RelayConfig) error {
	var errs ValidationErrors

	// Port 0 asks the kernel for an ephemeral port.
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		errs.Add("server.port", "must be between 0 and 65535", cfg.Server.Port)
	}
	if cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.IdleTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs.Add("server", "timeouts must not be negative")
	}

	validateEndpoint(&errs, "fatsecret.tokenUrl", cfg.FatSecret.TokenURL)
	validateEndpoint(&errs, "fatsecret.searchUrl", cfg.FatSecret.SearchURL)
	if cfg.FatSecret.UpstreamTimeout < 0 {
		errs.Add("fatsecret.upstreamTimeout", "must not be negative", cfg.FatSecret.UpstreamTimeout)
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		errs.Add("logging.level", err.Error(), cfg.Logging.Level)
	}
	switch logging.Format(cfg.Logging.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs.Add("logging.format", "must be 'text' or 'json'", cfg.Logging.Format)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateEndpoint(errs *ValidationErrors, field, raw string) {
	if raw == "" {
		errs.Add(field, "is required")
		return
	}
	u, err := url.Parse(raw)
	if err != nil {
		errs.Add(field, "is not a valid URL", raw)
		return
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.Add(field, "must be an absolute http(s) URL", raw)
	}
}
